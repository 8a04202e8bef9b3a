// Package journal defines the per-day planner data model: tasks, the three
// record kinds, the diary fields, and the persisted envelope.
package journal

// Task is a single to-do item embedded in one day record. Copies created by
// multi-date expansion share an ID but are otherwise independent values.
type Task struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	IsPriority bool   `json:"isPriority"`
	Completed  bool   `json:"completed"`
}

// ReadingRecord logs one finished book with a 0..5 star rating.
type ReadingRecord struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Stars     int    `json:"stars"`
	Timestamp string `json:"timestamp"`
}

// PracticeRecord logs one timed-practice result in seconds. Lower is better.
type PracticeRecord struct {
	ID        string  `json:"id,omitempty"`
	Time      float64 `json:"time"`
	Timestamp string  `json:"timestamp"`
}

// Result classifies a game record.
type Result string

const (
	ResultSuccess    Result = "success"
	ResultExperience Result = "experience"
)

func (r Result) Valid() bool {
	return r == ResultSuccess || r == ResultExperience
}

// GameRecord logs one game against an opponent, annotated with a
// commendation. The highlight label and icon are denormalized copies taken
// at write time; later tag edits never touch them.
type GameRecord struct {
	ID             string `json:"id,omitempty"`
	Result         Result `json:"type"`
	Opponent       string `json:"opponent"`
	HighlightID    int64  `json:"highlightId"`
	HighlightLabel string `json:"highlightLabel"`
	HighlightIcon  string `json:"highlightIcon"`
	Timestamp      string `json:"timestamp"`
}

// DayRecord aggregates everything recorded for one calendar date. The JSON
// field names match the persisted envelope of earlier releases.
type DayRecord struct {
	Tasks           []Task           `json:"tasks"`
	PracticeRecords []PracticeRecord `json:"cubeRecords"`
	ReadingRecords  []ReadingRecord  `json:"books"`
	GameRecords     []GameRecord     `json:"badukRecords"`
	DiaryText       string           `json:"diaryText"`
	DiaryDrawing    *string          `json:"diaryDrawing"`
	Mood            string           `json:"emotion"`
}

// NewDayRecord returns the structural default for an absent date: empty
// sequences, empty text, no drawing, no mood.
func NewDayRecord() DayRecord {
	return DayRecord{
		Tasks:           []Task{},
		PracticeRecords: []PracticeRecord{},
		ReadingRecords:  []ReadingRecord{},
		GameRecords:     []GameRecord{},
	}
}

// Perfect reports whether the day has at least one task and all of them are
// completed. A day with zero tasks is never perfect.
func (d DayRecord) Perfect() bool {
	if len(d.Tasks) == 0 {
		return false
	}
	for _, t := range d.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so mutations never alias stored state.
func (d DayRecord) Clone() DayRecord {
	out := d
	out.Tasks = append([]Task(nil), d.Tasks...)
	out.PracticeRecords = append([]PracticeRecord(nil), d.PracticeRecords...)
	out.ReadingRecords = append([]ReadingRecord(nil), d.ReadingRecords...)
	out.GameRecords = append([]GameRecord(nil), d.GameRecords...)
	if d.DiaryDrawing != nil {
		drawing := *d.DiaryDrawing
		out.DiaryDrawing = &drawing
	}
	return out
}

// AllData maps canonical YYYY-MM-DD day keys to their records. Days are
// materialized lazily on first write and never deleted wholesale.
type AllData map[string]DayRecord

// Envelope is the persisted {settings, data} document.
type Envelope struct {
	Settings Settings `json:"settings"`
	Data     AllData  `json:"data"`
}
