package journal

import "sort"

// Kind discriminates the record variants sharing the timeline.
type Kind string

const (
	KindReading  Kind = "reading"
	KindPractice Kind = "practice"
	KindGame     Kind = "game"
)

func (k Kind) Valid() bool {
	switch k {
	case KindReading, KindPractice, KindGame:
		return true
	}
	return false
}

// TimelineItem is a tagged union over the three record kinds. Exactly one
// of the record pointers is set, matching Kind. Date is filled only by the
// cross-day statistics views.
type TimelineItem struct {
	Kind     Kind
	Date     string
	Reading  *ReadingRecord
	Practice *PracticeRecord
	Game     *GameRecord
}

// Timestamp returns the HH:MM label of the underlying record.
func (it TimelineItem) Timestamp() string {
	switch it.Kind {
	case KindReading:
		return it.Reading.Timestamp
	case KindPractice:
		return it.Practice.Timestamp
	case KindGame:
		return it.Game.Timestamp
	}
	return ""
}

// RecordID returns the unique id of the underlying record.
func (it TimelineItem) RecordID() string {
	switch it.Kind {
	case KindReading:
		return it.Reading.ID
	case KindPractice:
		return it.Practice.ID
	case KindGame:
		return it.Game.ID
	}
	return ""
}

// Timeline flattens a day's records into one sequence sorted by timestamp
// descending. The HH:MM labels are fixed-width and zero-padded, so the
// lexicographic comparison orders correctly within one day; record ids
// break ties deterministically.
func (d DayRecord) Timeline() []TimelineItem {
	items := make([]TimelineItem, 0,
		len(d.ReadingRecords)+len(d.PracticeRecords)+len(d.GameRecords))
	for i := range d.ReadingRecords {
		items = append(items, TimelineItem{Kind: KindReading, Reading: &d.ReadingRecords[i]})
	}
	for i := range d.PracticeRecords {
		items = append(items, TimelineItem{Kind: KindPractice, Practice: &d.PracticeRecords[i]})
	}
	for i := range d.GameRecords {
		items = append(items, TimelineItem{Kind: KindGame, Game: &d.GameRecords[i]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].Timestamp(), items[j].Timestamp()
		if ti == tj {
			return items[i].RecordID() > items[j].RecordID()
		}
		return ti > tj
	})
	return items
}
