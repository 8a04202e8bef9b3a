package journal

import (
	"encoding/json"
	"testing"
)

func TestPerfectDay(t *testing.T) {
	d := NewDayRecord()
	if d.Perfect() {
		t.Fatalf("day with zero tasks must not be perfect")
	}
	d.Tasks = []Task{
		{ID: 1, Title: "a", Completed: true},
		{ID: 2, Title: "b", Completed: true},
		{ID: 3, Title: "c", Completed: true},
	}
	if !d.Perfect() {
		t.Fatalf("day with all tasks completed must be perfect")
	}
	d.Tasks[1].Completed = false
	if d.Perfect() {
		t.Fatalf("day with an open task must not be perfect")
	}
}

func TestTimelineDescending(t *testing.T) {
	d := NewDayRecord()
	d.ReadingRecords = append(d.ReadingRecords, ReadingRecord{ID: "r1", Title: "book", Stars: 4, Timestamp: "09:00"})
	d.PracticeRecords = append(d.PracticeRecords, PracticeRecord{ID: "p1", Time: 12.3, Timestamp: "08:59"})
	d.GameRecords = append(d.GameRecords, GameRecord{ID: "g1", Result: ResultSuccess, Opponent: "AI", Timestamp: "09:01"})

	items := d.Timeline()
	want := []string{"09:01", "09:00", "08:59"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, ts := range want {
		if items[i].Timestamp() != ts {
			t.Fatalf("item %d: expected %s, got %s", i, ts, items[i].Timestamp())
		}
	}
}

func TestTimelineKindsTagged(t *testing.T) {
	d := NewDayRecord()
	d.GameRecords = append(d.GameRecords, GameRecord{ID: "g1", Result: ResultExperience, Timestamp: "10:00"})
	items := d.Timeline()
	if len(items) != 1 || items[0].Kind != KindGame || items[0].Game == nil {
		t.Fatalf("expected a single tagged game item, got %+v", items)
	}
}

func TestSettingsCoercion(t *testing.T) {
	var s Settings
	if err := json.Unmarshal([]byte(`{"badukHighlights":[],"level":"7","exp":"42"}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Level != 7 || s.Exp != 42 {
		t.Fatalf("expected level 7 exp 42, got %d/%d", s.Level, s.Exp)
	}

	if err := json.Unmarshal([]byte(`{"level":{"bad":true},"exp":null}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Level != 1 || s.Exp != 0 {
		t.Fatalf("expected defaults 1/0, got %d/%d", s.Level, s.Exp)
	}
}

func TestTaskIDsDistinctWithinBatch(t *testing.T) {
	used := make(map[int64]bool)
	seen := make(map[int64]bool)
	for i := 0; i < 200; i++ {
		id := NewTaskID(used)
		if seen[id] {
			t.Fatalf("duplicate task id %d", id)
		}
		seen[id] = true
	}
}

func TestDayRecordCloneIndependent(t *testing.T) {
	d := NewDayRecord()
	d.Tasks = append(d.Tasks, Task{ID: 1, Title: "a"})
	drawing := "data:image/png;base64,AAAA"
	d.DiaryDrawing = &drawing

	c := d.Clone()
	c.Tasks[0].Completed = true
	*c.DiaryDrawing = "changed"

	if d.Tasks[0].Completed {
		t.Fatalf("clone mutation leaked into original tasks")
	}
	if *d.DiaryDrawing != drawing {
		t.Fatalf("clone mutation leaked into original drawing")
	}
}

func TestEnvelopeFieldNames(t *testing.T) {
	env := Envelope{Settings: DefaultSettings(), Data: AllData{}}
	data, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"settings", "data"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("envelope missing %q key", key)
		}
	}
}
