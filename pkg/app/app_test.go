package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/winterplan/pkg/journal"
)

type memoryPersistence struct {
	saved  *journal.Envelope
	loads  *journal.Envelope
	saves  int
	failed bool
}

func (m *memoryPersistence) Load(_ context.Context) (*journal.Envelope, error) {
	return m.loads, nil
}

func (m *memoryPersistence) Save(env *journal.Envelope) error {
	m.saves++
	if m.failed {
		return errors.New("disk full")
	}
	m.saved = env
	return nil
}

type seasonConfig struct {
	month time.Month
	day   int
}

func (c seasonConfig) BasePath() string             { return "" }
func (c seasonConfig) SeasonEnd() (time.Month, int) { return c.month, c.day }

func newTestService(t *testing.T) (*Service, *memoryPersistence) {
	t.Helper()
	mp := &memoryPersistence{}
	s, err := Load(context.Background(), mp, seasonConfig{month: time.February, day: 28})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.now = func() time.Time {
		return time.Date(2025, 1, 10, 9, 30, 0, 0, time.Local)
	}
	if err := s.SelectDate("2025-01-05"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s, mp
}

func TestDefaultOnMiss(t *testing.T) {
	s, _ := newTestService(t)
	before := len(s.Data())
	day := s.Day("2099-01-01")
	if len(day.Tasks) != 0 || len(day.ReadingRecords) != 0 || len(day.PracticeRecords) != 0 ||
		len(day.GameRecords) != 0 || day.DiaryText != "" || day.DiaryDrawing != nil || day.Mood != "" {
		t.Fatalf("expected structural default, got %+v", day)
	}
	if len(s.Data()) != before {
		t.Fatalf("read must not materialize a day record")
	}
}

func TestExperienceRollover(t *testing.T) {
	s, _ := newTestService(t)
	s.settings.Level = 1
	s.settings.Exp = 95

	if err := s.SaveTask(TaskForm{Title: "줄넘기", Range: RangeToday}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.Day("2025-01-05").Tasks[0].ID
	if err := s.ToggleTask("2025-01-05", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Settings()
	if got.Level != 2 || got.Exp != 0 {
		t.Fatalf("expected level 2 exp 0, got %d/%d", got.Level, got.Exp)
	}
}

func TestUncompleteKeepsExperience(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.SaveTask(TaskForm{Title: "a", Range: RangeToday}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.Day("2025-01-05").Tasks[0].ID
	_ = s.ToggleTask("2025-01-05", id) // complete: +10
	_ = s.ToggleTask("2025-01-05", id) // un-complete: no change
	if got := s.Settings(); got.Exp != ExpTask {
		t.Fatalf("expected exp %d after un-complete, got %d", ExpTask, got.Exp)
	}
}

func TestSaveTaskEmptyTitleNoOp(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.SaveTask(TaskForm{Title: "   ", Range: RangeToday}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Day("2025-01-05").Tasks) != 0 {
		t.Fatalf("blank title must not create a task")
	}
}

func TestPeriodExpansion(t *testing.T) {
	s, _ := newTestService(t)
	form := TaskForm{
		Title:      "read",
		Range:      RangePeriod,
		MultiDates: []string{"2025-01-10", "2025-01-12"},
	}
	if err := s.SaveTask(form, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, date := range form.MultiDates {
		tasks := s.Day(date).Tasks
		if len(tasks) != 1 || tasks[0].Title != "read" {
			t.Fatalf("expected task on %s, got %+v", date, tasks)
		}
	}
	if len(s.Day("2025-01-11").Tasks) != 0 {
		t.Fatalf("task leaked onto an unselected date")
	}
}

func TestSeasonExpansion(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.SaveTask(TaskForm{Title: "daily", Range: RangeAll}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2025-01-05 through 2025-02-28 inclusive.
	const wantDays = 27 + 28
	seen := 0
	ids := make(map[int64]bool)
	for date, day := range s.Data() {
		for _, task := range day.Tasks {
			if task.Title != "daily" {
				continue
			}
			seen++
			if ids[task.ID] {
				t.Fatalf("duplicate task id %d across batch", task.ID)
			}
			ids[task.ID] = true
			if date < "2025-01-05" || date > "2025-02-28" {
				t.Fatalf("task expanded outside the season: %s", date)
			}
		}
	}
	if seen != wantDays {
		t.Fatalf("expected %d copies, got %d", wantDays, seen)
	}
	if len(s.Day("2025-03-01").Tasks) != 0 {
		t.Fatalf("expansion crossed the season boundary")
	}
}

func TestEditDoesNotInsertOrPropagate(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.SaveTask(TaskForm{Title: "orig", Range: RangeToday}, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.Day("2025-01-05").Tasks[0].ID

	form := TaskForm{
		Title:      "edited",
		Range:      RangePeriod,
		MultiDates: []string{"2025-01-05", "2025-01-06"},
	}
	if err := s.SaveTask(form, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Day("2025-01-05").Tasks
	if len(got) != 1 || got[0].Title != "edited" || got[0].ID != id {
		t.Fatalf("edit must rewrite in place: %+v", got)
	}
	if len(s.Day("2025-01-06").Tasks) != 0 {
		t.Fatalf("edit must not insert on dates lacking the task")
	}
}

func TestDeleteTaskOnlyThatDate(t *testing.T) {
	s, _ := newTestService(t)
	form := TaskForm{Title: "x", Range: RangePeriod, MultiDates: []string{"2025-01-05", "2025-01-06"}}
	if err := s.SaveTask(form, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := s.Day("2025-01-05").Tasks[0].ID
	if err := s.DeleteTask("2025-01-05", id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Day("2025-01-05").Tasks) != 0 {
		t.Fatalf("task not deleted")
	}
	if len(s.Day("2025-01-06").Tasks) != 1 {
		t.Fatalf("delete must not touch other dates")
	}
	if err := s.DeleteTask("2025-01-05", id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTagFloor(t *testing.T) {
	s, _ := newTestService(t)
	s.settings.Highlights = []journal.Highlight{{ID: 1, Label: "only"}}
	if err := s.RemoveHighlight(1); !errors.Is(err, ErrTagFloor) {
		t.Fatalf("expected ErrTagFloor, got %v", err)
	}
	if len(s.Settings().Highlights) != 1 {
		t.Fatalf("tag set must be unchanged")
	}
}

func TestDenormalizationFreeze(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.AddGame("2025-01-05", journal.ResultSuccess, "AI", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLabel := s.Settings().Highlights[0].Label

	if err := s.RenameHighlight(1, "B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	games := s.Day("2025-01-05").GameRecords
	if len(games) != 1 || games[0].HighlightLabel != wantLabel {
		t.Fatalf("denormalized label must not change: %+v", games)
	}
}

func TestGameFallbackOnMissingTag(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.AddGame("2025-01-05", journal.ResultExperience, "친구", 999); err != nil {
		t.Fatalf("missing tag must not fail the write: %v", err)
	}
	games := s.Day("2025-01-05").GameRecords
	if games[0].HighlightLabel != "기록 없음" || games[0].HighlightIcon != "Award" {
		t.Fatalf("expected fallback literals, got %+v", games[0])
	}
}

func TestPracticeRejectsNonNumeric(t *testing.T) {
	s, _ := newTestService(t)
	for _, raw := range []string{"fast", "", "NaN", "Inf"} {
		if err := s.AddPractice("2025-01-05", raw); err == nil {
			t.Fatalf("expected rejection of %q", raw)
		}
	}
	if len(s.Day("2025-01-05").PracticeRecords) != 0 {
		t.Fatalf("rejected input must not be stored")
	}
	if err := s.AddPractice("2025-01-05", "12.34"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStats(t *testing.T) {
	s, _ := newTestService(t)
	for _, v := range []string{"12.3", "9.87", "15.0"} {
		if err := s.AddPractice("2025-01-05", v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := s.AddReading("2025-01-06", "겨울 이야기", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three tasks all done on one date, a taskless date, and a partial date.
	_ = s.SaveTask(TaskForm{Title: "a", Range: RangeToday}, 0)
	_ = s.SaveTask(TaskForm{Title: "b", Range: RangeToday}, 0)
	_ = s.SaveTask(TaskForm{Title: "c", Range: RangeToday}, 0)
	for _, task := range s.Day("2025-01-05").Tasks {
		_ = s.ToggleTask("2025-01-05", task.ID)
	}
	_ = s.SelectDate("2025-01-07")
	_ = s.SaveTask(TaskForm{Title: "d", Range: RangeToday}, 0)
	_ = s.SaveTask(TaskForm{Title: "e", Range: RangeToday}, 0)
	_ = s.ToggleTask("2025-01-07", s.Day("2025-01-07").Tasks[0].ID)

	stats := s.Stats()
	if stats.BestTime == nil || *stats.BestTime != 9.87 {
		t.Fatalf("expected best time 9.87, got %v", stats.BestTime)
	}
	if stats.PerfectDays != 1 {
		t.Fatalf("expected 1 perfect day, got %d", stats.PerfectDays)
	}
	if len(stats.AllPractice) != 3 || len(stats.AllReading) != 1 {
		t.Fatalf("unexpected aggregate sizes: %d practice, %d reading",
			len(stats.AllPractice), len(stats.AllReading))
	}
	if stats.AllReading[0].Date != "2025-01-06" {
		t.Fatalf("reading record missing its source date: %+v", stats.AllReading[0])
	}
}

func TestDeleteRecordByID(t *testing.T) {
	s, _ := newTestService(t)
	_ = s.AddPractice("2025-01-05", "10.0")
	_ = s.AddPractice("2025-01-05", "11.0")
	id := s.Day("2025-01-05").PracticeRecords[0].ID

	if err := s.DeleteRecord("2025-01-05", journal.KindPractice, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	left := s.Day("2025-01-05").PracticeRecords
	if len(left) != 1 || left[0].ID == id {
		t.Fatalf("expected exactly the other record to remain: %+v", left)
	}
	if err := s.DeleteRecord("2025-01-05", journal.KindPractice, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMoodValidation(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.SetMood("2025-01-05", "grumpy"); err == nil {
		t.Fatalf("expected unknown mood to be rejected")
	}
	if err := s.SetMood("2025-01-05", "happy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetMood("2025-01-05", ""); err != nil {
		t.Fatalf("clearing the mood must be allowed: %v", err)
	}
}

func TestPersistFailureSwallowed(t *testing.T) {
	s, mp := newTestService(t)
	mp.failed = true
	if err := s.SaveTask(TaskForm{Title: "still works", Range: RangeToday}, 0); err != nil {
		t.Fatalf("persist failure must not surface: %v", err)
	}
	if len(s.Day("2025-01-05").Tasks) != 1 {
		t.Fatalf("in-memory state must survive a failed write")
	}
}

func TestViewRouter(t *testing.T) {
	s, _ := newTestService(t)
	if s.View() != journal.ViewCalendar {
		t.Fatalf("expected calendar as the initial view")
	}
	if err := s.SetView(journal.ViewDiary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.View() != journal.ViewDiary {
		t.Fatalf("navigation must be plain assignment")
	}
	if err := s.SetView(journal.View("settings")); err == nil {
		t.Fatalf("unknown view must be rejected")
	}
}

func TestMoveDateResetsNothingElse(t *testing.T) {
	s, _ := newTestService(t)
	next, err := s.MoveDate(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != "2025-01-06" || s.SelectedDate() != "2025-01-06" {
		t.Fatalf("expected 2025-01-06, got %s", next)
	}
	if _, err := s.MoveDate(-2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SelectedDate() != "2025-01-04" {
		t.Fatalf("expected 2025-01-04, got %s", s.SelectedDate())
	}
}
