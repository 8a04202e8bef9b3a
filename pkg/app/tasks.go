package app

import (
	"strings"

	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/journal"
)

// Range selects which dates a task form applies to.
type Range string

const (
	// RangeToday targets only the selected date.
	RangeToday Range = "today"
	// RangePeriod targets the user-curated MultiDates set verbatim.
	RangePeriod Range = "period"
	// RangeAll targets every date from the selected date through the
	// configured season boundary, inclusive.
	RangeAll Range = "all"
)

func (r Range) Valid() bool {
	return r == RangeToday || r == RangePeriod || r == RangeAll
}

// TaskForm is the draft a task is created or edited from.
type TaskForm struct {
	Title      string
	Category   string
	IsPriority bool
	Range      Range
	MultiDates []string
}

// SaveTask creates a task on every target date, or, when editingID is
// non-zero, rewrites the task with that id on each target date that has
// one. Editing resets completion, matching how the planner has always
// behaved. A title that trims to empty is a no-op.
func (s *Service) SaveTask(form TaskForm, editingID int64) error {
	if strings.TrimSpace(form.Title) == "" {
		return nil
	}

	dates, err := s.targetDates(form)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		return nil
	}

	next := make(journal.AllData, len(s.data)+len(dates))
	for k, v := range s.data {
		next[k] = v
	}

	used := make(map[int64]bool)
	for _, date := range dates {
		rec, ok := next[date]
		if ok {
			rec = rec.Clone()
		} else {
			rec = journal.NewDayRecord()
		}

		if editingID != 0 {
			for i := range rec.Tasks {
				if rec.Tasks[i].ID == editingID {
					rec.Tasks[i] = journal.Task{
						ID:         editingID,
						Title:      form.Title,
						Category:   form.Category,
						IsPriority: form.IsPriority,
					}
				}
			}
		} else {
			rec.Tasks = append(rec.Tasks, journal.Task{
				ID:         journal.NewTaskID(used),
				Title:      form.Title,
				Category:   form.Category,
				IsPriority: form.IsPriority,
			})
		}
		next[date] = rec
	}

	s.data = next
	s.persist()
	return nil
}

func (s *Service) targetDates(form TaskForm) ([]string, error) {
	switch form.Range {
	case RangePeriod:
		return form.MultiDates, nil
	case RangeAll:
		start, err := dateutil.ParseDayKey(s.selected)
		if err != nil {
			return nil, err
		}
		end := dateutil.SeasonEnd(start, s.seasonEndMonth, s.seasonEndDay)
		return dateutil.DaysThrough(start, end), nil
	default:
		return []string{s.selected}, nil
	}
}

// ToggleTask flips completion for the task on date. Completing a task
// grants experience; un-completing never takes it back.
func (s *Service) ToggleTask(date string, taskID int64) error {
	if !s.hasTask(date, taskID) {
		return ErrNotFound
	}
	completed := false
	s.mergeDay(date, func(rec *journal.DayRecord) {
		for i := range rec.Tasks {
			if rec.Tasks[i].ID == taskID {
				rec.Tasks[i].Completed = !rec.Tasks[i].Completed
				completed = rec.Tasks[i].Completed
			}
		}
	})
	if completed {
		s.grantExp(ExpTask)
		s.persist()
	}
	return nil
}

// DeleteTask removes the task from that date only. Confirmation of the
// destructive action is the caller's contract.
func (s *Service) DeleteTask(date string, taskID int64) error {
	if !s.hasTask(date, taskID) {
		return ErrNotFound
	}
	s.mergeDay(date, func(rec *journal.DayRecord) {
		kept := rec.Tasks[:0]
		for _, t := range rec.Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		rec.Tasks = kept
	})
	return nil
}

func (s *Service) hasTask(date string, taskID int64) bool {
	for _, t := range s.data[date].Tasks {
		if t.ID == taskID {
			return true
		}
	}
	return false
}
