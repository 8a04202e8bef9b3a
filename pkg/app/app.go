// Package app provides the planner's engines over the day record store:
// tasks, records, commendation tags, statistics, and view routing. UIs and
// CLI runners share this layer.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/journal"
	"tableflip.dev/winterplan/pkg/store"
)

var (
	ErrNotFound = errors.New("app: not found")
	ErrTagFloor = errors.New("app: at least one commendation tag must remain")
)

// Service owns the in-memory {settings, data} state. Every mutation
// replaces the affected values rather than editing them in place, then
// persists the whole envelope best-effort: a failed write is logged and
// swallowed, never corrupting in-memory state.
type Service struct {
	Persistence store.Persistence

	seasonEndMonth time.Month
	seasonEndDay   int

	log logrus.FieldLogger
	now func() time.Time

	settings journal.Settings
	data     journal.AllData
	selected string
	view     journal.View
}

// Load builds a Service from the persisted envelope, falling back to fresh
// state (with today's empty day record seeded) when nothing usable exists.
func Load(ctx context.Context, p store.Persistence, cfg store.Config) (*Service, error) {
	s := &Service{
		Persistence:    p,
		seasonEndMonth: time.February,
		seasonEndDay:   28,
		log:            logrus.StandardLogger(),
		now:            time.Now,
		selected:       dateutil.Today(),
		view:           journal.ViewCalendar,
	}
	if cfg != nil {
		s.seasonEndMonth, s.seasonEndDay = cfg.SeasonEnd()
	}

	var env *journal.Envelope
	if p != nil {
		var err error
		env, err = p.Load(ctx)
		if err != nil {
			return nil, err
		}
	}
	if env == nil {
		s.settings = journal.DefaultSettings()
		s.data = journal.AllData{s.selected: journal.NewDayRecord()}
		return s, nil
	}
	s.settings = env.Settings
	s.data = env.Data
	return s, nil
}

// Settings returns the current settings value.
func (s *Service) Settings() journal.Settings {
	return s.settings.Clone()
}

// Data returns the day record store. The caller must not mutate it.
func (s *Service) Data() journal.AllData {
	return s.data
}

// Day returns the record stored for date, or the structural default. The
// store is never materialized by a read.
func (s *Service) Day(date string) journal.DayRecord {
	if rec, ok := s.data[date]; ok {
		return rec.Clone()
	}
	return journal.NewDayRecord()
}

// SelectedDate returns the date all date-less operations act on.
func (s *Service) SelectedDate() string {
	return s.selected
}

// SelectDate changes the selected date. The diary drawing history is
// session-scoped; views owning a canvas reset it when this changes.
func (s *Service) SelectDate(date string) error {
	if _, err := dateutil.ParseDayKey(date); err != nil {
		return err
	}
	s.selected = date
	return nil
}

// MoveDate steps the selected date by n days and returns the new key.
func (s *Service) MoveDate(n int) (string, error) {
	next, err := dateutil.AddDays(s.selected, n)
	if err != nil {
		return "", err
	}
	s.selected = next
	return next, nil
}

// View returns the active view.
func (s *Service) View() journal.View {
	return s.view
}

// SetView activates a view. Navigation is plain assignment, no stack.
func (s *Service) SetView(v journal.View) error {
	if !v.Valid() {
		return ErrNotFound
	}
	s.view = v
	return nil
}

// mergeDay applies a field-level update to one day record and swaps in a
// new store value. This is the single mutation primitive the engines use.
func (s *Service) mergeDay(date string, mutate func(rec *journal.DayRecord)) {
	rec := s.Day(date)
	mutate(&rec)
	next := make(journal.AllData, len(s.data)+1)
	for k, v := range s.data {
		next[k] = v
	}
	next[date] = rec
	s.data = next
	s.persist()
}

// persist writes the envelope best-effort. Failures must not block or
// corrupt subsequent in-memory updates.
func (s *Service) persist() {
	if s.Persistence == nil {
		return
	}
	env := &journal.Envelope{Settings: s.settings, Data: s.data}
	if err := s.Persistence.Save(env); err != nil {
		s.log.WithError(err).Warn("app: persist failed")
	}
}
