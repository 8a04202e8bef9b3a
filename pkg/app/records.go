package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/journal"
)

// Fallbacks used when a game record references a commendation tag that no
// longer exists. The write still succeeds.
const (
	fallbackHighlightLabel = "기록 없음"
	fallbackHighlightIcon  = icon.Award
)

// AddReading appends a reading record to date and grants experience. The
// interaction boundary keeps the submit disabled for empty titles or zero
// stars; the engine appends whatever it is given.
func (s *Service) AddReading(date, title string, stars int) error {
	rec := journal.ReadingRecord{
		ID:        journal.NewRecordID(),
		Title:     title,
		Stars:     stars,
		Timestamp: dateutil.TimeLabel(s.now()),
	}
	s.mergeDay(date, func(d *journal.DayRecord) {
		d.ReadingRecords = append(d.ReadingRecords, rec)
	})
	s.grantExp(ExpReading)
	s.persist()
	return nil
}

// AddPractice parses raw as seconds and appends a timed-practice record.
// Non-numeric input is rejected here rather than stored.
func (s *Service) AddPractice(date, raw string) error {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return fmt.Errorf("app: invalid practice time %q", raw)
	}
	rec := journal.PracticeRecord{
		ID:        journal.NewRecordID(),
		Time:      seconds,
		Timestamp: dateutil.TimeLabel(s.now()),
	}
	s.mergeDay(date, func(d *journal.DayRecord) {
		d.PracticeRecords = append(d.PracticeRecords, rec)
	})
	s.grantExp(ExpPractice)
	s.persist()
	return nil
}

// AddGame appends a game record, denormalizing the commendation tag's
// label and icon at write time. A missing tag id never fails the write; it
// falls back to placeholder literals.
func (s *Service) AddGame(date string, result journal.Result, opponent string, highlightID int64) error {
	if !result.Valid() {
		return fmt.Errorf("app: invalid game result %q", result)
	}
	rec := journal.GameRecord{
		ID:             journal.NewRecordID(),
		Result:         result,
		Opponent:       opponent,
		HighlightID:    highlightID,
		HighlightLabel: fallbackHighlightLabel,
		HighlightIcon:  fallbackHighlightIcon.String(),
		Timestamp:      dateutil.TimeLabel(s.now()),
	}
	if h, ok := s.settings.Highlight(highlightID); ok {
		rec.HighlightLabel = h.Label
		rec.HighlightIcon = h.Icon.String()
	}
	s.mergeDay(date, func(d *journal.DayRecord) {
		d.GameRecords = append(d.GameRecords, rec)
	})
	s.grantExp(ExpGame)
	s.persist()
	return nil
}

// DeleteRecord removes the record with the given id from the sequence for
// its kind. Confirmation is the caller's contract.
func (s *Service) DeleteRecord(date string, kind journal.Kind, id string) error {
	found := false
	for _, it := range s.Day(date).Timeline() {
		if it.Kind == kind && it.RecordID() == id {
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	s.mergeDay(date, func(d *journal.DayRecord) {
		switch kind {
		case journal.KindReading:
			kept := d.ReadingRecords[:0]
			for _, r := range d.ReadingRecords {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			d.ReadingRecords = kept
		case journal.KindPractice:
			kept := d.PracticeRecords[:0]
			for _, r := range d.PracticeRecords {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			d.PracticeRecords = kept
		case journal.KindGame:
			kept := d.GameRecords[:0]
			for _, r := range d.GameRecords {
				if r.ID != id {
					kept = append(kept, r)
				}
			}
			d.GameRecords = kept
		}
	})
	return nil
}

// Timeline returns the date's records merged and sorted newest first.
func (s *Service) Timeline(date string) []journal.TimelineItem {
	return s.Day(date).Timeline()
}
