package app

import (
	"fmt"

	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/journal"
)

// SetDiaryText replaces the diary text for date.
func (s *Service) SetDiaryText(date, text string) {
	s.mergeDay(date, func(d *journal.DayRecord) {
		d.DiaryText = text
	})
}

// SetMood sets the diary mood for date. An empty key clears it.
func (s *Service) SetMood(date, mood string) error {
	if mood != "" && !icon.ValidMood(mood) {
		return fmt.Errorf("app: unknown mood %q", mood)
	}
	s.mergeDay(date, func(d *journal.DayRecord) {
		d.Mood = mood
	})
	return nil
}

// SetDrawing stores the latest canvas snapshot for date; nil clears it.
func (s *Service) SetDrawing(date string, snapshot *string) {
	s.mergeDay(date, func(d *journal.DayRecord) {
		d.DiaryDrawing = snapshot
	})
}
