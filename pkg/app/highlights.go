package app

import (
	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/journal"
)

// AddHighlight appends a new commendation tag with a placeholder label.
func (s *Service) AddHighlight() journal.Highlight {
	h := journal.Highlight{
		ID:    journal.NewHighlightID(),
		Label: "새 칭찬",
		Icon:  icon.Sparkles,
	}
	next := s.settings.Clone()
	next.Highlights = append(next.Highlights, h)
	s.settings = next
	s.persist()
	return h
}

// RenameHighlight replaces the label of the tag in place. Game records
// that already denormalized the old label are untouched.
func (s *Service) RenameHighlight(id int64, label string) error {
	next := s.settings.Clone()
	found := false
	for i := range next.Highlights {
		if next.Highlights[i].ID == id {
			next.Highlights[i].Label = label
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	s.settings = next
	s.persist()
	return nil
}

// RemoveHighlight deletes a tag, refusing when it is the last one left.
// Confirmation of the destructive action is the caller's contract.
func (s *Service) RemoveHighlight(id int64) error {
	if len(s.settings.Highlights) <= 1 {
		return ErrTagFloor
	}
	next := s.settings.Clone()
	kept := next.Highlights[:0]
	found := false
	for _, h := range next.Highlights {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return ErrNotFound
	}
	next.Highlights = kept
	s.settings = next
	s.persist()
	return nil
}
