package journal

import (
	"encoding/json"

	"github.com/spf13/cast"

	"tableflip.dev/winterplan/pkg/icon"
)

// Highlight is a user-editable commendation tag attached to game records.
// Game records copy the label and icon at write time; there is no live
// foreign key back to the tag.
type Highlight struct {
	ID    int64     `json:"id"`
	Label string    `json:"label"`
	Icon  icon.Name `json:"icon"`
}

// Settings is the process-wide configuration persisted alongside the day
// records: the commendation tag set and the level/experience counter.
type Settings struct {
	Highlights []Highlight `json:"badukHighlights"`
	Level      int         `json:"level"`
	Exp        int         `json:"exp"`
}

// DefaultHighlights returns the built-in commendation set seeded into a
// fresh journal.
func DefaultHighlights() []Highlight {
	return []Highlight{
		{ID: 1, Label: "엄청 집중했어요!", Icon: icon.Target},
		{ID: 2, Label: "예의를 지켰어요", Icon: icon.ShieldCheck},
		{ID: 3, Label: "포기하지 않았어요", Icon: icon.Zap},
		{ID: 4, Label: "멋진 수를 뒀어요", Icon: icon.Lightbulb},
	}
}

// DefaultSettings returns fresh settings at level 1 with zero experience.
func DefaultSettings() Settings {
	return Settings{Highlights: DefaultHighlights(), Level: 1, Exp: 0}
}

// Highlight looks up a commendation tag by id.
func (s Settings) Highlight(id int64) (Highlight, bool) {
	for _, h := range s.Highlights {
		if h.ID == id {
			return h, true
		}
	}
	return Highlight{}, false
}

// Clone returns a copy whose highlight slice does not alias the original.
func (s Settings) Clone() Settings {
	out := s
	out.Highlights = append([]Highlight(nil), s.Highlights...)
	return out
}

// UnmarshalJSON coerces level and exp from whatever scalar shape an older
// or corrupted envelope stored, defaulting to level 1 and exp 0.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw struct {
		Highlights []Highlight `json:"badukHighlights"`
		Level      interface{} `json:"level"`
		Exp        interface{} `json:"exp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Highlights = raw.Highlights
	s.Level = coerceInt(raw.Level, 1)
	s.Exp = coerceInt(raw.Exp, 0)
	return nil
}

func coerceInt(v interface{}, fallback int) int {
	n, err := cast.ToIntE(v)
	if err != nil || n == 0 {
		return fallback
	}
	return n
}
