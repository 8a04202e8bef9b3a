package icon

// Name identifies one of the fixed set of badge icons that can be attached
// to a commendation. Unknown names render as Award.
type Name string

const (
	Target      Name = "Target"
	ShieldCheck Name = "ShieldCheck"
	Zap         Name = "Zap"
	Lightbulb   Name = "Lightbulb"
	Award       Name = "Award"
	Heart       Name = "Heart"
	Sparkles    Name = "Sparkles"
	Flame       Name = "Flame"
)

var symbols = map[Name]string{
	Target:      "◎",
	ShieldCheck: "🛡",
	Zap:         "⚡",
	Lightbulb:   "💡",
	Award:       "🏅",
	Heart:       "♥",
	Sparkles:    "✨",
	Flame:       "🔥",
}

// All returns the icon names in display order.
func All() []Name {
	return []Name{Target, ShieldCheck, Zap, Lightbulb, Award, Heart, Sparkles, Flame}
}

func (n Name) Valid() bool {
	_, ok := symbols[n]
	return ok
}

// Symbol returns the terminal glyph for the icon, falling back to the
// Award badge for unknown names.
func (n Name) Symbol() string {
	if s, ok := symbols[n]; ok {
		return s
	}
	return symbols[Award]
}

func (n Name) String() string {
	return string(n)
}
