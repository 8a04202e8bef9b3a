package icon

// Mood keys for the diary, mapped to their display glyphs.
const (
	MoodHappy   = "happy"
	MoodGood    = "good"
	MoodSoso    = "soso"
	MoodSad     = "sad"
	MoodExcited = "excited"
)

var moods = map[string]string{
	MoodHappy:   "😄",
	MoodGood:    "😊",
	MoodSoso:    "😐",
	MoodSad:     "😭",
	MoodExcited: "🤩",
}

// Moods returns the mood keys in display order.
func Moods() []string {
	return []string{MoodHappy, MoodGood, MoodSoso, MoodSad, MoodExcited}
}

func ValidMood(key string) bool {
	_, ok := moods[key]
	return ok
}

// MoodSymbol returns the glyph for a mood key, or the empty string when the
// key is unknown or unset.
func MoodSymbol(key string) string {
	return moods[key]
}
