package journal

// View names one of the application's screens. Exactly one view is active
// at a time; navigation is plain assignment with no stack.
type View string

const (
	ViewCalendar View = "calendar"
	ViewDay      View = "day"
	ViewRecord   View = "record"
	ViewDiary    View = "diary"
	ViewStats    View = "stats"
)

// Views returns all views in navigation order.
func Views() []View {
	return []View{ViewCalendar, ViewDay, ViewRecord, ViewDiary, ViewStats}
}

func (v View) Valid() bool {
	switch v {
	case ViewCalendar, ViewDay, ViewRecord, ViewDiary, ViewStats:
		return true
	}
	return false
}
