// Package dateutil canonicalizes calendar dates and time-of-day labels.
// Day keys are always computed in local time, never UTC-shifted.
package dateutil

import (
	"fmt"
	"time"
)

const (
	// LayoutISO is the canonical day key layout, e.g. "2025-01-05".
	LayoutISO = "2006-01-02"
	// LayoutClock is the minute-resolution label attached to records.
	LayoutClock = "15:04"
)

// DayKey returns the canonical YYYY-MM-DD key for t in local time.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutISO)
}

// Today returns the day key for the current local date.
func Today() string {
	return DayKey(time.Now())
}

// TimeLabel formats a zero-padded HH:MM label for t in local time.
func TimeLabel(t time.Time) string {
	return t.Local().Format(LayoutClock)
}

// ParseDayKey parses a canonical day key in the local time zone.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil: invalid date %q: %w", key, err)
	}
	return t, nil
}

// AddDays steps a day key forward or backward by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, n)), nil
}

// DaysThrough returns every day key from start through end inclusive.
// When end is before start the result is empty.
func DaysThrough(start, end time.Time) []string {
	var keys []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, DayKey(d))
	}
	return keys
}

// SeasonEnd resolves the season boundary for the year containing from.
// The boundary is not leap-year aware on purpose; a configured 02-29 in a
// non-leap year normalizes to March 1 via time.Date.
func SeasonEnd(from time.Time, month time.Month, day int) time.Time {
	return time.Date(from.Year(), month, day, 0, 0, 0, 0, time.Local)
}
