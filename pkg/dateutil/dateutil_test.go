package dateutil

import (
	"testing"
	"time"
)

func TestDayKeyLocal(t *testing.T) {
	ts := time.Date(2025, 1, 5, 23, 59, 0, 0, time.Local)
	if got := DayKey(ts); got != "2025-01-05" {
		t.Fatalf("expected 2025-01-05, got %s", got)
	}
}

func TestTimeLabelZeroPadded(t *testing.T) {
	ts := time.Date(2025, 1, 5, 8, 7, 0, 0, time.Local)
	if got := TimeLabel(ts); got != "08:07" {
		t.Fatalf("expected 08:07, got %s", got)
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	day, err := ParseDayKey("2025-02-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := DayKey(day); got != "2025-02-28" {
		t.Fatalf("round trip mismatch: %s", got)
	}
	if _, err := ParseDayKey("02/28/2025"); err == nil {
		t.Fatalf("expected error for non-canonical date")
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	got, err := AddDays("2025-01-31", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-02-01" {
		t.Fatalf("expected 2025-02-01, got %s", got)
	}
}

func TestDaysThroughInclusive(t *testing.T) {
	start, _ := ParseDayKey("2025-01-05")
	end, _ := ParseDayKey("2025-01-07")
	keys := DaysThrough(start, end)
	want := []string{"2025-01-05", "2025-01-06", "2025-01-07"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestDaysThroughEmptyWhenReversed(t *testing.T) {
	start, _ := ParseDayKey("2025-03-01")
	end, _ := ParseDayKey("2025-02-28")
	if keys := DaysThrough(start, end); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestSeasonEndSameYear(t *testing.T) {
	from, _ := ParseDayKey("2025-01-05")
	end := SeasonEnd(from, time.February, 28)
	if got := DayKey(end); got != "2025-02-28" {
		t.Fatalf("expected 2025-02-28, got %s", got)
	}
}
