package app

import (
	"sort"

	"tableflip.dev/winterplan/pkg/journal"
)

// DatedReading annotates a reading record with its source date.
type DatedReading struct {
	Date string
	journal.ReadingRecord
}

// DatedPractice annotates a timed-practice record with its source date.
type DatedPractice struct {
	Date string
	journal.PracticeRecord
}

// Stats is derived from the whole day record store on demand; nothing is
// maintained incrementally.
type Stats struct {
	AllReading  []DatedReading
	AllPractice []DatedPractice
	BestTime    *float64
	PerfectDays int
}

// Stats aggregates every reading and practice record across all dates,
// the best (minimum) practice time, and the count of perfect days. Dates
// are visited in ascending order so the output is deterministic.
func (s *Service) Stats() Stats {
	dates := make([]string, 0, len(s.data))
	for date := range s.data {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var out Stats
	for _, date := range dates {
		day := s.data[date]
		for _, r := range day.ReadingRecords {
			out.AllReading = append(out.AllReading, DatedReading{Date: date, ReadingRecord: r})
		}
		for _, p := range day.PracticeRecords {
			out.AllPractice = append(out.AllPractice, DatedPractice{Date: date, PracticeRecord: p})
		}
		if day.Perfect() {
			out.PerfectDays++
		}
	}
	for i := range out.AllPractice {
		t := out.AllPractice[i].Time
		if out.BestTime == nil || t < *out.BestTime {
			best := t
			out.BestTime = &best
		}
	}
	return out
}
