// Package printers renders planner state for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Header prints the level badge and experience bar.
func (pp *PrettyPrint) Header(settings journal.Settings, perfectDays int) {
	lvl := color.New(color.Bold, color.FgHiWhite, color.BgBlue)
	faint := color.New(color.Faint)

	_, _ = lvl.Printf(" L%d ", settings.Level)
	fmt.Printf(" %s", expBar(settings.Exp))
	_, _ = faint.Printf("  %d/100 exp", settings.Exp)
	fmt.Printf("   %s %d\n", icon.Award.Symbol(), perfectDays)
}

func expBar(exp int) string {
	const width = 20
	if exp < 0 {
		exp = 0
	}
	if exp > 100 {
		exp = 100
	}
	filled := exp * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return color.New(color.FgBlue).Sprint(bar)
}

// Tasks prints one day's task list.
func (pp *PrettyPrint) Tasks(tasks []journal.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	star := color.New(color.FgHiYellow)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, task := range tasks {
		if pp.ShowID {
			_, _ = id.Printf("%-20d ", task.ID)
		}
		mark := "○"
		printer := t
		if task.Completed {
			mark = "●"
			printer = done
		}
		prefix := "  "
		if task.IsPriority {
			prefix = star.Sprint("✷ ")
		}
		_, _ = printer.Printf("%s%s %s", prefix, mark, task.Title)
		if task.Category != "" {
			_, _ = color.New(color.Faint).Printf("  [%s]", task.Category)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// Timeline prints a day's merged records, newest first.
func (pp *PrettyPrint) Timeline(items []journal.TimelineItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		switch it.Kind {
		case journal.KindReading:
			tbl.AddRow(it.Reading.Timestamp, "📖", it.Reading.Title, stars(it.Reading.Stars), rowID(pp.ShowID, it.Reading.ID))
		case journal.KindPractice:
			tbl.AddRow(it.Practice.Timestamp, "⏱", fmt.Sprintf("%.2fs", it.Practice.Time), "", rowID(pp.ShowID, it.Practice.ID))
		case journal.KindGame:
			result := "경험"
			if it.Game.Result == journal.ResultSuccess {
				result = "성공"
			}
			badge := fmt.Sprintf("%s %s", icon.Name(it.Game.HighlightIcon).Symbol(), it.Game.HighlightLabel)
			tbl.AddRow(it.Game.Timestamp, "⚔", fmt.Sprintf("%s vs %s", result, it.Game.Opponent), badge, rowID(pp.ShowID, it.Game.ID))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func rowID(show bool, id string) string {
	if !show {
		return ""
	}
	return id
}

func stars(n int) string {
	return strings.Repeat("★", n)
}

// Highlights prints the commendation tag set.
func (pp *PrettyPrint) Highlights(highlights []journal.Highlight) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, h := range highlights {
		tbl.AddRow(h.ID, h.Icon.Symbol(), h.Label)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the cross-day report.
func (pp *PrettyPrint) Stats(stats app.Stats) {
	head := color.New(color.Bold)

	_, _ = head.Println("Report")
	best := "-"
	if stats.BestTime != nil {
		best = fmt.Sprintf("%.2fs", *stats.BestTime)
	}
	fmt.Printf("  mission clear days: %d\n", stats.PerfectDays)
	fmt.Printf("  best practice time: %s\n\n", best)

	if len(stats.AllPractice) > 0 {
		_, _ = head.Println("Practice")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, p := range stats.AllPractice {
			tbl.AddRow(p.Date, p.Timestamp, fmt.Sprintf("%.2fs", p.Time))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	}

	if len(stats.AllReading) > 0 {
		_, _ = head.Println("Library")
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, r := range stats.AllReading {
			tbl.AddRow(r.Date, r.Timestamp, r.Title, stars(r.Stars))
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
		fmt.Println("")
	}
}

// Diary prints the mood row, drawing presence, and diary text for a date.
func (pp *PrettyPrint) Diary(date string, day journal.DayRecord) {
	pp.Title(date)

	if day.Mood != "" {
		fmt.Printf("%s\n", icon.MoodSymbol(day.Mood))
	}
	if day.DiaryDrawing != nil {
		f := color.New(color.Faint)
		_, _ = f.Println("[drawing attached]")
	}
	if day.DiaryText != "" {
		fmt.Println(day.DiaryText)
	}
	fmt.Println("")
}
