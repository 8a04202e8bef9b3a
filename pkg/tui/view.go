package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/journal"
	"tableflip.dev/winterplan/pkg/printers"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("243"))
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62"))
	headerStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("243"))
	priorityStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	stickerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	barStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewTabs())
	b.WriteString("\n")
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.svc.View() {
	case journal.ViewCalendar:
		b.WriteString(m.viewCalendar())
	case journal.ViewDay:
		b.WriteString(m.viewDay())
	case journal.ViewRecord:
		b.WriteString(m.viewRecord())
	case journal.ViewDiary:
		b.WriteString(m.viewDiary())
	case journal.ViewStats:
		b.WriteString(m.viewStats())
	}

	b.WriteString("\n")
	if m.mode == modeInsert {
		b.WriteString("> " + m.input.View())
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, 5)
	for _, v := range journal.Views() {
		if v == m.svc.View() {
			parts = append(parts, tabActiveStyle.Render(string(v)))
		} else {
			parts = append(parts, tabStyle.Render(string(v)))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewHeader() string {
	settings := m.svc.Settings()
	stats := m.svc.Stats()
	bar := expBar(settings.Exp)
	return fmt.Sprintf("%s  %s %s  %s",
		headerStyle.Render(fmt.Sprintf("L%d", settings.Level)),
		barStyle.Render(bar),
		faintStyle.Render(fmt.Sprintf("%d/100", settings.Exp)),
		fmt.Sprintf("%s %d", icon.Award.Symbol(), stats.PerfectDays))
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
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m Model) viewCalendar() string {
	then, err := dateutil.ParseDayKey(m.svc.SelectedDate())
	if err != nil {
		then = time.Now()
	}
	data := m.svc.Data()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %d", then.Month(), then.Year())))
	b.WriteString("\n")

	first := time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.Local)
	d := printers.StartDay(first)
	for i := time.Sunday; i < d; i++ {
		b.WriteString("   ")
	}

	days := printers.DaysIn(first)
	for i := 1; i <= days; i++ {
		key := dateutil.DayKey(time.Date(then.Year(), then.Month(), i, 12, 0, 0, 0, time.Local))
		day := data[key]
		cell := fmt.Sprintf("%2d ", i)
		switch {
		case key == m.svc.SelectedDate():
			cell = selectedStyle.Render(cell)
		case day.Perfect():
			cell = stickerStyle.Render(cell)
		case len(day.Tasks) == 0:
			cell = faintStyle.Render(cell)
		}
		b.WriteString(cell)

		d++
		if d > time.Saturday {
			d = time.Sunday
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewDay() string {
	date := m.svc.SelectedDate()
	day := m.svc.Day(date)

	var b strings.Builder
	b.WriteString(headerStyle.Render(date))
	b.WriteString("\n")
	if len(day.Tasks) == 0 {
		b.WriteString(faintStyle.Render(" none"))
		b.WriteString("\n")
		return b.String()
	}
	for i, t := range day.Tasks {
		cursor := "  "
		if m.mode == modeNormal && i == m.cursor {
			cursor = selectedStyle.Render("> ")
		}
		mark := "○"
		line := t.Title
		if t.Category != "" {
			line += faintStyle.Render("  ["+t.Category+"]")
		}
		if t.Completed {
			mark = "●"
			line = doneStyle.Render(t.Title)
		}
		prefix := "  "
		if t.IsPriority {
			prefix = priorityStyle.Render("✷ ")
		}
		b.WriteString(fmt.Sprintf("%s%s%s %s\n", cursor, prefix, mark, line))
	}
	return b.String()
}

func (m Model) viewRecord() string {
	date := m.svc.SelectedDate()
	items := m.svc.Day(date).Timeline()

	var b strings.Builder
	b.WriteString(headerStyle.Render(date))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(faintStyle.Render(" none"))
		b.WriteString("\n")
	}
	for i, it := range items {
		cursor := "  "
		if m.mode == modeNormal && i == m.cursor {
			cursor = selectedStyle.Render("> ")
		}
		b.WriteString(cursor + renderTimelineItem(it) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("b reading, p practice, g game"))
	b.WriteString("\n")
	return b.String()
}

func renderTimelineItem(it journal.TimelineItem) string {
	switch it.Kind {
	case journal.KindReading:
		return fmt.Sprintf("%s 📖 %s %s", it.Reading.Timestamp, it.Reading.Title, strings.Repeat("★", it.Reading.Stars))
	case journal.KindPractice:
		return fmt.Sprintf("%s ⏱ %.2fs", it.Practice.Timestamp, it.Practice.Time)
	case journal.KindGame:
		result := "경험"
		if it.Game.Result == journal.ResultSuccess {
			result = "성공"
		}
		badge := fmt.Sprintf("%s %s", icon.Name(it.Game.HighlightIcon).Symbol(), it.Game.HighlightLabel)
		return fmt.Sprintf("%s ⚔ %s vs %s  %s", it.Game.Timestamp, result, it.Game.Opponent, badge)
	}
	return ""
}

func (m Model) viewDiary() string {
	date := m.svc.SelectedDate()
	day := m.svc.Day(date)

	var b strings.Builder
	b.WriteString(headerStyle.Render(date))
	b.WriteString("\n")
	if day.Mood != "" {
		b.WriteString(icon.MoodSymbol(day.Mood))
		b.WriteString("\n")
	}
	if day.DiaryDrawing != nil {
		b.WriteString(faintStyle.Render("[drawing attached]"))
		b.WriteString("\n")
	}
	if day.DiaryText != "" {
		b.WriteString(day.DiaryText)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("i edit text, m cycle mood, D clear drawing"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewStats() string {
	stats := m.svc.Stats()

	var b strings.Builder
	best := "-"
	if stats.BestTime != nil {
		best = fmt.Sprintf("%.2fs", *stats.BestTime)
	}
	b.WriteString(fmt.Sprintf("mission clear days: %d\n", stats.PerfectDays))
	b.WriteString(fmt.Sprintf("best practice time: %s\n\n", best))

	if len(stats.AllPractice) > 0 {
		b.WriteString(headerStyle.Render("Practice"))
		b.WriteString("\n")
		for _, p := range stats.AllPractice {
			b.WriteString(fmt.Sprintf("  %s %s %.2fs\n", p.Date, p.Timestamp, p.Time))
		}
		b.WriteString("\n")
	}
	if len(stats.AllReading) > 0 {
		b.WriteString(headerStyle.Render("Library"))
		b.WriteString("\n")
		for _, r := range stats.AllReading {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n", r.Date, r.Timestamp, r.Title, strings.Repeat("★", r.Stars)))
		}
	}
	return b.String()
}
