// Package tui hosts the Bubble Tea program for the winterplan TUI: one
// model routing between the calendar, day, record, diary, and stats views.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/dateutil"
	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/journal"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

type action int

const (
	actionNone action = iota
	actionAddTask
	actionEditTask
	actionDiaryText
	actionReading
	actionPractice
	actionGame
)

// Model contains UI state. All state changes go through the Service; the
// model re-reads the day record after every mutation.
type Model struct {
	svc *app.Service
	ctx context.Context

	mode   mode
	action action

	cursor int // task or timeline index within the active view
	editID int64

	input textinput.Model

	status string

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	return Model{
		svc:    svc,
		ctx:    context.Background(),
		mode:   modeNormal,
		action: actionNone,
		input:  ti,
		status: normalHelp,
	}
}

const normalHelp = "NORMAL: 1-5 views, h/l day, t today, j/k move, x done, o add, i edit, dd delete, q quit"

// Run launches the Bubble Tea program.
func Run(svc *app.Service) error {
	_, err := tea.NewProgram(New(svc), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		switch m.mode {
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.submitInput()
				m.leaveInsert()
			case "esc":
				m.status = "cancelled"
				m.leaveInsert()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			if cmd := m.handleNormal(msg.String(), &cmds); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormal(key string, cmds *[]tea.Cmd) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit

	// view routing
	case "1":
		m.switchView(journal.ViewCalendar)
	case "2":
		m.switchView(journal.ViewDay)
	case "3":
		m.switchView(journal.ViewRecord)
	case "4":
		m.switchView(journal.ViewDiary)
	case "5":
		m.switchView(journal.ViewStats)

	// date navigation
	case "h", "left":
		m.moveDate(-1)
	case "l", "right":
		m.moveDate(1)
	case "t":
		_ = m.svc.SelectDate(dateutil.Today())
		m.cursor = 0

	// movement within the view
	case "j", "down":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "o":
		if m.svc.View() == journal.ViewDay {
			m.enterInsert(actionAddTask, "New task title", "", cmds)
		}
	case "i":
		switch m.svc.View() {
		case journal.ViewDay:
			if t, ok := m.currentTask(); ok {
				m.editID = t.ID
				m.enterInsert(actionEditTask, "Edit task title", t.Title, cmds)
			}
		case journal.ViewDiary:
			day := m.svc.Day(m.svc.SelectedDate())
			m.enterInsert(actionDiaryText, "Diary text", day.DiaryText, cmds)
		}
	case "x":
		if m.svc.View() == journal.ViewDay {
			if t, ok := m.currentTask(); ok {
				if err := m.svc.ToggleTask(m.svc.SelectedDate(), t.ID); err != nil {
					m.status = "ERR: " + err.Error()
				} else {
					m.status = "toggled"
				}
			}
		}
	case "d":
		m.handleDelete()

	// record entry
	case "b":
		if m.svc.View() == journal.ViewRecord {
			m.enterInsert(actionReading, "Book title | stars 1-5, e.g. 마법의 설계도 | 5", "", cmds)
		}
	case "p":
		if m.svc.View() == journal.ViewRecord {
			m.enterInsert(actionPractice, "Practice time in seconds, e.g. 12.34", "", cmds)
		}
	case "g":
		if m.svc.View() == journal.ViewRecord {
			m.enterInsert(actionGame, "success|experience opponent [tag id]", "", cmds)
		}

	// diary
	case "m":
		if m.svc.View() == journal.ViewDiary {
			m.cycleMood()
		}
	case "D":
		if m.svc.View() == journal.ViewDiary {
			m.svc.SetDrawing(m.svc.SelectedDate(), nil)
			m.status = "drawing cleared"
		}
	}
	return nil
}

func (m *Model) handleDelete() {
	view := m.svc.View()
	if view != journal.ViewDay && view != journal.ViewRecord {
		return
	}
	if !m.awaitingDD || time.Since(m.lastDTime) >= 600*time.Millisecond {
		m.awaitingDD = true
		m.lastDTime = time.Now()
		return
	}
	m.awaitingDD = false

	date := m.svc.SelectedDate()
	var err error
	switch view {
	case journal.ViewDay:
		t, ok := m.currentTask()
		if !ok {
			return
		}
		err = m.svc.DeleteTask(date, t.ID)
	case journal.ViewRecord:
		it, ok := m.currentTimelineItem()
		if !ok {
			return
		}
		err = m.svc.DeleteRecord(date, it.Kind, it.RecordID())
	}
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = "deleted"
	m.clampCursor()
}

func (m *Model) switchView(v journal.View) {
	if err := m.svc.SetView(v); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.cursor = 0
	m.status = normalHelp
}

func (m *Model) moveDate(n int) {
	if _, err := m.svc.MoveDate(n); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.cursor = 0
}

func (m *Model) enterInsert(a action, placeholder, value string, cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.action = a
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) leaveInsert() {
	m.mode = modeNormal
	m.action = actionNone
	m.editID = 0
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) submitInput() {
	raw := strings.TrimSpace(m.input.Value())
	date := m.svc.SelectedDate()

	switch m.action {
	case actionAddTask:
		form := app.TaskForm{Title: raw, Range: app.RangeToday}
		if err := m.svc.SaveTask(form, 0); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "added"
	case actionEditTask:
		form := app.TaskForm{Title: raw, Range: app.RangeToday}
		if err := m.svc.SaveTask(form, m.editID); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "edited"
	case actionDiaryText:
		m.svc.SetDiaryText(date, raw)
		m.status = "saved"
	case actionReading:
		title, stars := parseReading(raw)
		if title == "" {
			m.status = "ERR: empty title"
			return
		}
		if err := m.svc.AddReading(date, title, stars); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "reading recorded"
	case actionPractice:
		if err := m.svc.AddPractice(date, raw); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "practice recorded"
	case actionGame:
		result, opponent, tagID, err := parseGame(raw)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		if err := m.svc.AddGame(date, result, opponent, tagID); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.status = "game recorded"
	}
	m.clampCursor()
}

// parseReading splits "title | stars"; a missing or bad star count
// defaults to 5.
func parseReading(raw string) (string, int) {
	title := raw
	stars := 5
	if i := strings.LastIndex(raw, "|"); i >= 0 {
		title = strings.TrimSpace(raw[:i])
		if n, err := strconv.Atoi(strings.TrimSpace(raw[i+1:])); err == nil && n >= 1 && n <= 5 {
			stars = n
		}
	}
	return title, stars
}

// parseGame splits "result opponent [tag id]".
func parseGame(raw string) (journal.Result, string, int64, error) {
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return "", "", 0, fmt.Errorf("want: success|experience opponent [tag id]")
	}
	result := journal.Result(fields[0])
	if !result.Valid() {
		return "", "", 0, fmt.Errorf("unknown result %q", fields[0])
	}
	var tagID int64
	opponentEnd := len(fields)
	if len(fields) > 2 {
		if id, err := strconv.ParseInt(fields[len(fields)-1], 10, 64); err == nil {
			tagID = id
			opponentEnd--
		}
	}
	return result, strings.Join(fields[1:opponentEnd], " "), tagID, nil
}

func (m *Model) cycleMood() {
	date := m.svc.SelectedDate()
	day := m.svc.Day(date)
	moods := icon.Moods()
	next := moods[0]
	for i, mood := range moods {
		if mood == day.Mood {
			if i == len(moods)-1 {
				next = "" // wraps around to no mood
			} else {
				next = moods[i+1]
			}
			break
		}
	}
	if err := m.svc.SetMood(date, next); err != nil {
		m.status = "ERR: " + err.Error()
	}
}

func (m *Model) listLen() int {
	day := m.svc.Day(m.svc.SelectedDate())
	switch m.svc.View() {
	case journal.ViewDay:
		return len(day.Tasks)
	case journal.ViewRecord:
		return len(day.Timeline())
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.listLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) currentTask() (journal.Task, bool) {
	tasks := m.svc.Day(m.svc.SelectedDate()).Tasks
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return journal.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) currentTimelineItem() (journal.TimelineItem, bool) {
	items := m.svc.Day(m.svc.SelectedDate()).Timeline()
	if m.cursor < 0 || m.cursor >= len(items) {
		return journal.TimelineItem{}, false
	}
	return items[m.cursor], true
}
