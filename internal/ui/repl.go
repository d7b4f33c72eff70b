// Package ui implements the interactive calculator session as a
// Bubble Tea program: a single input line, a scrollback of evaluated
// expressions, and Up/Down recall through previous inputs.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"reckon/internal/activity"
	"reckon/internal/driver"
	"reckon/internal/history"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// entry is one evaluated line in the scrollback.
type entry struct {
	expr   string
	output string
	failed bool
}

// ReplModel is the Bubble Tea model for the interactive session.
type ReplModel struct {
	input   textinput.Model
	entries []entry
	recall  []string // previous inputs, oldest first
	pos     int      // recall cursor; len(recall) means "current line"
	draft   string   // in-progress line stashed during recall
	store   *history.Store
	tracker *activity.Tracker
	width   int
	elapsed time.Duration
	done    bool
}

// NewReplModel builds a session model. store may be nil when history
// is disabled.
func NewReplModel(prompt string, store *history.Store) *ReplModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "2 + 3 * 4"
	ti.Focus()

	m := &ReplModel{
		input:   ti,
		store:   store,
		tracker: activity.NewTracker(),
		width:   80,
	}
	m.tracker.Join("session", "user")

	if store != nil {
		if records, err := store.Load(); err == nil {
			for _, rec := range records {
				m.recall = append(m.recall, rec.Expr)
			}
		}
	}
	m.pos = len(m.recall)
	return m
}

// Elapsed reports the session duration. Valid after the program exits.
func (m *ReplModel) Elapsed() time.Duration { return m.elapsed }

func (m *ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m.quit()
		case tea.KeyUp:
			m.recallPrev()
			return m, nil
		case tea.KeyDown:
			m.recallNext()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ReplModel) View() string {
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(faintStyle.Render("> "))
		b.WriteString(truncate(e.expr, m.width-2))
		b.WriteString("\n")
		if e.failed {
			b.WriteString(errorStyle.Render(e.output))
		} else {
			b.WriteString(resultStyle.Render(e.output))
		}
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString(faintStyle.Render(fmt.Sprintf("session: %s", m.elapsed.Round(time.Second))))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter to evaluate, up/down for history, ctrl+d to quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *ReplModel) submit() (tea.Model, tea.Cmd) {
	expr := strings.TrimSpace(m.input.Value())
	if expr == "" {
		return m, nil
	}
	if expr == "exit" || expr == "quit" {
		return m.quit()
	}

	out, err := driver.Evaluate(expr)
	e := entry{expr: expr}
	if err != nil {
		e.output = err.Error()
		e.failed = true
	} else {
		e.output = out
	}
	m.entries = append(m.entries, e)

	if m.store != nil {
		rec := history.Record{Expr: expr, Result: out, At: time.Now()}
		if err != nil {
			rec.ErrMsg = err.Error()
		}
		// Best effort: a broken history file should not kill the session.
		_ = m.store.Append(rec)
	}

	m.recall = append(m.recall, expr)
	m.pos = len(m.recall)
	m.draft = ""
	m.input.Reset()
	return m, nil
}

func (m *ReplModel) quit() (tea.Model, tea.Cmd) {
	for _, ev := range m.tracker.Leave("session", "user") {
		if ev.Kind == activity.Deactivated {
			m.elapsed = ev.Elapsed
		}
	}
	m.done = true
	return m, tea.Quit
}

func (m *ReplModel) recallPrev() {
	if m.pos == 0 || len(m.recall) == 0 {
		return
	}
	if m.pos == len(m.recall) {
		m.draft = m.input.Value()
	}
	m.pos--
	m.setInput(m.recall[m.pos])
}

func (m *ReplModel) recallNext() {
	if m.pos >= len(m.recall) {
		return
	}
	m.pos++
	if m.pos == len(m.recall) {
		m.setInput(m.draft)
		return
	}
	m.setInput(m.recall[m.pos])
}

func (m *ReplModel) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
