package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeAndEnter(m *ReplModel, expr string) *ReplModel {
	m.input.SetValue(expr)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(*ReplModel)
}

func TestSubmitEvaluatesExpression(t *testing.T) {
	m := NewReplModel("> ", nil)
	m = typeAndEnter(m, "2 + 3 * 4")

	if len(m.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m.entries))
	}
	if m.entries[0].output != "14" || m.entries[0].failed {
		t.Errorf("entry = %+v, want output 14", m.entries[0])
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}
}

func TestSubmitRecordsErrors(t *testing.T) {
	m := NewReplModel("> ", nil)
	m = typeAndEnter(m, "1 / 0")

	if len(m.entries) != 1 || !m.entries[0].failed {
		t.Fatalf("expected failed entry, got %+v", m.entries)
	}
	if !strings.Contains(m.entries[0].output, "division by zero") {
		t.Errorf("output = %q, want division by zero", m.entries[0].output)
	}
}

func TestRecallWalksPreviousInputs(t *testing.T) {
	m := NewReplModel("> ", nil)
	m = typeAndEnter(m, "1 + 1")
	m = typeAndEnter(m, "2 + 2")

	m.input.SetValue("3 +")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(*ReplModel)
	if got := m.input.Value(); got != "2 + 2" {
		t.Errorf("after up: %q, want %q", got, "2 + 2")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(*ReplModel)
	if got := m.input.Value(); got != "1 + 1" {
		t.Errorf("after up up: %q, want %q", got, "1 + 1")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(*ReplModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(*ReplModel)
	if got := m.input.Value(); got != "3 +" {
		t.Errorf("draft not restored: %q, want %q", got, "3 +")
	}
}

func TestQuitStampsSessionDuration(t *testing.T) {
	m := NewReplModel("> ", nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = next.(*ReplModel)

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.done {
		t.Error("model not marked done")
	}
	if !strings.Contains(m.View(), "session:") {
		t.Errorf("view missing session summary: %q", m.View())
	}
}
