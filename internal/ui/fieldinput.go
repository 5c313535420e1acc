package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/logging/events"
)

// validateMsg fires once the debounce window after an edit has passed. Only
// the newest edit's message validates.
type validateMsg struct {
	seq int
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}
	var debounce tea.Cmd
	m.field.Change(m.input.Value(), func(change headless.TextFieldChange) {
		events.TextField.Change(m.ids.field, change.Value, change.Dirty)
		debounce = m.scheduleValidation(change)
	})
	return tea.Batch(cmd, debounce)
}

func (m *Model) scheduleValidation(change headless.TextFieldChange) tea.Cmd {
	m.validated++
	if change.Debounce <= 0 {
		m.validateField()
		return nil
	}
	return m.schedule(change.Debounce, validateMsg{seq: m.validated})
}

func (m *Model) handleValidateMsg(msg tea.Msg) tea.Cmd {
	v, ok := msg.(validateMsg)
	if !ok || v.seq != m.validated {
		return nil
	}
	m.validateField()
	return nil
}

func (m *Model) validateField() {
	errs := fieldErrors(m.field.Value(), m.fixture.TextField.Required, m.fixture.TextField.MaxLen)
	m.field.SetErrors(errs)
	events.TextField.Validate(m.ids.field, errs)
}

func fieldErrors(value string, required bool, maxLen int) []string {
	var errs []string
	if required && strings.TrimSpace(value) == "" {
		errs = append(errs, "required")
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		errs = append(errs, fmt.Sprintf("at most %d characters", maxLen))
	}
	return errs
}

func (m *Model) commitField() tea.Cmd {
	m.validated++
	m.validateField()
	m.field.Commit(func(c headless.TextFieldCommit) {
		events.TextField.Commit(m.ids.field, c.HasErrors, c.PreviouslyVisited)
	})
	return nil
}

func (m *Model) resetField() tea.Cmd {
	m.validated++
	m.field.Reset(func(r headless.TextFieldReset) {
		events.TextField.Reset(m.ids.field, r.ClearedErrors)
		m.input.SetValue(r.Value)
		m.input.CursorEnd()
	})
	return nil
}
