package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/logging/events"
)

type tooltipTickMsg struct{}

// applyTooltipChange traces a visibility flip and keeps the poll loop alive
// while a show or hide timer is pending.
func (m *Model) applyTooltipChange(change headless.TooltipChange) tea.Cmd {
	if change.Changed {
		events.Tooltip.Visibility(m.ids.tooltip, change.Visible)
	}
	return m.ensurePolling()
}

func (m *Model) ensurePolling() tea.Cmd {
	if m.polling || !(m.tooltip.ShowPending() || m.tooltip.HidePending()) {
		return nil
	}
	m.polling = true
	return m.schedule(tooltipPollInterval, tooltipTickMsg{})
}

func (m *Model) handleTooltipTickMsg(tea.Msg) tea.Cmd {
	m.polling = false
	return m.applyTooltipChange(m.tooltip.Poll())
}
