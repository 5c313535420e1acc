package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if key.Matches(keyMsg, m.keys.Switch) {
		return m.switchRegion()
	}
	if m.focus == regionTabs {
		return m.handleTabsKey(keyMsg)
	}
	m.errMsg = ""
	switch m.activeKind() {
	case fixture.KindDialog:
		return m.handleDialogKey(keyMsg)
	case fixture.KindMenu:
		return m.handleMenuKey(keyMsg)
	case fixture.KindSelect:
		return m.handleSelectKey(keyMsg)
	case fixture.KindTextField:
		return m.handleTextFieldKey(keyMsg)
	case fixture.KindTooltip:
		return m.handleTooltipKey(keyMsg)
	}
	return nil
}

// switchRegion moves keyboard focus between the tab list and the active
// panel. A modal dialog with an engaged focus trap keeps focus in the panel.
func (m *Model) switchRegion() tea.Cmd {
	if m.focus == regionPanel {
		if m.activeKind() == fixture.KindDialog && m.dialog.FocusTrapEngaged() {
			m.setInfo("Focus is trapped by the modal dialog")
			return nil
		}
		return m.leavePanel()
	}
	if m.activeKind() == "" {
		return nil
	}
	return m.enterPanel()
}

func (m *Model) enterPanel() tea.Cmd {
	m.focus = regionPanel
	switch m.activeKind() {
	case fixture.KindTooltip:
		return m.applyTooltipChange(m.tooltip.FocusAnchor())
	case fixture.KindTextField:
		return m.input.Focus()
	}
	return nil
}

func (m *Model) leavePanel() tea.Cmd {
	return m.leavePanelFor(m.activeKind())
}

// leavePanelFor returns focus to the tab list, releasing the widget of kind.
func (m *Model) leavePanelFor(kind string) tea.Cmd {
	m.focus = regionTabs
	switch kind {
	case fixture.KindTooltip:
		return m.applyTooltipChange(m.tooltip.BlurAnchor())
	case fixture.KindTextField:
		m.input.Blur()
		return m.commitField()
	case fixture.KindMenu:
		m.menu.Close(m.notifyMenu)
	case fixture.KindSelect:
		m.sel.Close(m.notifySelect)
	}
	return nil
}

func (m *Model) handleTabsKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	k := widgetKey(msg)
	before := m.tabs.Selected()
	outcome, handled := m.tabs.OnKey(k, nil)
	events.UI.Key("tabs", k.String(), handled)
	if !handled {
		return nil
	}
	events.Tabs.Outcome(outcome.Focused, outcome.Selected)
	if k == headless.KeyEnter || k == headless.KeySpace {
		return m.enterPanel()
	}
	if m.tabs.Selected() != before {
		m.clearInfo()
		m.errMsg = ""
	}
	return nil
}

// escapeToTabs returns focus to the tab list when Escape had nothing to close.
func (m *Model) escapeToTabs() tea.Cmd {
	return m.leavePanel()
}
