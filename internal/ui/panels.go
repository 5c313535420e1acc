package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/logging/events"
	"github.com/atomicstack/headless-ui/internal/ui/command"
)

func (m *Model) notifyDialog(open bool) {
	events.Dialog.Notify(m.ids.dialog, open, m.dialog.Phase().String())
}

func (m *Model) notifyMenu(open bool) {
	events.Menu.Open(m.ids.menu, open)
}

func (m *Model) notifySelect(open bool) {
	events.Select.Open(m.ids.listbox, open)
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Modal):
		m.dialog.SetModal(!m.dialog.Modal())
		return nil
	case key.Matches(msg, m.keys.EscapeClose):
		m.dialog.SetEscapeCloses(!m.dialog.EscapeCloses())
		return nil
	}
	switch widgetKey(msg) {
	case headless.KeyEnter, headless.KeySpace:
		m.dialog.Toggle(m.notifyDialog)
	case headless.KeyEscape:
		if !m.dialog.IsOpen() {
			return m.escapeToTabs()
		}
		closed := m.dialog.HandleEscape(m.notifyDialog)
		events.Dialog.Escape(m.ids.dialog, closed)
		if !closed {
			m.setInfo("Escape does not close this dialog")
		}
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	k := widgetKey(msg)
	if !m.menu.IsOpen() {
		switch k {
		case headless.KeyEnter, headless.KeySpace, headless.KeyArrowDown, headless.KeyArrowUp:
			m.menu.Open(m.notifyMenu)
			if k == headless.KeyArrowUp {
				m.menu.OnKey(headless.KeyEnd)
			}
			m.syncMenuView()
		case headless.KeyEscape:
			return m.escapeToTabs()
		}
		return nil
	}
	switch k {
	case headless.KeyEscape:
		m.menu.Close(m.notifyMenu)
		return nil
	case headless.KeyEnter, headless.KeySpace:
		index := m.menu.Highlighted()
		m.menu.Close(m.notifyMenu)
		return m.activateMenuItem(index)
	}
	if index, handled := m.menu.OnKey(k); handled {
		events.Menu.Highlight(m.ids.menu, index)
		m.syncMenuView()
		return nil
	}
	if runes := typedRunes(msg); len(runes) > 0 {
		matcher := m.menuMatcher()
		for _, r := range runes {
			m.menu.OnTypeahead(r, matcher)
		}
		events.Menu.Highlight(m.ids.menu, m.menu.Highlighted())
		m.syncMenuView()
	}
	return nil
}

func (m *Model) syncMenuView() {
	m.menuView.Ensure(m.menu.Highlighted(), m.menu.ItemCount(), m.listRows())
}

// activateMenuItem runs the item's action through the command bus.
func (m *Model) activateMenuItem(index int) tea.Cmd {
	if index < 0 || index >= len(m.fixture.Menu.Items) {
		return nil
	}
	item := m.fixture.Menu.Items[index]
	events.Menu.Activate(m.ids.menu, index, item.Label)
	req := command.Request{
		ID:      fmt.Sprintf("%s:%d", m.ids.menu, index),
		Label:   item.Label,
		Action:  item.Action,
		Handler: actionHandler(item),
	}
	return m.bus.Execute(req)
}

func (m *Model) handleSelectKey(msg tea.KeyMsg) tea.Cmd {
	k := widgetKey(msg)
	if !m.sel.IsOpen() {
		switch k {
		case headless.KeyEnter, headless.KeySpace, headless.KeyArrowDown, headless.KeyArrowUp:
			m.sel.Open(m.notifySelect)
			m.syncSelectView()
		case headless.KeyEscape:
			return m.escapeToTabs()
		}
		return nil
	}
	if k == headless.KeyEscape {
		m.sel.Close(m.notifySelect)
		return nil
	}
	if _, handled := m.sel.OnKey(k, m.commitSelection); handled {
		if k == headless.KeyEnter || k == headless.KeySpace {
			m.sel.Close(m.notifySelect)
		}
		m.syncSelectView()
		return nil
	}
	if runes := typedRunes(msg); len(runes) > 0 {
		matcher := m.selectMatcher()
		for _, r := range runes {
			m.sel.OnTypeahead(r, matcher, m.commitSelection)
		}
		events.Select.Typeahead(m.ids.listbox, m.sel.TypeaheadQuery(), m.sel.Highlighted())
		m.syncSelectView()
	}
	return nil
}

func (m *Model) commitSelection(index int) {
	label := ""
	if index >= 0 && index < len(m.fixture.Select.Options) {
		label = m.fixture.Select.Options[index].Label
	}
	events.Select.Commit(m.ids.listbox, index, label)
	m.setInfo(fmt.Sprintf("Selected %s", label))
}

func (m *Model) syncSelectView() {
	m.selView.Ensure(m.sel.Highlighted(), m.sel.OptionCount(), m.listRows())
}

func (m *Model) handleTooltipKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Hover):
		if m.tooltip.AnchorHovered() {
			return m.applyTooltipChange(m.tooltip.PointerLeaveAnchor())
		}
		return m.applyTooltipChange(m.tooltip.PointerEnterAnchor())
	case key.Matches(msg, m.keys.HoverSurf):
		if m.tooltip.SurfaceHovered() {
			return m.applyTooltipChange(m.tooltip.PointerLeaveTooltip())
		}
		if !m.tooltip.Visible() {
			m.setInfo("The tooltip is not showing")
			return nil
		}
		return m.applyTooltipChange(m.tooltip.PointerEnterTooltip())
	case key.Matches(msg, m.keys.Focus):
		if m.tooltip.AnchorFocused() {
			return m.applyTooltipChange(m.tooltip.BlurAnchor())
		}
		return m.applyTooltipChange(m.tooltip.FocusAnchor())
	}
	if widgetKey(msg) == headless.KeyEscape {
		if !m.tooltip.Visible() {
			return m.escapeToTabs()
		}
		return m.applyTooltipChange(m.tooltip.Dismiss())
	}
	return nil
}

func (m *Model) handleTextFieldKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Reset):
		return m.resetField()
	case msg.Type == tea.KeyEnter:
		return m.commitField()
	case msg.Type == tea.KeyEsc:
		return m.escapeToTabs()
	}
	return m.updateInput(msg)
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.clearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	events.Action.Success(result.Info)
	cmd := m.applyAction(result.Action)
	if m.opts.Verbose && result.Info != "" {
		m.setInfo(result.Info)
	}
	return cmd
}

// applyAction performs the cross-widget effect of a menu action.
func (m *Model) applyAction(action string) tea.Cmd {
	switch action {
	case fixture.ActionOpenDialog:
		if !m.showTab(fixture.KindDialog) {
			return nil
		}
		m.focus = regionPanel
		m.dialog.Open(m.notifyDialog)
	case fixture.ActionResetField:
		return m.resetField()
	case fixture.ActionDismiss:
		return m.applyTooltipChange(m.tooltip.Dismiss())
	}
	return nil
}

// showTab selects the tab showing kind. It reports false when the fixture has
// no such tab.
func (m *Model) showTab(kind string) bool {
	for i, k := range m.fixture.Tabs {
		if k == kind {
			m.tabs.Select(i, nil)
			return true
		}
	}
	m.errMsg = fmt.Sprintf("no %s tab in this fixture", kind)
	return false
}
