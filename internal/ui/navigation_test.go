package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/headless"
)

func fixtureItem(action string) fixture.MenuItem {
	return fixture.MenuItem{Label: "item", Action: action}
}

// openTab moves tab focus to index and activates it, entering the panel.
func openTab(h *Harness, index int) {
	for h.Model().Tabs().Focused() != index {
		h.Press(tea.KeyRight)
	}
	h.Press(tea.KeyEnter)
}

func TestManualActivationMovesFocusOnly(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)

	h.Press(tea.KeyRight)
	if m.Tabs().Focused() != 1 || m.Tabs().Selected() != 0 {
		t.Fatalf("expected focus 1 selection 0, got %d/%d", m.Tabs().Focused(), m.Tabs().Selected())
	}
	h.Press(tea.KeyEnter)
	if m.Tabs().Selected() != 1 {
		t.Fatalf("expected enter to select focused tab, got %d", m.Tabs().Selected())
	}
	if !m.PanelFocused() {
		t.Fatalf("expected enter to move focus into the panel")
	}
}

func TestAutomaticActivationSelectsOnArrow(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.Activation = headless.ActivationAutomatic })
	h := NewHarness(m)

	h.Press(tea.KeyLeft)
	if m.Tabs().Selected() != 4 || m.Tabs().Focused() != 4 {
		t.Fatalf("expected wrap to last tab, got %d/%d", m.Tabs().Focused(), m.Tabs().Selected())
	}
	if m.PanelFocused() {
		t.Fatalf("expected arrows to keep focus on the tab list")
	}
}

func TestOffAxisArrowsIgnoredByTabs(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	h.Press(tea.KeyDown)
	if m.Tabs().Focused() != 0 {
		t.Fatalf("expected vertical arrows ignored, got focus %d", m.Tabs().Focused())
	}
}

func TestQuitOnlyFromTabList(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 3)
	h.Type("q")
	if h.Quit() {
		t.Fatalf("expected q to be typed into the text field")
	}
	if m.TextField().Value() != "q" {
		t.Fatalf("expected field value q, got %q", m.TextField().Value())
	}
	h.Press(tea.KeyTab)
	h.Type("q")
	if !h.Quit() {
		t.Fatalf("expected q on the tab list to quit")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	h.Type("?")
	if !m.help.ShowAll {
		t.Fatalf("expected full help after ?")
	}
}

func TestModalDialogTrapsFocus(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 0)

	h.Press(tea.KeyEnter)
	if m.Dialog().Phase() != headless.DialogOpen || !m.Dialog().FocusTrapEngaged() {
		t.Fatalf("expected open dialog with trap, got %s", m.Dialog().Phase())
	}
	h.Press(tea.KeyTab)
	if !m.PanelFocused() {
		t.Fatalf("expected focus trap to keep focus in the panel")
	}
	if m.Info() == "" {
		t.Fatalf("expected info explaining the trap")
	}

	h.Press(tea.KeyEsc)
	if m.Dialog().IsOpen() {
		t.Fatalf("expected escape to close the dialog")
	}
	if m.Dialog().LastTransition() != headless.TransitionCloseRequested {
		t.Fatalf("expected close transition, got %s", m.Dialog().LastTransition())
	}
	h.Press(tea.KeyTab)
	if m.PanelFocused() {
		t.Fatalf("expected tab to leave the panel once closed")
	}
}

func TestDialogEscapeCanBeDisabled(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 0)

	h.Type("x")
	if m.Dialog().EscapeCloses() {
		t.Fatalf("expected x to disable escape dismissal")
	}
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEsc)
	if !m.Dialog().IsOpen() {
		t.Fatalf("expected dialog to stay open")
	}

	h.Type("m")
	if m.Dialog().Modal() || m.Dialog().FocusTrapEngaged() {
		t.Fatalf("expected non-modal dialog to release the trap")
	}
	h.Press(tea.KeyTab)
	if m.PanelFocused() {
		t.Fatalf("expected tab to leave a non-modal dialog")
	}
}

func TestMenuKeyboardAndTypeahead(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 1)

	h.Press(tea.KeyEnter)
	if !m.Menu().IsOpen() || m.Menu().Highlighted() != 0 {
		t.Fatalf("expected open menu highlighting 0, got %v/%d", m.Menu().IsOpen(), m.Menu().Highlighted())
	}
	h.Press(tea.KeyUp)
	if m.Menu().Highlighted() != 3 {
		t.Fatalf("expected wrap to last item, got %d", m.Menu().Highlighted())
	}
	h.Type("r")
	if m.Menu().Highlighted() != 1 {
		t.Fatalf("expected typeahead to find Reset field, got %d", m.Menu().Highlighted())
	}
	h.Press(tea.KeyEsc)
	if m.Menu().IsOpen() {
		t.Fatalf("expected escape to close the menu")
	}
	h.Press(tea.KeyEsc)
	if m.PanelFocused() {
		t.Fatalf("expected second escape to return to the tab list")
	}
}

func TestMenuArrowUpOpensAtLastItem(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 1)
	h.Press(tea.KeyUp)
	if m.Menu().Highlighted() != 3 {
		t.Fatalf("expected last item highlighted, got %d", m.Menu().Highlighted())
	}
}

func TestSelectSkipsDisabledAndCommits(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 2)

	h.Press(tea.KeyEnter)
	if !m.Select().IsOpen() || m.Select().Highlighted() != 0 {
		t.Fatalf("expected open listbox highlighting 0")
	}
	h.Press(tea.KeyDown)
	if m.Select().Highlighted() != 2 {
		t.Fatalf("expected disabled option skipped, got %d", m.Select().Highlighted())
	}
	h.Press(tea.KeyEnter)
	if m.Select().Selected() != 2 {
		t.Fatalf("expected Banana selected, got %d", m.Select().Selected())
	}
	if m.Select().IsOpen() {
		t.Fatalf("expected commit to close the listbox")
	}
	if m.Info() != "Selected Banana" {
		t.Fatalf("unexpected info %q", m.Info())
	}
}

func TestSelectTypeaheadCommits(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 2)
	h.Press(tea.KeyEnter)

	h.Type("bl")
	if m.Select().Selected() != 3 {
		t.Fatalf("expected Blueberry selected, got %d", m.Select().Selected())
	}
	if m.Select().TypeaheadQuery() != "bl" {
		t.Fatalf("expected query bl, got %q", m.Select().TypeaheadQuery())
	}
}

func TestTextFieldCommitValidates(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 3)

	h.Press(tea.KeyEnter)
	if !m.TextField().Visited() {
		t.Fatalf("expected enter to mark the field visited")
	}
	errs := m.TextField().Errors()
	if len(errs) != 1 || errs[0] != "required" {
		t.Fatalf("expected required error, got %v", errs)
	}
}

func TestTextFieldReset(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 3)

	h.Type("abc")
	if !m.TextField().Dirty() {
		t.Fatalf("expected dirty after typing")
	}
	h.Press(tea.KeyCtrlR)
	if m.TextField().Value() != "" || m.input.Value() != "" {
		t.Fatalf("expected reset to clear value, got %q/%q", m.TextField().Value(), m.input.Value())
	}
	if m.TextField().Dirty() || m.TextField().Visited() {
		t.Fatalf("expected reset to clear dirty and visited")
	}
}

func TestLeavingTextFieldCommits(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 3)
	h.Type("ok")
	h.Press(tea.KeyTab)
	if !m.TextField().Visited() || m.input.Focused() {
		t.Fatalf("expected blur to commit and unfocus the input")
	}
}
