package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/headless/selection"
	"github.com/atomicstack/headless-ui/internal/headless/typeahead"
)

// widgetIDs are the element ids wired through aria-controls and friends.
type widgetIDs struct {
	dialog  string
	menu    string
	listbox string
	tooltip string
	field   string
	errors  string
	panel   string
}

func newWidgetIDs() widgetIDs {
	short := func(prefix string) string {
		return prefix + "-" + uuid.NewString()[:8]
	}
	return widgetIDs{
		dialog:  short("dialog"),
		menu:    short("menu"),
		listbox: short("listbox"),
		tooltip: short("tooltip"),
		field:   short("field"),
		errors:  short("field-errors"),
		panel:   short("panel"),
	}
}

var tabLabels = map[string]string{
	fixture.KindDialog:    "Dialog",
	fixture.KindMenu:      "Menu",
	fixture.KindSelect:    "Select",
	fixture.KindTextField: "Text field",
	fixture.KindTooltip:   "Tooltip",
}

func tabLabel(kind string) string {
	if label, ok := tabLabels[kind]; ok {
		return label
	}
	return kind
}

func (m *Model) buildWidgets(f fixture.Fixture) {
	m.fixture = f
	m.tabs = headless.NewTabs(len(f.Tabs), 0, m.opts.Activation, headless.OrientationHorizontal, selection.Uncontrolled, selection.Uncontrolled)

	m.dialog = headless.NewUncontrolledDialog(false)
	m.dialog.SetModal(f.Dialog.Modal)
	m.dialog.SetEscapeCloses(f.Dialog.EscapeCloses)

	m.menu = headless.NewMenu(len(f.Menu.Items), false, selection.Uncontrolled, selection.Uncontrolled)
	m.sel = headless.NewSelect(len(f.Select.Options), false, selection.Uncontrolled, selection.Uncontrolled)
	for i, opt := range f.Select.Options {
		m.sel.SetOptionDisabled(i, opt.Disabled)
	}
	m.applyTypeahead()

	m.tooltip = headless.NewTooltip(m.opts.Tooltip, m.clock)
	m.field = headless.NewUncontrolledTextField(f.TextField.Initial, m.opts.Debounce)
	m.input = newTextInput(f.TextField)
}

func newTextInput(cfg fixture.TextField) textinput.Model {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = cfg.Label
	input.Cursor.SetMode(cursor.CursorStatic)
	input.SetValue(cfg.Initial)
	return input
}

func (m *Model) applyTypeahead() {
	timeout := m.opts.TypeaheadTimeout
	if timeout <= 0 {
		timeout = typeahead.DefaultTimeout
	}
	m.menu.SetClock(m.clock)
	m.sel.SetClock(m.clock)
	m.menu.SetTypeaheadTimeout(timeout)
	m.sel.SetTypeaheadTimeout(timeout)
}

// applyFixture reconciles the live widgets with a reloaded fixture, keeping
// whatever state still fits.
func (m *Model) applyFixture(f fixture.Fixture) tea.Cmd {
	prev := m.fixture
	prevKind := m.activeKind()
	m.fixture = f

	m.tabs.SetTabCount(len(f.Tabs))
	if m.tabs.Selected() == -1 && len(f.Tabs) > 0 {
		m.tabs.Select(0, nil)
	}

	m.dialog.SetModal(f.Dialog.Modal)
	m.dialog.SetEscapeCloses(f.Dialog.EscapeCloses)

	m.menu.SetItemCount(len(f.Menu.Items))
	m.menuView.Ensure(m.menu.Highlighted(), len(f.Menu.Items), m.listRows())

	m.sel.SetOptionCount(len(f.Select.Options))
	for i, opt := range f.Select.Options {
		m.sel.SetOptionDisabled(i, opt.Disabled)
	}
	m.selView.Ensure(m.sel.Highlighted(), len(f.Select.Options), m.listRows())

	if prev.TextField.Initial != f.TextField.Initial {
		m.field.SetInitialValue(f.TextField.Initial)
	}
	m.input.Placeholder = f.TextField.Label

	if m.focus == regionPanel && m.activeKind() != prevKind {
		return m.leavePanelFor(prevKind)
	}
	return nil
}

func (m *Model) menuMatcher() typeahead.Matcher {
	return typeahead.PrefixMatcher(m.fixture.Menu.Labels())
}

func (m *Model) selectMatcher() typeahead.Matcher {
	if m.fixture.Select.Fuzzy {
		return typeahead.FuzzyMatcher(m.fixture.Select.Labels())
	}
	return typeahead.PrefixMatcher(m.fixture.Select.Labels())
}

// activeKind returns the widget kind of the selected tab.
func (m *Model) activeKind() string {
	i := m.tabs.Selected()
	if i < 0 || i >= len(m.fixture.Tabs) {
		return ""
	}
	return m.fixture.Tabs[i]
}

func (m *Model) listRows() int {
	if m.height <= 0 {
		return 0
	}
	rows := m.height - 16
	if rows < 3 {
		rows = 3
	}
	return rows
}
