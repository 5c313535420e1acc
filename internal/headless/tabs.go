package headless

import "github.com/atomicstack/headless-ui/internal/headless/selection"

// Activation decides whether moving focus also selects a tab.
type Activation int

const (
	ActivationManual Activation = iota
	ActivationAutomatic
)

func (a Activation) String() string {
	if a == ActivationAutomatic {
		return "automatic"
	}
	return "manual"
}

// ParseActivation maps "manual" or "automatic" to an Activation.
func ParseActivation(value string) (Activation, bool) {
	switch value {
	case "manual":
		return ActivationManual, true
	case "automatic":
		return ActivationAutomatic, true
	default:
		return ActivationManual, false
	}
}

// Orientation picks the arrow keys that move focus across a tab list.
type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

const (
	TabListRole  = "tablist"
	TabRole      = "tab"
	TabPanelRole = "tabpanel"
)

// TabKeyboardOutcome reports the focus and selection a call resolved to,
// whether or not the widget committed them internally.
type TabKeyboardOutcome struct {
	Focused  int
	Selected int
}

// Tabs tracks the selected tab and the roving focus of a tab list.
type Tabs struct {
	tabCount      int
	selected      int
	focused       int
	activation    Activation
	orientation   Orientation
	selectionMode selection.ControlStrategy
	focusMode     selection.ControlStrategy
}

// NewTabs returns a tab list. Focus starts on the selected tab, or the first
// tab when nothing is selected.
func NewTabs(tabCount, initialSelected int, activation Activation, orientation Orientation, selectionMode, focusMode selection.ControlStrategy) *Tabs {
	if tabCount < 0 {
		tabCount = 0
	}
	t := &Tabs{
		tabCount:      tabCount,
		selected:      selection.ClampIndex(initialSelected, tabCount),
		activation:    activation,
		orientation:   orientation,
		selectionMode: selectionMode,
		focusMode:     focusMode,
	}
	t.focused = t.defaultFocus()
	return t
}

// OnKey handles tab list keys. Arrows on the orientation's axis move focus
// with wraparound, Home and End jump to the ends, Enter and Space activate the
// focused tab. The boolean reports whether the key was handled.
func (t *Tabs) OnKey(key Key, onSelect func(int)) (TabKeyboardOutcome, bool) {
	if key.activates() {
		if t.focused == selection.NoIndex {
			return t.outcome(), false
		}
		return t.commitSelection(t.focused, t.focused, onSelect), true
	}
	next := selection.NoIndex
	switch {
	case key == KeyHome:
		next = selection.ClampIndex(0, t.tabCount)
	case key == KeyEnd:
		next = selection.ClampIndex(t.tabCount-1, t.tabCount)
	case key == t.forwardKey():
		next = selection.WrapIndex(t.focused, 1, t.tabCount)
	case key == t.backwardKey():
		next = selection.WrapIndex(t.focused, -1, t.tabCount)
	default:
		return t.outcome(), false
	}
	if next == selection.NoIndex {
		return t.outcome(), true
	}
	return t.moveFocus(next, onSelect), true
}

// Focus moves focus to index, e.g. on pointer focus. Under automatic
// activation the tab is selected as well.
func (t *Tabs) Focus(index int, onSelect func(int)) TabKeyboardOutcome {
	index = selection.ClampIndex(index, t.tabCount)
	if index == selection.NoIndex {
		return t.outcome()
	}
	return t.moveFocus(index, onSelect)
}

// Select activates the tab at index and moves focus onto it. Out-of-range
// indices are ignored.
func (t *Tabs) Select(index int, onSelect func(int)) TabKeyboardOutcome {
	index = selection.ClampIndex(index, t.tabCount)
	if index == selection.NoIndex {
		return t.outcome()
	}
	if !t.focusMode.IsControlled() {
		t.focused = index
	}
	return t.commitSelection(index, index, onSelect)
}

// SelectFocused activates the focused tab, if any.
func (t *Tabs) SelectFocused(onSelect func(int)) TabKeyboardOutcome {
	if t.focused == selection.NoIndex {
		return t.outcome()
	}
	return t.commitSelection(t.focused, t.focused, onSelect)
}

// SyncSelected commits the owner's selection.
func (t *Tabs) SyncSelected(index int) {
	t.selected = selection.ClampIndex(index, t.tabCount)
}

// SyncFocused commits the owner's focus.
func (t *Tabs) SyncFocused(index int) {
	t.focused = selection.ClampIndex(index, t.tabCount)
}

// SetTabCount resizes the tab list, clamping stored indices.
func (t *Tabs) SetTabCount(count int) {
	if count < 0 {
		count = 0
	}
	t.tabCount = count
	t.selected = selection.ClampIndex(t.selected, count)
	t.focused = selection.ClampIndex(t.focused, count)
	if t.focused == selection.NoIndex {
		t.focused = t.defaultFocus()
	}
}

func (t *Tabs) moveFocus(index int, onSelect func(int)) TabKeyboardOutcome {
	if !t.focusMode.IsControlled() {
		t.focused = index
	}
	if t.activation == ActivationAutomatic {
		return t.commitSelection(index, index, onSelect)
	}
	return TabKeyboardOutcome{Focused: index, Selected: t.selected}
}

func (t *Tabs) commitSelection(index, focused int, onSelect func(int)) TabKeyboardOutcome {
	if !t.selectionMode.IsControlled() {
		t.selected = index
	}
	emit(onSelect, index)
	return TabKeyboardOutcome{Focused: focused, Selected: index}
}

func (t *Tabs) outcome() TabKeyboardOutcome {
	return TabKeyboardOutcome{Focused: t.focused, Selected: t.selected}
}

func (t *Tabs) defaultFocus() int {
	if t.selected != selection.NoIndex {
		return t.selected
	}
	return selection.ClampIndex(0, t.tabCount)
}

func (t *Tabs) forwardKey() Key {
	if t.orientation == OrientationVertical {
		return KeyArrowDown
	}
	return KeyArrowRight
}

func (t *Tabs) backwardKey() Key {
	if t.orientation == OrientationVertical {
		return KeyArrowUp
	}
	return KeyArrowLeft
}

func (t *Tabs) TabCount() int {
	return t.tabCount
}

func (t *Tabs) Selected() int {
	return t.selected
}

func (t *Tabs) Focused() int {
	return t.focused
}

func (t *Tabs) Activation() Activation {
	return t.activation
}

func (t *Tabs) Orientation() Orientation {
	return t.orientation
}

func (t *Tabs) SelectionMode() selection.ControlStrategy {
	return t.selectionMode
}

func (t *Tabs) FocusMode() selection.ControlStrategy {
	return t.focusMode
}

// ListAttributes describes the tab list container.
func (t *Tabs) ListAttributes() []Attr {
	return []Attr{
		{Key: "role", Value: TabListRole},
		{Key: "aria-orientation", Value: t.orientation.String()},
	}
}

// TabAttributes describes the tab at index. panelID feeds aria-controls when
// non-empty.
func (t *Tabs) TabAttributes(index int, panelID string) []Attr {
	tabindex := "-1"
	if index == t.focused && index != selection.NoIndex {
		tabindex = "0"
	}
	attrs := []Attr{
		{Key: "role", Value: TabRole},
		boolAttr("aria-selected", index == t.selected && index != selection.NoIndex),
		{Key: "tabindex", Value: tabindex},
	}
	if panelID != "" {
		attrs = append(attrs, Attr{Key: "aria-controls", Value: panelID})
	}
	return attrs
}

// PanelAttributes describes the panel for the tab at index.
func (t *Tabs) PanelAttributes(index int, tabID string) []Attr {
	attrs := []Attr{
		{Key: "role", Value: TabPanelRole},
		boolAttr("hidden", index != t.selected),
	}
	if tabID != "" {
		attrs = append(attrs, Attr{Key: "aria-labelledby", Value: tabID})
	}
	return attrs
}
