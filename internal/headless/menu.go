package headless

import (
	"strconv"
	"time"

	"github.com/atomicstack/headless-ui/internal/headless/selection"
	"github.com/atomicstack/headless-ui/internal/headless/timing"
	"github.com/atomicstack/headless-ui/internal/headless/typeahead"
)

const (
	TriggerRole  = "button"
	MenuRole     = "menu"
	MenuItemRole = "menuitem"
)

// Menu tracks the open state and keyboard highlight of a menu.
type Menu struct {
	itemCount     int
	highlighted   int
	open          bool
	openMode      selection.ControlStrategy
	highlightMode selection.ControlStrategy
	typeahead     typeahead.Buffer
}

// NewMenu returns a menu over itemCount items.
func NewMenu(itemCount int, defaultOpen bool, openMode, highlightMode selection.ControlStrategy) *Menu {
	if itemCount < 0 {
		itemCount = 0
	}
	m := &Menu{
		itemCount:     itemCount,
		highlighted:   selection.NoIndex,
		open:          defaultOpen,
		openMode:      openMode,
		highlightMode: highlightMode,
		typeahead:     typeahead.New(typeahead.DefaultTimeout, timing.SystemClock{}),
	}
	if defaultOpen {
		m.ensureHighlight()
	}
	return m
}

// SetClock replaces the time source of the typeahead buffer.
func (m *Menu) SetClock(clock timing.Clock) {
	m.typeahead.SetClock(clock)
}

// SetTypeaheadTimeout changes the typeahead idle window.
func (m *Menu) SetTypeaheadTimeout(timeout time.Duration) {
	m.typeahead.SetTimeout(timeout)
}

// Open requests the menu to open. Requests while open are ignored.
func (m *Menu) Open(fn func(bool)) {
	if m.open {
		return
	}
	if !m.openMode.IsControlled() {
		m.open = true
	}
	m.ensureHighlight()
	notify(fn, true)
}

// Close requests the menu to close. Requests while closed are ignored.
func (m *Menu) Close(fn func(bool)) {
	if !m.open {
		return
	}
	if !m.openMode.IsControlled() {
		m.open = false
	}
	m.typeahead.Reset()
	notify(fn, false)
}

// Toggle flips the open state.
func (m *Menu) Toggle(fn func(bool)) {
	if m.open {
		m.Close(fn)
		return
	}
	m.Open(fn)
}

// SyncOpen commits the owner's open state.
func (m *Menu) SyncOpen(open bool) {
	m.open = open
	if open {
		m.ensureHighlight()
		return
	}
	m.typeahead.Reset()
}

// OnKey maps navigation keys to a highlight move and returns the resulting
// highlight. Under a controlled highlight the move is only proposed; the
// owner commits it with SyncHighlighted. The boolean reports whether the key
// is a menu navigation key.
func (m *Menu) OnKey(key Key) (int, bool) {
	next := m.highlighted
	switch key {
	case KeyHome:
		next = selection.ClampIndex(0, m.itemCount)
	case KeyEnd:
		next = selection.ClampIndex(m.itemCount-1, m.itemCount)
	case KeyArrowDown:
		next = selection.WrapIndex(m.highlighted, 1, m.itemCount)
	case KeyArrowUp:
		next = selection.WrapIndex(m.highlighted, -1, m.itemCount)
	default:
		return m.highlighted, false
	}
	m.applyHighlight(next)
	return next, true
}

// OnTypeahead feeds ch into the typeahead buffer and moves the highlight to
// the item the matcher resolves. It returns the matched index or NoIndex.
func (m *Menu) OnTypeahead(ch rune, matcher typeahead.Matcher) int {
	query := m.typeahead.Push(ch)
	if matcher == nil {
		return selection.NoIndex
	}
	index := selection.ClampIndex(matcher(query, m.highlighted, m.itemCount), m.itemCount)
	if index == selection.NoIndex {
		return selection.NoIndex
	}
	m.applyHighlight(index)
	return index
}

// SetHighlighted is a highlight intent, e.g. from pointer hover. Out-of-range
// indices are ignored. It returns the clamped index.
func (m *Menu) SetHighlighted(index int) int {
	index = selection.ClampIndex(index, m.itemCount)
	if index == selection.NoIndex {
		return selection.NoIndex
	}
	m.applyHighlight(index)
	return index
}

// SyncHighlighted commits the owner's highlight.
func (m *Menu) SyncHighlighted(index int) {
	m.highlighted = selection.ClampIndex(index, m.itemCount)
}

// SetItemCount resizes the menu, clamping the highlight.
func (m *Menu) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	m.itemCount = count
	m.highlighted = selection.ClampIndex(m.highlighted, count)
	if m.open {
		m.ensureHighlight()
	}
}

func (m *Menu) applyHighlight(index int) {
	if m.highlightMode.IsControlled() {
		return
	}
	m.highlighted = index
}

func (m *Menu) ensureHighlight() {
	if m.itemCount == 0 {
		m.highlighted = selection.NoIndex
		return
	}
	if selection.ClampIndex(m.highlighted, m.itemCount) != selection.NoIndex {
		return
	}
	m.highlighted = selection.NoIndex
	m.applyHighlight(0)
}

func (m *Menu) ItemCount() int {
	return m.itemCount
}

func (m *Menu) Highlighted() int {
	return m.highlighted
}

func (m *Menu) IsOpen() bool {
	return m.open
}

func (m *Menu) OpenMode() selection.ControlStrategy {
	return m.openMode
}

func (m *Menu) HighlightMode() selection.ControlStrategy {
	return m.highlightMode
}

func (m *Menu) TypeaheadQuery() string {
	return m.typeahead.Query()
}

func (m *Menu) TriggerRole() string {
	return TriggerRole
}

func (m *Menu) SurfaceRole() string {
	return MenuRole
}

func (m *Menu) ItemRole() string {
	return MenuItemRole
}

// Clone returns an independent copy, e.g. for a server-rendered snapshot.
func (m *Menu) Clone() *Menu {
	dup := *m
	dup.typeahead = m.typeahead.Clone()
	return &dup
}

// TriggerAttributes describes the button opening the menu. An empty surfaceID
// omits aria-controls.
func (m *Menu) TriggerAttributes(surfaceID string) []Attr {
	attrs := []Attr{
		{Key: "aria-haspopup", Value: MenuRole},
		boolAttr("aria-expanded", m.open),
	}
	if surfaceID != "" {
		attrs = append(attrs, Attr{Key: "aria-controls", Value: surfaceID})
	}
	return attrs
}

// SurfaceAttributes describes the menu surface.
func (m *Menu) SurfaceAttributes() []Attr {
	state := "closed"
	if m.open {
		state = "open"
	}
	attrs := []Attr{
		{Key: "role", Value: MenuRole},
		{Key: "data-state", Value: state},
	}
	if m.highlighted != selection.NoIndex {
		attrs = append(attrs, Attr{Key: "data-active-index", Value: strconv.Itoa(m.highlighted)})
	}
	return attrs
}

// ItemAttributes describes the item at index.
func (m *Menu) ItemAttributes(index int) []Attr {
	return []Attr{
		{Key: "role", Value: MenuItemRole},
		boolAttr("data-highlighted", index == m.highlighted && index != selection.NoIndex),
	}
}
