package headless

import (
	"strconv"
	"time"

	"github.com/atomicstack/headless-ui/internal/headless/selection"
	"github.com/atomicstack/headless-ui/internal/headless/timing"
	"github.com/atomicstack/headless-ui/internal/headless/typeahead"
)

const (
	ListboxRole = "listbox"
	OptionRole  = "option"
)

// Select tracks a listbox popup: open state, keyboard highlight, committed
// selection, and which options are disabled.
//
// The highlight always belongs to the widget. Once normalized it points at an
// enabled option, or at nothing when every option is disabled. Disabled
// options never reach the selection callback.
type Select struct {
	optionCount   int
	highlighted   int
	selected      int
	open          bool
	openMode      selection.ControlStrategy
	selectionMode selection.ControlStrategy
	disabled      []bool
	typeahead     typeahead.Buffer
}

// NewSelect returns a select over optionCount enabled options with nothing selected.
func NewSelect(optionCount int, defaultOpen bool, openMode, selectionMode selection.ControlStrategy) *Select {
	if optionCount < 0 {
		optionCount = 0
	}
	s := &Select{
		optionCount:   optionCount,
		highlighted:   selection.NoIndex,
		selected:      selection.NoIndex,
		open:          defaultOpen,
		openMode:      openMode,
		selectionMode: selectionMode,
		disabled:      make([]bool, optionCount),
		typeahead:     typeahead.New(typeahead.DefaultTimeout, timing.SystemClock{}),
	}
	if defaultOpen {
		s.ensureHighlight()
	}
	return s
}

// SetClock replaces the time source of the typeahead buffer.
func (s *Select) SetClock(clock timing.Clock) {
	s.typeahead.SetClock(clock)
}

// SetTypeaheadTimeout changes the typeahead idle window.
func (s *Select) SetTypeaheadTimeout(timeout time.Duration) {
	s.typeahead.SetTimeout(timeout)
}

// Open requests the listbox to open. Requests while open are ignored.
func (s *Select) Open(fn func(bool)) {
	if s.open {
		return
	}
	if !s.openMode.IsControlled() {
		s.open = true
	}
	s.ensureHighlight()
	notify(fn, true)
}

// Close requests the listbox to close. Requests while closed are ignored.
func (s *Select) Close(fn func(bool)) {
	if !s.open {
		return
	}
	if !s.openMode.IsControlled() {
		s.open = false
	}
	s.typeahead.Reset()
	notify(fn, false)
}

// Toggle flips the open state.
func (s *Select) Toggle(fn func(bool)) {
	if s.open {
		s.Close(fn)
		return
	}
	s.Open(fn)
}

// SyncOpen commits the owner's open state.
func (s *Select) SyncOpen(open bool) {
	s.open = open
	if open {
		s.ensureHighlight()
		return
	}
	s.typeahead.Reset()
}

// OnKey handles listbox navigation. Arrows wrap and skip disabled options;
// Enter and Space commit the highlighted option. It returns the highlight
// after the key and whether the key was handled.
func (s *Select) OnKey(key Key, onSelect func(int)) (int, bool) {
	switch key {
	case KeyHome:
		s.highlighted = s.firstEnabled()
	case KeyEnd:
		s.highlighted = s.lastEnabled()
	case KeyArrowDown:
		s.highlighted = s.advanceEnabled(s.highlighted, 1)
	case KeyArrowUp:
		s.highlighted = s.advanceEnabled(s.highlighted, -1)
	case KeyEnter, KeySpace:
		s.SelectHighlighted(onSelect)
	default:
		return s.highlighted, false
	}
	return s.highlighted, true
}

// Select commits the option at index. Out-of-range indices are ignored. A
// disabled index only moves the highlight to the nearest enabled option,
// searching forward first.
func (s *Select) Select(index int, onSelect func(int)) {
	if selection.ClampIndex(index, s.optionCount) == selection.NoIndex {
		return
	}
	if s.disabled[index] {
		s.highlighted = s.normalizeIndex(index)
		return
	}
	s.highlighted = index
	if !s.selectionMode.IsControlled() {
		s.selected = index
	}
	emit(onSelect, index)
}

// SelectHighlighted commits the highlighted option, if any.
func (s *Select) SelectHighlighted(onSelect func(int)) {
	if s.highlighted == selection.NoIndex {
		return
	}
	s.Select(s.highlighted, onSelect)
}

// OnTypeahead feeds ch into the typeahead buffer and selects the option the
// matcher resolves, following the same rules as Select.
func (s *Select) OnTypeahead(ch rune, matcher typeahead.Matcher, onSelect func(int)) {
	query := s.typeahead.Push(ch)
	if matcher == nil {
		return
	}
	s.Select(matcher(query, s.highlighted, s.optionCount), onSelect)
}

// SetHighlighted moves the highlight, e.g. on pointer hover, normalizing
// disabled targets. Out-of-range indices are ignored.
func (s *Select) SetHighlighted(index int) {
	if selection.ClampIndex(index, s.optionCount) == selection.NoIndex {
		return
	}
	s.highlighted = s.normalizeIndex(index)
}

// SyncSelected commits the owner's selection.
func (s *Select) SyncSelected(index int) {
	s.selected = selection.ClampIndex(index, s.optionCount)
}

// SetOptionDisabled flags the option at index. When the selected
// (uncontrolled) or highlighted option becomes disabled it falls to the
// nearest enabled option, forward first.
func (s *Select) SetOptionDisabled(index int, disabled bool) {
	if selection.ClampIndex(index, s.optionCount) == selection.NoIndex {
		return
	}
	s.disabled[index] = disabled
	if !disabled {
		if s.open && s.highlighted == selection.NoIndex {
			s.ensureHighlight()
		}
		return
	}
	if !s.selectionMode.IsControlled() && s.selected == index {
		s.selected = s.normalizeIndex(index)
	}
	if s.highlighted == index {
		s.highlighted = s.normalizeIndex(index)
	}
}

// IsOptionDisabled reports whether the option at index is inert. Out-of-range
// indices report false.
func (s *Select) IsOptionDisabled(index int) bool {
	if selection.ClampIndex(index, s.optionCount) == selection.NoIndex {
		return false
	}
	return s.disabled[index]
}

// SetOptionCount resizes the option list. New options start enabled; stored
// indices beyond the new count are cleared.
func (s *Select) SetOptionCount(count int) {
	if count < 0 {
		count = 0
	}
	if count <= len(s.disabled) {
		s.disabled = s.disabled[:count:count]
	} else {
		grown := make([]bool, count)
		copy(grown, s.disabled)
		s.disabled = grown
	}
	s.optionCount = count
	s.selected = selection.ClampIndex(s.selected, count)
	s.highlighted = selection.ClampIndex(s.highlighted, count)
	if s.highlighted != selection.NoIndex && s.disabled[s.highlighted] {
		s.highlighted = s.normalizeIndex(s.highlighted)
	}
	if s.open {
		s.ensureHighlight()
	}
}

func (s *Select) ensureHighlight() {
	if s.optionCount == 0 {
		s.highlighted = selection.NoIndex
		return
	}
	if s.highlighted != selection.NoIndex && !s.disabled[s.highlighted] {
		return
	}
	fallback := 0
	if s.selected != selection.NoIndex {
		fallback = s.selected
	}
	s.highlighted = s.normalizeIndex(fallback)
}

// normalizeIndex returns index when enabled, otherwise the nearest enabled
// option after it, otherwise the nearest one before it.
func (s *Select) normalizeIndex(index int) int {
	index = selection.ClampIndex(index, s.optionCount)
	if index == selection.NoIndex {
		return selection.NoIndex
	}
	if !s.disabled[index] {
		return index
	}
	for i := index + 1; i < s.optionCount; i++ {
		if !s.disabled[i] {
			return i
		}
	}
	for i := index - 1; i >= 0; i-- {
		if !s.disabled[i] {
			return i
		}
	}
	return selection.NoIndex
}

// advanceEnabled wraps from start by delta until it lands on an enabled
// option, giving up after one full lap.
func (s *Select) advanceEnabled(start, delta int) int {
	index := start
	for i := 0; i < s.optionCount; i++ {
		index = selection.WrapIndex(index, delta, s.optionCount)
		if index == selection.NoIndex {
			return selection.NoIndex
		}
		if !s.disabled[index] {
			return index
		}
	}
	return selection.NoIndex
}

func (s *Select) firstEnabled() int {
	return s.advanceEnabled(selection.NoIndex, 1)
}

func (s *Select) lastEnabled() int {
	return s.advanceEnabled(selection.NoIndex, -1)
}

func (s *Select) OptionCount() int {
	return s.optionCount
}

func (s *Select) Highlighted() int {
	return s.highlighted
}

func (s *Select) Selected() int {
	return s.selected
}

func (s *Select) IsOpen() bool {
	return s.open
}

func (s *Select) OpenMode() selection.ControlStrategy {
	return s.openMode
}

func (s *Select) SelectionMode() selection.ControlStrategy {
	return s.selectionMode
}

func (s *Select) TypeaheadQuery() string {
	return s.typeahead.Query()
}

func (s *Select) TriggerRole() string {
	return TriggerRole
}

func (s *Select) SurfaceRole() string {
	return ListboxRole
}

func (s *Select) ItemRole() string {
	return OptionRole
}

// Clone returns an independent copy, e.g. for a server-rendered snapshot.
func (s *Select) Clone() *Select {
	dup := *s
	dup.disabled = append([]bool(nil), s.disabled...)
	dup.typeahead = s.typeahead.Clone()
	return &dup
}

// TriggerAttributes describes the button opening the listbox. An empty
// surfaceID omits aria-controls.
func (s *Select) TriggerAttributes(surfaceID string) []Attr {
	attrs := []Attr{
		{Key: "aria-haspopup", Value: ListboxRole},
		boolAttr("aria-expanded", s.open),
	}
	if surfaceID != "" {
		attrs = append(attrs, Attr{Key: "aria-controls", Value: surfaceID})
	}
	return attrs
}

// SurfaceAttributes describes the listbox.
func (s *Select) SurfaceAttributes() []Attr {
	state := "closed"
	if s.open {
		state = "open"
	}
	attrs := []Attr{
		{Key: "role", Value: ListboxRole},
		{Key: "data-state", Value: state},
	}
	if s.highlighted != selection.NoIndex {
		attrs = append(attrs, Attr{Key: "data-active-index", Value: strconv.Itoa(s.highlighted)})
	}
	return attrs
}

// OptionAttributes describes the option at index.
func (s *Select) OptionAttributes(index int) []Attr {
	return []Attr{
		{Key: "role", Value: OptionRole},
		boolAttr("aria-selected", index == s.selected && index != selection.NoIndex),
		boolAttr("aria-disabled", s.IsOptionDisabled(index)),
		boolAttr("data-highlighted", index == s.highlighted && index != selection.NoIndex),
	}
}
