package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/backend"
	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/headless"
)

func TestTooltipShowsAfterDelayAndHidesAfterBlur(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 4)

	if !m.Tooltip().AnchorFocused() || !m.Tooltip().ShowPending() {
		t.Fatalf("expected entering the panel to focus the anchor and queue show")
	}
	if h.Pending() != 1 {
		t.Fatalf("expected one poll tick queued, got %d", h.Pending())
	}
	h.Advance(100 * time.Millisecond)
	if m.Tooltip().Visible() {
		t.Fatalf("expected tooltip hidden before show delay")
	}
	h.Advance(100 * time.Millisecond)
	if !m.Tooltip().Visible() {
		t.Fatalf("expected tooltip visible after show delay")
	}
	if h.Pending() != 0 {
		t.Fatalf("expected polling to stop once timers resolve, got %d queued", h.Pending())
	}
	if !strings.Contains(h.View(), "Tooltips wait before showing") {
		t.Fatalf("expected tooltip text in view:\n%s", h.View())
	}

	h.Press(tea.KeyTab)
	if !m.Tooltip().Visible() || !m.Tooltip().HidePending() {
		t.Fatalf("expected blur to queue hide while staying visible")
	}
	h.Advance(100 * time.Millisecond)
	if m.Tooltip().Visible() {
		t.Fatalf("expected tooltip hidden after hide delay")
	}
}

func TestTooltipSurfaceHoverCancelsHide(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 4)
	h.Type("h")
	h.Advance(200 * time.Millisecond)
	if !m.Tooltip().Visible() {
		t.Fatalf("expected tooltip visible")
	}

	h.Type("f")
	h.Type("h")
	if !m.Tooltip().HidePending() {
		t.Fatalf("expected leaving the anchor to queue hide")
	}
	h.Type("s")
	if m.Tooltip().HidePending() {
		t.Fatalf("expected hovering the surface to cancel hide")
	}
	h.Advance(time.Second)
	if !m.Tooltip().Visible() {
		t.Fatalf("expected interactive tooltip to stay visible")
	}
}

func TestTooltipEscapeDismisses(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 4)
	h.Flush()
	if !m.Tooltip().Visible() {
		t.Fatalf("expected tooltip visible after flushing timers")
	}
	h.Press(tea.KeyEsc)
	if m.Tooltip().Visible() {
		t.Fatalf("expected escape to dismiss")
	}
	h.Press(tea.KeyEsc)
	if m.PanelFocused() {
		t.Fatalf("expected escape on a hidden tooltip to return to the tab list")
	}
}

func TestTextFieldDebouncedValidation(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 3)

	h.Type("ab")
	h.Press(tea.KeyBackspace)
	h.Press(tea.KeyBackspace)
	if m.TextField().HasErrors() {
		t.Fatalf("expected validation to wait for the debounce window")
	}
	if h.Pending() != 4 {
		t.Fatalf("expected one validation per edit queued, got %d", h.Pending())
	}
	h.Advance(299 * time.Millisecond)
	if m.TextField().HasErrors() {
		t.Fatalf("expected no validation before the window closes")
	}
	h.Advance(time.Millisecond)
	errs := m.TextField().Errors()
	if len(errs) != 1 || errs[0] != "required" {
		t.Fatalf("expected required error after debounce, got %v", errs)
	}
	if !strings.Contains(h.View(), "✗ required") {
		t.Fatalf("expected error rendered:\n%s", h.View())
	}
}

func TestTextFieldWithoutDebounceValidatesImmediately(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.Debounce = 0 })
	h := NewHarness(m)
	openTab(h, 3)
	h.Type(strings.Repeat("x", 33))
	if h.Pending() != 0 {
		t.Fatalf("expected nothing queued without debounce")
	}
	if !m.TextField().HasErrors() {
		t.Fatalf("expected max length error")
	}
}

func TestMenuActionOpensDialog(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.Verbose = true })
	h := NewHarness(m)
	openTab(h, 1)

	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEnter)
	if m.Menu().IsOpen() {
		t.Fatalf("expected activation to close the menu")
	}
	if m.Tabs().Selected() != 0 {
		t.Fatalf("expected dialog tab selected, got %d", m.Tabs().Selected())
	}
	if m.Dialog().Phase() != headless.DialogOpen {
		t.Fatalf("expected dialog open, got %s", m.Dialog().Phase())
	}
	if !m.PanelFocused() {
		t.Fatalf("expected focus inside the dialog panel")
	}
	if m.Info() != "Opened dialog" {
		t.Fatalf("expected verbose info, got %q", m.Info())
	}
}

func TestMenuFailureSurfacesError(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 1)

	h.Press(tea.KeyUp)
	h.Press(tea.KeyEnter)
	if m.Err() != "Break something failed" {
		t.Fatalf("unexpected error %q", m.Err())
	}
	if !strings.Contains(h.View(), "Error: Break something failed") {
		t.Fatalf("expected error in view:\n%s", h.View())
	}
}

func TestMenuResetFieldAction(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 3)
	h.Type("draft")
	h.Press(tea.KeyTab)

	h.Press(tea.KeyLeft)
	h.Press(tea.KeyLeft)
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)
	if m.TextField().Value() != "" || m.TextField().Visited() {
		t.Fatalf("expected reset-field action to restore the field, got %q", m.TextField().Value())
	}
}

func TestFixtureReloadClampsState(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 4)
	m.Menu().SetHighlighted(3)
	m.Select().Select(5, nil)

	next := fixture.Default()
	next.Tabs = []string{fixture.KindMenu, fixture.KindSelect}
	next.Menu.Items = next.Menu.Items[:2]
	next.Select.Options = []fixture.Option{{Label: "Only"}}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindFixture, Data: next}})

	if m.Tabs().TabCount() != 2 || m.Tabs().Selected() != 0 {
		t.Fatalf("expected two tabs with the first selected, got %d/%d", m.Tabs().TabCount(), m.Tabs().Selected())
	}
	if m.activeKind() != fixture.KindMenu || m.PanelFocused() {
		t.Fatalf("expected focus back on the tab list with the menu tab active")
	}
	if m.Tooltip().AnchorFocused() {
		t.Fatalf("expected the tooltip anchor released")
	}
	if got := m.Menu().Highlighted(); got != -1 {
		t.Fatalf("expected highlight beyond the new count cleared, got %d", got)
	}
	if m.Select().Selected() != -1 {
		t.Fatalf("expected selection beyond the new count cleared, got %d", m.Select().Selected())
	}
	if len(m.Fixture().Tabs) != 2 {
		t.Fatalf("expected fixture replaced")
	}
}

func TestFixtureErrorKeepsWidgets(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindFixture, Err: errors.New("bad yaml")}})
	if m.BackendErr() != "bad yaml" {
		t.Fatalf("expected backend error, got %q", m.BackendErr())
	}
	if m.Tabs().TabCount() != 5 {
		t.Fatalf("expected widgets untouched on error")
	}
	if !strings.Contains(h.View(), "Fixture: bad yaml") {
		t.Fatalf("expected fixture error in view:\n%s", h.View())
	}
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindFixture, Data: fixture.Default()}})
	if m.BackendErr() != "" {
		t.Fatalf("expected good load to clear the error")
	}
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	h.Send(backendDoneMsg{})
	if m.Init() != nil {
		t.Fatalf("expected no backend wait after done")
	}
}
