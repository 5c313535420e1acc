package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/headless/selection"
	"github.com/atomicstack/headless-ui/internal/testutil"
)

func TestViewShowsTabsAndInspector(t *testing.T) {
	m, _ := newTestModel(t, nil)
	view := m.View()
	for _, want := range []string{"Dialog", "Menu", "Select", "Text field", "Tooltip", "tablist", "aria-orientation", "horizontal", "aria-haspopup"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if !strings.Contains(view, m.ids.panel) {
		t.Fatalf("expected aria-controls to reference the panel id:\n%s", view)
	}
}

func TestViewRendersOpenMenu(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 1)
	h.Press(tea.KeyEnter)
	view := h.View()
	if !strings.Contains(view, "› Open dialog") {
		t.Fatalf("expected highlighted first item:\n%s", view)
	}
	if !strings.Contains(view, "menuitem") {
		t.Fatalf("expected highlighted item attributes in inspector:\n%s", view)
	}
}

func TestViewRendersOpenDialogSurface(t *testing.T) {
	m, _ := newTestModel(t, nil)
	h := NewHarness(m)
	openTab(h, 0)
	h.Press(tea.KeyEnter)
	view := h.View()
	if !strings.Contains(view, "Unsaved edits in this form will be lost.") {
		t.Fatalf("expected dialog body:\n%s", view)
	}
	if !strings.Contains(view, "aria-modal") {
		t.Fatalf("expected surface attributes:\n%s", view)
	}
}

func TestViewRespectsWidthAndHeight(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) {
		o.Width = 24
		o.Height = 6
	})
	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), view)
	}
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > 24 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
	if !strings.HasSuffix(view, "…") {
		t.Fatalf("expected trailing ellipsis when trimmed:\n%s", view)
	}
}

func TestViewFooterShowsHelp(t *testing.T) {
	m, _ := newTestModel(t, func(o *Options) { o.ShowFooter = true })
	if !strings.Contains(m.View(), "quit") {
		t.Fatalf("expected help footer:\n%s", m.View())
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello world", 5); got != "hell…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("hi", 5); got != "hi" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
	if got := truncateText("hello", 0); got != "hello" {
		t.Fatalf("expected zero width to disable truncation, got %q", got)
	}
}

func TestLimitHeight(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected limit result %#v", got)
	}
	if got := limitHeight(lines, 0, 10); len(got) != 3 {
		t.Fatalf("expected no limit for zero height")
	}
}

func TestInspectorTabRowsGolden(t *testing.T) {
	tabs := headless.NewTabs(3, 1, headless.ActivationManual, headless.OrientationHorizontal, selection.Uncontrolled, selection.Uncontrolled)
	var rows [][]string
	rows = appendAttrRows(rows, "tablist", tabs.ListAttributes())
	rows = appendAttrRows(rows, "tab 1", tabs.TabAttributes(1, "panel-1"))
	rows = appendAttrRows(rows, "tabpanel", tabs.PanelAttributes(1, ""))
	testutil.AssertGolden(t, "inspector.golden", strings.Join(formatInspector(rows), "\n")+"\n")
}
