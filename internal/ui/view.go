package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/format/table"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/theme"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // already styled; truncate ANSI-aware and never restyle
}

func rawLines(block string) []styledLine {
	parts := strings.Split(block, "\n")
	lines := make([]styledLine, len(parts))
	for i, part := range parts {
		lines[i] = styledLine{text: part, raw: true}
	}
	return lines
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// View renders the tab strip, the active widget, its attribute inspector and
// the status lines.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: "headless-ui playground", style: styles.Header})
	lines = append(lines, styledLine{text: m.tabStrip(), raw: true})
	lines = append(lines, styledLine{})
	lines = append(lines, m.panelLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.inspectorLines()...)
	lines = append(lines, m.statusLines()...)
	if m.opts.ShowFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, rawLines(theme.Render(styles.Footer, m.help.View(m.keys)))...)
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) tabStrip() string {
	parts := make([]string, 0, len(m.fixture.Tabs))
	for i, kind := range m.fixture.Tabs {
		style := styles.Tab
		if i == m.tabs.Selected() {
			style = styles.SelectedTab
		}
		label := theme.Render(style, tabLabel(kind))
		if m.focus == regionTabs && i == m.tabs.Focused() {
			label = theme.Render(styles.FocusedTab, label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func (m *Model) trigger(label string) styledLine {
	text := "[ " + label + " ]"
	if m.focus == regionPanel {
		return styledLine{text: text, style: styles.FocusedTrigger}
	}
	return styledLine{text: text, style: styles.Trigger}
}

func (m *Model) panelLines() []styledLine {
	switch m.activeKind() {
	case fixture.KindDialog:
		return m.dialogLines()
	case fixture.KindMenu:
		return m.menuLines()
	case fixture.KindSelect:
		return m.selectLines()
	case fixture.KindTextField:
		return m.textFieldLines()
	case fixture.KindTooltip:
		return m.tooltipLines()
	}
	return []styledLine{{text: "(no widget)", style: styles.Info}}
}

func (m *Model) dialogLines() []styledLine {
	d := m.dialog
	lines := []styledLine{
		m.trigger(m.fixture.Dialog.Title),
		{text: fmt.Sprintf("phase: %s  modal: %s  esc closes: %s  focus trap: %s",
			d.Phase(), yesNo(d.Modal()), yesNo(d.EscapeCloses()), yesNo(d.FocusTrapEngaged())), style: styles.Meta},
	}
	if !d.IsOpen() {
		return lines
	}
	style := styles.Surface
	if d.Modal() {
		style = styles.ModalSurface
	}
	body := m.fixture.Dialog.Title
	if m.fixture.Dialog.Body != "" {
		body += "\n\n" + m.fixture.Dialog.Body
	}
	return append(lines, rawLines(style.Render(body))...)
}

func (m *Model) menuLines() []styledLine {
	lines := []styledLine{m.trigger(m.fixture.Menu.Label + " ▾")}
	if !m.menu.IsOpen() {
		return lines
	}
	items := make([]styledLine, 0, len(m.fixture.Menu.Items))
	start, end := m.menuView.Window(len(m.fixture.Menu.Items), m.listRows())
	for i := start; i < end; i++ {
		label := m.fixture.Menu.Items[i].Label
		if i == m.menu.Highlighted() {
			items = append(items, styledLine{text: "› " + label, style: styles.HighlightedItem})
			continue
		}
		items = append(items, styledLine{text: "  " + label, style: styles.Item})
	}
	if q := m.menu.TypeaheadQuery(); q != "" {
		items = append(items, styledLine{text: fmt.Sprintf("typeahead: %q", q), style: styles.Meta})
	}
	return append(lines, items...)
}

func (m *Model) selectLines() []styledLine {
	opts := m.fixture.Select.Options
	current := m.fixture.Select.Placeholder
	if i := m.sel.Selected(); i >= 0 && i < len(opts) {
		current = opts[i].Label
	}
	lines := []styledLine{m.trigger(current + " ▾")}
	if !m.sel.IsOpen() {
		return lines
	}
	start, end := m.selView.Window(len(opts), m.listRows())
	for i := start; i < end; i++ {
		mark := "  "
		if i == m.sel.Selected() {
			mark = theme.Render(styles.SelectedMark, "✓ ")
		}
		style := styles.Item
		switch {
		case m.sel.IsOptionDisabled(i):
			style = styles.DisabledItem
		case i == m.sel.Highlighted():
			style = styles.HighlightedItem
		}
		lines = append(lines, styledLine{text: mark + theme.Render(style, opts[i].Label), raw: true})
	}
	if q := m.sel.TypeaheadQuery(); q != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("typeahead: %q", q), style: styles.Meta})
	}
	return lines
}

func (m *Model) textFieldLines() []styledLine {
	f := m.field
	lines := []styledLine{
		{text: m.fixture.TextField.Label, style: styles.Info},
		{text: m.input.View(), raw: true},
		{text: fmt.Sprintf("dirty: %s  visited: %s  debounce: %s", yesNo(f.Dirty()), yesNo(f.Visited()), f.Debounce()), style: styles.Meta},
	}
	for _, e := range f.Errors() {
		lines = append(lines, styledLine{text: "✗ " + e, style: styles.Error})
	}
	return lines
}

func (m *Model) tooltipLines() []styledLine {
	t := m.tooltip
	lines := []styledLine{
		m.trigger(m.fixture.Tooltip.Anchor),
		{text: fmt.Sprintf("focused: %s  hovered: %s  surface hovered: %s",
			yesNo(t.AnchorFocused()), yesNo(t.AnchorHovered()), yesNo(t.SurfaceHovered())), style: styles.Meta},
	}
	if t.ShowPending() {
		lines = append(lines, styledLine{text: "show pending", style: styles.Meta})
	}
	if t.HidePending() {
		lines = append(lines, styledLine{text: "hide pending", style: styles.Meta})
	}
	if t.Visible() {
		lines = append(lines, rawLines(styles.TooltipSurface.Render(m.fixture.Tooltip.Text))...)
	}
	return lines
}

// inspectorRows lists the attribute pairs a renderer would apply to each
// element of the active widget.
func (m *Model) inspectorRows() [][]string {
	var rows [][]string
	add := func(element string, attrs []headless.Attr) {
		rows = appendAttrRows(rows, element, attrs)
	}
	add("tablist", m.tabs.ListAttributes())
	selected := m.tabs.Selected()
	if selected >= 0 {
		add(fmt.Sprintf("tab %d", selected), m.tabs.TabAttributes(selected, m.ids.panel))
		add("tabpanel", m.tabs.PanelAttributes(selected, ""))
	}
	switch m.activeKind() {
	case fixture.KindDialog:
		add("trigger", m.dialog.TriggerAttributes(m.ids.dialog))
		if m.dialog.IsOpen() {
			add(m.dialog.Role(), m.dialog.SurfaceAttributes())
		}
	case fixture.KindMenu:
		add("trigger", m.menu.TriggerAttributes(m.ids.menu))
		if m.menu.IsOpen() {
			add(m.menu.SurfaceRole(), m.menu.SurfaceAttributes())
			if h := m.menu.Highlighted(); h >= 0 {
				add(fmt.Sprintf("item %d", h), m.menu.ItemAttributes(h))
			}
		}
	case fixture.KindSelect:
		add("trigger", m.sel.TriggerAttributes(m.ids.listbox))
		if m.sel.IsOpen() {
			add(m.sel.SurfaceRole(), m.sel.SurfaceAttributes())
			if h := m.sel.Highlighted(); h >= 0 {
				add(fmt.Sprintf("option %d", h), m.sel.OptionAttributes(h))
			}
		}
	case fixture.KindTextField:
		errorID := ""
		if m.field.HasErrors() {
			errorID = m.ids.errors
		}
		add("input", m.field.InputAttributes(errorID))
	case fixture.KindTooltip:
		add("anchor", m.tooltip.AnchorAttributes(m.ids.tooltip))
		add(m.tooltip.Role(), m.tooltip.SurfaceAttributes())
	}
	return rows
}

// appendAttrRows adds one row per attribute, naming element on the first.
func appendAttrRows(rows [][]string, element string, attrs []headless.Attr) [][]string {
	for _, a := range attrs {
		rows = append(rows, []string{element, a.Key, a.Value})
		element = ""
	}
	return rows
}

func formatInspector(rows [][]string) []string {
	return table.FormatWithHeader([]string{"element", "attribute", "value"}, rows, nil)
}

func (m *Model) inspectorLines() []styledLine {
	rows := m.inspectorRows()
	if len(rows) == 0 {
		return nil
	}
	formatted := formatInspector(rows)
	lines := make([]styledLine, 0, len(formatted))
	for i, text := range formatted {
		style := styles.InspectorRow
		if i == 0 {
			style = styles.InspectorHeader
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

func (m *Model) statusLines() []styledLine {
	var lines []styledLine
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	if m.backendErr != "" {
		lines = append(lines, styledLine{text: "Fixture: " + m.backendErr, style: styles.Error})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	return lines
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = theme.Render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width cells, ending with an ellipsis. Escape
// sequences are preserved.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
