package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the playground.
type Styles struct {
	Tab             *lipgloss.Style
	SelectedTab     *lipgloss.Style
	FocusedTab      *lipgloss.Style
	Trigger         *lipgloss.Style
	FocusedTrigger  *lipgloss.Style
	Item            *lipgloss.Style
	HighlightedItem *lipgloss.Style
	DisabledItem    *lipgloss.Style
	SelectedMark    *lipgloss.Style
	Surface         *lipgloss.Style
	ModalSurface    *lipgloss.Style
	TooltipSurface  *lipgloss.Style
	Meta            *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Header          *lipgloss.Style
	Footer          *lipgloss.Style
	InspectorHeader *lipgloss.Style
	InspectorRow    *lipgloss.Style
}

var defaultStyles = Styles{
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	SelectedTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
	),
	FocusedTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
	),
	Trigger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedTrigger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	HighlightedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
	),
	SelectedMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Surface: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	ModalSurface: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	TooltipSurface: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("220")).Foreground(lipgloss.Color("230")).Padding(0, 1),
	),
	Meta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	InspectorHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Underline(true),
	),
	InspectorRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style to text, passing text through when style is nil.
func Render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
