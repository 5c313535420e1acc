package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/headless"
)

type keyMap struct {
	Switch      key.Binding
	Navigate    key.Binding
	Activate    key.Binding
	Escape      key.Binding
	Modal       key.Binding
	EscapeClose key.Binding
	Hover       key.Binding
	HoverSurf   key.Binding
	Focus       key.Binding
	Reset       key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Switch:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "tabs/panel")),
		Navigate:    key.NewBinding(key.WithKeys("up", "down", "left", "right", "home", "end"), key.WithHelp("←↑↓→", "move")),
		Activate:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
		Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close/back")),
		Modal:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "modal")),
		EscapeClose: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "esc closes")),
		Hover:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hover anchor")),
		HoverSurf:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "hover tooltip")),
		Focus:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus anchor")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset field")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Navigate, k.Activate, k.Escape, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Navigate, k.Activate, k.Escape},
		{k.Modal, k.EscapeClose, k.Reset},
		{k.Hover, k.HoverSurf, k.Focus},
		{k.Help, k.Quit},
	}
}

// widgetKey maps a terminal key press onto a widget key.
func widgetKey(msg tea.KeyMsg) headless.Key {
	switch msg.Type {
	case tea.KeyUp:
		return headless.KeyArrowUp
	case tea.KeyDown:
		return headless.KeyArrowDown
	case tea.KeyLeft:
		return headless.KeyArrowLeft
	case tea.KeyRight:
		return headless.KeyArrowRight
	case tea.KeyHome:
		return headless.KeyHome
	case tea.KeyEnd:
		return headless.KeyEnd
	case tea.KeyEnter:
		return headless.KeyEnter
	case tea.KeySpace:
		return headless.KeySpace
	case tea.KeyEsc:
		return headless.KeyEscape
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] == ' ' {
			return headless.KeySpace
		}
	}
	return headless.KeyUnknown
}

// typedRunes returns the printable runes of a key press for typeahead.
func typedRunes(msg tea.KeyMsg) []rune {
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	return msg.Runes
}
