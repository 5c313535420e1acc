package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/backend"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/logging/events"
	"github.com/atomicstack/headless-ui/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	FixturePath      string
	Width            int           `validate:"min=0"`
	Height           int           `validate:"min=0"`
	ShowFooter       bool
	Verbose          bool
	ShowDelay        time.Duration `validate:"min=0"`
	HideDelay        time.Duration `validate:"min=0"`
	TypeaheadTimeout time.Duration `validate:"gt=0"`
	Debounce         time.Duration `validate:"min=0"`
	Activation       string        `validate:"oneof=manual automatic"`
	ReloadInterval   time.Duration `validate:"min=0"`
}

// Options converts the configuration into playground options.
func (c Config) Options() ui.Options {
	activation, _ := headless.ParseActivation(c.Activation)
	tooltip := headless.DefaultTooltipConfig()
	tooltip.ShowDelay = c.ShowDelay
	tooltip.HideDelay = c.HideDelay
	return ui.Options{
		Width:            c.Width,
		Height:           c.Height,
		ShowFooter:       c.ShowFooter,
		Verbose:          c.Verbose,
		Activation:       activation,
		Tooltip:          tooltip,
		TypeaheadTimeout: c.TypeaheadTimeout,
		Debounce:         c.Debounce,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	watcher := backend.NewWatcher(cfg.FixturePath, cfg.ReloadInterval)
	defer watcher.Stop()
	model := ui.NewModel(cfg.Options(), watcher)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop(err.Error())
		return err
	}
	events.App.Stop("quit")
	return nil
}
