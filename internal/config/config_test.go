package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/headless-ui/internal/headless/typeahead"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 150*time.Millisecond, cfg.App.ShowDelay)
	require.Equal(t, 100*time.Millisecond, cfg.App.HideDelay)
	require.Equal(t, typeahead.DefaultTimeout, cfg.App.TypeaheadTimeout)
	require.Zero(t, cfg.App.Debounce)
	require.Equal(t, "manual", cfg.App.Activation)
	require.Equal(t, defaultReloadInterval, cfg.App.ReloadInterval)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envWidth + "=100",
		envActivation + "=automatic",
		envShowDelay + "=300",
		envTrace + "=true",
		envFixture + "=/tmp/env.yaml",
	}
	cfg, err := LoadArgs([]string{"-width", "80", "-fixture", "widgets.yaml", "-debounce", "250ms"}, env)
	require.NoError(t, err)
	require.Equal(t, 80, cfg.App.Width)
	require.Equal(t, "widgets.yaml", cfg.App.FixturePath)
	require.Equal(t, "automatic", cfg.App.Activation)
	require.Equal(t, 300*time.Millisecond, cfg.App.ShowDelay)
	require.Equal(t, 250*time.Millisecond, cfg.App.Debounce)
	require.True(t, cfg.Logging.Trace)
	require.Equal(t, "80", cfg.Flags["width"])
	require.Equal(t, "250ms", cfg.Flags["debounce"])
	require.Equal(t, []string{"-width", "80", "-fixture", "widgets.yaml", "-debounce", "250ms"}, cfg.Args)
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envHeight + "=tall", envHideDelay + "=soon", "garbage"})
	require.NoError(t, err)
	require.Zero(t, cfg.App.Height)
	require.Equal(t, 100*time.Millisecond, cfg.App.HideDelay)
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	_, err := LoadArgs([]string{"-socket", "x"}, nil)
	require.Error(t, err)
}

func TestValidateReportsFlagNames(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "-1", "-activation", "eager", "-typeahead-timeout", "0s"}, nil)
	require.NoError(t, err)
	err = Validate(cfg)
	require.Error(t, err)
	require.ErrorContains(t, err, "width must be >= 0")
	require.ErrorContains(t, err, "activation must be one of manual automatic")
	require.ErrorContains(t, err, "typeahead-timeout must be > 0")
}

func TestValidateRejectsNegativeDurations(t *testing.T) {
	cfg, err := LoadArgs([]string{"-hide-delay", "-5ms"}, nil)
	require.NoError(t, err)
	require.ErrorContains(t, Validate(cfg), "hide-delay must be >= 0")
}
