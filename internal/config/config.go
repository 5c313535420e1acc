package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/atomicstack/headless-ui/internal/app"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/headless/typeahead"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envFixture          = "HEADLESS_UI_FIXTURE"
	envWidth            = "HEADLESS_UI_WIDTH"
	envHeight           = "HEADLESS_UI_HEIGHT"
	envShowFooter       = "HEADLESS_UI_FOOTER"
	envVerbose          = "HEADLESS_UI_VERBOSE"
	envTrace            = "HEADLESS_UI_TRACE"
	envLogFile          = "HEADLESS_UI_LOG_FILE"
	envShowDelay        = "HEADLESS_UI_SHOW_DELAY"
	envHideDelay        = "HEADLESS_UI_HIDE_DELAY"
	envTypeaheadTimeout = "HEADLESS_UI_TYPEAHEAD_TIMEOUT"
	envDebounce         = "HEADLESS_UI_DEBOUNCE"
	envActivation       = "HEADLESS_UI_ACTIVATION"
	envReloadInterval   = "HEADLESS_UI_RELOAD_INTERVAL"
)

const defaultReloadInterval = 250 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	tooltip := headless.DefaultTooltipConfig()

	fs := flag.NewFlagSet("headless-ui", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fixturePath := fs.String("fixture", envOrDefault(env, envFixture, ""), "path to a YAML fixture describing the widgets (empty uses the built-in fixture)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for menu actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	showDelay := fs.Duration("show-delay", envOrDuration(env, envShowDelay, tooltip.ShowDelay), "tooltip show delay")
	hideDelay := fs.Duration("hide-delay", envOrDuration(env, envHideDelay, tooltip.HideDelay), "tooltip hide delay")
	typeaheadTimeout := fs.Duration("typeahead-timeout", envOrDuration(env, envTypeaheadTimeout, typeahead.DefaultTimeout), "pause that starts a new typeahead query")
	debounce := fs.Duration("debounce", envOrDuration(env, envDebounce, 0), "text field validation debounce (0 validates on every change)")
	activation := fs.String("activation", envOrDefault(env, envActivation, headless.ActivationManual.String()), "tab activation: manual or automatic")
	reload := fs.Duration("reload-interval", envOrDuration(env, envReloadInterval, defaultReloadInterval), "minimum spacing between fixture reloads")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			FixturePath:      *fixturePath,
			Width:            *width,
			Height:           *height,
			ShowFooter:       *footer,
			Verbose:          *verbose,
			ShowDelay:        *showDelay,
			HideDelay:        *hideDelay,
			TypeaheadTimeout: *typeaheadTimeout,
			Debounce:         *debounce,
			Activation:       strings.ToLower(strings.TrimSpace(*activation)),
			ReloadInterval:   *reload,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"fixture":          *fixturePath,
			"width":            strconv.Itoa(*width),
			"height":           strconv.Itoa(*height),
			"footer":           strconv.FormatBool(*footer),
			"trace":            strconv.FormatBool(*trace),
			"verbose":          strconv.FormatBool(*verbose),
			"logFile":          *logFile,
			"showDelay":        showDelay.String(),
			"hideDelay":        hideDelay.String(),
			"typeaheadTimeout": typeaheadTimeout.String(),
			"debounce":         debounce.String(),
			"activation":       *activation,
			"reloadInterval":   reload.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrDuration accepts Go duration strings ("150ms") or bare milliseconds.
func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the application settings against their struct rules.
func Validate(cfg Config) error {
	err := validatorInstance().Struct(cfg.App)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := flagNames[fe.StructField()]
	if name == "" {
		name = fe.StructField()
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be >= 0 (got %v)", name, fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be > 0 (got %v)", name, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s (got %q)", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", name, fe.Tag())
	}
}

var flagNames = map[string]string{
	"Width":            "width",
	"Height":           "height",
	"ShowDelay":        "show-delay",
	"HideDelay":        "hide-delay",
	"TypeaheadTimeout": "typeahead-timeout",
	"Debounce":         "debounce",
	"Activation":       "activation",
	"ReloadInterval":   "reload-interval",
}
