package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/headless-ui/internal/app"
	"github.com/atomicstack/headless-ui/internal/config"
	"github.com/atomicstack/headless-ui/internal/logging"
	"github.com/atomicstack/headless-ui/internal/logging/events"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = logging.Path()
	fixture := cfg.App.FixturePath
	if fixture == "" {
		fixture = "built-in"
	}
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"fixture": fixture,
		"tty":     collectTTYDetails(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyDetails struct {
	Detected *ttyProbe  `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals. The
// first one with a readable size becomes Detected.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(files))}
	for i, f := range files {
		probe := probeTTY(names[i], int(f.Fd()))
		if details.Detected == nil && probe.IsTerminal && probe.Error == "" {
			detected := probe
			details.Detected = &detected
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeTTY(name string, fd int) ttyProbe {
	probe := ttyProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width = width
	probe.Height = height
	return probe
}
