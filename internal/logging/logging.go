package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const defaultLogFile = "headless-ui.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	output       io.Writer
)

// fileSink opens the log file for each entry.
type fileSink struct {
	path string
}

func (s fileSink) Write(p []byte) (int, error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return f.Write(p)
}

func logger() zerolog.Logger {
	var w io.Writer = fileSink{path: logPath}
	if output != nil {
		w = output
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func init() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// Error writes err to the shared log file as an error entry.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	log := logger()
	mu.Unlock()
	log.Error().Err(err).Send()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	enabled := traceEnabled
	log := logger()
	mu.Unlock()
	if !enabled {
		return
	}
	entry := log.Trace().Str("event", event)
	if len(payload) > 0 {
		entry = entry.Interface("payload", payload)
	}
	entry.Send()
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// SetOutput redirects entries to w instead of the log file. Passing nil
// restores the file.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

// Path returns the configured log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}
