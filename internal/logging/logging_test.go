package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })
	SetTraceEnabled(false)

	Trace("dialog.open", map[string]interface{}{"id": "d1"})
	require.Zero(t, buf.Len())
}

func TestTraceWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetOutput(nil)
		SetTraceEnabled(false)
	})

	Trace("select.commit", map[string]interface{}{"index": 2})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "select.commit", entry["event"])
	require.Equal(t, "trace", entry["level"])
	require.Contains(t, entry, "time")
	payload, ok := entry["payload"].(map[string]interface{})
	require.True(t, ok)
	require.EqualValues(t, 2, payload["index"])
}

func TestErrorAlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Error(nil)
	require.Zero(t, buf.Len())
	Error(errors.New("boom"))
	require.Contains(t, buf.String(), `"error":"boom"`)
}

func TestConfigureCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })
	require.Equal(t, path, Path())

	Error(errors.New("to file"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")

	Configure("   ")
	require.Equal(t, defaultLogFile, Path())
}
