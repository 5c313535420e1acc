package backend

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/headless-ui/internal/fixture"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		require.True(t, ok, "events channel closed")
		return evt
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherEmptyPathEmitsDefaultOnce(t *testing.T) {
	w := NewWatcher("", 10*time.Millisecond)
	defer w.Stop()

	evt := nextEvent(t, w)
	require.NoError(t, evt.Err)
	require.Equal(t, KindFixture, evt.Kind)
	require.Equal(t, fixture.Default(), evt.Data)

	w.Wait()
	_, ok := <-w.Events()
	require.False(t, ok)
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	boom := errors.New("boom")
	w := newWatcher("", 0, func(string) (fixture.Fixture, error) {
		return fixture.Fixture{}, boom
	})
	defer w.Stop()

	evt := nextEvent(t, w)
	require.ErrorIs(t, evt.Err, boom)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tabs: [menu]\n"), 0o644))

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	first := nextEvent(t, w)
	require.NoError(t, first.Err)
	require.Equal(t, []string{fixture.KindMenu}, first.Data.Tabs)

	require.NoError(t, os.WriteFile(path, []byte("tabs: [select, tooltip]\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt := <-w.Events():
			if evt.Err == nil && len(evt.Data.Tabs) == 2 {
				require.Equal(t, []string{fixture.KindSelect, fixture.KindTooltip}, evt.Data.Tabs)
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload")
		}
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "fixture", KindFixture.String())
	require.Equal(t, "kind(7)", Kind(7).String())
}
