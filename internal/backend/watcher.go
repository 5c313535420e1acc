package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/headless-ui/internal/fixture"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindFixture Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindFixture:
		return "fixture"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event conveys a freshly loaded fixture or the error that prevented it.
type Event struct {
	Kind Kind
	Data fixture.Fixture
	Err  error
}

// Loader reads a fixture from path.
type Loader func(path string) (fixture.Fixture, error)

// Watcher loads the fixture once and then reloads it whenever the file
// changes on disk. Reloads are throttled to at most one per interval.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. An empty path emits the default fixture
// once and never reloads.
func NewWatcher(path string, interval time.Duration) *Watcher {
	return newWatcher(path, interval, fixture.Load)
}

func newWatcher(path string, interval time.Duration, load Loader) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the watched fixture path.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	if !w.emit() || w.path == "" {
		return
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.send(Event{Kind: KindFixture, Err: fmt.Errorf("start fixture watcher: %w", err)})
		return
	}
	defer fsw.Close()

	// Editors often replace files by rename, so watch the directory.
	target := filepath.Clean(w.path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		w.send(Event{Kind: KindFixture, Err: fmt.Errorf("watch %s: %w", filepath.Dir(target), err)})
		return
	}

	throttle := newThrottle(w.interval)
	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(evt, target) {
				continue
			}
			if !throttle.wait(w.ctx) {
				return
			}
			drain(fsw.Events)
			if !w.emit() {
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if !w.send(Event{Kind: KindFixture, Err: fmt.Errorf("fixture watcher: %w", err)}) {
				return
			}
		}
	}
}

func (w *Watcher) emit() bool {
	data, err := w.load(w.path)
	return w.send(Event{Kind: KindFixture, Data: data, Err: err})
}

func (w *Watcher) send(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func relevant(evt fsnotify.Event, target string) bool {
	if filepath.Clean(evt.Name) != target {
		return false
	}
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename)
}

// drain discards events queued during a throttle wait; the reload that
// follows already observes them.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
