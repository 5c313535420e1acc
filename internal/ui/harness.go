package ui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/headless/timing"
)

// Harness drives the UI model programmatically for integration tests.
// Delayed messages are queued instead of sleeping and are delivered by
// Advance or Flush.
type Harness struct {
	model   *Model
	pending []delayed
	quit    bool
}

type delayed struct {
	due time.Time
	msg tea.Msg
}

// NewHarness creates a harness for the provided model and takes over its
// scheduler.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.SetScheduler(h.schedule)
	}
	return h
}

func (h *Harness) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	due := h.model.clock.Now().Add(d)
	return func() tea.Msg {
		h.pending = append(h.pending, delayed{due: due, msg: msg})
		return nil
	}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.deliver(msg)
}

// Press sends a special key such as tea.KeyEnter.
func (h *Harness) Press(keyType tea.KeyType) {
	h.Send(tea.KeyMsg{Type: keyType})
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Advance moves the model clock forward by d, delivering queued messages in
// due order along the way. A manual clock is stepped to each due time so
// timers observe the same instants a real program would.
func (h *Harness) Advance(d time.Duration) {
	target := h.model.clock.Now().Add(d)
	manual, _ := h.model.clock.(*timing.ManualClock)
	for {
		next, ok := h.next()
		if !ok || next.due.After(target) {
			break
		}
		h.pending = h.pending[1:]
		if manual != nil && next.due.After(manual.Now()) {
			manual.Set(next.due)
		}
		h.deliver(next.msg)
	}
	if manual != nil {
		manual.Set(target)
	}
}

// Flush delivers queued messages until none remain, moving a manual clock to
// each due time. Delivery stops after maxFlush messages.
func (h *Harness) Flush() {
	manual, _ := h.model.clock.(*timing.ManualClock)
	for i := 0; i < maxFlush; i++ {
		next, ok := h.next()
		if !ok {
			return
		}
		h.pending = h.pending[1:]
		if manual != nil && next.due.After(manual.Now()) {
			manual.Set(next.due)
		}
		h.deliver(next.msg)
	}
}

const maxFlush = 1000

func (h *Harness) next() (delayed, bool) {
	if len(h.pending) == 0 {
		return delayed{}, false
	}
	sort.SliceStable(h.pending, func(i, j int) bool {
		return h.pending[i].due.Before(h.pending[j].due)
	})
	return h.pending[0], true
}

func (h *Harness) deliver(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.processCmd(c)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		h.deliver(msg)
	}
}

// Pending reports how many delayed messages are queued.
func (h *Harness) Pending() int {
	return len(h.pending)
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
