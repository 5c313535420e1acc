package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/logging/events"
)

// Handler turns a request into the command that performs it.
type Handler func(Request) tea.Cmd

// Request encapsulates a menu item activation.
type Request struct {
	ID      string
	Label   string
	Action  string
	Handler Handler
}

// Result reports the outcome of an executed action back to the model.
type Result struct {
	ID     string
	Action string
	Info   string
	Err    error
}

// Bus coordinates the execution of menu actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a handler into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(req)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Respond builds a handler that reports info, or err when non-nil.
func Respond(info string, err error) Handler {
	return func(req Request) tea.Cmd {
		return func() tea.Msg {
			return Result{ID: req.ID, Action: req.Action, Info: info, Err: err}
		}
	}
}
