package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/backend"
	"github.com/atomicstack/headless-ui/internal/logging/events"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	path := ""
	if m.backend != nil {
		path = m.backend.Path()
	}
	if evt.Err != nil {
		m.backendErr = evt.Err.Error()
		events.Fixture.Error(path, evt.Err)
		return nil
	}
	m.backendErr = ""
	if evt.Kind != backend.KindFixture {
		return nil
	}
	if m.fixtureLoads == 0 {
		events.Fixture.Load(path, len(evt.Data.Tabs))
	} else {
		events.Fixture.Reload(path)
	}
	m.fixtureLoads++
	return m.applyFixture(evt.Data)
}

// BackendErr returns the last fixture load error, cleared by the next good load.
func (m *Model) BackendErr() string {
	return m.backendErr
}
