package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/headless-ui/internal/backend"
	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/headless"
	"github.com/atomicstack/headless-ui/internal/headless/timing"
	"github.com/atomicstack/headless-ui/internal/logging/events"
	"github.com/atomicstack/headless-ui/internal/theme"
	"github.com/atomicstack/headless-ui/internal/ui/command"
	uistate "github.com/atomicstack/headless-ui/internal/ui/state"
)

var styles = theme.Default()

const (
	tooltipPollInterval = 50 * time.Millisecond
	infoTTL             = 3 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the playground widgets.
type Options struct {
	Width            int
	Height           int
	ShowFooter       bool
	Verbose          bool
	Activation       headless.Activation
	Tooltip          headless.TooltipConfig
	TypeaheadTimeout time.Duration
	Debounce         time.Duration
	// Clock drives tooltip timers and typeahead; nil uses the system clock.
	Clock timing.Clock
}

// Scheduler delivers msg after d. The default wraps tea.Tick.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

type region int

const (
	regionTabs region = iota
	regionPanel
)

// Model implements the Bubble Tea model for the widget playground.
type Model struct {
	opts     Options
	clock    timing.Clock
	schedule Scheduler
	fixture  fixture.Fixture
	ids      widgetIDs

	tabs    *headless.Tabs
	dialog  *headless.Dialog
	menu    *headless.Menu
	sel     *headless.Select
	tooltip *headless.Tooltip
	field   *headless.TextField

	input     textinput.Model
	menuView  uistate.Viewport
	selView   uistate.Viewport
	focus     region
	polling   bool
	validated int

	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHgt     bool
	backend      *backend.Watcher
	backendErr   string
	fixtureLoads int
	keys         keyMap
	help         help.Model

	handlers map[reflect.Type]msgHandler
	bus      *command.Bus
}

// NewModel builds the playground from the default fixture. A non-nil watcher
// replaces it with the configured fixture once the first event arrives.
func NewModel(opts Options, watcher *backend.Watcher) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = timing.SystemClock{}
	}
	m := &Model{
		opts:     opts,
		clock:    clock,
		schedule: tickScheduler,
		ids:      newWidgetIDs(),
		backend:  watcher,
		keys:     defaultKeyMap(),
		help:     help.New(),
		bus:      command.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHgt = true
	}
	m.buildWidgets(fixture.Default())
	m.registerHandlers()
	return m
}

func tickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// SetScheduler replaces how delayed messages are delivered.
func (m *Model) SetScheduler(s Scheduler) {
	if s == nil {
		s = tickScheduler
	}
	m.schedule = s
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend == nil {
		return nil
	}
	return waitForBackendEvent(m.backend)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	if m.focus == regionPanel && m.activeKind() == fixture.KindTextField {
		return m, m.updateInput(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(tooltipTickMsg{}):    m.handleTooltipTickMsg,
		reflect.TypeOf(validateMsg{}):       m.handleValidateMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHgt {
		m.height = size.Height
	}
	m.help.Width = m.width
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.clock.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" {
		return ""
	}
	if !m.infoExpire.IsZero() && m.clock.Now().After(m.infoExpire) {
		m.clearInfo()
		return ""
	}
	return m.infoMsg
}

// Fixture returns the fixture currently driving the widgets.
func (m *Model) Fixture() fixture.Fixture {
	return m.fixture
}

// Tabs exposes the tab list machine, e.g. for tests.
func (m *Model) Tabs() *headless.Tabs {
	return m.tabs
}

func (m *Model) Dialog() *headless.Dialog {
	return m.dialog
}

func (m *Model) Menu() *headless.Menu {
	return m.menu
}

func (m *Model) Select() *headless.Select {
	return m.sel
}

func (m *Model) Tooltip() *headless.Tooltip {
	return m.tooltip
}

func (m *Model) TextField() *headless.TextField {
	return m.field
}

// Err returns the status line error, if any.
func (m *Model) Err() string {
	return m.errMsg
}

// Info returns the live info message.
func (m *Model) Info() string {
	return m.currentInfo()
}

// PanelFocused reports whether keys go to the active widget rather than the
// tab list.
func (m *Model) PanelFocused() bool {
	return m.focus == regionPanel
}
