package events

import "github.com/atomicstack/headless-ui/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type FixtureTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Fixture = FixtureTracer{}
)

func (UITracer) Key(widget, key string, handled bool) {
	logging.Trace("ui.key", map[string]interface{}{"widget": widget, "key": key, "handled": handled})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (FixtureTracer) Load(path string, tabs int) {
	logging.Trace("fixture.load", map[string]interface{}{"path": path, "tabs": tabs})
}

func (FixtureTracer) Reload(path string) {
	logging.Trace("fixture.reload", map[string]interface{}{"path": path})
}

func (FixtureTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("fixture.error", map[string]interface{}{"path": path, "error": err.Error()})
}
