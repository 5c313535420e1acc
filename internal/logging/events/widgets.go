package events

import "github.com/atomicstack/headless-ui/internal/logging"

type DialogTracer struct{}

type MenuTracer struct{}

type SelectTracer struct{}

type TabsTracer struct{}

type TooltipTracer struct{}

type TextFieldTracer struct{}

var (
	Dialog    = DialogTracer{}
	Menu      = MenuTracer{}
	Select    = SelectTracer{}
	Tabs      = TabsTracer{}
	Tooltip   = TooltipTracer{}
	TextField = TextFieldTracer{}
)

func (DialogTracer) Notify(id string, open bool, phase string) {
	logging.Trace("dialog.notify", map[string]interface{}{"id": id, "open": open, "phase": phase})
}

func (DialogTracer) Escape(id string, closed bool) {
	logging.Trace("dialog.escape", map[string]interface{}{"id": id, "closed": closed})
}

func (MenuTracer) Open(id string, open bool) {
	logging.Trace("menu.open", map[string]interface{}{"id": id, "open": open})
}

func (MenuTracer) Highlight(id string, index int) {
	logging.Trace("menu.highlight", map[string]interface{}{"id": id, "index": index})
}

func (MenuTracer) Activate(id string, index int, label string) {
	logging.Trace("menu.activate", map[string]interface{}{"id": id, "index": index, "label": label})
}

func (SelectTracer) Open(id string, open bool) {
	logging.Trace("select.open", map[string]interface{}{"id": id, "open": open})
}

func (SelectTracer) Commit(id string, index int, label string) {
	logging.Trace("select.commit", map[string]interface{}{"id": id, "index": index, "label": label})
}

func (SelectTracer) Typeahead(id, query string, highlighted int) {
	logging.Trace("select.typeahead", map[string]interface{}{"id": id, "query": query, "highlighted": highlighted})
}

func (TabsTracer) Outcome(focused, selected int) {
	logging.Trace("tabs.outcome", map[string]interface{}{"focused": focused, "selected": selected})
}

func (TooltipTracer) Visibility(id string, visible bool) {
	logging.Trace("tooltip.visibility", map[string]interface{}{"id": id, "visible": visible})
}

func (TextFieldTracer) Change(id, value string, dirty bool) {
	logging.Trace("textfield.change", map[string]interface{}{"id": id, "value": value, "dirty": dirty})
}

func (TextFieldTracer) Commit(id string, hasErrors, previouslyVisited bool) {
	logging.Trace("textfield.commit", map[string]interface{}{"id": id, "errors": hasErrors, "visited": previouslyVisited})
}

func (TextFieldTracer) Reset(id string, clearedErrors bool) {
	logging.Trace("textfield.reset", map[string]interface{}{"id": id, "cleared": clearedErrors})
}

func (TextFieldTracer) Validate(id string, errors []string) {
	logging.Trace("textfield.validate", map[string]interface{}{"id": id, "errors": errors})
}
