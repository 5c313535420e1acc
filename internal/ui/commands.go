package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/headless-ui/internal/fixture"
	"github.com/atomicstack/headless-ui/internal/ui/command"
)

// actionHandler maps a fixture menu item to the command handler that reports
// its outcome. Items without an action only report that they ran.
func actionHandler(item fixture.MenuItem) command.Handler {
	switch item.Action {
	case "":
		return command.Respond(fmt.Sprintf("Activated %s", item.Label), nil)
	case fixture.ActionOpenDialog:
		return command.Respond("Opened dialog", nil)
	case fixture.ActionResetField:
		return command.Respond("Reset text field", nil)
	case fixture.ActionDismiss:
		return command.Respond("Dismissed tooltip", nil)
	case fixture.ActionFail:
		return command.Respond("", errors.New(item.Label+" failed"))
	}
	return nil
}
