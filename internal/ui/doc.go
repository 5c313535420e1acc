// Package ui contains the Bubble Tea playground that drives the headless
// widget machines. The machines own all interaction state; this package only
// translates terminal input into machine operations and renders the state and
// attribute pairs they report.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which routes each tea.Msg through a
//     typed handler registry. Key presses go to the tab list or to the active
//     panel depending on which region holds focus. Messages without a handler
//     are forwarded to the text input while the text field panel is focused.
//   - Delayed work (the tooltip poll loop and debounced validation) is
//     requested through a Scheduler. The program uses tea.Tick; the test
//     Harness queues the messages and delivers them when its clock advances.
//   - Menu item actions run through the internal/ui/command bus and come back
//     as command.Result messages whose effects may touch other widgets.
//
// Backend interactions:
//   - A backend.Watcher streams fixture reloads. applyBackendEvent reconciles
//     the live machines with the new item, option and tab counts so existing
//     highlight and selection survive whenever they still fit.
package ui
