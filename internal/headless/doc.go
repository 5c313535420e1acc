// Package headless implements the interaction state of dialog, menu, select,
// tabs, tooltip, and text field widgets without rendering anything.
//
// Each widget is a plain value owned by one consumer. The consumer drives it
// through event methods and reads back accessors and attribute pairs to
// render. Event methods take a callback that is invoked synchronously after
// every internal write of that call has happened, so a callback observing the
// widget always sees the post-transition state.
//
// Control strategy:
//   - Uncontrolled widgets commit intents immediately.
//   - Controlled widgets report intents through the callback and leave the
//     authoritative field alone until the owner calls the matching Sync
//     method.
//
// Degenerate input (out-of-range indices, empty collections, disabled
// options, repeated open/close requests) is absorbed as a silent no-op. No
// method returns an error.
//
// Nothing here is safe for concurrent use; owners sharing a widget across
// goroutines must add their own locking.
package headless
