package headless

import (
	"slices"
	"strconv"
	"time"

	"github.com/atomicstack/headless-ui/internal/headless/selection"
)

// TextFieldChange is handed to Change callbacks. Debounce is zero when the
// field has none.
type TextFieldChange struct {
	Value    string
	Dirty    bool
	Debounce time.Duration
}

// TextFieldCommit is handed to Commit callbacks.
type TextFieldCommit struct {
	Value             string
	HasErrors         bool
	PreviouslyVisited bool
}

// TextFieldReset is handed to Reset callbacks.
type TextFieldReset struct {
	Value         string
	ClearedErrors bool
}

// TextField tracks a text input's value, dirty and visited flags and
// validation errors.
type TextField struct {
	controlMode  selection.ControlStrategy
	value        string
	initialValue string
	pending      string
	hasPending   bool
	dirty        bool
	visited      bool
	errors       []string
	debounce     time.Duration
}

func NewUncontrolledTextField(initial string, debounce time.Duration) *TextField {
	return newTextField(selection.Uncontrolled, initial, debounce)
}

// NewControlledTextField returns a field whose edits stay pending until the
// owner calls SyncValue.
func NewControlledTextField(initial string, debounce time.Duration) *TextField {
	return newTextField(selection.Controlled, initial, debounce)
}

func newTextField(mode selection.ControlStrategy, initial string, debounce time.Duration) *TextField {
	if debounce < 0 {
		debounce = 0
	}
	return &TextField{
		controlMode:  mode,
		value:        initial,
		initialValue: initial,
		debounce:     debounce,
	}
}

// Change records an edit and reports the new value.
func (f *TextField) Change(next string, fn func(TextFieldChange)) {
	if f.controlMode.IsControlled() {
		f.pending = next
		f.hasPending = true
	} else {
		f.value = next
	}
	f.dirty = f.Value() != f.initialValue
	if fn != nil {
		fn(TextFieldChange{Value: f.Value(), Dirty: f.dirty, Debounce: f.debounce})
	}
}

// Commit marks the field visited, e.g. on blur or Enter. The value is left
// alone.
func (f *TextField) Commit(fn func(TextFieldCommit)) {
	previously := f.visited
	f.visited = true
	if fn != nil {
		fn(TextFieldCommit{Value: f.Value(), HasErrors: len(f.errors) > 0, PreviouslyVisited: previously})
	}
}

// Reset restores the initial value and clears errors, dirty and visited.
func (f *TextField) Reset(fn func(TextFieldReset)) {
	cleared := len(f.errors) > 0
	if f.controlMode.IsControlled() {
		f.pending = f.initialValue
		f.hasPending = true
	} else {
		f.value = f.initialValue
	}
	f.errors = nil
	f.dirty = false
	f.visited = false
	if fn != nil {
		fn(TextFieldReset{Value: f.Value(), ClearedErrors: cleared})
	}
}

// SyncValue applies the authoritative value and makes it the new baseline.
func (f *TextField) SyncValue(value string) {
	f.value = value
	f.initialValue = value
	f.pending = ""
	f.hasPending = false
	f.dirty = false
}

func (f *TextField) SetErrors(errors []string) {
	f.errors = slices.Clone(errors)
}

func (f *TextField) ClearErrors() {
	f.errors = nil
}

// SetInitialValue moves the baseline used for dirty tracking.
func (f *TextField) SetInitialValue(value string) {
	f.initialValue = value
	f.dirty = f.Value() != f.initialValue
}

// Value returns a pending controlled edit if one exists.
func (f *TextField) Value() string {
	if f.hasPending {
		return f.pending
	}
	return f.value
}

func (f *TextField) InitialValue() string {
	return f.initialValue
}

func (f *TextField) Dirty() bool {
	return f.dirty
}

func (f *TextField) Visited() bool {
	return f.visited
}

func (f *TextField) Errors() []string {
	return slices.Clone(f.errors)
}

func (f *TextField) HasErrors() bool {
	return len(f.errors) > 0
}

func (f *TextField) Debounce() time.Duration {
	return f.debounce
}

func (f *TextField) ControlMode() selection.ControlStrategy {
	return f.controlMode
}

func (f *TextField) Clone() *TextField {
	clone := *f
	clone.errors = slices.Clone(f.errors)
	return &clone
}

// InputAttributes describes the input element. errorID feeds
// aria-errormessage when the field has errors.
func (f *TextField) InputAttributes(errorID string) []Attr {
	attrs := []Attr{
		boolAttr("aria-invalid", len(f.errors) > 0),
		boolAttr("data-dirty", f.dirty),
		boolAttr("data-visited", f.visited),
	}
	if len(f.errors) > 0 {
		attrs = append(attrs, Attr{Key: "data-error-count", Value: strconv.Itoa(len(f.errors))})
		if errorID != "" {
			attrs = append(attrs, Attr{Key: "aria-errormessage", Value: errorID})
		}
	}
	return attrs
}
