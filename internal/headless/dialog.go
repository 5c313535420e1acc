package headless

import "github.com/atomicstack/headless-ui/internal/headless/selection"

// DialogPhase tracks where a dialog is in its open/close cycle.
type DialogPhase int

const (
	DialogClosed DialogPhase = iota
	DialogOpening
	DialogOpen
	DialogClosing
)

func (p DialogPhase) String() string {
	switch p {
	case DialogOpening:
		return "opening"
	case DialogOpen:
		return "open"
	case DialogClosing:
		return "closing"
	default:
		return "closed"
	}
}

// DialogTransition records the last requested direction.
type DialogTransition int

const (
	TransitionNone DialogTransition = iota
	TransitionOpenRequested
	TransitionCloseRequested
)

func (t DialogTransition) String() string {
	switch t {
	case TransitionOpenRequested:
		return "open-requested"
	case TransitionCloseRequested:
		return "close-requested"
	default:
		return "none"
	}
}

// DialogRole is the surface role handed to renderers.
const DialogRole = "dialog"

// Dialog holds the lifecycle of a dialog surface.
type Dialog struct {
	phase            DialogPhase
	controlMode      selection.ControlStrategy
	escapeCloses     bool
	focusTrapEngaged bool
	lastTransition   DialogTransition
	modal            bool
}

// NewUncontrolledDialog returns a modal dialog that owns its phase.
func NewUncontrolledDialog(defaultOpen bool) *Dialog {
	d := &Dialog{
		phase:        DialogClosed,
		controlMode:  selection.Uncontrolled,
		escapeCloses: true,
		modal:        true,
	}
	if defaultOpen {
		d.phase = DialogOpen
		d.focusTrapEngaged = true
	}
	return d
}

// NewControlledDialog returns a closed modal dialog whose phase is committed by
// the owner through SyncOpen.
func NewControlledDialog() *Dialog {
	return &Dialog{
		phase:        DialogClosed,
		controlMode:  selection.Controlled,
		escapeCloses: true,
		modal:        true,
	}
}

// Open requests the dialog to open. Requests while opening or open are ignored.
func (d *Dialog) Open(fn func(bool)) {
	if d.phase == DialogOpening || d.phase == DialogOpen {
		return
	}
	d.phase = DialogOpening
	d.focusTrapEngaged = false
	d.lastTransition = TransitionOpenRequested
	if !d.controlMode.IsControlled() {
		d.FinishOpen()
	}
	notify(fn, true)
}

// Close requests the dialog to close. Requests while closing or closed are ignored.
func (d *Dialog) Close(fn func(bool)) {
	if d.phase == DialogClosing || d.phase == DialogClosed {
		return
	}
	d.phase = DialogClosing
	d.focusTrapEngaged = false
	d.lastTransition = TransitionCloseRequested
	if !d.controlMode.IsControlled() {
		d.FinishClose()
	}
	notify(fn, false)
}

// Toggle closes a visible dialog and opens a hidden one.
func (d *Dialog) Toggle(fn func(bool)) {
	if d.IsOpen() {
		d.Close(fn)
		return
	}
	d.Open(fn)
}

// HandleEscape closes the dialog when escape dismissal is enabled and the
// dialog is visible. It reports whether the key was consumed.
func (d *Dialog) HandleEscape(fn func(bool)) bool {
	if !d.escapeCloses || !d.IsOpen() {
		return false
	}
	d.Close(fn)
	return true
}

// SyncOpen commits the owner's open state, skipping transitional phases.
func (d *Dialog) SyncOpen(open bool) {
	if open {
		d.phase = DialogOpen
		d.focusTrapEngaged = d.modal
		d.lastTransition = TransitionOpenRequested
		return
	}
	d.phase = DialogClosed
	d.focusTrapEngaged = false
	d.lastTransition = TransitionCloseRequested
}

// FinishOpen completes an Opening phase, e.g. once an entry animation ends.
func (d *Dialog) FinishOpen() {
	if d.phase != DialogOpening {
		return
	}
	d.phase = DialogOpen
	d.focusTrapEngaged = d.modal
}

// FinishClose completes a Closing phase, e.g. once an exit animation ends.
func (d *Dialog) FinishClose() {
	if d.phase != DialogClosing {
		return
	}
	d.phase = DialogClosed
	d.focusTrapEngaged = false
}

// SetModal toggles modality. The focus trap follows immediately.
func (d *Dialog) SetModal(modal bool) {
	d.modal = modal
	if !modal {
		d.focusTrapEngaged = false
		return
	}
	if d.phase == DialogOpen {
		d.focusTrapEngaged = true
	}
}

// SetEscapeCloses controls whether HandleEscape dismisses the dialog.
func (d *Dialog) SetEscapeCloses(enabled bool) {
	d.escapeCloses = enabled
}

// IsOpen reports whether the surface is visible, including transitions.
func (d *Dialog) IsOpen() bool {
	return d.phase != DialogClosed
}

func (d *Dialog) Phase() DialogPhase                     { return d.phase }
func (d *Dialog) ControlMode() selection.ControlStrategy { return d.controlMode }
func (d *Dialog) EscapeCloses() bool                     { return d.escapeCloses }
func (d *Dialog) FocusTrapEngaged() bool                 { return d.focusTrapEngaged }
func (d *Dialog) LastTransition() DialogTransition       { return d.lastTransition }
func (d *Dialog) Modal() bool                            { return d.modal }

func (d *Dialog) Role() string {
	return DialogRole
}

// SurfaceAttributes describes the dialog surface.
func (d *Dialog) SurfaceAttributes() []Attr {
	return []Attr{
		{Key: "role", Value: DialogRole},
		boolAttr("aria-modal", d.modal),
		{Key: "data-state", Value: d.phase.String()},
		boolAttr("data-focus-trap", d.focusTrapEngaged),
	}
}

// TriggerAttributes describes the control that opens the dialog. An empty
// surfaceID omits aria-controls.
func (d *Dialog) TriggerAttributes(surfaceID string) []Attr {
	attrs := []Attr{
		{Key: "aria-haspopup", Value: DialogRole},
		boolAttr("aria-expanded", d.IsOpen()),
	}
	if surfaceID != "" {
		attrs = append(attrs, Attr{Key: "aria-controls", Value: surfaceID})
	}
	return attrs
}
