package headless

import (
	"time"

	"github.com/atomicstack/headless-ui/internal/headless/timing"
)

const TooltipRole = "tooltip"

// TooltipConfig holds the tooltip delays and pointer policy.
type TooltipConfig struct {
	ShowDelay   time.Duration
	HideDelay   time.Duration
	Dismissible bool
	// Interactive keeps the tooltip open while the pointer rests on it.
	Interactive bool
}

// DefaultTooltipConfig returns 150ms show, 100ms hide, dismissible and
// interactive.
func DefaultTooltipConfig() TooltipConfig {
	return TooltipConfig{
		ShowDelay:   150 * time.Millisecond,
		HideDelay:   100 * time.Millisecond,
		Dismissible: true,
		Interactive: true,
	}
}

// TooltipChange reports a visibility flip. Changed is false when the call
// left visibility alone.
type TooltipChange struct {
	Changed bool
	Visible bool
}

// Merge folds next into c; the newer change wins.
func (c TooltipChange) Merge(next TooltipChange) TooltipChange {
	if next.Changed {
		return next
	}
	return c
}

func shown(visible bool) TooltipChange {
	return TooltipChange{Changed: true, Visible: visible}
}

// Tooltip coordinates hover and focus on an anchor with delayed show and hide
// timers. Delayed flips only happen when Poll or another event resolves due
// timers.
type Tooltip struct {
	config         TooltipConfig
	clock          timing.Clock
	visible        bool
	anchorFocused  bool
	anchorHovered  bool
	surfaceHovered bool
	showTimer      timing.Timer
	hideTimer      timing.Timer
}

// NewTooltip returns a hidden tooltip. A nil clock uses the system clock.
func NewTooltip(config TooltipConfig, clock timing.Clock) *Tooltip {
	if clock == nil {
		clock = timing.SystemClock{}
	}
	return &Tooltip{config: config, clock: clock}
}

func (t *Tooltip) FocusAnchor() TooltipChange {
	t.anchorFocused = true
	return t.queueShow()
}

func (t *Tooltip) BlurAnchor() TooltipChange {
	t.anchorFocused = false
	return t.queueHide()
}

func (t *Tooltip) PointerEnterAnchor() TooltipChange {
	t.anchorHovered = true
	return t.queueShow()
}

func (t *Tooltip) PointerLeaveAnchor() TooltipChange {
	t.anchorHovered = false
	return t.queueHide()
}

// PointerEnterTooltip keeps an interactive tooltip open while hovered.
func (t *Tooltip) PointerEnterTooltip() TooltipChange {
	if !t.config.Interactive {
		return TooltipChange{}
	}
	t.surfaceHovered = true
	t.hideTimer.Cancel()
	return TooltipChange{}
}

func (t *Tooltip) PointerLeaveTooltip() TooltipChange {
	if !t.config.Interactive {
		return TooltipChange{}
	}
	t.surfaceHovered = false
	return t.queueHide()
}

// Dismiss hides a visible dismissible tooltip at once, e.g. on Escape.
func (t *Tooltip) Dismiss() TooltipChange {
	if !t.config.Dismissible || !t.visible {
		return TooltipChange{}
	}
	t.showTimer.Cancel()
	t.hideTimer.Cancel()
	t.visible = false
	return shown(false)
}

// Poll resolves due timers. Call it once per frame or tick.
func (t *Tooltip) Poll() TooltipChange {
	return t.resolveTimers()
}

func (t *Tooltip) queueShow() TooltipChange {
	t.hideTimer.Cancel()
	if t.visible {
		t.showTimer.Cancel()
		return TooltipChange{}
	}
	if t.config.ShowDelay <= 0 {
		t.showTimer.Cancel()
		t.visible = true
		return shown(true)
	}
	t.showTimer.Schedule(t.clock, t.config.ShowDelay)
	return t.resolveTimers()
}

func (t *Tooltip) queueHide() TooltipChange {
	if t.keepVisible() {
		return TooltipChange{}
	}
	t.showTimer.Cancel()
	if !t.visible {
		t.hideTimer.Cancel()
		return TooltipChange{}
	}
	if t.config.HideDelay <= 0 {
		t.hideTimer.Cancel()
		t.visible = false
		return shown(false)
	}
	t.hideTimer.Schedule(t.clock, t.config.HideDelay)
	return t.resolveTimers()
}

// resolveTimers checks the show timer before the hide timer.
func (t *Tooltip) resolveTimers() TooltipChange {
	var change TooltipChange
	if t.showTimer.FireIfDue(t.clock) && !t.visible {
		t.visible = true
		change = change.Merge(shown(true))
	}
	if t.hideTimer.FireIfDue(t.clock) && t.visible && !t.keepVisible() {
		t.visible = false
		change = change.Merge(shown(false))
	}
	return change
}

func (t *Tooltip) keepVisible() bool {
	return t.anchorFocused || t.anchorHovered || (t.config.Interactive && t.surfaceHovered)
}

// SetClock swaps the time source, e.g. for a manual clock in tests.
func (t *Tooltip) SetClock(clock timing.Clock) {
	if clock == nil {
		clock = timing.SystemClock{}
	}
	t.clock = clock
}

func (t *Tooltip) Visible() bool {
	return t.visible
}

func (t *Tooltip) AnchorFocused() bool {
	return t.anchorFocused
}

func (t *Tooltip) AnchorHovered() bool {
	return t.anchorHovered
}

func (t *Tooltip) SurfaceHovered() bool {
	return t.surfaceHovered
}

func (t *Tooltip) Config() TooltipConfig {
	return t.config
}

// ShowPending reports an armed show timer.
func (t *Tooltip) ShowPending() bool {
	return t.showTimer.Pending()
}

// HidePending reports an armed hide timer.
func (t *Tooltip) HidePending() bool {
	return t.hideTimer.Pending()
}

func (t *Tooltip) Clone() *Tooltip {
	clone := *t
	return &clone
}

func (t *Tooltip) Role() string {
	return TooltipRole
}

func (t *Tooltip) state() string {
	if t.visible {
		return "visible"
	}
	return "hidden"
}

// AnchorAttributes describes the element the tooltip labels. aria-describedby
// is only set while visible.
func (t *Tooltip) AnchorAttributes(tooltipID string) []Attr {
	attrs := []Attr{{Key: "data-state", Value: t.state()}}
	if t.visible && tooltipID != "" {
		attrs = append(attrs, Attr{Key: "aria-describedby", Value: tooltipID})
	}
	return attrs
}

func (t *Tooltip) SurfaceAttributes() []Attr {
	return []Attr{
		{Key: "role", Value: TooltipRole},
		{Key: "data-state", Value: t.state()},
		boolAttr("aria-hidden", !t.visible),
		boolAttr("data-interactive", t.config.Interactive),
	}
}
