package selection

// NoIndex marks the absence of a highlighted, selected, or focused item.
const NoIndex = -1

// ControlStrategy decides who owns a widget's authoritative field.
//
// Uncontrolled widgets mutate their own state when an intent arrives.
// Controlled widgets only report the intent through the caller's callback; the
// owner commits the change by calling the matching Sync method.
type ControlStrategy int

const (
	Uncontrolled ControlStrategy = iota
	Controlled
)

// IsControlled reports whether the owner commits changes via Sync methods.
func (c ControlStrategy) IsControlled() bool {
	return c == Controlled
}

func (c ControlStrategy) String() string {
	switch c {
	case Uncontrolled:
		return "uncontrolled"
	case Controlled:
		return "controlled"
	default:
		return "unknown"
	}
}

// ClampIndex returns index when it addresses one of count items, NoIndex otherwise.
func ClampIndex(index, count int) int {
	if index < 0 || index >= count {
		return NoIndex
	}
	return index
}

// WrapIndex moves current by delta positions with wraparound in both
// directions. Without a current item, a non-negative delta lands on the first
// item and a negative delta on the last.
func WrapIndex(current, delta, count int) int {
	if count <= 0 {
		return NoIndex
	}
	if current < 0 {
		if delta < 0 {
			return count - 1
		}
		return 0
	}
	next := (current + delta) % count
	if next < 0 {
		next += count
	}
	return next
}
