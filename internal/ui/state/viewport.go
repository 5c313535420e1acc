// Package state holds presentation-only bookkeeping for the playground, such
// as which slice of a long list is on screen.
package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// Ensure adjusts the offset so cursor stays within maxVisible rows of a list
// holding total rows. A negative cursor keeps the current offset in range.
func (v *Viewport) Ensure(cursor, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < 0 {
		return
	}
	if cursor >= total {
		cursor = total - 1
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = cursor - maxVisible + 1
	}
}

// Window returns the half-open range of rows to draw.
func (v *Viewport) Window(total, maxVisible int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if maxVisible <= 0 || maxVisible >= total {
		return 0, total
	}
	start := v.Offset
	if start < 0 {
		start = 0
	}
	if start+maxVisible > total {
		start = total - maxVisible
	}
	return start, start + maxVisible
}
