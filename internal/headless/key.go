package headless

// Key is a navigation key understood by the widgets.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// ParseKey maps a DOM-style key name to a Key.
func ParseKey(name string) Key {
	switch name {
	case "ArrowUp", "Up":
		return KeyArrowUp
	case "ArrowDown", "Down":
		return KeyArrowDown
	case "ArrowLeft", "Left":
		return KeyArrowLeft
	case "ArrowRight", "Right":
		return KeyArrowRight
	case "Home":
		return KeyHome
	case "End":
		return KeyEnd
	case "Enter":
		return KeyEnter
	case " ", "Space", "Spacebar":
		return KeySpace
	case "Escape", "Esc":
		return KeyEscape
	default:
		return KeyUnknown
	}
}

func (k Key) activates() bool {
	return k == KeyEnter || k == KeySpace
}
