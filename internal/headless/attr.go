package headless

import "strconv"

// Attr is one attribute pair handed to a renderer, e.g. aria-expanded=true.
type Attr struct {
	Key   string
	Value string
}

// Lookup returns the value for key within attrs.
func Lookup(attrs []Attr, key string) (string, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

func boolAttr(key string, value bool) Attr {
	return Attr{Key: key, Value: strconv.FormatBool(value)}
}

func notify(fn func(bool), value bool) {
	if fn != nil {
		fn(value)
	}
}

func emit(fn func(int), index int) {
	if fn != nil {
		fn(index)
	}
}
