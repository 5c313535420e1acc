package state

import "testing"

func TestViewportFollowsCursorDown(t *testing.T) {
	var v Viewport
	v.Ensure(6, 10, 4)
	if v.Offset != 3 {
		t.Fatalf("expected offset 3, got %d", v.Offset)
	}
	start, end := v.Window(10, 4)
	if start != 3 || end != 7 {
		t.Fatalf("expected window 3-7, got %d-%d", start, end)
	}
}

func TestViewportFollowsCursorUp(t *testing.T) {
	v := Viewport{Offset: 5}
	v.Ensure(2, 10, 4)
	if v.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", v.Offset)
	}
}

func TestViewportClampsAfterShrink(t *testing.T) {
	v := Viewport{Offset: 8}
	v.Ensure(-1, 5, 3)
	if v.Offset != 2 {
		t.Fatalf("expected offset clamped to 2, got %d", v.Offset)
	}
	v.Ensure(0, 0, 3)
	if v.Offset != 0 {
		t.Fatalf("expected reset offset, got %d", v.Offset)
	}
}

func TestViewportWindowWithoutLimit(t *testing.T) {
	v := Viewport{Offset: 4}
	start, end := v.Window(6, 0)
	if start != 0 || end != 6 {
		t.Fatalf("expected full window, got %d-%d", start, end)
	}
}
