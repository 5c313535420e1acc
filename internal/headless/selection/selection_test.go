package selection

import "testing"

func TestClampIndex(t *testing.T) {
	if got := ClampIndex(2, 3); got != 2 {
		t.Fatalf("expected in-range index preserved, got %d", got)
	}
	if got := ClampIndex(3, 3); got != NoIndex {
		t.Fatalf("expected NoIndex for index == count, got %d", got)
	}
	if got := ClampIndex(NoIndex, 3); got != NoIndex {
		t.Fatalf("expected NoIndex passthrough, got %d", got)
	}
	if got := ClampIndex(0, 0); got != NoIndex {
		t.Fatalf("expected NoIndex for empty collection, got %d", got)
	}
}

func TestWrapIndex(t *testing.T) {
	if got := WrapIndex(0, -1, 3); got != 2 {
		t.Fatalf("expected wrap to 2, got %d", got)
	}
	if got := WrapIndex(2, 1, 3); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := WrapIndex(1, 5, 3); got != 0 {
		t.Fatalf("expected large delta to wrap to 0, got %d", got)
	}
	if got := WrapIndex(1, -4, 3); got != 0 {
		t.Fatalf("expected large negative delta to wrap to 0, got %d", got)
	}
	if got := WrapIndex(NoIndex, 1, 3); got != 0 {
		t.Fatalf("expected first item without current, got %d", got)
	}
	if got := WrapIndex(NoIndex, -1, 3); got != 2 {
		t.Fatalf("expected last item without current, got %d", got)
	}
	if got := WrapIndex(0, 1, 0); got != NoIndex {
		t.Fatalf("expected NoIndex for empty collection, got %d", got)
	}
}

func TestControlStrategy(t *testing.T) {
	if Uncontrolled.IsControlled() {
		t.Fatalf("expected uncontrolled strategy not to be controlled")
	}
	if !Controlled.IsControlled() {
		t.Fatalf("expected controlled strategy to be controlled")
	}
	if Controlled.String() != "controlled" || Uncontrolled.String() != "uncontrolled" {
		t.Fatalf("unexpected strategy names %q/%q", Controlled, Uncontrolled)
	}
}
