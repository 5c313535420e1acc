package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	got := Format([][]string{
		{"trigger", "aria-expanded", "true"},
		{"surface", "role", "menu"},
	}, nil)
	want := []string{
		"trigger  aria-expanded  true",
		"surface  role           menu",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"a", "1"}, {"b", "100"}}, []Alignment{AlignLeft, AlignRight})
	if got[0] != "a    1" || got[1] != "b  100" {
		t.Fatalf("unexpected rows %q", got)
	}
}

func TestFormatIgnoresANSIWidth(t *testing.T) {
	styled := "\x1b[1mkey\x1b[0m"
	got := Format([][]string{{styled, "x"}, {"longer", "y"}}, nil)
	if got[0] != styled+"     x" {
		t.Fatalf("expected styled cell padded to plain width, got %q", got[0])
	}
}

func TestFormatWithHeaderAddsRule(t *testing.T) {
	got := FormatWithHeader([]string{"element", "key"}, [][]string{{"tab", "role"}}, nil)
	if len(got) != 3 {
		t.Fatalf("expected header, rule and row, got %d lines", len(got))
	}
	if got[1] != "───────  ────" {
		t.Fatalf("unexpected rule %q", got[1])
	}
	if got[2] != "tab      role" {
		t.Fatalf("unexpected row %q", got[2])
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
