package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"red", ColorRed, true},
		{"bright_cyan", ColorBrightCyan, true},
		{"orange", ColorOrange, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestColorCode(t *testing.T) {
	if ColorDefault.Code() != "" {
		t.Errorf("ColorDefault.Code() = %q, expected empty", ColorDefault.Code())
	}
	if ColorOrange.Code() != "208" {
		t.Errorf("ColorOrange.Code() = %q, expected 208", ColorOrange.Code())
	}
	if Color(200).Code() != "" {
		t.Error("out of range color should map to the terminal default")
	}
}
