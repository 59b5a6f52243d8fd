package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightYellow, "11"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.color, got, tc.expected)
		}
	}
}

func TestColors(t *testing.T) {
	colors := Colors()
	if len(colors) != int(ColorGray)+1 {
		t.Fatalf("len(Colors()) = %d, expected %d", len(colors), int(ColorGray)+1)
	}
	for i, c := range colors {
		if c != Color(i) {
			t.Errorf("Colors()[%d] = %d", i, c)
		}
		if c != ColorDefault && c.ANSI() == "" {
			t.Errorf("Color(%d) has no palette index", c)
		}
	}
}
