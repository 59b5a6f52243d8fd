package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	plate := NewRect(10, 20, 8, 1)

	tests := []struct {
		name     string
		item     Rect
		expected bool
	}{
		{"item on the plate", NewRect(12, 20, 2, 1), true},
		{"item above the plate", NewRect(12, 19, 2, 1), false},
		{"touching the left end", NewRect(8, 20, 2, 1), false},
		{"overlapping the left end", NewRect(9, 20, 2, 1), true},
		{"touching the right end", NewRect(18, 20, 2, 1), false},
		{"overlapping the right end", NewRect(17, 20, 2, 1), true},
		{"wider than the plate", NewRect(0, 18, 40, 4), true},
		{"empty rect", NewRect(12, 20, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plate.Intersects(tc.item); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.item.Intersects(plate); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 79); got != 0 {
		t.Errorf("Clamp(-3, 0, 79) = %d, expected 0", got)
	}
	if got := Clamp(120, 0, 79); got != 79 {
		t.Errorf("Clamp(120, 0, 79) = %d, expected 79", got)
	}
	if got := Clamp(40, 0, 79); got != 40 {
		t.Errorf("Clamp(40, 0, 79) = %d, expected 40", got)
	}

	if got := Clamp(812.5, 0.0, 800.0); got != 800 {
		t.Errorf("Clamp(812.5, 0, 800) = %f, expected 800", got)
	}
	if got := Clamp(0.25, 0.0, 1.0); got != 0.25 {
		t.Errorf("Clamp(0.25, 0, 1) = %f, expected 0.25", got)
	}
	if got := Clamp(math.Inf(-1), 0.0, 1.0); got != 0 {
		t.Errorf("Clamp(-Inf, 0, 1) = %f, expected 0", got)
	}
}
