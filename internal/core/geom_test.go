package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"apart horizontally", NewBox(0, 0, 10, 10), NewBox(15, 0, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"player resting on platform", NewBox(100, 390, 40, 60), NewBox(100, 450, 200, 20), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 5, 5), true},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(300, 400, 40, 40)

	if b.Right() != 340 {
		t.Errorf("Right() = %v, expected 340", b.Right())
	}
	if b.Bottom() != 440 {
		t.Errorf("Bottom() = %v, expected 440", b.Bottom())
	}
	if b.CenterX() != 320 || b.CenterY() != 420 {
		t.Errorf("Center = (%v, %v), expected (320, 420)", b.CenterX(), b.CenterY())
	}

	moved := b.Translate(-2, 5)
	if moved.X != 298 || moved.Y != 405 {
		t.Errorf("Translate = (%v, %v), expected (298, 405)", moved.X, moved.Y)
	}
	if b.X != 300 {
		t.Error("Translate must not modify the receiver")
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right exclusive", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(0, 0, 3, 4); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSignMinMaxAbs(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2.5) != 1 {
		t.Error("Sign returned unexpected values")
	}
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max returned unexpected values")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned unexpected values")
	}
}
