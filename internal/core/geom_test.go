package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Vec2
	}{
		{"zero points up", 0, V(0, -1)},
		{"quarter turn points right", 90, V(1, 0)},
		{"half turn points down", 180, V(0, 1)},
		{"three quarters points left", 270, V(-1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Heading(tc.deg)
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) {
				t.Errorf("Heading(%v) = %+v, expected %+v", tc.deg, got, tc.want)
			}
		})
	}
}

func TestHeadingOfInvertsHeading(t *testing.T) {
	for _, deg := range []float64{0, 15, 90, 135, 200, 345} {
		got := HeadingOf(Heading(deg))
		if math.Abs(got-deg) > 1e-6 {
			t.Errorf("HeadingOf(Heading(%v)) = %v", deg, got)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-370, 350},
	}

	for _, tc := range tests {
		if got := WrapDegrees(tc.in); !near(got, tc.expected) {
			t.Errorf("WrapDegrees(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"inside unchanged", V(3, -4), V(3, -4)},
		{"past right edge", V(29, 0), V(-27, 0)},
		{"past left edge", V(-29, 0), V(27, 0)},
		{"past bottom edge", V(0, 22), V(0, -20)},
		{"past top edge", V(0, -22), V(0, 20)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, 28, 21)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Wrap(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestVecPerpIsOrthogonal(t *testing.T) {
	v := V(3, 4)
	p := v.Perp()
	if !near(v.Dot(p), 0) {
		t.Errorf("Perp should be orthogonal, dot = %v", v.Dot(p))
	}
	if !near(p.Len(), 5) {
		t.Errorf("Perp should preserve length, got %v", p.Len())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
}
