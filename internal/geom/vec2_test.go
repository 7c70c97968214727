package geom

import (
	"math"
	"testing"
)

func almostEq(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-12 && math.Abs(a.Y-b.Y) < 1e-12
}

func TestAddSubScale(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}
	if got := a.Add(b); got != (Vec2{4, -2}) {
		t.Fatalf("Add=%v want {4 -2}", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, 6}) {
		t.Fatalf("Sub=%v want {-2 6}", got)
	}
	if got := a.Scale(-2); got != (Vec2{-2, -4}) {
		t.Fatalf("Scale=%v want {-2 -4}", got)
	}
}

func TestLengthAndDot(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Fatalf("Length=%v want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Fatalf("LengthSq=%v want 25", got)
	}
	if got := v.Dot(Vec2{-4, 3}); got != 0 {
		t.Fatalf("Dot=%v want 0", got)
	}
}

func TestNormalized(t *testing.T) {
	if got := (Vec2{10, 0}).Normalized(); !almostEq(got, Vec2{1, 0}) {
		t.Fatalf("Normalized=%v want {1 0}", got)
	}
	// Degenerate input stays zero instead of dividing by zero.
	if got := (Vec2{1e-12, -1e-12}).Normalized(); got != (Vec2{}) {
		t.Fatalf("Normalized(tiny)=%v want zero", got)
	}
}

func TestRotated(t *testing.T) {
	if got := (Vec2{1, 0}).Rotated(math.Pi / 2); !almostEq(got, Vec2{0, 1}) {
		t.Fatalf("Rotated(90)=%v want {0 1}", got)
	}
	if got := (Vec2{0, 1}).Rotated(math.Pi / 2); !almostEq(got, Vec2{-1, 0}) {
		t.Fatalf("Rotated(90)=%v want {-1 0}", got)
	}
	// Rotation preserves length.
	v := Vec2{2, -3}
	if got := v.Rotated(0.7).Length(); math.Abs(got-v.Length()) > 1e-12 {
		t.Fatalf("rotation changed length: %v vs %v", got, v.Length())
	}
}

func TestAngle(t *testing.T) {
	if got := (Vec2{0, 2}).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("Angle=%v want pi/2", got)
	}
}
