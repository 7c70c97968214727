package control

import (
	"math"
	"testing"
)

func TestProportionalOnlyClampsToMax(t *testing.T) {
	// Kp=1, error=10 => raw output 10, clamped to outMax=1.
	c := New(Gains{Kp: 1}, 0, 1)
	out := c.Update(50, 40, 0.016)
	if out != 1 {
		t.Fatalf("out=%v want 1 (clamped)", out)
	}
	if terms := c.Terms(); terms.P != 10 {
		t.Fatalf("P term=%v want 10", terms.P)
	}
}

func TestProportionalOnlyWithinBounds(t *testing.T) {
	c := New(Gains{Kp: 0.05}, 0, 1)
	out := c.Update(50, 40, 0.016)
	if math.Abs(out-0.5) > 1e-12 {
		t.Fatalf("out=%v want 0.5", out)
	}
}

func TestFirstUpdateHasNoDerivativeKick(t *testing.T) {
	c := New(Gains{Kd: 100}, -10, 10)
	c.Update(1, 0, 0.016)
	if terms := c.Terms(); terms.D != 0 {
		t.Fatalf("D term on first update=%v want 0", terms.D)
	}
	// Second update with the same error: derivative of a constant error is 0.
	c.Update(1, 0, 0.016)
	if terms := c.Terms(); terms.D != 0 {
		t.Fatalf("D term with constant error=%v want 0", terms.D)
	}
}

func TestDerivativeRespondsToErrorChange(t *testing.T) {
	c := New(Gains{Kd: 1}, -100, 100)
	c.Update(10, 0, 0.1) // error 10
	c.Update(10, 5, 0.1) // error 5, d(error)/dt = -50
	if terms := c.Terms(); math.Abs(terms.D+50) > 1e-9 {
		t.Fatalf("D term=%v want -50", terms.D)
	}
}

func TestIntegralWindupBounded(t *testing.T) {
	ki := 0.001
	outMin, outMax := 0.0, 1.0
	c := New(Gains{Ki: ki}, outMin, outMax)

	// Saturating error for a long time must not grow the integral term
	// beyond the anti-windup bound.
	for i := 0; i < 100; i++ {
		c.Update(1000, 0, 1.0)
	}
	bound := (outMax - outMin) / ki
	terms := c.Terms()
	if iTerm := terms.I / ki; math.Abs(iTerm) > bound*1.001 {
		t.Fatalf("integral=%v exceeds windup bound %v", iTerm, bound)
	}
	// The I contribution itself stays within the output span.
	if terms.I > (outMax-outMin)*1.001 {
		t.Fatalf("I term=%v exceeds output span", terms.I)
	}
}

func TestZeroKiDoesNotDivideByZero(t *testing.T) {
	c := New(Gains{Kp: 1}, 0, 1)
	for i := 0; i < 10; i++ {
		out := c.Update(100, 0, 1.0)
		if math.IsNaN(out) || math.IsInf(out, 0) {
			t.Fatalf("out=%v with Ki=0", out)
		}
	}
}

func TestResetReproducesFirstOutput(t *testing.T) {
	c := New(Gains{Kp: 0.02, Ki: 0.001, Kd: 0.01}, 0, 1)
	first := c.Update(40, 10, 0.016)

	// Accumulate some history, then reset.
	for i := 0; i < 50; i++ {
		c.Update(40, 25, 0.016)
	}
	c.Reset()
	if terms := c.Terms(); terms != (Terms{}) {
		t.Fatalf("terms after reset=%+v want zero", terms)
	}

	if again := c.Update(40, 10, 0.016); again != first {
		t.Fatalf("post-reset output=%v want first output %v", again, first)
	}
}

func TestSetOutputLimitsKeepsState(t *testing.T) {
	c := New(Gains{Kp: 1, Ki: 0.5}, 0, 1)
	c.Update(10, 0, 0.1)
	before := c.Terms()

	c.SetOutputLimits(-5, 5)
	if min, max := c.OutputLimits(); min != -5 || max != 5 {
		t.Fatalf("limits=(%v,%v) want (-5,5)", min, max)
	}
	// Accumulated terms untouched by the limit change.
	if c.Terms() != before {
		t.Fatalf("terms changed by SetOutputLimits")
	}
}

func TestTinyDtSkipsDerivative(t *testing.T) {
	c := New(Gains{Kd: 1}, -100, 100)
	c.Update(10, 0, 0.1)
	c.Update(10, 5, 0) // dt below epsilon: derivative must be suppressed
	if terms := c.Terms(); terms.D != 0 {
		t.Fatalf("D term=%v want 0 for dt=0", terms.D)
	}
}
