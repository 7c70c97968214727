package aero

import (
	"math"
	"testing"
)

func TestLegacyModelCoefficients(t *testing.T) {
	m := NewLegacyModel(5.7, 0.025, 0.04)
	if m.TableBased() {
		t.Fatalf("legacy model reports table based")
	}
	alpha := 5 * math.Pi / 180
	cl, cd := m.Coefficients(alpha)
	wantCL := 5.7 * alpha
	if math.Abs(cl-wantCL) > 1e-12 {
		t.Fatalf("CL=%v want %v", cl, wantCL)
	}
	wantCD := 0.025 + 0.04*wantCL*wantCL
	if math.Abs(cd-wantCD) > 1e-12 {
		t.Fatalf("CD=%v want %v", cd, wantCD)
	}
}

func TestTableModelUsesTableAsIs(t *testing.T) {
	tbl, err := NewTable([]Row{
		{AlphaDeg: 0, CL: 0.1, CD: 0.02},
		{AlphaDeg: 5, CL: 0.7, CD: 0.04},
	})
	if err != nil {
		t.Fatalf("NewTable() error: %v", err)
	}
	m := NewTableModel(tbl, 5.7, 0.025, 0.04)
	if !m.TableBased() {
		t.Fatalf("expected table based model")
	}
	_, cd := m.Coefficients(0)
	// Table CD is total drag; no CD0 added on top.
	if cd != 0.02 {
		t.Fatalf("CD=%v want 0.02", cd)
	}
}

func TestTableModelEmptyFallsBackToLegacy(t *testing.T) {
	m := NewTableModel(nil, 5.7, 0.025, 0.04)
	if m.TableBased() {
		t.Fatalf("nil table should fall back to legacy")
	}
	cl, _ := m.Coefficients(0.1)
	if math.Abs(cl-0.57) > 1e-12 {
		t.Fatalf("CL=%v want 0.57", cl)
	}
}

func TestLiftQuadraticInAirspeed(t *testing.T) {
	rho, v, s, cl := 1.225, 30.0, 1.6, 0.8
	base := Lift(rho, v, s, cl)
	if got := Lift(rho, 2*v, s, cl); math.Abs(got-4*base) > 1e-9 {
		t.Fatalf("Lift(2V)=%v want %v", got, 4*base)
	}
	if got := Drag(rho, 2*v, s, cl); math.Abs(got-4*Drag(rho, v, s, cl)) > 1e-9 {
		t.Fatalf("Drag(2V) not quadratic: %v", got)
	}
}

func TestForcesDegenerateAtZeroSpeed(t *testing.T) {
	if got := Lift(1.225, 0, 1.6, 1.0); got != 0 {
		t.Fatalf("Lift(V=0)=%v want 0", got)
	}
	if got := Drag(1.225, 0, 1.6, 1.0); got != 0 {
		t.Fatalf("Drag(V=0)=%v want 0", got)
	}
}

func TestWeightAndThrust(t *testing.T) {
	if got := Weight(120, 9.80665); math.Abs(got-1176.798) > 1e-9 {
		t.Fatalf("Weight=%v want 1176.798", got)
	}
	if got := Thrust(0.5, 500); got != 250 {
		t.Fatalf("Thrust=%v want 250", got)
	}
	if got := Thrust(0, 500); got != 0 {
		t.Fatalf("Thrust(0)=%v want 0", got)
	}
}
