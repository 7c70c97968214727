package aero

// Model is the coefficient source for one aircraft. The variant (legacy
// analytic polar vs. tabulated data) is fixed when the model is built and
// never changes during a run.
type Model struct {
	table *Table

	// Legacy parameters, used when no table is attached.
	clAlpha float64
	cd0     float64
	k       float64
}

// NewLegacyModel builds the analytic model CL = clAlpha*alpha,
// CD = cd0 + k*CL^2.
func NewLegacyModel(clAlpha, cd0, k float64) Model {
	return Model{clAlpha: clAlpha, cd0: cd0, k: k}
}

// NewTableModel builds a table-backed model. The table's CD column is taken
// as the total drag coefficient; nothing is layered on top of it. An empty
// or nil table falls back to the legacy parameters.
func NewTableModel(t *Table, clAlpha, cd0, k float64) Model {
	m := NewLegacyModel(clAlpha, cd0, k)
	if !t.IsEmpty() {
		m.table = t
	}
	return m
}

// TableBased reports whether coefficients come from tabulated data.
func (m Model) TableBased() bool {
	return m.table != nil
}

// Table returns the attached sample table, or nil for a legacy model.
func (m Model) Table() *Table {
	return m.table
}

// Coefficients returns (CL, CD) at angle of attack alpha (radians).
func (m Model) Coefficients(alpha float64) (cl, cd float64) {
	if m.table != nil {
		return m.table.CL(alpha), m.table.CD(alpha)
	}
	cl = m.clAlpha * alpha
	cd = m.cd0 + m.k*cl*cl
	return cl, cd
}

// Lift returns the lift force in Newtons from dynamic pressure:
// 0.5 * rho * V^2 * S * CL.
func Lift(rho, v, s, cl float64) float64 {
	return 0.5 * rho * v * v * s * cl
}

// Drag returns the drag force in Newtons: 0.5 * rho * V^2 * S * CD.
func Drag(rho, v, s, cd float64) float64 {
	return 0.5 * rho * v * v * s * cd
}

// Weight returns the weight force in Newtons, mass * g.
func Weight(mass, g float64) float64 {
	return mass * g
}

// Thrust returns the thrust force in Newtons for a throttle setting in
// [0,1] scaled against the aircraft's maximum thrust.
func Thrust(throttle, maxThrust float64) float64 {
	return throttle * maxThrust
}
