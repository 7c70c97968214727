// Package aircraft defines the static description of one aircraft and the
// JSON catalog loader that produces it.
package aircraft

import (
	"errors"
	"fmt"

	"flightdyn-ng/internal/aero"
)

// ErrConfig marks malformed or missing descriptor fields. A load that fails
// with ErrConfig leaves the previously loaded aircraft in place.
var ErrConfig = errors.New("aircraft config invalid")

// Aircraft is the immutable physical and aerodynamic description of one
// airframe. Replace the whole value to change parameters; never mutate
// fields of a descriptor a running simulation holds.
type Aircraft struct {
	Name     string
	Mass     float64 // kg
	WingArea float64 // m^2

	// Legacy coefficients; also kept alongside a table for fallback display.
	CLAlpha float64 // lift curve slope, 1/rad
	CD0     float64 // parasitic drag coefficient
	K       float64 // induced drag factor

	MaxThrust float64 // N

	// Model is the active coefficient source, chosen once at construction.
	Model aero.Model
}

// New validates the parameters and builds a descriptor. A non-empty table
// selects the table-based coefficient model, otherwise the legacy analytic
// model is used. The table may be shared between descriptors.
func New(name string, mass, wingArea, clAlpha, cd0, k, maxThrust float64, table *aero.Table) (*Aircraft, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: mass must be > 0, got %v", ErrConfig, mass)
	}
	if wingArea <= 0 {
		return nil, fmt.Errorf("%w: wing area must be > 0, got %v", ErrConfig, wingArea)
	}
	if maxThrust < 0 {
		return nil, fmt.Errorf("%w: max thrust must be >= 0, got %v", ErrConfig, maxThrust)
	}
	return &Aircraft{
		Name:      name,
		Mass:      mass,
		WingArea:  wingArea,
		CLAlpha:   clAlpha,
		CD0:       cd0,
		K:         k,
		MaxThrust: maxThrust,
		Model:     aero.NewTableModel(table, clAlpha, cd0, k),
	}, nil
}

// Default returns a typical ultralight on the legacy coefficient model,
// used when no catalog is configured.
func Default() *Aircraft {
	ac, err := New("ultralight", 120.0, 1.60, 5.7, 0.025, 0.04, 500.0, nil)
	if err != nil {
		panic(err) // constants above are valid
	}
	return ac
}
