// Package aero holds the aerodynamic coefficient models and force
// calculations for the simulator: a tabulated (angle of attack, CL, CD)
// lookup with linear interpolation, the legacy analytic lift/drag polar,
// and the dynamic-pressure force equations.
package aero

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDataLoad marks failures to build an aerodynamic table from sample data.
// Callers recover from it by falling back to the legacy coefficients.
var ErrDataLoad = errors.New("aero data load failed")

// Sample is one tabulated operating point. Alpha is stored in radians.
type Sample struct {
	Alpha float64
	CL    float64
	CD    float64
}

// Row is one input sample as found in data files, angle in degrees.
type Row struct {
	AlphaDeg float64
	CL       float64
	CD       float64
}

// Table is an immutable, angle-sorted set of aerodynamic samples.
// The zero value is an empty table whose lookups all return 0.
type Table struct {
	samples []Sample
}

// NewTable builds a table from (angle-of-attack in degrees, CL, CD) rows.
// Angles are converted to radians and sorted ascending. An empty row set or
// a duplicated angle is a load error: duplicate angles would make the
// interpolation ill-defined.
func NewTable(rows []Row) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrDataLoad)
	}

	samples := make([]Sample, len(rows))
	for i, r := range rows {
		samples[i] = Sample{
			Alpha: r.AlphaDeg * math.Pi / 180.0,
			CL:    r.CL,
			CD:    r.CD,
		}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Alpha < samples[j].Alpha })

	for i := 1; i < len(samples); i++ {
		if samples[i].Alpha == samples[i-1].Alpha {
			return nil, fmt.Errorf("%w: duplicate angle %.4f deg", ErrDataLoad, samples[i].Alpha*180.0/math.Pi)
		}
	}

	return &Table{samples: samples}, nil
}

// IsEmpty reports whether the table holds no samples.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.samples) == 0
}

// Len returns the number of samples.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.samples)
}

// MinAlpha returns the smallest tabulated angle in radians (0 when empty).
func (t *Table) MinAlpha() float64 {
	if t.IsEmpty() {
		return 0
	}
	return t.samples[0].Alpha
}

// MaxAlpha returns the largest tabulated angle in radians (0 when empty).
func (t *Table) MaxAlpha() float64 {
	if t.IsEmpty() {
		return 0
	}
	return t.samples[len(t.samples)-1].Alpha
}

// CL returns the lift coefficient at alpha (radians).
//
// Outside the tabulated range the boundary sample's value is returned
// unchanged; there is deliberately no slope extrapolation.
func (t *Table) CL(alpha float64) float64 {
	return t.lookup(alpha, func(s Sample) float64 { return s.CL })
}

// CD returns the drag coefficient at alpha (radians), clamped to the
// boundary samples outside the tabulated range like CL.
func (t *Table) CD(alpha float64) float64 {
	return t.lookup(alpha, func(s Sample) float64 { return s.CD })
}

func (t *Table) lookup(alpha float64, value func(Sample) float64) float64 {
	if t.IsEmpty() {
		// Defensive default for callers that skipped the IsEmpty check.
		return 0.0
	}

	s := t.samples
	if alpha <= s[0].Alpha {
		return value(s[0])
	}
	if alpha >= s[len(s)-1].Alpha {
		return value(s[len(s)-1])
	}

	// Binary search for the bracketing pair: s[i-1].Alpha < alpha < s[i].Alpha.
	i := sort.Search(len(s), func(i int) bool { return s[i].Alpha >= alpha })
	lo, hi := s[i-1], s[i]
	frac := (alpha - lo.Alpha) / (hi.Alpha - lo.Alpha)
	return value(lo) + frac*(value(hi)-value(lo))
}
