// Package control implements the PID feedback controller used by the
// autopilot loops (speed hold, altitude hold).
package control

// epsilon guards divisions by a zero gain or timestep.
const epsilon = 1e-10

// Gains bundles the three PID gains so they can be compared and carried in
// configuration as one value.
type Gains struct {
	Kp float64 `yaml:"kp" json:"kp"`
	Ki float64 `yaml:"ki" json:"ki"`
	Kd float64 `yaml:"kd" json:"kd"`
}

// Terms exposes the last computed contribution of each term, for tuning and
// display. Diagnostic only; nothing feeds them back into the computation.
type Terms struct {
	P float64 `json:"p"`
	I float64 `json:"i"`
	D float64 `json:"d"`
}

// PID is a proportional-integral-derivative controller with output
// clamping and integral anti-windup. Gains are fixed for the lifetime of
// the controller: changing gains means building a new controller, since the
// accumulated integral is only meaningful under the gains it was
// accumulated with.
type PID struct {
	gains          Gains
	outMin, outMax float64

	integral  float64
	prevError float64
	primed    bool

	terms Terms
}

// New creates a controller with the given gains and output bounds.
func New(gains Gains, outMin, outMax float64) *PID {
	return &PID{gains: gains, outMin: outMin, outMax: outMax}
}

// Update advances the controller one timestep and returns the clamped
// control output.
func (c *PID) Update(setpoint, measurement, dt float64) float64 {
	err := setpoint - measurement

	// Accumulate, then clamp the integral so a saturated output cannot wind
	// it up without bound.
	c.integral += err * dt
	maxIntegral := (c.outMax - c.outMin) / (abs(c.gains.Ki) + epsilon)
	c.integral = clamp(c.integral, -maxIntegral, maxIntegral)

	// No derivative on the first update: there is no previous error yet.
	derivative := 0.0
	if c.primed && dt > epsilon {
		derivative = (err - c.prevError) / dt
	}
	c.primed = true

	c.terms = Terms{
		P: c.gains.Kp * err,
		I: c.gains.Ki * c.integral,
		D: c.gains.Kd * derivative,
	}

	out := clamp(c.terms.P+c.terms.I+c.terms.D, c.outMin, c.outMax)
	c.prevError = err
	return out
}

// Reset returns the controller to its fresh state: integral, previous error
// and cached terms are zeroed, gains and bounds are kept. Use it on setpoint
// discontinuities or when re-enabling a control loop.
func (c *PID) Reset() {
	c.integral = 0
	c.prevError = 0
	c.primed = false
	c.terms = Terms{}
}

// SetOutputLimits changes the output bounds without touching accumulated
// state.
func (c *PID) SetOutputLimits(min, max float64) {
	c.outMin = min
	c.outMax = max
}

// Gains returns the controller's gains.
func (c *PID) Gains() Gains {
	return c.gains
}

// Terms returns the last computed P/I/D contributions.
func (c *PID) Terms() Terms {
	return c.terms
}

// OutputLimits returns the current output bounds.
func (c *PID) OutputLimits() (min, max float64) {
	return c.outMin, c.outMax
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
