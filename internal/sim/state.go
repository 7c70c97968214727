// Package sim contains the longitudinal flight-dynamics engine: the motion
// integrator, the per-tick physics stepper, and the service loop that
// drives it and publishes snapshots.
package sim

import (
	"flightdyn-ng/internal/aircraft"
	"flightdyn-ng/internal/control"
	"flightdyn-ng/internal/geom"
)

// Control-surface and autopilot bounds.
const (
	throttleMin = 0.0
	throttleMax = 1.0
	alphaMinDeg = -10.0
	alphaMaxDeg = 15.0

	// Below this speed the velocity carries no usable direction and the
	// flow falls back to straight ahead.
	minFlowSpeed = 1e-6

	// Ground rest: below this speed with the throttle closed the aircraft
	// is parked instead of creeping.
	restSpeed    = 0.1
	restThrottle = 0.01
)

// Default autopilot tuning.
var (
	DefaultSpeedGains    = control.Gains{Kp: 0.02, Ki: 0.001, Kd: 0.01}
	DefaultAltitudeGains = control.Gains{Kp: 0.1, Ki: 0.001, Kd: 0.5}
)

const (
	DefaultSpeedSetpoint    = 40.0  // m/s
	DefaultAltitudeSetpoint = 100.0 // m
)

// Inputs are the control values written by the driver before each tick.
type Inputs struct {
	Throttle float64 `json:"throttle"`  // [0,1]
	AlphaDeg float64 `json:"alpha_deg"` // commanded angle of attack, degrees
}

// Loop configures one autopilot hold loop.
type Loop struct {
	Enabled  bool          `json:"enabled"`
	Setpoint float64       `json:"setpoint"`
	Gains    control.Gains `json:"gains"`
}

// Autopilot carries the two hold loops: speed hold writes the throttle,
// altitude hold writes the commanded angle of attack.
type Autopilot struct {
	Speed    Loop `json:"speed"`
	Altitude Loop `json:"altitude"`
}

// Forces are the instantaneous force vectors of the last completed tick,
// retained for the presentation layer.
type Forces struct {
	Thrust geom.Vec2 `json:"thrust"`
	Drag   geom.Vec2 `json:"drag"`
	Lift   geom.Vec2 `json:"lift"`
	Weight geom.Vec2 `json:"weight"`
}

// State is the complete simulation state. It has a single owner: whoever
// calls Step. Nothing in here synchronizes; concurrent access is the
// caller's responsibility (the Service wraps it with a lock).
type State struct {
	Aircraft *aircraft.Aircraft

	Position geom.Vec2 // X along track, Y altitude (m)
	Velocity geom.Vec2 // m/s
	Elapsed  float64   // simulated seconds

	Inputs    Inputs
	Paused    bool
	Autopilot Autopilot

	Forces Forces

	speedPID    *control.PID
	altitudePID *control.PID

	trail *Trail
}

// NewState builds a state for the given aircraft at the canonical rest
// configuration, with both autopilot loops present but disabled.
func NewState(ac *aircraft.Aircraft, trailCapacity int) *State {
	s := &State{
		Aircraft: ac,
		Autopilot: Autopilot{
			Speed:    Loop{Setpoint: DefaultSpeedSetpoint, Gains: DefaultSpeedGains},
			Altitude: Loop{Setpoint: DefaultAltitudeSetpoint, Gains: DefaultAltitudeGains},
		},
		trail: NewTrail(trailCapacity),
	}
	s.Reset()
	return s
}

// Reset returns the aircraft to rest at the origin: motion and elapsed time
// zeroed, trail cleared, controllers reset, controls at the canonical
// takeoff setting (throttle 0.3, 5 degrees of commanded alpha). Autopilot
// enables, setpoints and gains are preserved.
func (s *State) Reset() {
	s.Position = geom.Vec2{}
	s.Velocity = geom.Vec2{}
	s.Elapsed = 0
	s.Inputs = Inputs{Throttle: 0.3, AlphaDeg: 5.0}
	s.Forces = Forces{}
	s.trail.Reset()
	if s.speedPID != nil {
		s.speedPID.Reset()
	}
	if s.altitudePID != nil {
		s.altitudePID.Reset()
	}
}

// SetAircraft replaces the aircraft descriptor wholesale. Motion state is
// kept; descriptors are never partially updated.
func (s *State) SetAircraft(ac *aircraft.Aircraft) {
	s.Aircraft = ac
}

// Trail returns the retained flight path, oldest first.
func (s *State) Trail() []TrailPoint {
	return s.trail.Points()
}

// SpeedPIDTerms returns the last speed-hold term values, if that loop has
// ever run.
func (s *State) SpeedPIDTerms() (control.Terms, bool) {
	if s.speedPID == nil {
		return control.Terms{}, false
	}
	return s.speedPID.Terms(), true
}

// AltitudePIDTerms returns the last altitude-hold term values, if that loop
// has ever run.
func (s *State) AltitudePIDTerms() (control.Terms, bool) {
	if s.altitudePID == nil {
		return control.Terms{}, false
	}
	return s.altitudePID.Terms(), true
}
