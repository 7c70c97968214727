package sim

import (
	"math"

	"flightdyn-ng/internal/aero"
	"flightdyn-ng/internal/atmosphere"
	"flightdyn-ng/internal/control"
	"flightdyn-ng/internal/geom"
)

// Step advances the simulation one fixed timestep of dt seconds. Paused
// states and non-positive timesteps are no-ops.
//
// Tick order: autopilot loops, atmosphere, aerodynamic forces, integration,
// ground constraint, trail, clock.
func (s *State) Step(dt float64) {
	if s.Paused || dt <= 0 {
		return
	}

	speed := s.Velocity.Length()
	altitude := s.Position.Y

	// A gain change discards the controller along with its integral
	// history; the accumulated units are meaningless under new gains.
	if s.Autopilot.Speed.Enabled {
		if s.speedPID == nil || s.speedPID.Gains() != s.Autopilot.Speed.Gains {
			s.speedPID = control.New(s.Autopilot.Speed.Gains, throttleMin, throttleMax)
		}
		s.Inputs.Throttle = s.speedPID.Update(s.Autopilot.Speed.Setpoint, speed, dt)
	}
	if s.Autopilot.Altitude.Enabled {
		if s.altitudePID == nil || s.altitudePID.Gains() != s.Autopilot.Altitude.Gains {
			s.altitudePID = control.New(s.Autopilot.Altitude.Gains, alphaMinDeg, alphaMaxDeg)
		}
		s.Inputs.AlphaDeg = s.altitudePID.Update(s.Autopilot.Altitude.Setpoint, altitude, dt)
	}

	flowDir := geom.Vec2{X: 1}
	if speed >= minFlowSpeed {
		flowDir = s.Velocity.Normalized()
	}
	alpha := s.Inputs.AlphaDeg * math.Pi / 180.0

	// Clamped so the atmospheric formulas are never evaluated below the
	// modeled ground.
	rho := atmosphere.Density(math.Max(0, altitude))

	cl, cd := s.Aircraft.Model.Coefficients(alpha)
	lift := aero.Lift(rho, speed, s.Aircraft.WingArea, cl)
	drag := aero.Drag(rho, speed, s.Aircraft.WingArea, cd)
	weight := aero.Weight(s.Aircraft.Mass, atmosphere.Gravity)
	thrust := aero.Thrust(s.Inputs.Throttle, s.Aircraft.MaxThrust)

	// Thrust acts along the flow direction rotated by alpha, drag against
	// the flow, lift perpendicular to it, weight straight down.
	s.Forces = Forces{
		Thrust: flowDir.Rotated(alpha).Scale(thrust),
		Lift:   flowDir.Rotated(math.Pi / 2).Scale(lift),
		Weight: geom.Vec2{Y: -weight},
	}
	if speed >= minFlowSpeed {
		s.Forces.Drag = flowDir.Scale(-drag)
	}

	net := s.Forces.Thrust.Add(s.Forces.Drag).Add(s.Forces.Lift).Add(s.Forces.Weight)
	acceleration := net.Scale(1.0 / s.Aircraft.Mass)

	s.Position, s.Velocity = Integrate(s.Position, s.Velocity, acceleration, dt)

	// Ground constraint: a plain non-elastic clamp. Near-stationary with
	// the throttle closed, the aircraft parks instead of sliding forever.
	if s.Position.Y < 0 {
		s.Position.Y = 0
		if s.Velocity.Y < 0 {
			s.Velocity.Y = 0
		}
		if s.Velocity.Length() < restSpeed && s.Inputs.Throttle < restThrottle {
			s.Velocity = geom.Vec2{}
		}
	}

	s.trail.Append(TrailPoint{X: s.Position.X, Z: s.Position.Y})
	s.Elapsed += dt
}
