package sim

import "flightdyn-ng/internal/geom"

// Integrate advances (position, velocity) one timestep under an
// acceleration held constant across the step.
//
// The force model is evaluated once per tick, so the acceleration fed to a
// four-stage RK4 would be identical at every stage. Under that condition
// the RK4 weighting collapses algebraically to the exact closed form for
// constant acceleration, which is what we compute:
//
//	v' = v + a*dt
//	p' = p + v*dt + 0.5*a*dt^2
//
// dt must be positive; the stepper guards that before calling.
func Integrate(position, velocity, acceleration geom.Vec2, dt float64) (geom.Vec2, geom.Vec2) {
	newPosition := position.Add(velocity.Scale(dt)).Add(acceleration.Scale(0.5 * dt * dt))
	newVelocity := velocity.Add(acceleration.Scale(dt))
	return newPosition, newVelocity
}
