// Package metrics exposes the simulation state as Prometheus gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"flightdyn-ng/internal/sim"
)

var (
	altitudeGauge      = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_altitude_meters"})
	xPositionGauge     = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_xposition_meters"})
	airspeedGauge      = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_airspeed_mps"})
	verticalSpeedGauge = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_vertical_speed_mps"})
	throttleGauge      = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_throttle"})
	alphaGauge         = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_alpha_deg"})
	airDensityGauge    = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_air_density_kg_per_m3"})
	simTimeGauge       = prometheus.NewGauge(prometheus.GaugeOpts{Name: "flightdyn_sim_time_seconds"})

	forceGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flightdyn_force_newton",
			Help: "Magnitude of each force acting on the aircraft (in Newtons)",
		},
		[]string{"force"},
	)

	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "flightdyn_ticks_total",
		Help: "Completed physics ticks",
	})
)

func init() {
	prometheus.MustRegister(
		altitudeGauge,
		xPositionGauge,
		airspeedGauge,
		verticalSpeedGauge,
		throttleGauge,
		alphaGauge,
		airDensityGauge,
		simTimeGauge,
		forceGauge,
		ticksTotal,
	)
}

// Publish pushes one snapshot into the gauges. Call it once per tick.
func Publish(snap sim.Snapshot) {
	altitudeGauge.Set(snap.Position.Y)
	xPositionGauge.Set(snap.Position.X)
	airspeedGauge.Set(snap.AirspeedMps)
	verticalSpeedGauge.Set(snap.Velocity.Y)
	throttleGauge.Set(snap.Inputs.Throttle)
	alphaGauge.Set(snap.Inputs.AlphaDeg)
	airDensityGauge.Set(snap.Atmosphere.DensityKgM3)
	simTimeGauge.Set(snap.TimeS)

	forceGauge.WithLabelValues("thrust").Set(snap.Forces.Thrust.Length())
	forceGauge.WithLabelValues("drag").Set(snap.Forces.Drag.Length())
	forceGauge.WithLabelValues("lift").Set(snap.Forces.Lift.Length())
	forceGauge.WithLabelValues("weight").Set(snap.Forces.Weight.Length())

	ticksTotal.Inc()
}
