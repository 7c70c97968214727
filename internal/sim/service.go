package sim

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"flightdyn-ng/internal/aircraft"
	"flightdyn-ng/internal/atmosphere"
	"flightdyn-ng/internal/control"
	"flightdyn-ng/internal/geom"
)

// Snapshot is a read-only copy of the simulation for presentation layers.
// Everything in it is plain data; mutating a snapshot affects nothing.
type Snapshot struct {
	TimeS  float64 `json:"time_s"`
	Paused bool    `json:"paused"`

	Aircraft string `json:"aircraft"`

	Position    geom.Vec2 `json:"position"` // x (m), y altitude (m)
	Velocity    geom.Vec2 `json:"velocity"` // m/s
	AirspeedMps float64   `json:"airspeed_mps"`

	Inputs    Inputs    `json:"inputs"`
	Autopilot Autopilot `json:"autopilot"`

	Forces     Forces           `json:"forces"`
	Atmosphere atmosphere.State `json:"atmosphere"`

	SpeedPID    *control.Terms `json:"speed_pid,omitempty"`
	AltitudePID *control.Terms `json:"altitude_pid,omitempty"`

	Trail []TrailPoint `json:"trail"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Config configures a Service.
type Config struct {
	Aircraft     *aircraft.Aircraft
	TickInterval time.Duration
	TrailPoints  int
	Autopilot    *Autopilot // initial loop tuning; nil for defaults
	Notify       func(Snapshot)
	Log          *slog.Logger
}

// Service owns a simulation State and drives it at a fixed tick rate. All
// mutation happens under one mutex, so the single-writer contract of the
// core holds even with the web API poking at controls concurrently.
type Service struct {
	dt     float64
	tick   time.Duration
	notify func(Snapshot)
	log    *slog.Logger

	mu    sync.RWMutex
	state *State
}

// NewService builds a service around a fresh State.
func NewService(cfg Config) *Service {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 16 * time.Millisecond
	}
	if cfg.Aircraft == nil {
		cfg.Aircraft = aircraft.Default()
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	st := NewState(cfg.Aircraft, cfg.TrailPoints)
	if cfg.Autopilot != nil {
		st.Autopilot = *cfg.Autopilot
	}
	return &Service{
		dt:     cfg.TickInterval.Seconds(),
		tick:   cfg.TickInterval,
		notify: cfg.Notify,
		log:    cfg.Log,
		state:  st,
	}
}

// Run ticks the simulation until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	s.log.Info("simulation loop starting", "tick", s.tick, "aircraft", s.state.Aircraft.Name)
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("simulation loop stopping")
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances the simulation one fixed step and notifies the observer.
// Exposed for tests and headless drivers; Run calls it on every tick.
func (s *Service) Tick() {
	s.mu.Lock()
	s.state.Step(s.dt)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(snap)
	}
}

// Snapshot returns the current simulation state as plain values.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() Snapshot {
	st := s.state
	snap := Snapshot{
		TimeS:       st.Elapsed,
		Paused:      st.Paused,
		Aircraft:    st.Aircraft.Name,
		Position:    st.Position,
		Velocity:    st.Velocity,
		AirspeedMps: st.Velocity.Length(),
		Inputs:      st.Inputs,
		Autopilot:   st.Autopilot,
		Forces:      st.Forces,
		Atmosphere:  atmosphere.At(math.Max(0, st.Position.Y)),
		Trail:       st.Trail(),
		UpdatedAt:   time.Now().UTC(),
	}
	if terms, ok := st.SpeedPIDTerms(); ok {
		snap.SpeedPID = &terms
	}
	if terms, ok := st.AltitudePIDTerms(); ok {
		snap.AltitudePID = &terms
	}
	return snap
}

// SetControls writes the manual control inputs. The throttle is clamped to
// [0,1]; the commanded alpha is taken as-is (autopilot may overwrite both).
func (s *Service) SetControls(throttle, alphaDeg float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Inputs.Throttle = math.Min(math.Max(throttle, throttleMin), throttleMax)
	s.state.Inputs.AlphaDeg = alphaDeg
}

// SetAutopilot replaces the autopilot configuration. Gain changes take
// effect on the next tick, where they rebuild the affected controller.
func (s *Service) SetAutopilot(ap Autopilot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Autopilot = ap
}

// Pause stops physics advancement; the state stays readable.
func (s *Service) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Paused = true
}

// Resume restarts physics advancement.
func (s *Service) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Paused = false
}

// Reset returns the simulation to the canonical rest configuration.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
}

// SetAircraft swaps in a new aircraft descriptor (full replacement).
func (s *Service) SetAircraft(ac *aircraft.Aircraft) {
	if ac == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SetAircraft(ac)
	s.log.Info("aircraft selected", "name", ac.Name, "table", ac.Model.TableBased())
}
