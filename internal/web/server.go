// Package web exposes the simulator's REST control and status API.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flightdyn-ng/internal/aircraft"
	"flightdyn-ng/internal/sim"
)

// Simulator is the slice of the sim service the API drives.
type Simulator interface {
	Snapshot() sim.Snapshot
	SetControls(throttle, alphaDeg float64)
	SetAutopilot(ap sim.Autopilot)
	Pause()
	Resume()
	Reset()
	SetAircraft(ac *aircraft.Aircraft)
}

// Handler builds the API router. The catalog may be empty but not nil.
func Handler(simsvc Simulator, catalog *aircraft.Catalog, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	s := &server{sim: simsvc, catalog: catalog, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/api/state", s.getState).Methods(http.MethodGet)
	r.HandleFunc("/api/controls", s.postControls).Methods(http.MethodPost)
	r.HandleFunc("/api/autopilot", s.postAutopilot).Methods(http.MethodPost)
	r.HandleFunc("/api/sim/pause", s.postPause).Methods(http.MethodPost)
	r.HandleFunc("/api/sim/resume", s.postResume).Methods(http.MethodPost)
	r.HandleFunc("/api/sim/reset", s.postReset).Methods(http.MethodPost)
	r.HandleFunc("/api/aircraft", s.getAircraft).Methods(http.MethodGet)
	r.HandleFunc("/api/aircraft/select", s.postSelectAircraft).Methods(http.MethodPost)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

type server struct {
	sim     Simulator
	catalog *aircraft.Catalog
	log     *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *server) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.sim.Snapshot())
}

type controlsRequest struct {
	Throttle *float64 `json:"throttle"`
	AlphaDeg *float64 `json:"alpha_deg"`
}

func (s *server) postControls(w http.ResponseWriter, r *http.Request) {
	var req controlsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	// Unspecified fields keep their current values.
	cur := s.sim.Snapshot().Inputs
	throttle, alpha := cur.Throttle, cur.AlphaDeg
	if req.Throttle != nil {
		throttle = *req.Throttle
	}
	if req.AlphaDeg != nil {
		alpha = *req.AlphaDeg
	}
	s.sim.SetControls(throttle, alpha)
	writeOK(w)
}

func (s *server) postAutopilot(w http.ResponseWriter, r *http.Request) {
	var ap sim.Autopilot
	if err := json.NewDecoder(r.Body).Decode(&ap); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	s.sim.SetAutopilot(ap)
	writeOK(w)
}

func (s *server) postPause(w http.ResponseWriter, r *http.Request) {
	s.sim.Pause()
	writeOK(w)
}

func (s *server) postResume(w http.ResponseWriter, r *http.Request) {
	s.sim.Resume()
	writeOK(w)
}

func (s *server) postReset(w http.ResponseWriter, r *http.Request) {
	s.sim.Reset()
	writeOK(w)
}

type aircraftInfo struct {
	Name       string  `json:"name"`
	MassKg     float64 `json:"mass_kg"`
	WingAreaM2 float64 `json:"wing_area_m2"`
	MaxThrustN float64 `json:"max_thrust_n"`
	TableBased bool    `json:"table_based"`
}

func (s *server) getAircraft(w http.ResponseWriter, r *http.Request) {
	out := make([]aircraftInfo, 0, s.catalog.Len())
	for _, name := range s.catalog.Names() {
		ac, ok := s.catalog.Get(name)
		if !ok {
			continue
		}
		out = append(out, aircraftInfo{
			Name:       ac.Name,
			MassKg:     ac.Mass,
			WingAreaM2: ac.WingArea,
			MaxThrustN: ac.MaxThrust,
			TableBased: ac.Model.TableBased(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type selectRequest struct {
	Name string `json:"name"`
}

var errUnknownAircraft = errors.New("unknown aircraft")

func (s *server) postSelectAircraft(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	ac, ok := s.catalog.Get(req.Name)
	if !ok {
		http.Error(w, errUnknownAircraft.Error(), http.StatusNotFound)
		return
	}
	s.sim.SetAircraft(ac)
	s.log.Info("aircraft selected via api", "name", req.Name)
	writeOK(w)
}
