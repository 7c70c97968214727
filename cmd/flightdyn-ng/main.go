package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightdyn-ng/internal/aircraft"
	"flightdyn-ng/internal/config"
	"flightdyn-ng/internal/logging"
	"flightdyn-ng/internal/metrics"
	"flightdyn-ng/internal/sim"
	"flightdyn-ng/internal/udp"
	"flightdyn-ng/internal/web"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Dir)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	catalog := aircraft.NewCatalog(log)
	ac := aircraft.Default()
	if cfg.Aircraft.Dir != "" {
		if err := catalog.LoadDir(cfg.Aircraft.Dir); err != nil {
			log.Error("aircraft catalog load failed", "dir", cfg.Aircraft.Dir, "err", err)
			os.Exit(1)
		}
		log.Info("aircraft catalog loaded", "dir", cfg.Aircraft.Dir, "count", catalog.Len())
		if cfg.Aircraft.Default != "" {
			selected, ok := catalog.Get(cfg.Aircraft.Default)
			if !ok {
				log.Error("default aircraft not in catalog", "name", cfg.Aircraft.Default)
				os.Exit(1)
			}
			ac = selected
		}
	}

	var telemetry *udp.Broadcaster
	if cfg.Telemetry.Enable {
		telemetry, err = udp.NewBroadcaster(cfg.Telemetry.Dest)
		if err != nil {
			log.Error("telemetry init failed", "dest", cfg.Telemetry.Dest, "err", err)
			os.Exit(1)
		}
		defer telemetry.Close()
		log.Info("telemetry enabled", "dest", cfg.Telemetry.Dest, "every", cfg.Telemetry.Every)
	}

	var tickCount uint64
	notify := func(snap sim.Snapshot) {
		metrics.Publish(snap)
		tickCount++
		if telemetry != nil && tickCount%uint64(cfg.Telemetry.Every) == 0 {
			if err := telemetry.SendJSON(snap); err != nil {
				log.Warn("telemetry send failed", "err", err)
			}
		}
	}

	svc := sim.NewService(sim.Config{
		Aircraft:     ac,
		TickInterval: cfg.Sim.TickInterval,
		TrailPoints:  cfg.Sim.TrailPoints,
		Autopilot: &sim.Autopilot{
			Speed: sim.Loop{
				Setpoint: cfg.Sim.Autopilot.SpeedSetpoint,
				Gains:    cfg.Sim.Autopilot.SpeedGains,
			},
			Altitude: sim.Loop{
				Setpoint: cfg.Sim.Autopilot.AltitudeSetpoint,
				Gains:    cfg.Sim.Autopilot.AltitudeGains,
			},
		},
		Notify: notify,
		Log:    log,
	})

	httpServer := &http.Server{
		Addr:    cfg.Web.Addr,
		Handler: web.Handler(svc, catalog, log),
	}

	go func() {
		log.Info("web api listening", "addr", cfg.Web.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("web server stopped", "err", err)
			cancel()
		}
	}()

	log.Info("flightdyn-ng starting", "aircraft", ac.Name, "tick", cfg.Sim.TickInterval)
	if err := svc.Run(ctx); err != nil {
		log.Error("simulation loop failed", "err", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("web server shutdown", "err", err)
	}
	log.Info("flightdyn-ng stopped")
}
