// Package config loads the daemon's YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"flightdyn-ng/internal/control"
)

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Sim       SimConfig       `yaml:"sim"`
	Aircraft  AircraftConfig  `yaml:"aircraft"`
	Web       WebConfig       `yaml:"web"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

type SimConfig struct {
	TickInterval time.Duration   `yaml:"tick_interval"`
	TrailPoints  int             `yaml:"trail_points"`
	Autopilot    AutopilotConfig `yaml:"autopilot"`
}

type AutopilotConfig struct {
	SpeedSetpoint    float64       `yaml:"speed_setpoint"`
	SpeedGains       control.Gains `yaml:"speed_gains"`
	AltitudeSetpoint float64       `yaml:"altitude_setpoint"`
	AltitudeGains    control.Gains `yaml:"altitude_gains"`
}

type AircraftConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

type WebConfig struct {
	Addr string `yaml:"addr"`
}

type TelemetryConfig struct {
	Enable bool   `yaml:"enable"`
	Dest   string `yaml:"dest"`
	Every  int    `yaml:"every"` // send every Nth tick
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	if cfg.Sim.TickInterval < 0 {
		return Config{}, fmt.Errorf("sim.tick_interval must be > 0")
	}
	if cfg.Sim.TickInterval == 0 {
		cfg.Sim.TickInterval = 16 * time.Millisecond
	}
	if cfg.Sim.TrailPoints < 0 {
		return Config{}, fmt.Errorf("sim.trail_points must be >= 0")
	}
	if cfg.Sim.TrailPoints == 0 {
		cfg.Sim.TrailPoints = 1000
	}
	if cfg.Sim.Autopilot.SpeedSetpoint == 0 {
		cfg.Sim.Autopilot.SpeedSetpoint = 40
	}
	if cfg.Sim.Autopilot.SpeedGains == (control.Gains{}) {
		cfg.Sim.Autopilot.SpeedGains = control.Gains{Kp: 0.02, Ki: 0.001, Kd: 0.01}
	}
	if cfg.Sim.Autopilot.AltitudeSetpoint == 0 {
		cfg.Sim.Autopilot.AltitudeSetpoint = 100
	}
	if cfg.Sim.Autopilot.AltitudeGains == (control.Gains{}) {
		cfg.Sim.Autopilot.AltitudeGains = control.Gains{Kp: 0.1, Ki: 0.001, Kd: 0.5}
	}

	if cfg.Aircraft.Default != "" && cfg.Aircraft.Dir == "" {
		return Config{}, fmt.Errorf("aircraft.default requires aircraft.dir")
	}

	if cfg.Web.Addr == "" {
		cfg.Web.Addr = ":8080"
	}

	if cfg.Telemetry.Enable && cfg.Telemetry.Dest == "" {
		return Config{}, fmt.Errorf("telemetry.dest is required when telemetry.enable is true")
	}
	if cfg.Telemetry.Every <= 0 {
		cfg.Telemetry.Every = 1
	}

	return cfg, nil
}
