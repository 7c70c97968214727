// Package atmosphere implements the International Standard Atmosphere
// troposphere relations. All functions are pure: the same altitude always
// produces the same bits.
package atmosphere

import "math"

// ISA sea-level constants.
const (
	SeaLevelTemperature = 288.15   // K
	SeaLevelPressure    = 101325.0 // Pa
	LapseRate           = 0.0065   // K/m
	GasConstant         = 287.0    // J/(kg*K)
	Gravity             = 9.80665  // m/s^2
	HeatCapacityRatio   = 1.4
)

// Temperature returns the air temperature in Kelvin at altitude h (meters).
// Linear lapse; valid through the troposphere (0-11000 m). Above that the
// same formula is extrapolated, which is the caller's problem to avoid.
func Temperature(h float64) float64 {
	return SeaLevelTemperature - LapseRate*h
}

// Pressure returns the static pressure in Pascals at altitude h (meters),
// via the barometric formula.
func Pressure(h float64) float64 {
	return SeaLevelPressure * math.Pow(1-(LapseRate*h)/SeaLevelTemperature, Gravity/(GasConstant*LapseRate))
}

// Density returns the air density in kg/m^3 at altitude h (meters), from the
// ideal gas law.
func Density(h float64) float64 {
	return Pressure(h) / (GasConstant * Temperature(h))
}

// SpeedOfSound returns the local speed of sound in m/s at altitude h (meters).
func SpeedOfSound(h float64) float64 {
	return math.Sqrt(HeatCapacityRatio * GasConstant * Temperature(h))
}

// State is a snapshot of all four atmospheric quantities at one altitude.
type State struct {
	TemperatureK    float64 `json:"temperature_k"`
	PressurePa      float64 `json:"pressure_pa"`
	DensityKgM3     float64 `json:"density_kg_m3"`
	SpeedOfSoundMps float64 `json:"speed_of_sound_mps"`
}

// At evaluates the full atmospheric state at altitude h (meters).
func At(h float64) State {
	return State{
		TemperatureK:    Temperature(h),
		PressurePa:      Pressure(h),
		DensityKgM3:     Density(h),
		SpeedOfSoundMps: SpeedOfSound(h),
	}
}
