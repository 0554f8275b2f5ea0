// Package config holds the fixed operating constants of the fridge probe.
// Values are compile-time defaults; only hardware wiring is chosen at startup.
package config

import (
	"errors"
	"fmt"

	"github.com/sweeney/fridge-probe/internal/logic"
	"github.com/sweeney/fridge-probe/internal/sensor"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// maxIntervalMs is the largest interval the wrapping millisecond counter can
// measure: just under half of its range.
const maxIntervalMs = 1<<31 - 1

// Config contains the probe's timing, threshold and sensor constants.
type Config struct {
	// Scheduler
	SampleIntervalMs    uint32
	TelemetryIntervalMs uint32

	// History and classification
	HistoryCapacity int
	WarmThresholdC  float64
	ValidMinC       float64
	ValidMaxC       float64

	// Door debounce
	DebounceSamples    int
	DebounceIntervalMs uint32

	// Indicator
	SlowBlinkMs  uint32
	FastBlinkMs  uint32
	ErrorFlashMs uint32
	ErrorPauseMs uint32

	// TMP36 on a 12-bit ADC
	ADCVRef         float64
	ADCResolution   int
	TMP36OffsetV    float64
	TMP36ScaleCPerV float64
}

// Default returns the standard probe configuration.
func Default() Config {
	return Config{
		SampleIntervalMs:    2000,
		TelemetryIntervalMs: 5000,

		HistoryCapacity: 32,
		WarmThresholdC:  7.0,
		ValidMinC:       -40.0,
		ValidMaxC:       125.0,

		DebounceSamples:    5,
		DebounceIntervalMs: 10,

		SlowBlinkMs:  1000,
		FastBlinkMs:  200,
		ErrorFlashMs: 100,
		ErrorPauseMs: 700,

		ADCVRef:         3.3,
		ADCResolution:   4096,
		TMP36OffsetV:    0.5,
		TMP36ScaleCPerV: 100.0,
	}
}

// Validate rejects configurations the control loop cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.HistoryCapacity <= 0 {
		errs = append(errs, fmt.Errorf("history capacity %d: must be positive", c.HistoryCapacity))
	}
	if c.DebounceSamples <= 0 {
		errs = append(errs, fmt.Errorf("debounce samples %d: must be positive", c.DebounceSamples))
	}
	if c.ValidMinC >= c.ValidMaxC {
		errs = append(errs, fmt.Errorf("valid range [%.1f, %.1f]: min must be below max", c.ValidMinC, c.ValidMaxC))
	}
	if c.ADCResolution <= 0 {
		errs = append(errs, fmt.Errorf("adc resolution %d: must be positive", c.ADCResolution))
	}

	intervals := []struct {
		name string
		ms   uint32
	}{
		{"sample interval", c.SampleIntervalMs},
		{"telemetry interval", c.TelemetryIntervalMs},
		{"debounce interval", c.DebounceIntervalMs},
		{"slow blink", c.SlowBlinkMs},
		{"fast blink", c.FastBlinkMs},
		{"error flash", c.ErrorFlashMs},
		{"error pause", c.ErrorPauseMs},
	}
	for _, iv := range intervals {
		if iv.ms == 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive", iv.name))
		}
		if iv.ms > maxIntervalMs {
			errs = append(errs, fmt.Errorf("%s %dms: exceeds half the counter range", iv.name, iv.ms))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, errs)
	}
	return nil
}

// PatternTiming returns the indicator durations.
func (c Config) PatternTiming() logic.PatternTiming {
	return logic.PatternTiming{
		SlowBlinkMs:  c.SlowBlinkMs,
		FastBlinkMs:  c.FastBlinkMs,
		ErrorFlashMs: c.ErrorFlashMs,
		ErrorPauseMs: c.ErrorPauseMs,
	}
}

// Calibration returns the ADC and TMP36 constants with the valid range.
func (c Config) Calibration() sensor.Calibration {
	return sensor.Calibration{
		VRef:       c.ADCVRef,
		Resolution: c.ADCResolution,
		OffsetV:    c.TMP36OffsetV,
		ScaleCPerV: c.TMP36ScaleCPerV,
		MinC:       c.ValidMinC,
		MaxC:       c.ValidMaxC,
	}
}
