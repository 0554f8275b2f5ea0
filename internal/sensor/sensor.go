// Package sensor reads the probe's analog temperature sensor.
package sensor

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultADCPath is the IIO sysfs node for ADC channel 0.
const DefaultADCPath = "/sys/bus/iio/devices/iio:device0/in_voltage0_raw"

// ErrNoReadings is returned by FakeThermometer when nothing is scripted.
var ErrNoReadings = errors.New("no readings configured")

// Calibration describes the ADC and the TMP36 transfer function.
type Calibration struct {
	VRef       float64 // ADC reference voltage
	Resolution int     // ADC counts, 4096 for 12-bit
	OffsetV    float64 // sensor output at 0 C
	ScaleCPerV float64 // degrees per volt above the offset
	MinC       float64 // physical range of the sensor
	MaxC       float64
}

// RawToVolts converts an ADC count to volts.
func RawToVolts(raw int, vref float64, resolution int) float64 {
	return float64(raw) * (vref / float64(resolution))
}

// VoltsToCelsius applies the TMP36 transfer function: (V - offset) * scale.
func VoltsToCelsius(v, offsetV, scaleCPerV float64) float64 {
	return (v - offsetV) * scaleCPerV
}

// ADCThermometer reads a TMP36 through a Linux IIO ADC channel.
type ADCThermometer struct {
	path string
	cal  Calibration
}

// NewADCThermometer returns a thermometer reading the given sysfs node.
func NewADCThermometer(path string, cal Calibration) *ADCThermometer {
	return &ADCThermometer{path: path, cal: cal}
}

// ReadTemperature returns the instantaneous reading in Celsius.
func (a *ADCThermometer) ReadTemperature() (float64, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return 0, fmt.Errorf("read adc: %w", err)
	}
	raw, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse adc value %q: %w", strings.TrimSpace(string(data)), err)
	}
	v := RawToVolts(raw, a.cal.VRef, a.cal.Resolution)
	return VoltsToCelsius(v, a.cal.OffsetV, a.cal.ScaleCPerV), nil
}

// IsReadingValid reports whether c lies inside the sensor's physical range.
// A disconnected or damaged sensor reads near 0 V or VRef, far outside it.
func (a *ADCThermometer) IsReadingValid(c float64) bool {
	return inRange(c, a.cal.MinC, a.cal.MaxC)
}

func inRange(c, min, max float64) bool {
	return c >= min && c <= max
}
