package sensor

// FakeThermometer is a test double that returns scripted temperatures.
type FakeThermometer struct {
	// Readings contains scripted values; each call consumes the next one.
	// When exhausted, the last value repeats.
	Readings []float64

	index int

	// Reads counts calls to ReadTemperature.
	Reads int

	// ReadError, if set, will be returned by ReadTemperature.
	ReadError error

	// MinC and MaxC bound IsReadingValid.
	MinC float64
	MaxC float64
}

// NewFakeThermometer creates a FakeThermometer with the TMP36 range.
func NewFakeThermometer(readings []float64) *FakeThermometer {
	return &FakeThermometer{Readings: readings, MinC: -40, MaxC: 125}
}

// ReadTemperature returns the next scripted reading.
func (f *FakeThermometer) ReadTemperature() (float64, error) {
	f.Reads++
	if f.ReadError != nil {
		return 0, f.ReadError
	}
	if len(f.Readings) == 0 {
		return 0, ErrNoReadings
	}
	c := f.Readings[f.index]
	if f.index < len(f.Readings)-1 {
		f.index++
	}
	return c, nil
}

// IsReadingValid reports whether c lies in [MinC, MaxC].
func (f *FakeThermometer) IsReadingValid(c float64) bool {
	return inRange(c, f.MinC, f.MaxC)
}
