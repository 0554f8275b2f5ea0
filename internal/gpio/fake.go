package gpio

import "errors"

// ErrNoSamples is returned by FakeDoorReader when no samples are scripted.
var ErrNoSamples = errors.New("no samples configured")

// FakeDoorReader is a test double that returns scripted door values.
type FakeDoorReader struct {
	// Samples contains scripted open/closed values to return.
	// Each call to ReadRawDoor() consumes the next sample.
	Samples []bool

	// index tracks current position in Samples
	index int

	// Reads counts calls to ReadRawDoor.
	Reads int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by ReadRawDoor()
	ReadError error
}

// NewFakeDoorReader creates a FakeDoorReader with the given samples.
func NewFakeDoorReader(samples []bool) *FakeDoorReader {
	return &FakeDoorReader{Samples: samples}
}

// ReadRawDoor returns the next scripted sample.
// If samples are exhausted, returns the last sample repeatedly.
func (f *FakeDoorReader) ReadRawDoor() (bool, error) {
	f.Reads++
	if f.ReadError != nil {
		return false, f.ReadError
	}

	if len(f.Samples) == 0 {
		return false, ErrNoSamples
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return sample, nil
}

// Close marks the reader as closed.
func (f *FakeDoorReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeDoorReader) Reset() {
	f.index = 0
	f.Reads = 0
	f.Closed = false
}

// FakeIndicator records LED writes for test assertions.
type FakeIndicator struct {
	// Writes contains every level passed to Set, in order.
	Writes []bool

	// SetError, if set, will be returned by Set (the write is still recorded).
	SetError error

	// Closed tracks if Close was called
	Closed bool
}

// NewFakeIndicator creates a FakeIndicator.
func NewFakeIndicator() *FakeIndicator {
	return &FakeIndicator{}
}

// Set records the level.
func (f *FakeIndicator) Set(on bool) error {
	f.Writes = append(f.Writes, on)
	return f.SetError
}

// On returns the last written level (false if never written).
func (f *FakeIndicator) On() bool {
	if len(f.Writes) == 0 {
		return false
	}
	return f.Writes[len(f.Writes)-1]
}

// Close marks the indicator as closed.
func (f *FakeIndicator) Close() error {
	f.Closed = true
	return nil
}
