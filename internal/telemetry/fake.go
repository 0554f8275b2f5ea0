package telemetry

// FakeSink records emitted lines for test assertions.
type FakeSink struct {
	// Lines contains every successfully emitted line.
	Lines []string

	// EmitError, if set, will be returned by Emit and the line is not recorded.
	EmitError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeSink creates a FakeSink for testing.
func NewFakeSink() *FakeSink {
	return &FakeSink{}
}

// Emit records the line.
func (f *FakeSink) Emit(line string) error {
	if f.EmitError != nil {
		return f.EmitError
	}
	f.Lines = append(f.Lines, line)
	return nil
}

// Close marks the sink as closed.
func (f *FakeSink) Close() error {
	f.Closed = true
	return nil
}

// Reset clears recorded lines.
func (f *FakeSink) Reset() {
	f.Lines = nil
	f.EmitError = nil
	f.Closed = false
}
