// Package clock provides the wrapping millisecond counter that drives the
// control loop.
package clock

// Millis returns the current counter value. It wraps every ~49.7 days;
// compare timestamps with logic.Elapsed.
type Millis func() uint32

// Fake is a manually advanced counter for tests.
type Fake struct {
	Now uint32
}

// Millis returns the fake's current value.
func (f *Fake) Millis() uint32 {
	return f.Now
}

// Advance moves the counter forward by ms, wrapping like the real one.
func (f *Fake) Advance(ms uint32) {
	f.Now += ms
}
