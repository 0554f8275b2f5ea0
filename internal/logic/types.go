// Package logic contains the pure state machines of the fridge probe: the
// temperature history, the door debouncer, the status classifier and the
// indicator pattern engine.
// This package has NO external dependencies (no GPIO, serial, OS, or time.Sleep).
// Time is always injected as a uint32 millisecond counter.
package logic

// Status is the overall health of the probe. Values are ordered by priority:
// a larger value wins when more than one condition applies.
type Status int

const (
	StatusOK Status = iota
	StatusTooWarm
	StatusDoorOpen
	StatusError
)

// String returns the telemetry token for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusTooWarm:
		return "TOO_WARM"
	case StatusDoorOpen:
		return "DOOR_OPEN"
	case StatusError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Input is one classification sample.
type Input struct {
	Latest   float64 // instantaneous reading, Celsius
	Average  float64 // rolling average, Celsius
	Valid    bool    // Latest is inside the sensor's physical range
	DoorOpen bool    // debounced door state
}

// Elapsed returns now-since on a wrapping uint32 millisecond counter.
// The result is correct across counter overflow as long as the real interval
// is below half the counter range (~24.8 days).
func Elapsed(now, since uint32) uint32 {
	return now - since
}
