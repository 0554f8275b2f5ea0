// Package telemetry formats and emits the probe's text telemetry lines with
// abstraction for testing.
package telemetry

import (
	"errors"
	"fmt"

	"github.com/sweeney/fridge-probe/internal/logic"
)

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("telemetry sink closed")

// Sink receives telemetry lines.
type Sink interface {
	// Emit writes one line (without trailing newline).
	// Returns error if the write fails (should not crash the process).
	Emit(line string) error

	// Close releases the sink.
	Close() error
}

// Line is the data carried by one telemetry line.
type Line struct {
	TempC    float64
	AvgC     float64
	DoorOpen bool
	Status   logic.Status
}

// FormatLine renders l as
//
//	t=4.3C, avg=4.1C, door=closed, status=OK
func FormatLine(l Line) string {
	door := "closed"
	if l.DoorOpen {
		door = "open"
	}
	return fmt.Sprintf("t=%.1fC, avg=%.1fC, door=%s, status=%s", l.TempC, l.AvgC, door, l.Status)
}
