//go:build !linux

package clock

import "time"

// Monotonic returns a counter of milliseconds since the first call, using the
// runtime's monotonic clock reading.
func Monotonic() (Millis, error) {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start).Milliseconds())
	}, nil
}
