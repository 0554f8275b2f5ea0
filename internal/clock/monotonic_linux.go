//go:build linux

package clock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Monotonic returns a counter reading CLOCK_MONOTONIC, truncated to 32 bits of
// milliseconds since boot.
func Monotonic() (Millis, error) {
	// Fail at startup if the clock is unusable.
	if _, err := monotonicMs(); err != nil {
		return nil, err
	}
	return func() uint32 {
		ms, _ := monotonicMs()
		return ms
	}, nil
}

func monotonicMs() (uint32, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("clock_gettime: %w", err)
	}
	return uint32(ts.Nano() / 1e6), nil
}
