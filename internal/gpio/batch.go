package gpio

import (
	"fmt"
	"time"

	"github.com/sweeney/fridge-probe/internal/logic"
)

// ReadDoorBatch takes n raw readings spaced by interval and resolves them by
// majority. It blocks for (n-1)*interval, so it must not be used from the
// control loop; the loop debounces incrementally instead.
// sleep is injectable for tests; nil means time.Sleep.
func ReadDoorBatch(r DoorReader, n int, interval time.Duration, sleep func(time.Duration)) (bool, error) {
	if sleep == nil {
		sleep = time.Sleep
	}

	observations := make([]bool, 0, n)
	for i := 0; i < n; i++ {
		open, err := r.ReadRawDoor()
		if err != nil {
			return false, fmt.Errorf("door sample %d: %w", i, err)
		}
		observations = append(observations, open)

		// No sleep after the last sample
		if i < n-1 {
			sleep(interval)
		}
	}
	return logic.Majority(observations), nil
}
