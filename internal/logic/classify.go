package logic

// Classify maps one sample to a status. Checks run in priority order and the
// first match wins:
//
//  1. an invalid latest reading is ERROR, whatever the door or temperature;
//  2. an open door is DOOR_OPEN;
//  3. an average above warmThresholdC is TOO_WARM;
//  4. otherwise OK.
//
// Validity is judged on the latest reading, warmth on the average.
func Classify(in Input, warmThresholdC float64) Status {
	if !in.Valid {
		return StatusError
	}
	if in.DoorOpen {
		return StatusDoorOpen
	}
	if in.Average > warmThresholdC {
		return StatusTooWarm
	}
	return StatusOK
}
