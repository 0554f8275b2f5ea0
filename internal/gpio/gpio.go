// Package gpio provides the door switch input and status LED output with
// hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// DoorReader reads the raw door reed switch.
type DoorReader interface {
	// ReadRawDoor returns true when the door is open.
	// With the pull-up enabled, raw HIGH = switch open = door open.
	ReadRawDoor() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Indicator drives the status LED.
type Indicator interface {
	// Set turns the LED on or off.
	Set(on bool) error

	// Close releases GPIO resources.
	Close() error
}

// Default line offsets on gpiochip0.
const (
	DefaultChip    = "gpiochip0"
	DefaultPinDoor = 15 // reed switch to GND
	DefaultPinLED  = 25 // status LED
)
