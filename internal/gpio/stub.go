//go:build !linux

package gpio

import "errors"

var errUnsupported = errors.New("gpio: not supported on this platform (requires Linux)")

// RealDoorReader is not available on non-Linux platforms.
type RealDoorReader struct{}

// NewRealDoorReader returns an error on non-Linux platforms.
func NewRealDoorReader(chipName string, pin int) (*RealDoorReader, error) {
	return nil, errUnsupported
}

// ReadRawDoor is not implemented on non-Linux platforms.
func (r *RealDoorReader) ReadRawDoor() (bool, error) {
	return false, errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (r *RealDoorReader) Close() error {
	return nil
}

// RealIndicator is not available on non-Linux platforms.
type RealIndicator struct{}

// NewRealIndicator returns an error on non-Linux platforms.
func NewRealIndicator(chipName string, pin int) (*RealIndicator, error) {
	return nil, errUnsupported
}

// Set is not implemented on non-Linux platforms.
func (r *RealIndicator) Set(on bool) error {
	return errUnsupported
}

// Close is not implemented on non-Linux platforms.
func (r *RealIndicator) Close() error {
	return nil
}
