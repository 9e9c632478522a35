package hardware

import "errors"

// Domain-specific errors for hardware operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrUnsupported is returned when the active backend has no driver
	// for the requested function (e.g. ADC on the character-device
	// backend). Handlers degrade to a sentinel-publishing entry
	// instead of failing registration.
	ErrUnsupported = errors.New("hardware: function not supported by this backend")

	// ErrPinNotConfigured is returned when reading or writing a pin
	// that was never set up.
	ErrPinNotConfigured = errors.New("hardware: pin not configured")

	// ErrSensorDisconnected is returned by sensor reads when the
	// device does not answer on the bus.
	ErrSensorDisconnected = errors.New("hardware: sensor disconnected")
)
