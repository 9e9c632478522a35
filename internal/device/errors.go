package device

import "errors"

// Domain-specific errors for device registration.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNoHandler is returned when no handler is registered for an
	// entry's mode.
	ErrNoHandler = errors.New("device: no handler for mode")

	// ErrChannelsExhausted is returned when the PWM channel pool has no
	// free channel left. The entry is skipped; already-assigned
	// channels are unaffected.
	ErrChannelsExhausted = errors.New("device: pwm channel pool exhausted")

	// ErrHardwareSetup wraps pin or bus setup failures during actuator
	// init; the entry is skipped. Sensor handlers register a degraded
	// entry instead of returning it.
	ErrHardwareSetup = errors.New("device: hardware setup failed")
)
