// Package hardware defines the driver contract between device handlers
// and physical pins, plus the backends that implement it.
//
// # Architecture
//
// Handlers never touch a driver library directly. They receive a
// Hardware value at registration time and perform all I/O through it,
// which keeps the device layer testable and the driver stack swappable
// per board.
//
// Three implementations exist:
//
//   - Chip (linux): the real backend over the GPIO character device,
//     digital I/O only. Functions the kernel interface cannot provide
//     (ADC, DAC, PWM, sensor buses, phase-control dimming) return
//     ErrUnsupported.
//   - Chip (!linux): a stub so the tree builds on development hosts.
//   - Fake: an in-memory double for tests, with recorded writes and
//     scripted reads.
//
// # Error Handling
//
// Backends return the package sentinels (ErrUnsupported,
// ErrPinNotConfigured, ErrSensorDisconnected) wrapped with pin context.
// Callers branch with errors.Is; ErrUnsupported in particular is a
// signal to degrade, not to abort.
//
// # Concurrency
//
// All backends are driven from the single scheduler goroutine and hold
// no locks.
package hardware
