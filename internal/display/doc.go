// Package display feeds an attached character display with a rotating
// carousel of device readings.
//
// The carousel holds label/value items rebuilt from the scheduler's
// last-published readings and a connectivity status line. It only
// selects content; driving the actual display hardware is a separate
// concern.
package display
