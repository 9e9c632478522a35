package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// Producer is a scheduled read-and-publish task bound to a pin and
// topic. The scheduler polls it every tick; it fires at most once per
// interval, in registration order.
type Producer struct {
	Pin      int
	Topic    string
	Interval time.Duration

	// Read queries the device and returns the current value as text.
	// Unreadable hardware is reported as a sentinel payload
	// (SentinelError / SentinelNaN), never as a blocked read.
	Read func(pin int) string

	lastPublish time.Time
}

// Due reports whether the producer's interval has elapsed since its
// last publish. A zero lastPublish means it has never fired and is
// always due.
func (p *Producer) Due(now time.Time) bool {
	return now.Sub(p.lastPublish) >= p.Interval
}

// MarkPublished stamps the last publish time.
func (p *Producer) MarkPublished(now time.Time) {
	p.lastPublish = now
}

// Consumer is a subscribed command handler bound to a pin and topic,
// with a safety fallback. The scheduler delivers matching inbound
// messages and, when Interval > 0, reverts the device to
// FallbackValue if no command arrives within that interval
// (dead-man's-switch).
type Consumer struct {
	Pin   int
	Topic string

	// OnMessage converts an inbound payload to a physical command.
	// Invoked synchronously on the scheduler goroutine, both for real
	// messages and for watchdog fallback reverts.
	OnMessage func(pin int, payload string)

	// LastValue is the most recently delivered payload.
	LastValue string

	// FallbackValue is applied by the watchdog when the consumer goes
	// stale.
	FallbackValue string

	// Interval is the watchdog staleness bound; 0 disables it.
	Interval time.Duration

	lastUpdate time.Time
}

// Deliver invokes OnMessage with a real inbound payload and refreshes
// the staleness timer.
func (c *Consumer) Deliver(payload string, now time.Time) {
	c.OnMessage(c.Pin, payload)
	c.LastValue = payload
	c.lastUpdate = now
}

// Stale reports whether the watchdog should fire. Consumers with a
// zero interval are never stale.
func (c *Consumer) Stale(now time.Time) bool {
	if c.Interval <= 0 {
		return false
	}
	return now.Sub(c.lastUpdate) > c.Interval
}

// ApplyFallback force-invokes OnMessage with the fallback value and
// rearms the staleness timer, so the watchdog fires exactly once per
// quiet interval.
func (c *Consumer) ApplyFallback(now time.Time) {
	c.OnMessage(c.Pin, c.FallbackValue)
	c.LastValue = c.FallbackValue
	c.lastUpdate = now
}

// Arm sets the staleness timer without invoking OnMessage. Called at
// registration so a freshly booted node does not immediately trip the
// watchdog.
func (c *Consumer) Arm(now time.Time) {
	c.lastUpdate = now
}

// NewActuatorConsumer builds the standard consumer for an actuator
// entry: fallback is the configured default state, the watchdog
// interval comes from the entry, and fn carries the captured hardware
// identifiers (pin, channel, inversion) as plain data.
func NewActuatorConsumer(cfg pins.PinConfig, topic string, fn func(pin int, payload string)) *Consumer {
	return &Consumer{
		Pin:           cfg.Pin,
		Topic:         topic,
		OnMessage:     fn,
		FallbackValue: formatInt(cfg.DefaultState),
		Interval:      time.Duration(cfg.WatchdogInterval) * time.Millisecond,
	}
}
