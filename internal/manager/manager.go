package manager

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/device"
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/mqtt"
)

const (
	// reconnectCooldown bounds how often the connection watchdog
	// attempts a reconnect.
	reconnectCooldown = 5 * time.Second

	// defaultTickInterval paces the scheduler loop.
	defaultTickInterval = 50 * time.Millisecond
)

// Transport is the collaborator contract toward the broker. Satisfied
// by the mqtt wrapper; faked in tests.
type Transport interface {
	IsConnected() bool
	Reconnect() error
	PublishRetained(topic string, payload string) error
}

// Telemetry mirrors numeric readings into a time-series sink.
// Satisfied by the influxdb client; nil disables mirroring.
type Telemetry interface {
	WriteSensorReading(device string, metric string, value float64)
}

// Logger defines the logging interface used by the Manager.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Reading is the last value published on a topic, kept for the
// display carousel.
type Reading struct {
	Topic string
	Value string
}

// Manager is the cooperative scheduler: one goroutine, one pass per
// tick, no blocking waits beyond the bounded reconnect attempt.
//
// Per tick, in order:
//  1. connection watchdog (bounded-cooldown reconnect)
//  2. due producers: read, publish retained, mirror to telemetry
//  3. inbound dispatch: drain the inbox, first topic match wins
//  4. consumer watchdog: stale consumers revert to fallback
//  5. kickstart sweep, last, so a fresh command in the same tick is
//     never clobbered by a stale pending kickstart
//
// All hardware writes, publishes, and state mutations happen on the
// scheduler goroutine; collections are appended at startup only. The
// one cross-goroutine seam is the readings snapshot, which Readings
// serves to the display goroutine under readMu.
type Manager struct {
	registry  *device.Registry
	transport Transport
	inbox     *mqtt.Inbox
	telemetry Telemetry
	logger    Logger

	now           func() time.Time
	tickInterval  time.Duration
	lastReconnect time.Time
	armed         bool

	// readings is read by the display goroutine via Readings while the
	// scheduler writes it; readMu covers both sides.
	readMu   sync.Mutex
	readings map[string]string // topic -> last published payload
	order    []string          // topics in first-publish order
}

// New creates a manager over an initialised registry and transport.
func New(registry *device.Registry, transport Transport, inbox *mqtt.Inbox) *Manager {
	return &Manager{
		registry:     registry,
		transport:    transport,
		inbox:        inbox,
		logger:       noopLogger{},
		now:          time.Now,
		tickInterval: defaultTickInterval,
		readings:     make(map[string]string),
	}
}

// SetLogger sets the logger for the manager.
func (m *Manager) SetLogger(logger Logger) {
	m.logger = logger
}

// SetTelemetry attaches an optional time-series sink for numeric
// producer readings.
func (m *Manager) SetTelemetry(t Telemetry) {
	m.telemetry = t
}

// IsConnected reports broker connectivity.
func (m *Manager) IsConnected() bool {
	return m.transport.IsConnected()
}

// Run drives scheduler ticks until the context is cancelled.
func (m *Manager) Run(ctx context.Context) {
	m.logger.Info("scheduler started",
		"producers", len(m.registry.Producers()),
		"consumers", len(m.registry.Consumers()))

	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			m.Tick(m.now())
		}
	}
}

// Tick runs one scheduler pass at the given instant. Exposed so tests
// can drive the loop with a simulated clock.
func (m *Manager) Tick(now time.Time) {
	if !m.armed {
		// Arm every consumer watchdog at the first tick so a freshly
		// booted node does not immediately revert to fallbacks.
		for _, c := range m.registry.Consumers() {
			c.Arm(now)
		}
		m.armed = true
	}

	m.checkConnection(now)
	m.publishDue(now)
	m.dispatchInbound(now)
	m.runWatchdogs(now)
	m.registry.Sweep(now)
}

// checkConnection attempts a reconnect when disconnected, at most once
// per cooldown. Subscription restoration rides on the transport's
// on-connect path.
func (m *Manager) checkConnection(now time.Time) {
	if m.transport.IsConnected() {
		return
	}
	if now.Sub(m.lastReconnect) <= reconnectCooldown {
		return
	}

	m.lastReconnect = now
	if err := m.transport.Reconnect(); err != nil {
		m.logger.Warn("reconnect attempt failed", "error", err)
		return
	}
	m.logger.Info("broker connection re-established")
}

// publishDue fires every producer whose interval has elapsed, in
// registration order. Disconnected ticks skip publishing; the next
// connected tick publishes current values.
func (m *Manager) publishDue(now time.Time) {
	if !m.transport.IsConnected() {
		return
	}

	for _, p := range m.registry.Producers() {
		if !p.Due(now) {
			continue
		}

		payload := p.Read(p.Pin)
		if err := m.transport.PublishRetained(p.Topic, payload); err != nil {
			m.logger.Warn("producer publish failed",
				"topic", p.Topic, "pin", p.Pin, "error", err)
		}
		p.MarkPublished(now)
		m.record(p.Topic, payload)
		m.mirror(p.Topic, payload)
	}
}

// dispatchInbound drains the inbox and delivers each message to the
// first consumer with an equal topic. Topics are the uniqueness key;
// duplicates were flagged at registration.
func (m *Manager) dispatchInbound(now time.Time) {
	msgs, dropped := m.inbox.Drain()
	if dropped > 0 {
		m.logger.Warn("inbox overflowed, oldest commands dropped", "count", dropped)
	}

	for _, msg := range msgs {
		matched := false
		for _, c := range m.registry.Consumers() {
			if c.Topic != msg.Topic {
				continue
			}
			c.Deliver(msg.Payload, now)
			matched = true
			break
		}
		if !matched {
			m.logger.Debug("no consumer for inbound topic", "topic", msg.Topic)
		}
	}
}

// runWatchdogs reverts stale consumers to their fallback value,
// exactly once per quiet interval.
func (m *Manager) runWatchdogs(now time.Time) {
	for _, c := range m.registry.Consumers() {
		if !c.Stale(now) {
			continue
		}
		m.logger.Info("consumer watchdog fired, applying fallback",
			"topic", c.Topic, "pin", c.Pin, "fallback", c.FallbackValue)
		c.ApplyFallback(now)
	}
}

// record keeps the last published value per topic for the display
// carousel.
func (m *Manager) record(topic, payload string) {
	m.readMu.Lock()
	defer m.readMu.Unlock()

	if _, seen := m.readings[topic]; !seen {
		m.order = append(m.order, topic)
	}
	m.readings[topic] = payload
}

// mirror forwards numeric readings to the telemetry sink. Sentinel
// payloads never reach the sink: "error" fails to parse, and "nan"
// parses to NaN so it needs an explicit finite check.
func (m *Manager) mirror(topic, payload string) {
	if m.telemetry == nil {
		return
	}
	value, err := strconv.ParseFloat(payload, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}

	// /{clientID}/{category}/{name}/{suffix}
	parts := strings.Split(topic, "/")
	if len(parts) != 5 {
		return
	}
	m.telemetry.WriteSensorReading(parts[3], parts[4], value)
}

// Readings returns a snapshot of the last published value per topic,
// in first-publish order. Safe to call from the display goroutine
// while the scheduler is ticking.
func (m *Manager) Readings() []Reading {
	m.readMu.Lock()
	defer m.readMu.Unlock()

	out := make([]Reading, 0, len(m.order))
	for _, topic := range m.order {
		out = append(out, Reading{Topic: topic, Value: m.readings[topic]})
	}
	return out
}
