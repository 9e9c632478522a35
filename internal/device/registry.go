package device

import (
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/hardware"
	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// Logger defines the logging interface used by the Registry and
// handlers. This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Handler binds one device mode to its hardware setup and topic
// wiring. Each concrete handler declares exactly one mode and, in
// Init, performs pin/bus setup and registers Producer and/or Consumer
// descriptors with the registry.
//
// Init failures are entry-level: a handler that cannot acquire its
// hardware either registers a degraded entry (sensors publishing
// SentinelError) or returns an error that causes just this entry to be
// skipped. It never panics and never aborts other entries.
type Handler interface {
	HandledMode() pins.Mode
	Init(cfg pins.PinConfig, r *Registry) error
}

// Registry maps device modes to handlers and owns the producer and
// consumer collections the scheduler iterates.
//
// It is constructed once by the composition root and mutated only
// during registration; steady-state ticks iterate but never modify
// the collections, so no locking is needed under the single-goroutine
// scheduler model.
type Registry struct {
	handlers  map[pins.Mode]Handler
	producers []*Producer
	consumers []*Consumer
	sweeps    []func(now time.Time)

	hw       hardware.Hardware
	clientID string
	channels *ChannelAllocator
	logger   Logger
}

// NewRegistry creates a registry bound to a hardware backend and the
// node's MQTT client ID (the root segment of every derived topic).
func NewRegistry(hw hardware.Hardware, clientID string) *Registry {
	return &Registry{
		handlers: make(map[pins.Mode]Handler),
		hw:       hw,
		clientID: clientID,
		channels: NewChannelAllocator(defaultChannelCap),
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the registry and its handlers.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Register adds a handler, replacing any existing handler for the
// same mode.
func (r *Registry) Register(h Handler) {
	r.handlers[h.HandledMode()] = h
}

// Resolve returns the handler for a mode, if one is registered.
func (r *Registry) Resolve(mode pins.Mode) (Handler, bool) {
	h, ok := r.handlers[mode]
	return h, ok
}

// RegisterDefaults registers the full set of built-in handlers, each
// actuator handler with its own freshly constructed state store.
func (r *Registry) RegisterDefaults() {
	r.Register(&DigitalInputHandler{})
	r.Register(NewDigitalOutputHandler(NewStateStore()))
	r.Register(NewPWMHandler(NewStateStore()))
	r.Register(&AnalogInputHandler{})
	r.Register(NewAnalogOutputHandler(NewStateStore()))
	r.Register(&DHT22Handler{})
	r.Register(&YL69Handler{})
	r.Register(&DS18B20Handler{})
	r.Register(&ThermocoupleHandler{})
	r.Register(NewFanHandler(NewStateStore()))
	r.Register(NewFanDimmerHandler(NewStateStore()))
}

// Clear removes all handlers and registered producers, consumers, and
// sweep hooks. Mainly for tests that rebuild a registry in place.
func (r *Registry) Clear() {
	r.handlers = make(map[pins.Mode]Handler)
	r.producers = nil
	r.consumers = nil
	r.sweeps = nil
	r.channels = NewChannelAllocator(defaultChannelCap)
}

// InitDevice resolves the entry's handler and delegates setup.
//
// Entries with no registered handler are skipped with a diagnostic;
// the overall registration step still succeeds for the remaining
// entries (partial-failure tolerant, entry-level granularity).
func (r *Registry) InitDevice(cfg pins.PinConfig) error {
	h, ok := r.Resolve(cfg.Mode)
	if !ok {
		r.logger.Warn("no handler for device mode, skipping entry",
			"mode", cfg.Mode, "pin", cfg.Pin, "name", cfg.Name)
		return fmt.Errorf("%w: %s", ErrNoHandler, cfg.Mode)
	}

	if err := h.Init(cfg, r); err != nil {
		r.logger.Warn("device init declined, skipping entry",
			"mode", cfg.Mode, "pin", cfg.Pin, "name", cfg.Name, "error", err)
		return err
	}

	r.logger.Info("device registered",
		"mode", cfg.Mode, "pin", cfg.Pin, "name", cfg.Name)
	return nil
}

// AddProducer appends a producer. Publish order follows registration
// order.
func (r *Registry) AddProducer(p *Producer) {
	r.producers = append(r.producers, p)
}

// AddConsumer appends a consumer. Duplicate topics are detected here:
// dispatch is first-match, so a second consumer on the same topic
// would never fire. The duplicate is still appended but flagged loudly
// at registration time instead of failing silently at dispatch.
func (r *Registry) AddConsumer(c *Consumer) {
	for _, existing := range r.consumers {
		if existing.Topic == c.Topic {
			r.logger.Warn("duplicate consumer topic, only the first registered will receive commands",
				"topic", c.Topic, "first_pin", existing.Pin, "duplicate_pin", c.Pin)
			break
		}
	}
	r.consumers = append(r.consumers, c)
}

// AddSweep registers a per-tick hook run after command dispatch and
// the consumer watchdog. The fan handler uses this for kickstart
// resolution, which must never clobber a command issued in the same
// tick.
func (r *Registry) AddSweep(fn func(now time.Time)) {
	r.sweeps = append(r.sweeps, fn)
}

// Producers returns the registered producers in registration order.
func (r *Registry) Producers() []*Producer {
	return r.producers
}

// Consumers returns the registered consumers in registration order.
func (r *Registry) Consumers() []*Consumer {
	return r.consumers
}

// Sweep runs all registered sweep hooks.
func (r *Registry) Sweep(now time.Time) {
	for _, fn := range r.sweeps {
		fn(now)
	}
}

// Hardware returns the backend handlers perform I/O through.
func (r *Registry) Hardware() hardware.Hardware {
	return r.hw
}

// ClientID returns the node's topic root segment.
func (r *Registry) ClientID() string {
	return r.clientID
}

// Channels returns the shared PWM channel allocator.
func (r *Registry) Channels() *ChannelAllocator {
	return r.channels
}

// Logger returns the registry logger for use inside handlers.
func (r *Registry) Logger() Logger {
	return r.logger
}
