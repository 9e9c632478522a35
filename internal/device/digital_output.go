package device

import (
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// DigitalOutputHandler drives relays and other on/off actuators. It
// registers a set consumer and, when polling is enabled, a state
// producer echoing the last-commanded logical value.
type DigitalOutputHandler struct {
	state *StateStore
}

// NewDigitalOutputHandler constructs the handler with its own state
// store.
func NewDigitalOutputHandler(state *StateStore) *DigitalOutputHandler {
	return &DigitalOutputHandler{state: state}
}

func (h *DigitalOutputHandler) HandledMode() pins.Mode {
	return pins.ModeDigitalOut
}

// Init configures the pin as an output at the configured default and
// wires the set/state topics. Logical values flow to MQTT and the
// state store; the physical level, possibly inverted, flows to the
// pin. Round-tripping through the boundary preserves logical meaning
// regardless of wiring.
func (h *DigitalOutputHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()
	inverted := cfg.Inverted

	defaultLogical := cfg.DefaultState != 0
	if err := hw.SetupOutput(cfg.Pin, defaultLogical != inverted); err != nil {
		r.Logger().Warn("digital output setup failed, skipping entry",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		return fmt.Errorf("%w: %w", ErrHardwareSetup, err)
	}
	h.state.Set(cfg.Pin, formatBool(defaultLogical))

	setTopic := Topic(r.ClientID(), CategoryDigitalOutput, cfg.Name, SuffixSet)
	consumer := NewActuatorConsumer(cfg, setTopic, func(pin int, payload string) {
		logical := parseBoolPayload(payload)
		if err := hw.DigitalWrite(pin, logical != inverted); err != nil {
			r.Logger().Warn("digital output write failed",
				"pin", pin, "name", cfg.Name, "error", err)
			return
		}
		h.state.Set(pin, formatBool(logical))
	})
	consumer.FallbackValue = formatBool(defaultLogical)
	r.AddConsumer(consumer)

	if cfg.PollingInterval > 0 {
		r.AddProducer(&Producer{
			Pin:      cfg.Pin,
			Topic:    Topic(r.ClientID(), CategoryDigitalOutput, cfg.Name, SuffixState),
			Interval: time.Duration(cfg.PollingInterval) * time.Millisecond,
			Read:     func(pin int) string { return h.state.Get(pin) },
		})
	}
	return nil
}
