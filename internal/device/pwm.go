package device

import (
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// maxDuty is the top of the 8-bit duty range.
const maxDuty = 255

// PWMHandler drives dimmable loads on hardware PWM channels. Channels
// come from the registry's shared allocator; exhausting the pool skips
// the entry without disturbing already-assigned channels.
type PWMHandler struct {
	state *StateStore
}

// NewPWMHandler constructs the handler with its own state store.
func NewPWMHandler(state *StateStore) *PWMHandler {
	return &PWMHandler{state: state}
}

func (h *PWMHandler) HandledMode() pins.Mode {
	return pins.ModePWM
}

// Init allocates a channel, binds the pin, applies the default duty,
// and wires the set/state topics. Inbound duty commands clamp to
// 0-255.
func (h *PWMHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()

	channel, err := r.Channels().Allocate()
	if err != nil {
		r.Logger().Warn("pwm channel allocation failed, skipping entry",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		return err
	}

	if err := hw.SetupPWM(cfg.Pin, channel); err != nil {
		r.Logger().Warn("pwm setup failed, skipping entry",
			"pin", cfg.Pin, "name", cfg.Name, "channel", channel, "error", err)
		return fmt.Errorf("%w: %w", ErrHardwareSetup, err)
	}

	defaultDuty := clampInt(cfg.DefaultState, 0, maxDuty)
	if err := hw.PWMWrite(channel, defaultDuty); err != nil {
		r.Logger().Warn("pwm default write failed",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
	}
	h.state.Set(cfg.Pin, formatInt(defaultDuty))

	setTopic := Topic(r.ClientID(), CategoryPWM, cfg.Name, SuffixSet)
	consumer := NewActuatorConsumer(cfg, setTopic, func(pin int, payload string) {
		duty := parseClampedInt(payload, 0, maxDuty)
		if err := hw.PWMWrite(channel, duty); err != nil {
			r.Logger().Warn("pwm write failed",
				"pin", pin, "name", cfg.Name, "channel", channel, "error", err)
			return
		}
		h.state.Set(pin, formatInt(duty))
	})
	consumer.FallbackValue = formatInt(defaultDuty)
	r.AddConsumer(consumer)

	if cfg.PollingInterval > 0 {
		r.AddProducer(&Producer{
			Pin:      cfg.Pin,
			Topic:    Topic(r.ClientID(), CategoryPWM, cfg.Name, SuffixState),
			Interval: time.Duration(cfg.PollingInterval) * time.Millisecond,
			Read:     func(pin int) string { return h.state.Get(pin) },
		})
	}
	return nil
}
