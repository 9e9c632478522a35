package device

import (
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// maxDACValue is the top of the 8-bit DAC range.
const maxDACValue = 255

// AnalogOutputHandler drives DAC pins. Inbound values clamp to 0-255.
type AnalogOutputHandler struct {
	state *StateStore
}

// NewAnalogOutputHandler constructs the handler with its own state
// store.
func NewAnalogOutputHandler(state *StateStore) *AnalogOutputHandler {
	return &AnalogOutputHandler{state: state}
}

func (h *AnalogOutputHandler) HandledMode() pins.Mode {
	return pins.ModeAnalogOut
}

func (h *AnalogOutputHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()

	defaultValue := clampInt(cfg.DefaultState, 0, maxDACValue)
	if err := hw.DACWrite(cfg.Pin, defaultValue); err != nil {
		r.Logger().Warn("dac default write failed, skipping entry",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		return fmt.Errorf("%w: %w", ErrHardwareSetup, err)
	}
	h.state.Set(cfg.Pin, formatInt(defaultValue))

	setTopic := Topic(r.ClientID(), CategoryAnalogOutput, cfg.Name, SuffixSet)
	consumer := NewActuatorConsumer(cfg, setTopic, func(pin int, payload string) {
		v := parseClampedInt(payload, 0, maxDACValue)
		if err := hw.DACWrite(pin, v); err != nil {
			r.Logger().Warn("dac write failed",
				"pin", pin, "name", cfg.Name, "error", err)
			return
		}
		h.state.Set(pin, formatInt(v))
	})
	consumer.FallbackValue = formatInt(defaultValue)
	r.AddConsumer(consumer)

	if cfg.PollingInterval > 0 {
		r.AddProducer(&Producer{
			Pin:      cfg.Pin,
			Topic:    Topic(r.ClientID(), CategoryAnalogOutput, cfg.Name, SuffixState),
			Interval: time.Duration(cfg.PollingInterval) * time.Millisecond,
			Read:     func(pin int) string { return h.state.Get(pin) },
		})
	}
	return nil
}
