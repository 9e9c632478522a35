package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// DigitalInputHandler registers a polled producer for a digital input
// pin (wall switches, door contacts, presence detectors).
type DigitalInputHandler struct{}

func (h *DigitalInputHandler) HandledMode() pins.Mode {
	return pins.ModeDigitalIn
}

// Init configures the pin as an input and registers a value producer.
// If pin setup fails the producer is registered degraded, publishing
// SentinelError, so the topic still exists for the server to observe.
func (h *DigitalInputHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()
	topic := Topic(r.ClientID(), CategoryDigitalInput, cfg.Name, SuffixValue)
	interval := time.Duration(cfg.PollingInterval) * time.Millisecond

	if err := hw.SetupInput(cfg.Pin); err != nil {
		r.Logger().Warn("digital input setup failed, registering degraded producer",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		r.AddProducer(&Producer{
			Pin:      cfg.Pin,
			Topic:    topic,
			Interval: interval,
			Read:     func(int) string { return SentinelError },
		})
		return nil
	}

	inverted := cfg.Inverted
	r.AddProducer(&Producer{
		Pin:      cfg.Pin,
		Topic:    topic,
		Interval: interval,
		Read: func(pin int) string {
			v, err := hw.DigitalRead(pin)
			if err != nil {
				return SentinelError
			}
			// Logical value flows to MQTT; inversion is a wiring detail.
			return formatBool(v != inverted)
		},
	})
	return nil
}
