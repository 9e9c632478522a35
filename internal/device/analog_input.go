package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// AnalogInputHandler registers a polled producer publishing the raw
// 12-bit ADC reading of a pin.
type AnalogInputHandler struct{}

func (h *AnalogInputHandler) HandledMode() pins.Mode {
	return pins.ModeAnalogIn
}

func (h *AnalogInputHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()

	r.AddProducer(&Producer{
		Pin:      cfg.Pin,
		Topic:    Topic(r.ClientID(), CategoryAnalogInput, cfg.Name, SuffixValue),
		Interval: time.Duration(cfg.PollingInterval) * time.Millisecond,
		Read: func(pin int) string {
			v, err := hw.AnalogRead(pin)
			if err != nil {
				return SentinelError
			}
			return formatInt(v)
		},
	})
	return nil
}
