package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// maxADCValue is the full-scale 12-bit ADC reading.
const maxADCValue = 4095

// YL69Handler registers a producer for a resistive soil-moisture
// probe. The raw ADC value rises as the soil dries, so the reading is
// mapped to a moisture percentage: full-scale raw → 0%, raw 0 → 100%.
type YL69Handler struct{}

func (h *YL69Handler) HandledMode() pins.Mode {
	return pins.ModeYL69
}

func (h *YL69Handler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()

	r.AddProducer(&Producer{
		Pin:      cfg.Pin,
		Topic:    Topic(r.ClientID(), CategoryYL69, cfg.Name, SuffixValue),
		Interval: time.Duration(cfg.PollingInterval) * time.Millisecond,
		Read: func(pin int) string {
			raw, err := hw.AnalogRead(pin)
			if err != nil {
				return SentinelError
			}
			raw = clampInt(raw, 0, maxADCValue)
			percent := 100 - (raw*100)/maxADCValue
			return formatInt(percent)
		},
	})
	return nil
}
