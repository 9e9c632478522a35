package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// DS18B20Handler registers a temperature producer for a OneWire probe.
type DS18B20Handler struct{}

func (h *DS18B20Handler) HandledMode() pins.Mode {
	return pins.ModeDS18B20
}

func (h *DS18B20Handler) Init(cfg pins.PinConfig, r *Registry) error {
	interval := time.Duration(cfg.PollingInterval) * time.Millisecond
	topic := Topic(r.ClientID(), CategoryDS18B20, cfg.Name, SuffixTemperature)

	sensor, err := r.Hardware().OpenDS18B20(cfg.Pin)
	if err != nil {
		r.Logger().Warn("ds18b20 open failed, registering degraded producer",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		r.AddProducer(&Producer{
			Pin:      cfg.Pin,
			Topic:    topic,
			Interval: interval,
			Read:     func(int) string { return SentinelError },
		})
		return nil
	}

	r.AddProducer(&Producer{
		Pin:      cfg.Pin,
		Topic:    topic,
		Interval: interval,
		Read:     func(int) string { return readTemperature(sensor) },
	})
	return nil
}
