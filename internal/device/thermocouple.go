package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// ThermocoupleHandler registers a temperature producer for an
// SPI-style thermocouple amplifier. The primary pin is chip-select;
// clock and data come from the entry's auxiliary pins.
type ThermocoupleHandler struct{}

func (h *ThermocoupleHandler) HandledMode() pins.Mode {
	return pins.ModeThermocouple
}

func (h *ThermocoupleHandler) Init(cfg pins.PinConfig, r *Registry) error {
	interval := time.Duration(cfg.PollingInterval) * time.Millisecond
	topic := Topic(r.ClientID(), CategoryThermocouple, cfg.Name, SuffixTemperature)

	sensor, err := r.Hardware().OpenThermocouple(cfg.Pin, cfg.Clock, cfg.Data)
	if err != nil {
		r.Logger().Warn("thermocouple open failed, registering degraded producer",
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
