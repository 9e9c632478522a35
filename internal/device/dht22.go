package device

import (
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/hardware"
	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// DHT22Handler registers two producers for a combined
// temperature/humidity sensor, one topic per reading.
type DHT22Handler struct{}

func (h *DHT22Handler) HandledMode() pins.Mode {
	return pins.ModeDHT22
}

// Init opens the sensor bus and registers temperature and humidity
// producers. A sensor that cannot be opened registers degraded
// producers publishing SentinelError; a sensor that answers with NaN
// publishes SentinelNaN on that cycle and retries naturally on the
// next poll.
func (h *DHT22Handler) Init(cfg pins.PinConfig, r *Registry) error {
	interval := time.Duration(cfg.PollingInterval) * time.Millisecond
	tempTopic := Topic(r.ClientID(), CategoryDHT22, cfg.Name, SuffixTemperature)
	humTopic := Topic(r.ClientID(), CategoryDHT22, cfg.Name, SuffixHumidity)

	sensor, err := r.Hardware().OpenDHT22(cfg.Pin)
	if err != nil {
		r.Logger().Warn("dht22 open failed, registering degraded producers",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		degraded := func(int) string { return SentinelError }
		r.AddProducer(&Producer{Pin: cfg.Pin, Topic: tempTopic, Interval: interval, Read: degraded})
		r.AddProducer(&Producer{Pin: cfg.Pin, Topic: humTopic, Interval: interval, Read: degraded})
		return nil
	}

	r.AddProducer(&Producer{
		Pin:      cfg.Pin,
		Topic:    tempTopic,
		Interval: interval,
		Read:     func(int) string { return readTemperature(sensor) },
	})
	r.AddProducer(&Producer{
		Pin:      cfg.Pin,
		Topic:    humTopic,
		Interval: interval,
		Read: func(int) string {
			v, err := sensor.ReadHumidity()
			if err != nil {
				return SentinelError
			}
			return formatFloat(v)
		},
	})
	return nil
}

// readTemperature converts a bounded sensor read into wire text.
func readTemperature(sensor hardware.TemperatureSensor) string {
	v, err := sensor.ReadTemperature()
	if err != nil {
		return SentinelError
	}
	return formatFloat(v)
}
