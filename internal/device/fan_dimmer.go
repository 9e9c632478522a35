package device

import (
	"fmt"
	"math"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// MapToDimmerLevel maps a 0-100 command value into the usable dimmer
// range [minPwm, 100].
//
// Phase-control dimmers stall below a hardware-dependent threshold, so
// value 1 lands exactly on minPwm and value 100 exactly on 100, with a
// linear, monotonically non-decreasing mapping between them. Zero and
// negative values mean off.
func MapToDimmerLevel(value, minPwm int) int {
	if value <= 0 {
		return 0
	}
	if value > 100 {
		value = 100
	}
	span := 100 - minPwm
	level := minPwm + int(math.Round(float64(value-1)*float64(span)/99.0))
	return clampInt(level, minPwm, 100)
}

// FanDimmerHandler drives AC fans through a gating relay and a
// phase-control dimmer with a zero-cross detector.
//
// Command 0 de-energizes the relay and zeroes the dimmer; 1-100 maps
// through MapToDimmerLevel and energizes the relay whenever the level
// is above zero.
type FanDimmerHandler struct {
	state   *StateStore
	configs map[int]pins.PinConfig
}

// NewFanDimmerHandler constructs the handler with its own state store.
func NewFanDimmerHandler(state *StateStore) *FanDimmerHandler {
	return &FanDimmerHandler{
		state:   state,
		configs: make(map[int]pins.PinConfig),
	}
}

func (h *FanDimmerHandler) HandledMode() pins.Mode {
	return pins.ModeFanDimmer
}

// Init sets up the relay, registers the zero-cross detector
// (idempotent: a pin already registered is a no-op), applies the
// default level, and wires the set/state topics.
func (h *FanDimmerHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()

	if err := hw.SetupOutput(cfg.Pin, false); err != nil {
		r.Logger().Warn("dimmer fan relay setup failed, skipping entry",
			"pin", cfg.Pin, "name", cfg.Name, "error", err)
		return fmt.Errorf("%w: %w", ErrHardwareSetup, err)
	}
	if err := hw.RegisterZeroCross(cfg.ZeroCross); err != nil {
		r.Logger().Warn("zero-cross registration failed, skipping entry",
			"pin", cfg.Pin, "zero_cross", cfg.ZeroCross, "name", cfg.Name, "error", err)
		return fmt.Errorf("%w: %w", ErrHardwareSetup, err)
	}

	h.configs[cfg.Pin] = cfg
	h.apply(r, cfg.Pin, clampInt(cfg.DefaultState, 0, 100))

	setTopic := Topic(r.ClientID(), CategoryFan, cfg.Name, SuffixSet)
	consumer := NewActuatorConsumer(cfg, setTopic, func(pin int, payload string) {
		h.apply(r, pin, parseClampedInt(payload, 0, 100))
	})
	consumer.FallbackValue = formatInt(clampInt(cfg.DefaultState, 0, 100))
	r.AddConsumer(consumer)

	if cfg.PollingInterval > 0 {
		r.AddProducer(&Producer{
			Pin:      cfg.Pin,
			Topic:    Topic(r.ClientID(), CategoryFan, cfg.Name, SuffixState),
			Interval: time.Duration(cfg.PollingInterval) * time.Millisecond,
			Read:     func(pin int) string { return h.state.Get(pin) },
		})
	}
	return nil
}

// apply sets the dimmer level and gates the relay for a command value.
func (h *FanDimmerHandler) apply(r *Registry, pin, value int) {
	cfg, ok := h.configs[pin]
	if !ok {
		return
	}
	hw := r.Hardware()

	level := MapToDimmerLevel(value, cfg.MinPwm)
	if err := hw.SetDimmerLevel(cfg.Dimmer, level); err != nil {
		r.Logger().Warn("dimmer level write failed",
			"pin", pin, "dimmer", cfg.Dimmer, "name", cfg.Name, "error", err)
		return
	}
	if err := hw.DigitalWrite(pin, level > 0); err != nil {
		r.Logger().Warn("dimmer fan relay write failed",
			"pin", pin, "name", cfg.Name, "error", err)
		return
	}
	h.state.Set(pin, formatInt(value))
}
