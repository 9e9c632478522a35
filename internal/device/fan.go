package device

import (
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// fanStateCount is the number of discrete speeds (0 = off, 4 = full).
const fanStateCount = 5

// fanRelayTable maps each state to its relay combination
// {relay1, relay2, relay3}. Speeds 1-3 switch transformer taps; speed
// 4 bypasses the transformer entirely on relay 3.
var fanRelayTable = [fanStateCount][3]bool{
	{false, false, false}, // 0: off
	{true, false, false},  // 1: low
	{false, true, false},  // 2: medium
	{true, true, false},   // 3: high
	{false, false, true},  // 4: full
}

// fanFeedbackTable is the exact inverse of the command bucketing:
// the percentage reported for each state.
var fanFeedbackTable = [fanStateCount]int{0, 25, 50, 75, 100}

// MQTTToState buckets a 0-100 percentage command into a discrete
// state. Values below 0 clamp to off, values above 100 to full; the
// mapping is monotonically non-decreasing.
func MQTTToState(value int) int {
	switch {
	case value <= 0:
		return 0
	case value <= 25:
		return 1
	case value <= 50:
		return 2
	case value <= 75:
		return 3
	default:
		return 4
	}
}

// StateToMQTT converts a state back to its feedback percentage.
// Out-of-range states report 0.
func StateToMQTT(state int) int {
	if state < 0 || state >= fanStateCount {
		return 0
	}
	return fanFeedbackTable[state]
}

// fanKickstart tracks a pending full-power burst. Transient: reset to
// inactive once the target state is applied or superseded.
type fanKickstart struct {
	active bool
	start  time.Time
	target int
}

// fanEntry is the per-pin runtime state of one registered fan.
type fanEntry struct {
	cfg     pins.PinConfig
	current int // last commanded target state
	kick    fanKickstart
}

// FanHandler drives 3-relay discrete-speed fans.
//
// Commands arrive as 0-100 percentages and are bucketed to states 0-4;
// feedback is the exact inverse percentage. When transitioning from
// off to a low state with kickstart enabled, the fan runs at full
// power for the configured duration to overcome static friction,
// while feedback reports the target so clients see where the fan is
// heading, not the transient.
type FanHandler struct {
	state *StateStore
	fans  map[int]*fanEntry
	now   func() time.Time
}

// NewFanHandler constructs the handler with its own state store.
func NewFanHandler(state *StateStore) *FanHandler {
	return &FanHandler{
		state: state,
		fans:  make(map[int]*fanEntry),
		now:   time.Now,
	}
}

func (h *FanHandler) HandledMode() pins.Mode {
	return pins.ModeFan
}

// SetClock overrides the time source used to stamp kickstart starts.
// Tests drive it with a simulated clock.
func (h *FanHandler) SetClock(now func() time.Time) {
	h.now = now
}

// Init sets up all three relays de-energized, applies the default
// speed, and wires the set/state topics plus the kickstart sweep hook.
func (h *FanHandler) Init(cfg pins.PinConfig, r *Registry) error {
	hw := r.Hardware()

	for _, relay := range [3]int{cfg.Pin, cfg.Relay2, cfg.Relay3} {
		if err := hw.SetupOutput(relay, false); err != nil {
			r.Logger().Warn("fan relay setup failed, skipping entry",
				"pin", cfg.Pin, "relay", relay, "name", cfg.Name, "error", err)
			return fmt.Errorf("%w: %w", ErrHardwareSetup, err)
		}
	}

	entry := &fanEntry{cfg: cfg}
	h.fans[cfg.Pin] = entry

	// Default speed applies without kickstart; there is no motor
	// spinning yet to care about transients.
	defaultState := MQTTToState(clampInt(cfg.DefaultState, 0, 100))
	h.applyRelays(r, entry, defaultState)
	entry.current = defaultState
	h.state.Set(cfg.Pin, formatInt(StateToMQTT(defaultState)))

	setTopic := Topic(r.ClientID(), CategoryFan, cfg.Name, SuffixSet)
	consumer := NewActuatorConsumer(cfg, setTopic, func(pin int, payload string) {
		h.handleCommand(r, pin, payload)
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

	// Kickstart resolution runs after command dispatch in the same
	// tick, so a just-issued command is never overwritten by a stale
	// pending kickstart.
	pin := cfg.Pin
	r.AddSweep(func(now time.Time) {
		h.sweepEntry(r, pin, now)
	})
	return nil
}

// handleCommand buckets the payload, resolves kickstart, applies
// relays, and records feedback.
func (h *FanHandler) handleCommand(r *Registry, pin int, payload string) {
	entry, ok := h.fans[pin]
	if !ok {
		return
	}

	value := parseClampedInt(payload, 0, 100)
	target := MQTTToState(value)
	fromOff := entry.current == 0

	// A new command supersedes any pending kickstart.
	entry.kick.active = false

	if fromOff && target >= 1 && target < fanStateCount-1 &&
		entry.cfg.KickstartEnabled && entry.cfg.KickstartDuration > 0 {
		h.applyRelays(r, entry, fanStateCount-1)
		entry.kick = fanKickstart{active: true, start: h.now(), target: target}
	} else {
		h.applyRelays(r, entry, target)
	}

	entry.current = target
	// Feedback reports the target, not the kickstart transient.
	h.state.Set(pin, formatInt(StateToMQTT(target)))
}

// sweepEntry applies a pending kickstart target once its duration has
// elapsed.
func (h *FanHandler) sweepEntry(r *Registry, pin int, now time.Time) {
	entry, ok := h.fans[pin]
	if !ok || !entry.kick.active {
		return
	}

	duration := time.Duration(entry.cfg.KickstartDuration) * time.Millisecond
	if now.Sub(entry.kick.start) < duration {
		return
	}

	h.applyRelays(r, entry, entry.kick.target)
	entry.kick.active = false
}

// applyRelays drives the relay combination for a state. All relays are
// de-energized first so two transformer taps are never bridged during
// a transition.
func (h *FanHandler) applyRelays(r *Registry, entry *fanEntry, state int) {
	hw := r.Hardware()
	relays := [3]int{entry.cfg.Pin, entry.cfg.Relay2, entry.cfg.Relay3}

	for _, relay := range relays {
		if err := hw.DigitalWrite(relay, false); err != nil {
			r.Logger().Warn("fan relay write failed",
				"pin", entry.cfg.Pin, "relay", relay, "name", entry.cfg.Name, "error", err)
			return
		}
	}

	if state < 0 || state >= fanStateCount {
		state = 0
	}
	row := fanRelayTable[state]
	for i, relay := range relays {
		if !row[i] {
			continue
		}
		if err := hw.DigitalWrite(relay, true); err != nil {
			r.Logger().Warn("fan relay write failed",
				"pin", entry.cfg.Pin, "relay", relay, "name", entry.cfg.Name, "error", err)
		}
	}
}
