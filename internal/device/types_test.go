package device

import (
	"testing"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

func TestProducer_Due(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &Producer{Interval: time.Second}

	// Never fired: always due.
	if !p.Due(base) {
		t.Error("fresh producer not due")
	}

	p.MarkPublished(base)
	if p.Due(base.Add(999 * time.Millisecond)) {
		t.Error("due before interval elapsed")
	}
	if !p.Due(base.Add(time.Second)) {
		t.Error("not due at exactly the interval")
	}
}

func TestConsumer_StaleAndFallback(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var delivered []string
	c := &Consumer{
		Pin:           13,
		Topic:         "/n/digital_output/heater/set",
		FallbackValue: "0",
		Interval:      time.Second,
		OnMessage: func(_ int, payload string) {
			delivered = append(delivered, payload)
		},
	}
	c.Arm(base)

	if c.Stale(base.Add(time.Second)) {
		t.Error("stale at exactly the interval (must require strictly more)")
	}
	if !c.Stale(base.Add(time.Second + time.Millisecond)) {
		t.Error("not stale past the interval")
	}

	c.ApplyFallback(base.Add(2 * time.Second))
	if len(delivered) != 1 || delivered[0] != "0" {
		t.Fatalf("fallback delivery = %v, want [0]", delivered)
	}
	if c.LastValue != "0" {
		t.Errorf("LastValue = %q, want 0", c.LastValue)
	}

	// Rearmed: not immediately stale again.
	if c.Stale(base.Add(2*time.Second + 500*time.Millisecond)) {
		t.Error("stale immediately after fallback")
	}
}

func TestConsumer_ZeroIntervalNeverStale(t *testing.T) {
	c := &Consumer{OnMessage: func(int, string) {}}
	if c.Stale(time.Now().Add(24 * time.Hour)) {
		t.Error("zero-interval consumer reported stale")
	}
}

func TestNewActuatorConsumer(t *testing.T) {
	cfg := pins.PinConfig{
		Pin: 13, Name: "heater", DefaultState: 1, WatchdogInterval: 30000,
	}

	var got string
	c := NewActuatorConsumer(cfg, "/n/digital_output/heater/set", func(_ int, payload string) {
		got = payload
	})

	if c.Pin != 13 || c.Topic != "/n/digital_output/heater/set" {
		t.Errorf("identity fields wrong: %+v", c)
	}
	if c.FallbackValue != "1" {
		t.Errorf("FallbackValue = %q, want 1", c.FallbackValue)
	}
	if c.Interval != 30*time.Second {
		t.Errorf("Interval = %v, want 30s", c.Interval)
	}

	c.Deliver("0", time.Now())
	if got != "0" || c.LastValue != "0" {
		t.Errorf("Deliver: got %q, LastValue %q", got, c.LastValue)
	}
}

func TestTopic(t *testing.T) {
	got := Topic("grayedge-01", CategoryFan, "bedroom-fan", SuffixSet)
	if want := "/grayedge-01/fan/bedroom-fan/set"; got != want {
		t.Errorf("Topic = %q, want %q", got, want)
	}
}

func TestStateStore(t *testing.T) {
	s := NewStateStore()
	if got := s.Get(13); got != SentinelError {
		t.Errorf("unset pin = %q, want %q", got, SentinelError)
	}
	s.Set(13, "1")
	if got := s.Get(13); got != "1" {
		t.Errorf("Get = %q, want 1", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
