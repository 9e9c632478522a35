package device

import (
	"errors"
	"testing"

	"github.com/nerrad567/gray-logic-edge/internal/hardware"
	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

func TestRegistry_RegisterResolve(t *testing.T) {
	reg := NewRegistry(hardware.NewFake(), "grayedge-test")

	if _, ok := reg.Resolve(pins.ModeDigitalOut); ok {
		t.Error("Resolve succeeded on empty registry")
	}

	h := NewDigitalOutputHandler(NewStateStore())
	reg.Register(h)

	got, ok := reg.Resolve(pins.ModeDigitalOut)
	if !ok || got != h {
		t.Errorf("Resolve = (%v, %v), want registered handler", got, ok)
	}
}

func TestRegistry_RegisterDefaults(t *testing.T) {
	reg := NewRegistry(hardware.NewFake(), "grayedge-test")
	reg.RegisterDefaults()

	modes := []pins.Mode{
		pins.ModeDigitalIn, pins.ModeDigitalOut, pins.ModePWM,
		pins.ModeAnalogIn, pins.ModeAnalogOut, pins.ModeDHT22,
		pins.ModeYL69, pins.ModeDS18B20, pins.ModeThermocouple,
		pins.ModeFan, pins.ModeFanDimmer,
	}
	for _, mode := range modes {
		if _, ok := reg.Resolve(mode); !ok {
			t.Errorf("no default handler for %s", mode)
		}
	}
}

func TestRegistry_InitDeviceNoHandler(t *testing.T) {
	reg := NewRegistry(hardware.NewFake(), "grayedge-test")

	cfg := pins.PinConfig{Pin: 13, Mode: pins.ModeDigitalOut, Name: "led"}
	if err := reg.InitDevice(cfg); !errors.Is(err, ErrNoHandler) {
		t.Errorf("InitDevice error = %v, want ErrNoHandler", err)
	}
}

func TestRegistry_Clear(t *testing.T) {
	reg := NewRegistry(hardware.NewFake(), "grayedge-test")
	reg.RegisterDefaults()
	reg.AddProducer(&Producer{Topic: "/t/p"})
	reg.AddConsumer(&Consumer{Topic: "/t/c"})

	reg.Clear()

	if _, ok := reg.Resolve(pins.ModeDigitalOut); ok {
		t.Error("handler survived Clear")
	}
	if len(reg.Producers()) != 0 || len(reg.Consumers()) != 0 {
		t.Error("collections survived Clear")
	}
}

func TestRegistry_DuplicateConsumerTopics(t *testing.T) {
	reg := NewRegistry(hardware.NewFake(), "grayedge-test")

	first := &Consumer{Pin: 13, Topic: "/grayedge-test/fan/same/set"}
	second := &Consumer{Pin: 14, Topic: "/grayedge-test/fan/same/set"}
	reg.AddConsumer(first)
	reg.AddConsumer(second)

	// Both are kept; dispatch order decides (first registered wins).
	if len(reg.Consumers()) != 2 {
		t.Fatalf("consumers = %d, want 2", len(reg.Consumers()))
	}
	if reg.Consumers()[0] != first {
		t.Error("registration order not preserved")
	}
}

func TestChannelAllocator_Exhaustion(t *testing.T) {
	alloc := NewChannelAllocator(3)

	for i := 0; i < 3; i++ {
		ch, err := alloc.Allocate()
		if err != nil {
			t.Fatalf("Allocate %d: %v", i, err)
		}
		if ch != i {
			t.Errorf("channel = %d, want %d", ch, i)
		}
	}

	if _, err := alloc.Allocate(); !errors.Is(err, ErrChannelsExhausted) {
		t.Errorf("error = %v, want ErrChannelsExhausted", err)
	}
	if alloc.Allocated() != 3 {
		t.Errorf("Allocated() = %d, want 3", alloc.Allocated())
	}
}

func TestPWMHandler_ChannelExhaustionSkipsEntry(t *testing.T) {
	fake := hardware.NewFake()
	reg := NewRegistry(fake, "grayedge-test")
	reg.Register(NewPWMHandler(NewStateStore()))
	reg.channels = NewChannelAllocator(1)

	ok := pins.PinConfig{Pin: 13, Mode: pins.ModePWM, Name: "led-a", PollingInterval: 1000}
	if err := reg.InitDevice(ok); err != nil {
		t.Fatalf("first entry: %v", err)
	}

	over := pins.PinConfig{Pin: 14, Mode: pins.ModePWM, Name: "led-b", PollingInterval: 1000}
	if err := reg.InitDevice(over); !errors.Is(err, ErrChannelsExhausted) {
		t.Errorf("second entry error = %v, want ErrChannelsExhausted", err)
	}

	// The first assignment is unaffected.
	if ch, bound := fake.PWMChannels[13]; !bound || ch != 0 {
		t.Errorf("first entry channel binding lost: %v", fake.PWMChannels)
	}
	if _, bound := fake.PWMChannels[14]; bound {
		t.Error("exhausted entry still bound a channel")
	}
}
