package manager

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/device"
	"github.com/nerrad567/gray-logic-edge/internal/hardware"
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

type publishedMsg struct {
	topic   string
	payload string
}

// fakeTransport scripts connectivity and records publishes.
type fakeTransport struct {
	connected  bool
	reconnects int
	reconnect  func() error
	published  []publishedMsg
}

func (f *fakeTransport) IsConnected() bool { return f.connected }

func (f *fakeTransport) Reconnect() error {
	f.reconnects++
	if f.reconnect != nil {
		return f.reconnect()
	}
	f.connected = true
	return nil
}

func (f *fakeTransport) PublishRetained(topic, payload string) error {
	f.published = append(f.published, publishedMsg{topic, payload})
	return nil
}

type recordedPoint struct {
	device string
	metric string
	value  float64
}

type fakeTelemetry struct {
	points []recordedPoint
}

func (f *fakeTelemetry) WriteSensorReading(device, metric string, value float64) {
	f.points = append(f.points, recordedPoint{device, metric, value})
}

func testManager(t *testing.T) (*Manager, *device.Registry, *fakeTransport, *mqtt.Inbox, *hardware.Fake) {
	t.Helper()
	fake := hardware.NewFake()
	reg := device.NewRegistry(fake, "grayedge-test")
	reg.RegisterDefaults()
	transport := &fakeTransport{connected: true}
	inbox := mqtt.NewInbox(16)
	return New(reg, transport, inbox), reg, transport, inbox, fake
}

func TestTick_ProducerCadence(t *testing.T) {
	m, reg, transport, _, fake := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fake.Inputs[13] = true
	cfg := pins.PinConfig{
		Pin: 13, Mode: pins.ModeDigitalIn, Name: "door", PollingInterval: 1000,
	}
	if err := reg.InitDevice(cfg); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}

	m.Tick(base)
	if len(transport.published) != 1 {
		t.Fatalf("publishes after first tick = %d, want 1", len(transport.published))
	}
	if got := transport.published[0]; got.topic != "/grayedge-test/digital_input/door/value" || got.payload != "1" {
		t.Errorf("publish = %+v", got)
	}

	// Within the interval: no republish.
	m.Tick(base.Add(500 * time.Millisecond))
	if len(transport.published) != 1 {
		t.Errorf("republished early: %d publishes", len(transport.published))
	}

	// At the interval: republish.
	m.Tick(base.Add(time.Second))
	if len(transport.published) != 2 {
		t.Errorf("publishes after interval = %d, want 2", len(transport.published))
	}
}

func TestTick_DisconnectedSkipsPublish(t *testing.T) {
	m, reg, transport, _, _ := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cfg := pins.PinConfig{Pin: 13, Mode: pins.ModeDigitalIn, Name: "door", PollingInterval: 1000}
	if err := reg.InitDevice(cfg); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}

	transport.connected = false
	transport.reconnect = func() error { return mqtt.ErrConnectionFailed }
	m.Tick(base)
	if len(transport.published) != 0 {
		t.Errorf("published while disconnected: %d", len(transport.published))
	}
}

func TestTick_ReconnectCooldown(t *testing.T) {
	m, _, transport, _, _ := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	transport.connected = false
	transport.reconnect = func() error { return mqtt.ErrConnectionFailed }

	m.Tick(base)
	if transport.reconnects != 1 {
		t.Fatalf("reconnects = %d, want 1", transport.reconnects)
	}

	// Within the cooldown: no further attempt.
	m.Tick(base.Add(3 * time.Second))
	if transport.reconnects != 1 {
		t.Errorf("reconnect attempted during cooldown: %d", transport.reconnects)
	}

	// Past the cooldown: next attempt.
	m.Tick(base.Add(6 * time.Second))
	if transport.reconnects != 2 {
		t.Errorf("reconnects = %d, want 2", transport.reconnects)
	}
}

func TestTick_DispatchFirstMatchWins(t *testing.T) {
	m, reg, _, inbox, _ := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var firstGot, secondGot []string
	topic := "/grayedge-test/digital_output/heater/set"
	reg.AddConsumer(&device.Consumer{
		Pin: 13, Topic: topic,
		OnMessage: func(_ int, p string) { firstGot = append(firstGot, p) },
	})
	reg.AddConsumer(&device.Consumer{
		Pin: 14, Topic: topic,
		OnMessage: func(_ int, p string) { secondGot = append(secondGot, p) },
	})

	inbox.Push(topic, []byte("1"))
	m.Tick(base)

	if len(firstGot) != 1 || firstGot[0] != "1" {
		t.Errorf("first consumer deliveries = %v, want [1]", firstGot)
	}
	if len(secondGot) != 0 {
		t.Errorf("second consumer fired on duplicate topic: %v", secondGot)
	}
}

func TestTick_WatchdogFiresOnceThenRearms(t *testing.T) {
	m, reg, _, inbox, _ := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var fallbacks int
	reg.AddConsumer(&device.Consumer{
		Pin:           13,
		Topic:         "/grayedge-test/digital_output/heater/set",
		FallbackValue: "0",
		Interval:      10 * time.Second,
		OnMessage: func(_ int, p string) {
			if p == "0" {
				fallbacks++
			}
		},
	})

	m.Tick(base) // arms the watchdog
	if fallbacks != 0 {
		t.Fatalf("watchdog fired at arm time")
	}

	// Quiet past the interval: fires exactly once.
	m.Tick(base.Add(10*time.Second + time.Millisecond))
	if fallbacks != 1 {
		t.Fatalf("fallbacks = %d, want 1", fallbacks)
	}

	// Immediately after: rearmed, no refire.
	m.Tick(base.Add(10*time.Second + 500*time.Millisecond))
	if fallbacks != 1 {
		t.Errorf("watchdog refired immediately: %d", fallbacks)
	}

	// Another full quiet interval: fires again.
	m.Tick(base.Add(21 * time.Second))
	if fallbacks != 2 {
		t.Errorf("fallbacks = %d, want 2", fallbacks)
	}

	// A real message resets the timer.
	inbox.Push("/grayedge-test/digital_output/heater/set", []byte("1"))
	m.Tick(base.Add(22 * time.Second))
	m.Tick(base.Add(30 * time.Second))
	if fallbacks != 2 {
		t.Errorf("watchdog fired too soon after real message: %d", fallbacks)
	}
}

func TestTick_KickstartSettlesThroughScheduler(t *testing.T) {
	m, reg, _, inbox, fake := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h, _ := reg.Resolve(pins.ModeFan)
	h.(*device.FanHandler).SetClock(func() time.Time { return base })

	cfg := pins.PinConfig{
		Pin: 16, Relay2: 17, Relay3: 18,
		Mode: pins.ModeFan, Name: "bedroom-fan",
		PollingInterval:  1000,
		KickstartEnabled: true, KickstartDuration: 5000,
	}
	if err := reg.InitDevice(cfg); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}

	// Command state 2 from off: same tick must end at full power, not
	// settled.
	inbox.Push("/grayedge-test/fan/bedroom-fan/set", []byte("50"))
	m.Tick(base)
	if got := [3]bool{fake.Outputs[16], fake.Outputs[17], fake.Outputs[18]}; got != [3]bool{false, false, true} {
		t.Fatalf("relays after command tick = %v, want full power", got)
	}

	// After the duration the sweep settles to state 2.
	m.Tick(base.Add(6 * time.Second))
	if got := [3]bool{fake.Outputs[16], fake.Outputs[17], fake.Outputs[18]}; got != [3]bool{false, true, false} {
		t.Errorf("relays after settle tick = %v, want state 2", got)
	}
}

func TestTick_TelemetryMirrorsNumericOnly(t *testing.T) {
	m, reg, _, _, fake := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	telemetry := &fakeTelemetry{}
	m.SetTelemetry(telemetry)

	fake.TempSensors[32] = &hardware.FakeTemperatureSensor{Temperature: 54.25}
	good := pins.PinConfig{Pin: 32, Mode: pins.ModeDS18B20, Name: "tank", PollingInterval: 1000}
	if err := reg.InitDevice(good); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}
	// No sensor on pin 33: degraded producer publishing "error".
	bad := pins.PinConfig{Pin: 33, Mode: pins.ModeDS18B20, Name: "broken", PollingInterval: 1000}
	if err := reg.InitDevice(bad); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}
	// Failed climate readings publish "nan", which parses as a float
	// but must never become a point.
	fake.ClimateSensors[27] = &hardware.FakeClimateSensor{
		Temperature: math.NaN(),
		Humidity:    math.NaN(),
	}
	attic := pins.PinConfig{Pin: 27, Mode: pins.ModeDHT22, Name: "attic", PollingInterval: 1000}
	if err := reg.InitDevice(attic); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}

	m.Tick(base)

	if len(telemetry.points) != 1 {
		t.Fatalf("points = %d, want 1 (sentinels skipped)", len(telemetry.points))
	}
	p := telemetry.points[0]
	if p.device != "tank" || p.metric != "temperature" || p.value != 54.25 {
		t.Errorf("point = %+v", p)
	}
}

// The display goroutine snapshots readings while the scheduler ticks;
// run both concurrently so the race detector can catch unguarded
// access to the readings map.
func TestReadings_ConcurrentWithTicks(t *testing.T) {
	m, reg, _, _, fake := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fake.Inputs[13] = true
	cfg := pins.PinConfig{Pin: 13, Mode: pins.ModeDigitalIn, Name: "door", PollingInterval: 1}
	if err := reg.InitDevice(cfg); err != nil {
		t.Fatalf("InitDevice: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				m.Readings()
			}
		}
	}()

	for i := 0; i < 1000; i++ {
		m.Tick(base.Add(time.Duration(i) * time.Millisecond))
	}
	close(done)
	wg.Wait()

	readings := m.Readings()
	if len(readings) != 1 || readings[0].Value != "1" {
		t.Errorf("readings after concurrent access = %v", readings)
	}
}

func TestReadings_Order(t *testing.T) {
	m, reg, _, _, fake := testManager(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fake.Inputs[13] = true
	for _, cfg := range []pins.PinConfig{
		{Pin: 13, Mode: pins.ModeDigitalIn, Name: "door", PollingInterval: 1000},
		{Pin: 34, Mode: pins.ModeAnalogIn, Name: "pot", PollingInterval: 1000},
	} {
		if err := reg.InitDevice(cfg); err != nil {
			t.Fatalf("InitDevice: %v", err)
		}
	}

	m.Tick(base)
	m.Tick(base.Add(time.Second))

	readings := m.Readings()
	if len(readings) != 2 {
		t.Fatalf("readings = %d, want 2", len(readings))
	}
	if readings[0].Topic != "/grayedge-test/digital_input/door/value" {
		t.Errorf("first reading = %+v, want registration order preserved", readings[0])
	}
}
