// Package device binds declarative pin configuration to hardware I/O
// and MQTT topics through a registry of per-mode handlers.
//
// # Architecture
//
// Each device mode (digital in/out, PWM, analog in/out, DHT22, YL-69,
// DS18B20, thermocouple, two fan variants) has exactly one Handler.
// At startup the Registry resolves every validated PinConfig to its
// handler; the handler performs hardware setup through the
// hardware.Hardware contract, derives its topics from
// /{clientID}/{category}/{name}/{suffix}, and registers Producer
// and/or Consumer descriptors:
//
//   - Producer: scheduled read-and-publish task. Sensors publish live
//     readings; actuators echo their state store on the state topic.
//   - Consumer: subscribed command handler with a fallback value and an
//     optional dead-man's-switch interval.
//
// The scheduler in internal/manager iterates these collections; this
// package never talks to the broker directly.
//
// # State Stores
//
// Each actuator handler owns a pin-keyed StateStore injected at
// construction, so a state producer reports the last-commanded logical
// value without re-reading hardware. Stores grow only at registration
// and are mutated only on the scheduler goroutine.
//
// # Error Handling
//
// Nothing here is fatal. Configuration problems skip the single entry
// with a warning carrying pin and name; hardware faults surface as
// sentinel payloads ("error", "nan"); malformed commands clamp to the
// nearest valid bound. The PWM channel pool (16 channels) is owned by
// the registry's ChannelAllocator; exhaustion declines the entry
// cleanly.
//
// # Fan Control
//
// The 3-relay fan buckets 0-100 commands into five discrete states
// with a fixed relay table, de-energizing all relays before every
// transition, and supports a timed full-power kickstart from standstill.
// The dimmer fan maps 1-100 into [minPwm, 100] boundary-exactly. See
// fan.go and fan_dimmer.go.
package device
