package pins

import "strings"

// Mode identifies the device type bound to a configuration entry.
type Mode string

// Supported device modes. ModeInvalid is the sentinel for unknown mode
// strings; it never validates, so a typo can never fall through to a
// working mode.
const (
	ModeDigitalIn    Mode = "INPUT_DIGITAL"
	ModeDigitalOut   Mode = "OUTPUT_DIGITAL"
	ModePWM          Mode = "PWM"
	ModeAnalogIn     Mode = "INPUT_ANALOG"
	ModeAnalogOut    Mode = "OUTPUT_ANALOG"
	ModeDHT22        Mode = "DHT22_SENSOR"
	ModeYL69         Mode = "YL_69_SENSOR"
	ModeDS18B20      Mode = "DS18B20"
	ModeThermocouple Mode = "THERMOCOUPLE"
	ModeFan          Mode = "FAN"
	ModeFanDimmer    Mode = "FAN_DIMMER"
	ModeInvalid      Mode = "INVALID"
)

// ParseMode converts a mode string into a Mode, case-insensitively.
// Unknown strings map to ModeInvalid.
func ParseMode(s string) Mode {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case ModeDigitalIn:
		return ModeDigitalIn
	case ModeDigitalOut:
		return ModeDigitalOut
	case ModePWM:
		return ModePWM
	case ModeAnalogIn:
		return ModeAnalogIn
	case ModeAnalogOut:
		return ModeAnalogOut
	case ModeDHT22:
		return ModeDHT22
	case ModeYL69:
		return ModeYL69
	case ModeDS18B20:
		return ModeDS18B20
	case ModeThermocouple:
		return ModeThermocouple
	case ModeFan:
		return ModeFan
	case ModeFanDimmer:
		return ModeFanDimmer
	default:
		return ModeInvalid
	}
}

// PinConfig is one validated configuration entry for a single device.
//
// Pin is the primary GPIO: the control pin, the ADC pin, chip-select
// for SPI devices, or relay 1 for fans. Auxiliary pins are zero when
// unused; their meaning depends on Mode.
type PinConfig struct {
	Pin       int
	Clock     int // SPI clock (thermocouple)
	Data      int // SPI MISO (thermocouple)
	Relay2    int // second relay (3-relay fan)
	Relay3    int // third relay (3-relay fan)
	Dimmer    int // phase-control dimmer output (dimmer fan)
	ZeroCross int // zero-cross detector input (dimmer fan)
	MinPwm    int // lowest usable dimmer level (dimmer fan)

	Mode             Mode
	Name             string
	DefaultState     int // meaning is mode-specific: bool, duty 0-255, or speed 0-100
	PollingInterval  int // milliseconds; 0 disables state republishing
	WatchdogInterval int // milliseconds; 0 disables the command watchdog
	Inverted         bool

	KickstartEnabled  bool
	KickstartDuration int // milliseconds
}

// Validate reports whether the entry's mode is satisfiable by the
// capabilities of its primary and auxiliary pins. Entries that fail
// validation are dropped by LoadEntries, never partially applied.
func Validate(cfg PinConfig) bool {
	primary := lookup(cfg.Pin)
	if primary == nil {
		return false
	}

	switch cfg.Mode {
	case ModeDigitalIn:
		return primary.DigitalIn
	case ModeDigitalOut:
		return primary.DigitalOut
	case ModePWM:
		return primary.PWM
	case ModeAnalogOut:
		return primary.DAC
	case ModeAnalogIn, ModeYL69:
		return primary.AnalogIn

	// The DHT22 bus is bidirectional: the driver flips the pin between
	// output (start signal) and input (response).
	case ModeDHT22:
		return primary.DigitalIn && primary.DigitalOut

	case ModeDS18B20:
		return primary.OneWire

	// Composite SPI device: CS out, SCK out, SO in.
	case ModeThermocouple:
		if !primary.DigitalOut {
			return false
		}
		if !IsPinCapable(cfg.Clock, true, false, false, false) {
			return false
		}
		return IsPinCapable(cfg.Data, false, true, false, false)

	// 3-relay fan: every relay pin must drive an output.
	case ModeFan:
		if !primary.DigitalOut {
			return false
		}
		if !IsPinCapable(cfg.Relay2, true, false, false, false) {
			return false
		}
		return IsPinCapable(cfg.Relay3, true, false, false, false)

	// Dimmer fan: relay out, dimmer out, zero-cross in.
	case ModeFanDimmer:
		if !primary.DigitalOut {
			return false
		}
		if !IsPinCapable(cfg.Dimmer, true, false, false, false) {
			return false
		}
		return IsPinCapable(cfg.ZeroCross, false, true, false, false)

	default:
		return false
	}
}
