// Package pins holds the static pin capability table and the
// declarative device configuration it validates.
//
// The capability table is board data: for each usable GPIO it records
// which electrical functions (digital in/out, PWM, ADC, DAC, SPI,
// OneWire, interrupts) the pin supports. Validation is a pure
// predicate over this table; it never touches hardware.
//
// # Key Types
//
//   - Capability: one row of the board table
//   - Mode: the device type an entry binds to (sensor or actuator)
//   - PinConfig: one validated configuration entry
//
// # Validation Rules
//
// Each mode has its own rule, checked against the table:
//
//	INPUT_DIGITAL   primary pin supports digital input
//	OUTPUT_DIGITAL  primary pin supports digital output
//	PWM             primary pin supports PWM
//	OUTPUT_ANALOG   primary pin has a DAC
//	INPUT_ANALOG,
//	YL_69_SENSOR    primary pin has an ADC channel
//	DHT22_SENSOR    primary pin supports input AND output
//	DS18B20         primary pin supports OneWire
//	THERMOCOUPLE    CS out + SCK out + SO in
//	FAN             relay1, relay2, relay3 all support output
//	FAN_DIMMER      relay out + dimmer out + zero-cross in
//
// Unknown mode strings parse to ModeInvalid and never validate.
// Entries that fail validation are skipped at load time with a warning;
// they are never partially applied.
package pins
