package hardware

// TemperatureSensor reads a temperature in degrees Celsius.
// Implementations must bound the read; a slow sensor stalls the whole
// scheduler tick.
type TemperatureSensor interface {
	ReadTemperature() (float64, error)
}

// ClimateSensor reads temperature and relative humidity from a single
// combined sensor (DHT22 style).
type ClimateSensor interface {
	TemperatureSensor
	ReadHumidity() (float64, error)
}

// Hardware is the collaborator contract toward pin and bus drivers.
// Device handlers perform all physical I/O through this interface so
// the core never links against a specific driver stack.
//
// Pin setup calls are made once per pin at registration time; read and
// write calls happen on the scheduler tick. Implementations are used
// from a single goroutine and need no internal locking.
type Hardware interface {
	// SetupInput configures a pin as a digital input.
	SetupInput(pin int) error

	// SetupOutput configures a pin as a digital output at the given
	// initial physical level.
	SetupOutput(pin int, initial bool) error

	// DigitalWrite drives an output pin to a physical level.
	DigitalWrite(pin int, value bool) error

	// DigitalRead samples the physical level of an input pin.
	DigitalRead(pin int) (bool, error)

	// AnalogRead samples an ADC pin, returning the raw 12-bit value
	// (0-4095).
	AnalogRead(pin int) (int, error)

	// DACWrite drives a DAC pin with an 8-bit value (0-255).
	DACWrite(pin int, value int) error

	// SetupPWM binds a pin to a hardware PWM channel.
	SetupPWM(pin, channel int) error

	// PWMWrite sets the duty cycle (0-255) of a PWM channel.
	PWMWrite(channel, duty int) error

	// OpenDHT22 constructs a combined temperature/humidity sensor on a
	// bidirectional pin.
	OpenDHT22(pin int) (ClimateSensor, error)

	// OpenDS18B20 constructs a OneWire temperature sensor on a pin.
	OpenDS18B20(pin int) (TemperatureSensor, error)

	// OpenThermocouple constructs an SPI-style thermocouple from
	// chip-select, clock, and data pins.
	OpenThermocouple(cs, clock, data int) (TemperatureSensor, error)

	// SetDimmerLevel sets a phase-control dimmer output to a 0-100
	// level.
	SetDimmerLevel(pin, level int) error

	// RegisterZeroCross registers a zero-cross detector pin with the
	// dimmer driver. Registering a pin that is already registered is a
	// no-op, not an error.
	RegisterZeroCross(pin int) error

	// Close releases all claimed hardware resources.
	Close() error
}
