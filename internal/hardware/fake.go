package hardware

import "fmt"

// Fake is an in-memory Hardware implementation for tests. Writes are
// recorded, reads are scripted. The zero value is usable.
type Fake struct {
	// Inputs maps pin -> scripted digital level returned by DigitalRead.
	Inputs map[int]bool

	// AnalogInputs maps pin -> scripted raw ADC value.
	AnalogInputs map[int]int

	// Outputs records the last level written to each output pin.
	Outputs map[int]bool

	// DACOutputs records the last value written to each DAC pin.
	DACOutputs map[int]int

	// PWMChannels maps pin -> channel bound by SetupPWM.
	PWMChannels map[int]int

	// PWMDuty records the last duty written to each PWM channel.
	PWMDuty map[int]int

	// DimmerLevels records the last level set on each dimmer pin.
	DimmerLevels map[int]int

	// ZeroCrossPins records pins registered with the dimmer driver.
	ZeroCrossPins map[int]bool

	// ClimateSensors maps pin -> sensor handed out by OpenDHT22.
	ClimateSensors map[int]ClimateSensor

	// TempSensors maps pin -> sensor handed out by OpenDS18B20 and
	// OpenThermocouple (keyed by the primary/CS pin).
	TempSensors map[int]TemperatureSensor

	// FailSetup, when containing a pin, makes setup calls for that pin
	// fail.
	FailSetup map[int]bool

	// Unsupported, when true, makes every call return ErrUnsupported.
	Unsupported bool

	inputPins  map[int]bool
	outputPins map[int]bool
	closed     bool
}

// NewFake returns a Fake with all maps initialised.
func NewFake() *Fake {
	return &Fake{
		Inputs:         make(map[int]bool),
		AnalogInputs:   make(map[int]int),
		Outputs:        make(map[int]bool),
		DACOutputs:     make(map[int]int),
		PWMChannels:    make(map[int]int),
		PWMDuty:        make(map[int]int),
		DimmerLevels:   make(map[int]int),
		ZeroCrossPins:  make(map[int]bool),
		ClimateSensors: make(map[int]ClimateSensor),
		TempSensors:    make(map[int]TemperatureSensor),
		FailSetup:      make(map[int]bool),
		inputPins:      make(map[int]bool),
		outputPins:     make(map[int]bool),
	}
}

func (f *Fake) SetupInput(pin int) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	if f.FailSetup[pin] {
		return fmt.Errorf("setup input pin %d: forced failure", pin)
	}
	f.inputPins[pin] = true
	return nil
}

func (f *Fake) SetupOutput(pin int, initial bool) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	if f.FailSetup[pin] {
		return fmt.Errorf("setup output pin %d: forced failure", pin)
	}
	f.outputPins[pin] = true
	f.Outputs[pin] = initial
	return nil
}

func (f *Fake) DigitalWrite(pin int, value bool) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	if !f.outputPins[pin] {
		return fmt.Errorf("%w: output pin %d", ErrPinNotConfigured, pin)
	}
	f.Outputs[pin] = value
	return nil
}

func (f *Fake) DigitalRead(pin int) (bool, error) {
	if f.Unsupported {
		return false, ErrUnsupported
	}
	if !f.inputPins[pin] {
		return false, fmt.Errorf("%w: input pin %d", ErrPinNotConfigured, pin)
	}
	return f.Inputs[pin], nil
}

func (f *Fake) AnalogRead(pin int) (int, error) {
	if f.Unsupported {
		return 0, ErrUnsupported
	}
	return f.AnalogInputs[pin], nil
}

func (f *Fake) DACWrite(pin, value int) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	f.DACOutputs[pin] = value
	return nil
}

func (f *Fake) SetupPWM(pin, channel int) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	if f.FailSetup[pin] {
		return fmt.Errorf("setup pwm pin %d: forced failure", pin)
	}
	f.PWMChannels[pin] = channel
	return nil
}

func (f *Fake) PWMWrite(channel, duty int) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	f.PWMDuty[channel] = duty
	return nil
}

func (f *Fake) OpenDHT22(pin int) (ClimateSensor, error) {
	if f.Unsupported {
		return nil, ErrUnsupported
	}
	s, ok := f.ClimateSensors[pin]
	if !ok {
		return nil, fmt.Errorf("%w: dht22 on pin %d", ErrSensorDisconnected, pin)
	}
	return s, nil
}

func (f *Fake) OpenDS18B20(pin int) (TemperatureSensor, error) {
	if f.Unsupported {
		return nil, ErrUnsupported
	}
	s, ok := f.TempSensors[pin]
	if !ok {
		return nil, fmt.Errorf("%w: ds18b20 on pin %d", ErrSensorDisconnected, pin)
	}
	return s, nil
}

func (f *Fake) OpenThermocouple(cs, clock, data int) (TemperatureSensor, error) {
	if f.Unsupported {
		return nil, ErrUnsupported
	}
	_ = clock
	_ = data
	s, ok := f.TempSensors[cs]
	if !ok {
		return nil, fmt.Errorf("%w: thermocouple on cs pin %d", ErrSensorDisconnected, cs)
	}
	return s, nil
}

func (f *Fake) SetDimmerLevel(pin, level int) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	f.DimmerLevels[pin] = level
	return nil
}

func (f *Fake) RegisterZeroCross(pin int) error {
	if f.Unsupported {
		return ErrUnsupported
	}
	f.ZeroCrossPins[pin] = true
	return nil
}

func (f *Fake) Close() error {
	f.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (f *Fake) Closed() bool { return f.closed }

// IsInput reports whether the pin was set up as an input.
func (f *Fake) IsInput(pin int) bool { return f.inputPins[pin] }

// IsOutput reports whether the pin was set up as an output.
func (f *Fake) IsOutput(pin int) bool { return f.outputPins[pin] }

// FakeClimateSensor is a scriptable ClimateSensor.
type FakeClimateSensor struct {
	Temperature float64
	Humidity    float64
	Err         error
}

func (s *FakeClimateSensor) ReadTemperature() (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Temperature, nil
}

func (s *FakeClimateSensor) ReadHumidity() (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Humidity, nil
}

// FakeTemperatureSensor is a scriptable TemperatureSensor.
type FakeTemperatureSensor struct {
	Temperature float64
	Err         error
}

func (s *FakeTemperatureSensor) ReadTemperature() (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Temperature, nil
}
