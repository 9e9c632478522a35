package pins

// Capability describes the electrical functions a pin supports.
// Rows are board facts, loaded once and never mutated.
type Capability struct {
	Pin        int
	DigitalIn  bool
	DigitalOut bool
	PWM        bool
	AnalogIn   bool
	DAC        bool
	SPI        bool
	OneWire    bool
	Interrupt  bool
}

// allowedPins is the per-board capability table (ESP32 DevKit C V4
// pinout). Pins 34-39 are input-only: no output, no PWM, no DAC.
var allowedPins = []Capability{
	// Pin |       IN   | OUT  | PWM  | ADC  | DAC  | SPI  | 1-W  | INT
	{13, true, true, true, false, false, true, true, true},  // HSPI_MOSI
	{14, true, true, true, false, false, true, true, true},  // HSPI_CLK
	{16, true, true, true, false, false, false, true, true}, // UART2_RX
	{17, true, true, true, false, false, false, true, true}, // UART2_TX
	{18, true, true, true, false, false, true, true, true},  // VSPI_CLK
	{19, true, true, true, false, false, true, true, true},  // VSPI_MISO
	{21, true, true, true, false, false, false, true, true}, // I2C_SDA
	{22, true, true, true, false, false, false, true, true}, // I2C_SCL
	{23, true, true, true, false, false, true, true, true},  // VSPI_MOSI
	{25, true, true, true, false, true, false, true, true},  // DAC1
	{26, true, true, true, false, true, false, true, true},  // DAC2
	{27, true, true, true, false, false, false, true, true}, // ADC2-7
	{32, true, true, true, true, false, false, true, true},  // ADC1-4
	{33, true, true, true, true, false, false, true, true},  // ADC1-5
	// Input-only pins
	{34, true, false, false, true, false, false, false, true},
	{35, true, false, false, true, false, false, false, true},
	{36, true, false, false, true, false, false, false, true},
	{39, true, false, false, true, false, false, false, true},
}

// lookup returns the capability row for a pin, or nil if the pin is not
// usable on this board.
func lookup(pin int) *Capability {
	for i := range allowedPins {
		if allowedPins[i].Pin == pin {
			return &allowedPins[i]
		}
	}
	return nil
}

// IsPinCapable reports whether a pin supports every requested function.
// Unknown pins are never capable of anything.
func IsPinCapable(pin int, needOutput, needInput, needAnalog, needOneWire bool) bool {
	cap := lookup(pin)
	if cap == nil {
		return false
	}
	if needOutput && !cap.DigitalOut {
		return false
	}
	if needInput && !cap.DigitalIn {
		return false
	}
	if needAnalog && !cap.AnalogIn {
		return false
	}
	if needOneWire && !cap.OneWire {
		return false
	}
	return true
}
