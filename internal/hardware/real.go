//go:build linux

package hardware

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Chip is the real backend over the Linux GPIO character device.
//
// Only digital I/O is available through gpiocdev; ADC, DAC, PWM,
// sensor buses, and dimmer control return ErrUnsupported so handlers
// register degraded entries instead of crashing. Boards with those
// peripherals get a dedicated backend.
type Chip struct {
	chip    *gpiocdev.Chip
	inputs  map[int]*gpiocdev.Line
	outputs map[int]*gpiocdev.Line
}

// OpenChip opens the named GPIO character device (e.g. "gpiochip0").
func OpenChip(name string) (*Chip, error) {
	chip, err := gpiocdev.NewChip(name)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", name, err)
	}
	return &Chip{
		chip:    chip,
		inputs:  make(map[int]*gpiocdev.Line),
		outputs: make(map[int]*gpiocdev.Line),
	}, nil
}

// SetupInput requests the line as an input with pull-down, matching
// board boot defaults.
func (c *Chip) SetupInput(pin int) error {
	line, err := c.chip.RequestLine(pin, gpiocdev.AsInput, gpiocdev.WithPullDown)
	if err != nil {
		return fmt.Errorf("request input pin %d: %w", pin, err)
	}
	c.inputs[pin] = line
	return nil
}

// SetupOutput requests the line as an output at the given initial level.
func (c *Chip) SetupOutput(pin int, initial bool) error {
	line, err := c.chip.RequestLine(pin, gpiocdev.AsOutput(boolToInt(initial)))
	if err != nil {
		return fmt.Errorf("request output pin %d: %w", pin, err)
	}
	c.outputs[pin] = line
	return nil
}

// DigitalWrite drives a configured output pin.
func (c *Chip) DigitalWrite(pin int, value bool) error {
	line, ok := c.outputs[pin]
	if !ok {
		return fmt.Errorf("%w: output pin %d", ErrPinNotConfigured, pin)
	}
	if err := line.SetValue(boolToInt(value)); err != nil {
		return fmt.Errorf("write pin %d: %w", pin, err)
	}
	return nil
}

// DigitalRead samples a configured input pin.
func (c *Chip) DigitalRead(pin int) (bool, error) {
	line, ok := c.inputs[pin]
	if !ok {
		return false, fmt.Errorf("%w: input pin %d", ErrPinNotConfigured, pin)
	}
	v, err := line.Value()
	if err != nil {
		return false, fmt.Errorf("read pin %d: %w", pin, err)
	}
	return v != 0, nil
}

// AnalogRead is not available on the character-device backend.
func (c *Chip) AnalogRead(int) (int, error) { return 0, ErrUnsupported }

// DACWrite is not available on the character-device backend.
func (c *Chip) DACWrite(int, int) error { return ErrUnsupported }

// SetupPWM is not available on the character-device backend.
func (c *Chip) SetupPWM(int, int) error { return ErrUnsupported }

// PWMWrite is not available on the character-device backend.
func (c *Chip) PWMWrite(int, int) error { return ErrUnsupported }

// OpenDHT22 is not available on the character-device backend.
func (c *Chip) OpenDHT22(int) (ClimateSensor, error) { return nil, ErrUnsupported }

// OpenDS18B20 is not available on the character-device backend.
func (c *Chip) OpenDS18B20(int) (TemperatureSensor, error) { return nil, ErrUnsupported }

// OpenThermocouple is not available on the character-device backend.
func (c *Chip) OpenThermocouple(int, int, int) (TemperatureSensor, error) {
	return nil, ErrUnsupported
}

// SetDimmerLevel is not available on the character-device backend.
func (c *Chip) SetDimmerLevel(int, int) error { return ErrUnsupported }

// RegisterZeroCross is not available on the character-device backend.
func (c *Chip) RegisterZeroCross(int) error { return ErrUnsupported }

// Close reconfigures claimed lines back to input with pull-down before
// releasing them, so external modules see boot defaults on shutdown.
func (c *Chip) Close() error {
	var errs []error
	for pin, line := range c.outputs {
		if err := line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pin %d: %w", pin, err))
		}
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin %d: %w", pin, err))
		}
	}
	for pin, line := range c.inputs {
		if err := line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin %d: %w", pin, err))
		}
	}
	if err := c.chip.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close chip: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
