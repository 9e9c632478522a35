//go:build !linux

package hardware

// Chip is a placeholder backend for non-Linux builds. Every operation
// returns ErrUnsupported; it exists so the composition root compiles
// everywhere while real deployments run on Linux boards.
type Chip struct{}

// OpenChip returns a backend whose operations all fail with
// ErrUnsupported.
func OpenChip(name string) (*Chip, error) {
	_ = name
	return &Chip{}, nil
}

func (c *Chip) SetupInput(int) error                                 { return ErrUnsupported }
func (c *Chip) SetupOutput(int, bool) error                          { return ErrUnsupported }
func (c *Chip) DigitalWrite(int, bool) error                         { return ErrUnsupported }
func (c *Chip) DigitalRead(int) (bool, error)                        { return false, ErrUnsupported }
func (c *Chip) AnalogRead(int) (int, error)                          { return 0, ErrUnsupported }
func (c *Chip) DACWrite(int, int) error                              { return ErrUnsupported }
func (c *Chip) SetupPWM(int, int) error                              { return ErrUnsupported }
func (c *Chip) PWMWrite(int, int) error                              { return ErrUnsupported }
func (c *Chip) OpenDHT22(int) (ClimateSensor, error)                 { return nil, ErrUnsupported }
func (c *Chip) OpenDS18B20(int) (TemperatureSensor, error)           { return nil, ErrUnsupported }
func (c *Chip) OpenThermocouple(int, int, int) (TemperatureSensor, error) { return nil, ErrUnsupported }
func (c *Chip) SetDimmerLevel(int, int) error                        { return ErrUnsupported }
func (c *Chip) RegisterZeroCross(int) error                          { return ErrUnsupported }
func (c *Chip) Close() error                                         { return nil }
