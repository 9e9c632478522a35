package pins

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Mode
	}{
		{"digital in", "INPUT_DIGITAL", ModeDigitalIn},
		{"digital out", "OUTPUT_DIGITAL", ModeDigitalOut},
		{"pwm", "PWM", ModePWM},
		{"analog in", "INPUT_ANALOG", ModeAnalogIn},
		{"analog out", "OUTPUT_ANALOG", ModeAnalogOut},
		{"dht22", "DHT22_SENSOR", ModeDHT22},
		{"yl69", "YL_69_SENSOR", ModeYL69},
		{"ds18b20", "DS18B20", ModeDS18B20},
		{"thermocouple", "THERMOCOUPLE", ModeThermocouple},
		{"fan", "FAN", ModeFan},
		{"fan dimmer", "FAN_DIMMER", ModeFanDimmer},
		{"lowercase", "input_digital", ModeDigitalIn},
		{"mixed case", "Output_Analog", ModeAnalogOut},
		{"surrounding space", " pwm ", ModePWM},
		{"unknown", "NOT_A_MODE", ModeInvalid},
		{"empty", "", ModeInvalid},
		{"numeric", "123", ModeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMode(tt.input); got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPinCapable(t *testing.T) {
	tests := []struct {
		name                                       string
		pin                                        int
		needOutput, needInput, needAnalog, needOneWire bool
		want                                       bool
	}{
		{"generic gpio output", 13, true, false, false, false, true},
		{"generic gpio input", 13, false, true, false, false, true},
		{"generic gpio no adc", 13, false, false, true, false, false},
		{"input-only pin input", 34, false, true, false, false, true},
		{"input-only pin output", 34, true, false, false, false, false},
		{"input-only pin adc", 34, false, true, true, false, true},
		{"input-only pin onewire", 34, false, false, false, true, false},
		{"adc pin onewire", 32, false, false, false, true, true},
		{"unknown pin", 99, false, true, false, false, false},
		{"unknown pin no requirements", 99, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsPinCapable(tt.pin, tt.needOutput, tt.needInput, tt.needAnalog, tt.needOneWire)
			if got != tt.want {
				t.Errorf("IsPinCapable(%d, out=%v, in=%v, adc=%v, 1w=%v) = %v, want %v",
					tt.pin, tt.needOutput, tt.needInput, tt.needAnalog, tt.needOneWire, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  PinConfig
		want bool
	}{
		{"digital in on gpio13", PinConfig{Pin: 13, Mode: ModeDigitalIn}, true},
		{"digital out on gpio13", PinConfig{Pin: 13, Mode: ModeDigitalOut}, true},
		{"pwm on gpio13", PinConfig{Pin: 13, Mode: ModePWM}, true},
		{"dht22 on gpio13", PinConfig{Pin: 13, Mode: ModeDHT22}, true},
		{"ds18b20 on gpio13", PinConfig{Pin: 13, Mode: ModeDS18B20}, true},
		{"analog in on gpio34", PinConfig{Pin: 34, Mode: ModeAnalogIn}, true},
		{"yl69 on gpio34", PinConfig{Pin: 34, Mode: ModeYL69}, true},
		{"digital in on gpio34", PinConfig{Pin: 34, Mode: ModeDigitalIn}, true},

		{"digital out on input-only gpio34", PinConfig{Pin: 34, Mode: ModeDigitalOut}, false},
		{"pwm on input-only gpio34", PinConfig{Pin: 34, Mode: ModePWM}, false},
		{"dac on gpio13", PinConfig{Pin: 13, Mode: ModeAnalogOut}, false},
		{"dac on gpio25", PinConfig{Pin: 25, Mode: ModeAnalogOut}, true},
		{"analog in on gpio13", PinConfig{Pin: 13, Mode: ModeAnalogIn}, false},
		{"dht22 on input-only gpio34", PinConfig{Pin: 34, Mode: ModeDHT22}, false},

		{"unknown pin", PinConfig{Pin: 99, Mode: ModeDigitalIn}, false},
		{"invalid mode", PinConfig{Pin: 13, Mode: ModeInvalid}, false},

		{
			name: "thermocouple valid",
			cfg:  PinConfig{Pin: 22, Clock: 18, Data: 19, Mode: ModeThermocouple},
			want: true,
		},
		{
			name: "thermocouple clock on input-only pin",
			cfg:  PinConfig{Pin: 22, Clock: 34, Data: 19, Mode: ModeThermocouple},
			want: false,
		},
		{
			name: "thermocouple data on input-only pin",
			cfg:  PinConfig{Pin: 22, Clock: 18, Data: 35, Mode: ModeThermocouple},
			want: true,
		},
		{
			name: "thermocouple missing aux pins",
			cfg:  PinConfig{Pin: 22, Mode: ModeThermocouple},
			want: false,
		},

		{
			name: "fan valid",
			cfg:  PinConfig{Pin: 16, Relay2: 17, Relay3: 18, Mode: ModeFan},
			want: true,
		},
		{
			name: "fan relay2 on input-only pin",
			cfg:  PinConfig{Pin: 16, Relay2: 34, Relay3: 18, Mode: ModeFan},
			want: false,
		},
		{
			name: "fan relay1 on input-only pin",
			cfg:  PinConfig{Pin: 34, Relay2: 17, Relay3: 18, Mode: ModeFan},
			want: false,
		},

		{
			name: "dimmer fan valid",
			cfg:  PinConfig{Pin: 16, Dimmer: 17, ZeroCross: 34, Mode: ModeFanDimmer},
			want: true,
		},
		{
			name: "dimmer fan dimmer on input-only pin",
			cfg:  PinConfig{Pin: 16, Dimmer: 34, ZeroCross: 35, Mode: ModeFanDimmer},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.cfg); got != tt.want {
				t.Errorf("Validate(%+v) = %v, want %v", tt.cfg, got, tt.want)
			}
		})
	}
}
