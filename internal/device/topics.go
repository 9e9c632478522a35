package device

// Topic categories, one per device type. Together with the node's
// client ID and the entry name they form every topic the node uses.
const (
	CategoryDigitalInput  = "digital_input"
	CategoryDigitalOutput = "digital_output"
	CategoryPWM           = "pwm"
	CategoryAnalogInput   = "analog_input"
	CategoryAnalogOutput  = "analog_output"
	CategoryDHT22         = "dht22"
	CategoryYL69          = "yl69"
	CategoryDS18B20       = "ds18b20"
	CategoryThermocouple  = "thermocouple"
	CategoryFan           = "fan"
)

// Topic suffixes. Sensors publish on value/temperature/humidity;
// actuators subscribe on set and publish on state.
const (
	SuffixValue       = "value"
	SuffixState       = "state"
	SuffixSet         = "set"
	SuffixTemperature = "temperature"
	SuffixHumidity    = "humidity"
)

// Topic derives a device topic deterministically:
// /{clientID}/{category}/{name}/{suffix}. The leading slash roots the
// node's whole tree; the server relies on this exact shape.
func Topic(clientID, category, name, suffix string) string {
	return "/" + clientID + "/" + category + "/" + name + "/" + suffix
}
