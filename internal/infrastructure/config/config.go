package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Gray Logic Edge.
// All configuration is loaded from YAML; secrets can be overridden by
// environment variables (see applyEnvOverrides).
type Config struct {
	Node     NodeConfig     `yaml:"node"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pins     []PinEntry     `yaml:"pins"`
}

// NodeConfig contains edge-node identity settings.
type NodeConfig struct {
	Name string `yaml:"name"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	KeepAlive int                 `yaml:"keep_alive"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
// ClientID doubles as the root segment of every device topic.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings (seconds).
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// InfluxDBConfig contains the optional telemetry sink settings.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// PinEntry is one raw, unvalidated pin declaration from the pins section.
// The pins package converts entries into validated PinConfig values;
// invalid entries are skipped there, never here.
//
// A zero pin number means "not set": GPIO0 is not usable on this board
// and is absent from the capability table.
type PinEntry struct {
	Pin               int    `yaml:"pin"`
	Mode              string `yaml:"mode"`
	Name              string `yaml:"name"`
	DefaultState      int    `yaml:"default_state"`
	PollingInterval   int    `yaml:"polling_interval"`
	WatchdogInterval  int    `yaml:"watchdog_interval"`
	Inverted          bool   `yaml:"inverted"`
	Clock             int    `yaml:"sck"`
	Data              int    `yaml:"so"`
	Relay2            int    `yaml:"relay2"`
	Relay3            int    `yaml:"relay3"`
	Dimmer            int    `yaml:"dimmer"`
	ZeroCross         int    `yaml:"zero_cross"`
	MinPwm            int    `yaml:"min_pwm"`
	KickstartEnabled  bool   `yaml:"kickstart_enabled"`
	KickstartDuration int    `yaml:"kickstart_duration"`
}

// Load reads, parses, and validates the configuration file.
//
// Processing order:
//  1. Read the YAML file
//  2. Unmarshal into Config
//  3. Apply defaults for unset fields
//  4. Apply environment variable overrides (secrets)
//  5. Validate required fields and ranges
//
// Returns the validated config or an error describing the first problem
// found.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in sensible defaults for unset fields.
func (c *Config) applyDefaults() {
	if c.Node.Name == "" {
		c.Node.Name = "grayedge"
	}

	if c.MQTT.Broker.Port == 0 {
		c.MQTT.Broker.Port = 1883
	}
	if c.MQTT.Broker.ClientID == "" {
		c.MQTT.Broker.ClientID = c.Node.Name
	}
	if c.MQTT.KeepAlive == 0 {
		c.MQTT.KeepAlive = 15
	}
	if c.MQTT.Reconnect.InitialDelay == 0 {
		c.MQTT.Reconnect.InitialDelay = 1
	}
	if c.MQTT.Reconnect.MaxDelay == 0 {
		c.MQTT.Reconnect.MaxDelay = 60
	}

	if c.InfluxDB.BatchSize == 0 {
		c.InfluxDB.BatchSize = 100
	}
	if c.InfluxDB.FlushInterval == 0 {
		c.InfluxDB.FlushInterval = 10
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}

// Environment variable names for secret overrides.
// Secrets belong in the environment, not on disk.
const (
	EnvMQTTUsername  = "GRAYEDGE_MQTT_USERNAME"
	EnvMQTTPassword  = "GRAYEDGE_MQTT_PASSWORD"
	EnvInfluxDBToken = "GRAYEDGE_INFLUXDB_TOKEN"
)

// applyEnvOverrides replaces secret fields with environment values when set.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvMQTTUsername); v != "" {
		c.MQTT.Auth.Username = v
	}
	if v := os.Getenv(EnvMQTTPassword); v != "" {
		c.MQTT.Auth.Password = v
	}
	if v := os.Getenv(EnvInfluxDBToken); v != "" {
		c.InfluxDB.Token = v
	}
}

// Validate checks required fields and value ranges.
// It returns an error describing the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.MQTT.Broker.Host) == "" {
		return fmt.Errorf("mqtt.broker.host is required")
	}
	if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
		return fmt.Errorf("mqtt.broker.port must be 1-65535, got %d", c.MQTT.Broker.Port)
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt.qos must be 0, 1, or 2, got %d", c.MQTT.QoS)
	}
	if strings.Contains(c.MQTT.Broker.ClientID, "/") {
		return fmt.Errorf("mqtt.broker.client_id must not contain '/': %q", c.MQTT.Broker.ClientID)
	}

	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" {
			return fmt.Errorf("influxdb.url is required when influxdb is enabled")
		}
		if c.InfluxDB.Bucket == "" {
			return fmt.Errorf("influxdb.bucket is required when influxdb is enabled")
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}

	return nil
}
