// Gray Logic Edge - MQTT GPIO Node
//
// This is the main entry point for a Gray Logic Edge node: the
// device-side companion to Gray Logic Core. An edge node binds a
// declarative pin configuration to physical GPIO and exposes every
// device over MQTT:
//   - sensors publish retained readings on their own topics
//   - actuators accept commands and echo retained state
//   - a watchdog reverts actuators to safe defaults on command silence
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nerrad567/gray-logic-edge/internal/device"
	"github.com/nerrad567/gray-logic-edge/internal/display"
	"github.com/nerrad567/gray-logic-edge/internal/hardware"
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-edge/internal/manager"
	"github.com/nerrad567/gray-logic-edge/internal/pins"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

// gpioChip is the GPIO character device the real backend opens.
const gpioChip = "gpiochip0"

// inboxCapacity bounds the number of inbound commands held between
// scheduler ticks.
const inboxCapacity = 64

// carouselRotateInterval paces the display rotation.
const carouselRotateInterval = 3 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error allows main to handle exit codes
// consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Gray Logic Edge",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open the GPIO backend
	hw, err := hardware.OpenChip(gpioChip)
	if err != nil {
		return fmt.Errorf("opening gpio chip: %w", err)
	}
	defer func() {
		log.Info("releasing gpio lines")
		if closeErr := hw.Close(); closeErr != nil {
			log.Error("error closing gpio", "error", closeErr)
		}
	}()
	log.Info("gpio backend opened", "chip", gpioChip)

	// Load and validate pin entries
	entries := pins.LoadEntries(cfg.Pins, log)
	log.Info("pin entries loaded", "configured", len(cfg.Pins), "valid", len(entries))

	// Initialise the device registry and register every entry
	registry := device.NewRegistry(hw, cfg.MQTT.Broker.ClientID)
	registry.SetLogger(log)
	registry.RegisterDefaults()
	for _, entry := range entries {
		// Entry-level failures are logged inside InitDevice; the
		// remaining entries still register.
		_ = registry.InitDevice(entry)
	}
	log.Info("devices registered",
		"producers", len(registry.Producers()),
		"consumers", len(registry.Consumers()),
	)

	// Connect to MQTT broker (publishes retained online status, LWT
	// covers unexpected disconnects)
	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	mqttClient.SetLogger(log)
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Subscribe every consumer topic into the scheduler inbox. Paho
	// delivers on its own goroutines; the inbox keeps device logic on
	// the single scheduler goroutine.
	inbox := mqtt.NewInbox(inboxCapacity)
	for _, consumer := range registry.Consumers() {
		topic := consumer.Topic
		subErr := mqttClient.Subscribe(topic, byte(cfg.MQTT.QoS), func(t string, payload []byte) error {
			inbox.Push(t, payload)
			return nil
		})
		if subErr != nil {
			// Best-effort: a failed subscribe never aborts the rest.
			log.Warn("subscribe failed", "topic", topic, "error", subErr)
		}
	}
	log.Info("command topics subscribed", "count", len(registry.Consumers()))

	// Connect to InfluxDB (optional)
	sched := manager.New(registry, mqttClient, inbox)
	sched.SetLogger(log)
	if cfg.InfluxDB.Enabled {
		influxClient, influxErr := influxdb.Connect(cfg.InfluxDB, cfg.Node.Name)
		if influxErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", influxErr)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		sched.SetTelemetry(influxClient)
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		log.Info("InfluxDB disabled")
	}

	// Display carousel over the scheduler's last readings
	carousel := display.NewCarousel(sched.IsConnected)
	go rotateCarousel(ctx, carousel, sched)

	log.Info("initialisation complete, scheduler running")

	// Blocks until the context is cancelled by SIGINT/SIGTERM.
	sched.Run(ctx)

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. InfluxDB (if enabled)
	// 2. MQTT (publishes retained offline status)
	// 3. GPIO (lines back to inputs)

	log.Info("Gray Logic Edge stopped")
	return nil
}

// rotateCarousel refreshes and advances the display carousel until the
// context is cancelled.
func rotateCarousel(ctx context.Context, carousel *display.Carousel, sched *manager.Manager) {
	ticker := time.NewTicker(carouselRotateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			readings := sched.Readings()
			items := make([]display.Item, 0, len(readings))
			for _, r := range readings {
				items = append(items, display.Item{Label: r.Topic, Value: r.Value})
			}
			carousel.Refresh(items)
			carousel.Rotate()
		}
	}
}

// getConfigPath returns the configuration file path.
// Uses GRAYEDGE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("GRAYEDGE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
