package pins

import (
	"github.com/nerrad567/gray-logic-edge/internal/infrastructure/config"
)

// defaultPollingInterval applies when an entry does not set one (ms).
const defaultPollingInterval = 1000

// Logger is the logging interface used during entry loading.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}
func (noopLogger) Warn(string, ...any) {}

// LoadEntries converts raw configuration entries into validated
// PinConfig values.
//
// Invalid entries are skipped with a warning carrying the pin and name
// so operators can diagnose misconfiguration remotely; the remaining
// entries still load. An entry is dropped when:
//   - the pin or mode field is missing
//   - the mode string is unknown
//   - the capability validator rejects the pin combination
//
// A nil logger is accepted.
func LoadEntries(entries []config.PinEntry, log Logger) []PinConfig {
	if log == nil {
		log = noopLogger{}
	}

	configs := make([]PinConfig, 0, len(entries))
	for _, e := range entries {
		if e.Pin == 0 || e.Mode == "" {
			log.Warn("pin entry missing pin or mode, skipping", "pin", e.Pin, "name", e.Name)
			continue
		}

		mode := ParseMode(e.Mode)
		if mode == ModeInvalid {
			log.Warn("unknown pin mode, skipping", "mode", e.Mode, "pin", e.Pin, "name", e.Name)
			continue
		}

		cfg := PinConfig{
			Pin:               e.Pin,
			Clock:             e.Clock,
			Data:              e.Data,
			Relay2:            e.Relay2,
			Relay3:            e.Relay3,
			Dimmer:            e.Dimmer,
			ZeroCross:         e.ZeroCross,
			MinPwm:            e.MinPwm,
			Mode:              mode,
			Name:              e.Name,
			DefaultState:      e.DefaultState,
			PollingInterval:   e.PollingInterval,
			WatchdogInterval:  e.WatchdogInterval,
			Inverted:          e.Inverted,
			KickstartEnabled:  e.KickstartEnabled,
			KickstartDuration: e.KickstartDuration,
		}
		if cfg.PollingInterval == 0 {
			cfg.PollingInterval = defaultPollingInterval
		}

		if !Validate(cfg) {
			log.Warn("pin entry failed capability validation, skipping",
				"pin", cfg.Pin, "name", cfg.Name, "mode", cfg.Mode)
			continue
		}

		configs = append(configs, cfg)
		log.Info("pin entry loaded", "pin", cfg.Pin, "name", cfg.Name, "mode", cfg.Mode)
	}

	return configs
}
