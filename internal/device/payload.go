package device

import (
	"math"
	"strconv"
	"strings"
)

// Sentinel payloads published when a sensor cannot produce a value.
// Subscribers treat them as "no data", distinct from a real reading.
const (
	SentinelError = "error"
	SentinelNaN   = "nan"
)

// formatBool renders a logical boolean as wire text.
func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// formatInt renders an integer as decimal wire text.
func formatInt(v int) string {
	return strconv.Itoa(v)
}

// formatFloat renders a reading with two decimal places, or
// SentinelNaN for NaN values.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return SentinelNaN
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// parseBoolPayload interprets an inbound on/off command.
// "1" and "HIGH" mean on; everything else means off, so a malformed
// command degrades to the safe state instead of being rejected.
func parseBoolPayload(payload string) bool {
	p := strings.TrimSpace(payload)
	return p == "1" || strings.EqualFold(p, "HIGH")
}

// parseClampedInt parses an inbound numeric command and constrains it
// to [min, max]. Unparseable payloads clamp to min: a single bad
// command must never leave an actuator in an undefined state.
func parseClampedInt(payload string, min, max int) int {
	p := strings.TrimSpace(payload)
	v, err := strconv.Atoi(p)
	if err != nil {
		f, ferr := strconv.ParseFloat(p, 64)
		if ferr != nil || math.IsNaN(f) {
			return min
		}
		v = int(f)
	}
	return clampInt(v, min, max)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
