// ABOUTME: Log and Setting models persisted alongside the record tables.
// ABOUTME: Logs carry details XOR error info; settings are key/value rows.
package models

import (
	"fmt"
	"strings"
)

// Log is a persisted application log entry. AutoID is store-assigned and
// monotonic. Details and ErrorMessage/StackTrace are mutually exclusive:
// error payloads populate the latter pair, everything else the former.
type Log struct {
	AutoID           int64          `json:"autoId"`
	CreatedTimestamp int64          `json:"createdTimestamp"`
	LogLevel         LogLevel       `json:"logLevel"`
	LogLabel         string         `json:"logLabel"`
	Details          map[string]any `json:"details,omitempty"`
	ErrorMessage     string         `json:"errorMessage,omitempty"`
	StackTrace       string         `json:"stackTrace,omitempty"`
}

// Setting is one recognized key with its stored value (bool, string, or
// number). Exactly one row exists per key once defaults are seeded.
type Setting struct {
	Key   SettingKey `json:"key"`
	Value any        `json:"value"`
}

// Bool reads the value as a boolean, defaulting to false.
func (s Setting) Bool() bool {
	b, _ := s.Value.(bool)
	return b
}

// Number reads the value as a float64, defaulting to zero. JSON round-trips
// deliver all numeric values as float64.
func (s Setting) Number() float64 {
	switch v := s.Value.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}
	return 0
}

// FormatDuration renders a millisecond duration as a compact human string,
// e.g. "1h 30m 45s". Zero components are skipped; sub-second durations
// render as "0s".
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	seconds := ms / 1000
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", secs))
	}
	return strings.Join(parts, " ")
}
