// Package config loads thermo-badge settings from TOML or YAML files and
// the environment, and turns them into temperature overrides.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var errNegativeDuration = errors.New("must not be negative")

// Duration is a polling interval written as a Go duration ("30s", "2m")
// or as a bare number of seconds ("5", "0.5"). Empty means zero.
type Duration struct {
	time.Duration
}

func parseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := parseInterval(string(text))
	if err != nil {
		return fmt.Errorf("config: interval %q: %w", text, err)
	}
	if v < 0 {
		return fmt.Errorf("config: interval %q: %w", text, errNegativeDuration)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
