// Package sensors reads hardware temperature sensors through gopsutil and
// exposes them as a collectors.Collector.
package sensors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/sensors"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// Name is the collector name used in the registry.
const Name = "sensors"

// Config controls the sensors collector.
type Config struct {
	// Include restricts readings to sensor keys with one of these prefixes.
	// An empty slice means every sensor.
	Include []string

	// Interval is the polling rate (default 5s).
	Interval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Interval: 5 * time.Second}
}

// ReadFunc returns raw sensor stats. It matches
// sensors.TemperaturesWithContext.
type ReadFunc func(ctx context.Context) ([]sensors.TemperatureStat, error)

// Collector reads temperatures via gopsutil.
type Collector struct {
	cfg    Config
	read   ReadFunc
	logger *slog.Logger

	mu      sync.Mutex
	healthy bool
}

// Option configures a Collector.
type Option func(*Collector)

// WithReadFunc replaces the gopsutil call, e.g. in tests.
func WithReadFunc(fn ReadFunc) Option {
	return func(c *Collector) { c.read = fn }
}

// WithLogger sets the logger. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// New creates a sensors collector.
func New(cfg Config, opts ...Option) *Collector {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	c := &Collector{
		cfg:     cfg,
		read:    sensors.TemperaturesWithContext,
		healthy: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Name returns the collector identifier.
func (c *Collector) Name() string { return Name }

// Interval returns the polling rate.
func (c *Collector) Interval() time.Duration { return c.cfg.Interval }

// Healthy reports whether the last collection succeeded.
func (c *Collector) Healthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.healthy
}

func (c *Collector) setHealthy(h bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = h
}

// Collect reads every sensor, keeps the included ones and returns them in
// Celsius sorted by sensor key. Partial reads with warnings are accepted
// as long as some sensors answered.
func (c *Collector) Collect(ctx context.Context) ([]collectors.Reading, error) {
	stats, err := c.read(ctx)
	if err != nil {
		var warns *sensors.Warnings
		if !errors.As(err, &warns) || len(stats) == 0 {
			c.setHealthy(false)
			return nil, fmt.Errorf("sensors: read temperatures: %w", err)
		}
		c.logger.Debug("partial sensor read", "sensors", len(stats), "warnings", err)
	}

	out := make([]collectors.Reading, 0, len(stats))
	for _, s := range stats {
		if !c.included(s.SensorKey) {
			continue
		}
		out = append(out, collectors.Reading{
			Sensor:   s.SensorKey,
			Value:    s.Temperature,
			Unit:     temperature.Celsius,
			High:     s.High,
			Critical: s.Critical,
		})
	}
	slices.SortFunc(out, func(a, b collectors.Reading) int {
		return strings.Compare(a.Sensor, b.Sensor)
	})

	c.setHealthy(true)
	return out, nil
}

func (c *Collector) included(key string) bool {
	if len(c.cfg.Include) == 0 {
		return true
	}
	for _, p := range c.cfg.Include {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
