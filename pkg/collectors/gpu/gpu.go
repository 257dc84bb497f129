// Package gpu reads NVIDIA GPU core temperatures by running nvidia-smi.
package gpu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// Name is the collector name used in the registry.
const Name = "gpu"

// ErrNoGPUs is returned when nvidia-smi lists no usable GPU.
var ErrNoGPUs = errors.New("no GPUs reported")

// queryArgs ask for one "index, name, temperature" line per GPU.
var queryArgs = []string{
	"--query-gpu=index,name,temperature.gpu",
	"--format=csv,noheader,nounits",
}

// Config controls the GPU collector.
type Config struct {
	// Command is the nvidia-smi executable (default "nvidia-smi").
	Command string

	// Interval is the polling rate (default 10s).
	Interval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Command: "nvidia-smi", Interval: 10 * time.Second}
}

// RunFunc runs a command and returns its stdout.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Collector polls nvidia-smi.
type Collector struct {
	cfg    Config
	run    RunFunc
	logger *slog.Logger

	mu      sync.Mutex
	healthy bool
}

// Option configures a Collector.
type Option func(*Collector)

// WithRunFunc replaces command execution, e.g. in tests.
func WithRunFunc(fn RunFunc) Option {
	return func(c *Collector) { c.run = fn }
}

// WithLogger sets the logger. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Collector) { c.logger = l }
}

// New creates a GPU collector.
func New(cfg Config, opts ...Option) *Collector {
	def := DefaultConfig()
	if cfg.Command == "" {
		cfg.Command = def.Command
	}
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	c := &Collector{
		cfg:     cfg,
		run:     runCommand,
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

// Collect runs nvidia-smi once and returns one Celsius reading per GPU,
// named "gpu<index>".
func (c *Collector) Collect(ctx context.Context) ([]collectors.Reading, error) {
	out, err := c.run(ctx, c.cfg.Command, queryArgs...)
	if err != nil {
		c.setHealthy(false)
		return nil, fmt.Errorf("gpu: run %s: %w", c.cfg.Command, err)
	}

	readings, skipped := parseQuery(string(out))
	for _, line := range skipped {
		c.logger.Debug("skipping nvidia-smi line", "line", line)
	}
	if len(readings) == 0 {
		c.setHealthy(false)
		return nil, fmt.Errorf("gpu: %w", ErrNoGPUs)
	}

	c.setHealthy(true)
	return readings, nil
}

// parseQuery parses nvidia-smi CSV output. Lines whose index or
// temperature do not parse (e.g. "[N/A]") are returned as skipped.
func parseQuery(output string) (readings []collectors.Reading, skipped []string) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r, ok := parseLine(line)
		if !ok {
			skipped = append(skipped, line)
			continue
		}
		readings = append(readings, r)
	}
	return readings, skipped
}

func parseLine(line string) (collectors.Reading, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 3 {
		return collectors.Reading{}, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || idx < 0 {
		return collectors.Reading{}, false
	}
	temp, err := strconv.ParseFloat(strings.TrimSpace(parts[len(parts)-1]), 64)
	if err != nil {
		return collectors.Reading{}, false
	}
	return collectors.Reading{
		Sensor: "gpu" + strconv.Itoa(idx),
		Value:  temp,
		Unit:   temperature.Celsius,
	}, true
}
