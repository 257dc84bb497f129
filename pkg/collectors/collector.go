// Package collectors defines the interfaces, registry, and runner for
// temperature sources. Each source (hardware sensors, fixed readings, the
// demo walk) implements the Collector interface and is orchestrated by a
// Runner that fans results into a single updates channel.
package collectors

import (
	"context"
	"errors"
	"time"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

var (
	// ErrUnknownCollector is returned when a name is not registered.
	ErrUnknownCollector = errors.New("collector not registered")

	// ErrDuplicateCollector is returned when registering a taken name.
	ErrDuplicateCollector = errors.New("collector already registered")

	// ErrInvalidName is returned when registering an empty name or one
	// containing "/".
	ErrInvalidName = errors.New("invalid collector name")

	// ErrAlreadyStarted is returned by Start on a running Runner.
	ErrAlreadyStarted = errors.New("runner already started")
)

// Collector is the interface all temperature sources implement.
type Collector interface {
	// Name returns a unique identifier for this collector (e.g., "sensors").
	Name() string

	// Collect performs one collection cycle.
	Collect(ctx context.Context) ([]Reading, error)

	// Interval returns how often this collector should run. Zero or
	// negative means collect once.
	Interval() time.Duration

	// Healthy returns whether the collector is functioning. A collector that
	// has never run or whose last run succeeded is considered healthy.
	Healthy() bool
}

// Reading is one temperature sample. High and Critical are hardware
// thresholds in the same unit, zero when unknown.
type Reading struct {
	Sensor   string
	Value    float64
	Unit     temperature.Unit
	High     float64
	Critical float64
}

// Display converts the reading to unit and builds its display snapshot.
func (r Reading) Display(unit temperature.Unit, o temperature.Overrides) (temperature.Display, error) {
	v, err := temperature.Convert(r.Value, r.Unit, unit)
	if err != nil {
		return temperature.Display{}, err
	}
	return temperature.Build(v, unit, o)
}

// AboveHigh reports whether the reading has crossed its high threshold.
func (r Reading) AboveHigh() bool {
	return r.High > 0 && r.Value >= r.High
}

// CollectorStatus tracks the runtime state of a single collector. The runner
// updates this after every collection cycle.
type CollectorStatus struct {
	Name        string
	Healthy     bool
	LastRun     time.Time
	LastError   error
	RunCount    int64
	ErrorCount  int64
	LastLatency time.Duration

	// Readings is the reading count of the last successful run.
	Readings int
}

// Update carries the result of a single collection cycle from a collector
// goroutine to the consumer.
type Update struct {
	Source    string
	Readings  []Reading
	Timestamp time.Time
	Error     error
}
