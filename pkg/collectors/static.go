package collectors

import (
	"context"
	"slices"
	"time"
)

// Static serves a fixed set of readings, e.g. the [[readings]] config table.
type Static struct {
	name     string
	readings []Reading
	interval time.Duration
}

// NewStatic returns a collector that always yields readings. A zero
// interval collects once.
func NewStatic(name string, interval time.Duration, readings []Reading) *Static {
	return &Static{
		name:     name,
		readings: slices.Clone(readings),
		interval: interval,
	}
}

func (s *Static) Name() string            { return s.name }
func (s *Static) Interval() time.Duration { return s.interval }
func (s *Static) Healthy() bool           { return true }

// Collect returns a copy of the configured readings.
func (s *Static) Collect(ctx context.Context) ([]Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.readings), nil
}
