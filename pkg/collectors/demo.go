package collectors

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// Demo walk bounds in Celsius. They reach past the outermost default
// breakpoints so every band shows up.
const (
	demoMin  = -25.0
	demoMax  = 45.0
	demoStep = 1.5
)

// demoSensors are the fake sensors and their starting Celsius values.
var demoSensors = []struct {
	name  string
	start float64
}{
	{"outdoor", -12},
	{"garage", 8},
	{"office", 21},
	{"cpu", 38},
}

// Demo is a seeded random walk across the default bands, used for
// --use-mocks. Equal seeds give equal sequences.
type Demo struct {
	interval time.Duration

	mu     sync.Mutex
	rng    *rand.Rand
	values []float64
}

// NewDemo returns a demo collector seeded with seed.
func NewDemo(seed uint64, interval time.Duration) *Demo {
	d := &Demo{
		interval: interval,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		values:   make([]float64, len(demoSensors)),
	}
	for i, s := range demoSensors {
		d.values[i] = s.start
	}
	return d
}

func (d *Demo) Name() string            { return "demo" }
func (d *Demo) Interval() time.Duration { return d.interval }
func (d *Demo) Healthy() bool           { return true }

// Collect returns the current values, then steps each one.
func (d *Demo) Collect(ctx context.Context) ([]Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Reading, len(demoSensors))
	for i, s := range demoSensors {
		out[i] = Reading{
			Sensor: s.name,
			Value:  math.Round(d.values[i]*100) / 100,
			Unit:   temperature.Celsius,
		}
		next := d.values[i] + d.rng.NormFloat64()*demoStep
		d.values[i] = math.Max(demoMin, math.Min(demoMax, next))
	}
	return out, nil
}
