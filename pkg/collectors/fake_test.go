package collectors

import (
	"context"
	"sync/atomic"
	"time"
)

// fakeSource is a scripted Collector that counts its runs.
type fakeSource struct {
	name     string
	interval time.Duration
	collect  func(ctx context.Context) ([]Reading, error)
	calls    atomic.Int64
}

func newFake(name string, interval time.Duration) *fakeSource {
	return &fakeSource{
		name:     name,
		interval: interval,
		collect:  func(context.Context) ([]Reading, error) { return nil, nil },
	}
}

// returning makes every run yield readings.
func (f *fakeSource) returning(readings ...Reading) *fakeSource {
	f.collect = func(context.Context) ([]Reading, error) { return readings, nil }
	return f
}

// failing makes every run return err.
func (f *fakeSource) failing(err error) *fakeSource {
	f.collect = func(context.Context) ([]Reading, error) { return nil, err }
	return f
}

// using replaces the run with fn.
func (f *fakeSource) using(fn func(ctx context.Context) ([]Reading, error)) *fakeSource {
	f.collect = fn
	return f
}

func (f *fakeSource) Name() string { return f.name }
func (f *fakeSource) Interval() time.Duration { return f.interval }
func (f *fakeSource) Healthy() bool { return true }

func (f *fakeSource) Collect(ctx context.Context) ([]Reading, error) {
	f.calls.Add(1)
	return f.collect(ctx)
}
