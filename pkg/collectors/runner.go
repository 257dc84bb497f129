package collectors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"
)

// DefaultUpdateBufferSize is a reasonable capacity for the updates channel.
const DefaultUpdateBufferSize = 64

// Runner drives every registered collector on its own goroutine and fans
// results into one channel.
type Runner struct {
	registry *Registry
	updates  chan<- Update
	clock    clockwork.Clock
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock sets the clock used for tickers and timestamps.
func WithClock(c clockwork.Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger. A nil logger means slog.Default().
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner returns a Runner for the collectors in reg.
func NewRunner(reg *Registry, updates chan<- Update, opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: reg,
		updates:  updates,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Start launches one goroutine per registered collector. Each collects
// immediately, then on its interval until ctx is done or Stop is called.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return fmt.Errorf("collectors: %w", ErrAlreadyStarted)
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for _, name := range r.registry.List() {
		c, ok := r.registry.Get(name)
		if !ok {
			continue
		}
		r.wg.Add(1)
		go r.loop(ctx, c)
	}
	return nil
}

// Stop cancels all collector goroutines and waits for them to exit. It is
// safe to call more than once, and a stopped Runner may be started again.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.wg.Wait()
}

// RunOnce runs the named collector a single time and records its status.
// No update is sent.
func (r *Runner) RunOnce(ctx context.Context, name string) ([]Reading, error) {
	c, ok := r.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("collectors: %w: %q", ErrUnknownCollector, name)
	}
	u := r.collect(ctx, c)
	return u.Readings, u.Error
}

// RunAll runs every collector once, in name order, and returns the updates.
func (r *Runner) RunAll(ctx context.Context) []Update {
	names := r.registry.List()
	out := make([]Update, 0, len(names))
	for _, name := range names {
		c, ok := r.registry.Get(name)
		if !ok {
			continue
		}
		out = append(out, r.collect(ctx, c))
	}
	return out
}

// Health returns the health flag of every registered collector.
func (r *Runner) Health() map[string]bool {
	statuses := r.registry.AllStatus()
	out := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		out[s.Name] = s.Healthy
	}
	return out
}

func (r *Runner) loop(ctx context.Context, c Collector) {
	defer r.wg.Done()

	if !r.send(ctx, r.collect(ctx, c)) {
		return
	}

	interval := c.Interval()
	if interval <= 0 {
		return
	}

	ticker := r.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if !r.send(ctx, r.collect(ctx, c)) {
				return
			}
		}
	}
}

// send delivers u unless ctx ends first.
func (r *Runner) send(ctx context.Context, u Update) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case r.updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}

func (r *Runner) collect(ctx context.Context, c Collector) Update {
	name := c.Name()
	start := r.clock.Now()
	readings, err := c.Collect(ctx)
	latency := r.clock.Since(start)

	r.registry.record(name, func(s *CollectorStatus) {
		s.RunCount++
		s.LastRun = start
		s.LastLatency = latency
		if err != nil {
			s.ErrorCount++
			s.LastError = err
			s.Healthy = false
			return
		}
		s.LastError = nil
		s.Healthy = true
		s.Readings = len(readings)
	})

	if err != nil {
		r.logger.Warn("collection failed", "collector", name, "error", err)
	} else {
		r.logger.Debug("collected", "collector", name, "readings", len(readings), "latency", latency)
	}

	return Update{
		Source:    name,
		Readings:  readings,
		Timestamp: start,
		Error:     err,
	}
}
