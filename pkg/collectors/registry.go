package collectors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// sourceEntry pairs a collector with its runtime status.
type sourceEntry struct {
	c      Collector
	status CollectorStatus
}

// Registry holds the temperature sources by name. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]*sourceEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]*sourceEntry)}
}

// Register adds c under c.Name(). Names must be non-empty, unique and free
// of "/", which separates source and sensor in row ids.
func (r *Registry) Register(c Collector) error {
	name := c.Name()
	if name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("collectors: %w: %q", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.sources[name]; taken {
		return fmt.Errorf("collectors: %w: %q", ErrDuplicateCollector, name)
	}
	r.sources[name] = &sourceEntry{
		c:      c,
		status: CollectorStatus{Name: name, Healthy: true},
	}
	return nil
}

// Unregister drops a source. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sources, name)
}

// Get returns the named collector.
func (r *Registry) Get(name string) (Collector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sources[name]
	if !ok {
		return nil, false
	}
	return e.c, true
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.sources))
}

// Status returns a copy of the named source's status.
func (r *Registry) Status(name string) (CollectorStatus, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sources[name]
	if !ok {
		return CollectorStatus{}, false
	}
	return e.status, true
}

// AllStatus returns every status, sorted by name.
func (r *Registry) AllStatus() []CollectorStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CollectorStatus, 0, len(r.sources))
	for _, name := range slices.Sorted(maps.Keys(r.sources)) {
		out = append(out, r.sources[name].status)
	}
	return out
}

// record applies the outcome of one collection to the named source.
func (r *Registry) record(name string, fn func(s *CollectorStatus)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sources[name]; ok {
		fn(&e.status)
	}
}
