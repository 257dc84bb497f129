package temperature

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Display is the snapshot handed to renderers: the caller's value and unit
// (unconverted), the equivalent Kelvin, the unit symbol and the resolved
// scale. Treat it as read-only; build a new one when any input changes.
type Display struct {
	Value  float64
	Unit   Unit
	Kelvin Absolute
	Symbol string
	Scale  Scale
}

// Build composes ToKelvin and Resolve into a Display. Errors from either
// are returned unchanged.
func Build(value float64, unit Unit, o Overrides) (Display, error) {
	k, err := ToKelvin(value, unit)
	if err != nil {
		return Display{}, err
	}
	scale, err := Resolve(o)
	if err != nil {
		return Display{}, err
	}
	return Display{
		Value:  value,
		Unit:   unit,
		Kelvin: k,
		Symbol: unit.Symbol(),
		Scale:  scale,
	}, nil
}

// Color returns the badge background for this snapshot.
func (d Display) Color() string {
	return ColorFor(d.Kelvin, d.Scale)
}

// Label formats the value with two decimals followed by the unit symbol,
// e.g. "22.00°C".
func (d Display) Label() string {
	return fmt.Sprintf("%.2f%s", d.Value, d.Symbol)
}

// Description is the default accessible text, e.g. "22.00 degrees Celsius".
func (d Display) Description() string {
	return fmt.Sprintf("%.2f degrees %s", d.Value, d.Unit.Name())
}

// Memo caches the most recent Build result and only rebuilds when the
// value, unit or overrides change. It is safe for concurrent use.
type Memo struct {
	mu        sync.Mutex
	valid     bool
	value     float64
	unit      Unit
	overrides Overrides
	display   Display
	err       error
	builds    int
}

// Build returns the cached Display when the inputs match the previous call,
// and otherwise rebuilds it.
func (m *Memo) Build(value float64, unit Unit, o Overrides) (Display, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.value == value && m.unit == unit && m.overrides.Equal(o) {
		return m.snapshot(), m.err
	}

	m.display, m.err = Build(value, unit, o)
	// Keep private copies so later edits to the caller's map or slice
	// still invalidate the cache.
	m.value, m.unit = value, unit
	m.overrides = Overrides{Colors: maps.Clone(o.Colors), Scale: slices.Clone(o.Scale)}
	m.valid = true
	m.builds++
	return m.snapshot(), m.err
}

// snapshot copies the cached Display so callers never share its scale.
func (m *Memo) snapshot() Display {
	d := m.display
	d.Scale = slices.Clone(d.Scale)
	return d
}

// Builds returns how many times the Memo actually rebuilt its snapshot.
func (m *Memo) Builds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.builds
}
