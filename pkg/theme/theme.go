// Package theme holds named band palettes for temperature badges. A palette
// recolors the six bands of the default scale and picks the text colors
// drawn on top of badge backgrounds.
package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// Theme is a named set of band colors plus badge text colors.
type Theme struct {
	Name string

	// Band colors, hex e.g. "#7DD3FC"
	VeryCold string
	Cold     string
	Cool     string
	Mild     string
	Warm     string
	Hot      string

	// Badge text
	TextDark  string // drawn on light backgrounds
	TextLight string // drawn on dark backgrounds
}

// Colors returns the band colors keyed for temperature.Overrides.
func (t Theme) Colors() map[temperature.Band]string {
	slots := [...]string{t.VeryCold, t.Cold, t.Cool, t.Mild, t.Warm, t.Hot}
	bands := temperature.Bands()
	out := make(map[temperature.Band]string, len(bands))
	for _, b := range bands {
		out[b] = slots[b]
	}
	return out
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Lookup returns a named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme name after name in Names() order, wrapping around.
func Next(name string) string {
	names := Names()
	for i, n := range names {
		if n == strings.ToLower(name) {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds or replaces a user theme, e.g. one read with LoadFromTOML.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
