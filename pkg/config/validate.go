package config

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/theme"
)

// Validate reports every problem in cfg, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.General.PollInterval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("config: general.poll_interval must be positive"))
	}
	if _, err := c.DisplayUnit(); err != nil {
		errs = append(errs, err)
	}
	if c.Display.ThemeFile == "" {
		if _, ok := theme.Lookup(c.Display.Theme); !ok {
			errs = append(errs, fmt.Errorf("config: display.theme: unknown theme %q", c.Display.Theme))
		}
	}
	if c.Display.Padding < 0 {
		errs = append(errs, fmt.Errorf("config: display.padding must not be negative"))
	}
	if _, err := c.bandColors(); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, c.validateColors()...)
	if c.Sensors.Enabled && c.Sensors.Interval.Duration <= 0 {
		errs = append(errs, fmt.Errorf("config: sensors.interval must be positive"))
	}
	if c.GPU.Enabled {
		if strings.TrimSpace(c.GPU.Command) == "" {
			errs = append(errs, fmt.Errorf("config: gpu.command must not be empty"))
		}
		if c.GPU.Interval.Duration <= 0 {
			errs = append(errs, fmt.Errorf("config: gpu.interval must be positive"))
		}
	}
	for i, r := range c.Readings {
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, fmt.Errorf("config: readings[%d]: missing name", i))
		}
		if _, err := temperature.ParseUnit(r.Unit); err != nil {
			errs = append(errs, fmt.Errorf("config: readings[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// LogLevel parses general.log_level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.General.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: general.log_level: %w", err)
	}
	return l, nil
}

// DisplayUnit parses display.unit.
func (c *Config) DisplayUnit() (temperature.Unit, error) {
	u, err := temperature.ParseUnit(c.Display.Unit)
	if err != nil {
		return temperature.Celsius, fmt.Errorf("config: display.unit: %w", err)
	}
	return u, nil
}

// Overrides builds the color overrides for th. Explicit [colors] entries
// win over the theme's band colors, and a [[color_scale]] replaces both.
func (c *Config) Overrides(th theme.Theme) (temperature.Overrides, error) {
	scale, err := c.scaleInputs()
	if err != nil {
		return temperature.Overrides{}, err
	}
	if len(scale) > 0 {
		return temperature.Overrides{Scale: scale}, nil
	}

	colors, err := c.bandColors()
	if err != nil {
		return temperature.Overrides{}, err
	}
	return theme.Apply(th, temperature.Overrides{Colors: colors}), nil
}

// Input converts the entry into a scale input, keyed by whichever unit
// field is present.
func (e ScaleEntry) Input() (temperature.ScaleInput, error) {
	var (
		in    temperature.ScaleInput
		found int
	)
	set := func(v *float64, u temperature.Unit) {
		if v != nil {
			in = temperature.ScaleInput{Value: *v, Unit: u, Color: e.Color}
			found++
		}
	}
	set(e.Celsius, temperature.Celsius)
	set(e.Fahrenheit, temperature.Fahrenheit)
	set(e.Kelvin, temperature.Kelvin)

	if found != 1 {
		return temperature.ScaleInput{}, fmt.Errorf("%w (found %d)", temperature.ErrMalformedScaleEntry, found)
	}
	return in, nil
}

// validateColors checks [colors] and [[color_scale]] the way Resolve will
// see them, so a bad entry fails at load rather than on every reading.
func (c *Config) validateColors() []error {
	var errs []error
	for _, band := range slices.Sorted(maps.Keys(c.Colors)) {
		if v := c.Colors[band]; !theme.ValidHex(v) {
			errs = append(errs, fmt.Errorf("config: colors.%s: invalid color %q (expected #RRGGBB)", band, v))
		}
	}
	for i, e := range c.ColorScale {
		if !theme.ValidHex(e.Color) {
			errs = append(errs, fmt.Errorf("config: color_scale[%d]: invalid color %q (expected #RRGGBB)", i, e.Color))
		}
	}

	ins, err := c.scaleInputs()
	if err != nil {
		return append(errs, err)
	}
	if len(ins) > 0 {
		if _, err := temperature.Resolve(temperature.Overrides{Scale: ins}); err != nil {
			errs = append(errs, fmt.Errorf("config: color_scale: %w", err))
		}
	}
	return errs
}

func (c *Config) scaleInputs() ([]temperature.ScaleInput, error) {
	if len(c.ColorScale) == 0 {
		return nil, nil
	}
	out := make([]temperature.ScaleInput, 0, len(c.ColorScale))
	for i, e := range c.ColorScale {
		in, err := e.Input()
		if err != nil {
			return nil, fmt.Errorf("config: color_scale[%d]: %w", i, err)
		}
		out = append(out, in)
	}
	return out, nil
}

func (c *Config) bandColors() (map[temperature.Band]string, error) {
	if len(c.Colors) == 0 {
		return nil, nil
	}
	out := make(map[temperature.Band]string, len(c.Colors))
	for k, v := range c.Colors {
		b, err := temperature.ParseBand(k)
		if err != nil {
			return nil, fmt.Errorf("config: colors: %w", err)
		}
		out[b] = v
	}
	return out, nil
}
