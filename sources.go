package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors/gpu"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors/sensors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/components"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/config"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/starship"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
)

// staticSourceName names the collector serving [[readings]].
const staticSourceName = "static"

// newRegistry registers the configured sources. With useMocks the demo
// source replaces hardware sensors and GPUs; fixed readings are served
// either way.
func newRegistry(cfg *config.Config, useMocks bool, seed uint64, logger *slog.Logger) (*collectors.Registry, error) {
	reg := collectors.NewRegistry()

	switch {
	case useMocks:
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		logger.Info("using demo data", "seed", seed)
		if err := reg.Register(collectors.NewDemo(seed, cfg.General.PollInterval.Duration)); err != nil {
			return nil, err
		}

	case cfg.Sensors.Enabled:
		c := sensors.New(sensors.Config{
			Include:  cfg.Sensors.Include,
			Interval: cfg.Sensors.Interval.Duration,
		}, sensors.WithLogger(logger))
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	if !useMocks && cfg.GPU.Enabled {
		c := gpu.New(gpu.Config{
			Command:  cfg.GPU.Command,
			Interval: cfg.GPU.Interval.Duration,
		}, gpu.WithLogger(logger))
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	if len(cfg.Readings) > 0 {
		readings := make([]collectors.Reading, 0, len(cfg.Readings))
		for i, rc := range cfg.Readings {
			unit, err := temperature.ParseUnit(rc.Unit)
			if err != nil {
				return nil, fmt.Errorf("readings[%d]: %w", i, err)
			}
			readings = append(readings, collectors.Reading{Sensor: rc.Name, Value: rc.Value, Unit: unit})
		}
		if err := reg.Register(collectors.NewStatic(staticSourceName, 0, readings)); err != nil {
			return nil, err
		}
	}

	if len(reg.List()) == 0 {
		return nil, fmt.Errorf("no sources: enable [sensors] or [gpu], add [[readings]] or pass --use-mocks")
	}
	return reg, nil
}

// unitChoices lists the accepted unit names for flag help.
func unitChoices() string {
	names := make([]string, 0, 3)
	for _, u := range temperature.Units() {
		names = append(names, u.String())
	}
	return strings.Join(names, "|")
}

// collectOnce runs one collection pass: every source, or only the named one.
// An unknown name is an error; a failing source is reported in its Update.
func collectOnce(ctx context.Context, runner *collectors.Runner, source string) ([]collectors.Update, error) {
	if source == "" {
		return runner.RunAll(ctx), nil
	}
	readings, err := runner.RunOnce(ctx, source)
	if errors.Is(err, collectors.ErrUnknownCollector) {
		return nil, err
	}
	return []collectors.Update{{Source: source, Readings: readings, Error: err}}, nil
}

// rowItems flattens updates into row items in unit. Failed sources and
// readings that cannot be displayed are logged and skipped.
func rowItems(updates []collectors.Update, unit temperature.Unit, o temperature.Overrides, logger *slog.Logger) []components.RowItem {
	var items []components.RowItem
	for _, u := range updates {
		if u.Error != nil {
			logger.Warn("source failed", "source", u.Source, "error", u.Error)
		}
		for _, rd := range u.Readings {
			d, err := rd.Display(unit, o)
			if err != nil {
				logger.Warn("skipping reading", "source", u.Source, "sensor", rd.Sensor, "error", err)
				continue
			}
			items = append(items, components.RowItem{Name: rd.Sensor, Display: d})
		}
	}
	return items
}

// starshipEntries is rowItems for the prompt segment, carrying the high
// threshold flag. Errors are logged at debug so the prompt stays quiet.
func starshipEntries(updates []collectors.Update, unit temperature.Unit, o temperature.Overrides, logger *slog.Logger) []starship.Entry {
	var entries []starship.Entry
	for _, u := range updates {
		if u.Error != nil {
			logger.Debug("source failed", "source", u.Source, "error", u.Error)
		}
		for _, rd := range u.Readings {
			d, err := rd.Display(unit, o)
			if err != nil {
				logger.Debug("skipping reading", "source", u.Source, "sensor", rd.Sensor, "error", err)
				continue
			}
			entries = append(entries, starship.Entry{Name: rd.Sensor, Display: d, Alert: rd.AboveHigh()})
		}
	}
	return entries
}
