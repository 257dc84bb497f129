// thermo-badge renders temperatures as colored terminal badges.
//
// A value is converted to Kelvin, placed on a color scale and drawn with a
// background for its band. Readings come from a single --value, from
// hardware sensors, NVIDIA GPUs, fixed readings in the config file or a demo
// source, and can be shown as a row of badges, a starship prompt segment or
// an interactive TUI.
//
// Usage:
//
//	thermo-badge [flags]
//
// Flags:
//
//	--config string         Path to configuration file (default: ~/.config/thermo-badge/config.toml)
//	--value float           Render a single badge for this value
//	--unit unit             Unit of --value (default celsius)
//	--display-unit unit     Unit to display readings in (overrides config)
//	--theme string          Palette name (overrides config)
//	--tui                   Launch interactive Bubbletea TUI
//	--starship              Output one-line Starship format
//	--use-mocks             Use the demo source instead of hardware sensors
//	--mock-seed uint        Seed for the demo source (0 = random)
//	--list-themes           Print the available palettes and exit
//	--log-level string      Log level (debug|info|warn|error)
//	--verbose               Enable verbose logging
//	--no-color              Disable colors
//	--version               Print version and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"

	"gitlab.com/tinyland/lab/thermo-badge/pkg/collectors"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/components"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/config"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/starship"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/temperature"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/terminal"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/theme"
	"gitlab.com/tinyland/lab/thermo-badge/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		inputUnit   = temperature.Celsius
		displayUnit = temperature.Celsius
	)
	var (
		configPath  = flag.StringP("config", "c", "", "Path to configuration file")
		value       = flag.Float64("value", 0, "Render a single badge for this value")
		themeName   = flag.StringP("theme", "t", "", "Palette name (overrides config)")
		runTUI      = flag.Bool("tui", false, "Launch interactive Bubbletea TUI")
		runStarship = flag.Bool("starship", false, "Output one-line Starship format")
		source      = flag.String("source", "", "Read only this source (sensors, gpu, static, demo)")
		useMocks    = flag.Bool("use-mocks", false, "Use the demo source instead of hardware sensors")
		mockSeed    = flag.Uint64("mock-seed", 0, "Seed for the demo source (0 = random)")
		listThemes  = flag.Bool("list-themes", false, "Print the available palettes and exit")
		logLevel    = flag.String("log-level", "", "Log level (debug|info|warn|error)")
		verbose     = flag.BoolP("verbose", "v", false, "Enable verbose logging")
		noColor     = flag.Bool("no-color", false, "Disable colors")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.VarP(&inputUnit, "unit", "u", "Unit of --value ("+unitChoices()+")")
	flag.Var(&displayUnit, "display-unit", "Unit to display readings in (overrides config)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("thermo-badge %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	level, _ := cfg.LogLevel()
	if *logLevel != "" {
		if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --log-level: %v\n", err)
			os.Exit(1)
		}
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	// Resolve the palette
	th, err := resolveTheme(cfg, *themeName)
	if err != nil {
		logger.Error("theme setup failed", "error", err)
		os.Exit(1)
	}
	theme.SetCurrent(th.Name)

	overrides, err := cfg.Overrides(th)
	if err != nil {
		logger.Error("color overrides failed", "error", err)
		os.Exit(1)
	}

	if !flag.CommandLine.Changed("display-unit") {
		displayUnit, _ = cfg.DisplayUnit()
	}

	style := components.BadgeStyle{
		Padding: cfg.Display.Padding,
		Bold:    cfg.Display.Bold,
		Theme:   th,
	}
	caps := terminal.DetectCapabilities(os.Stdout, *noColor)
	logger.Debug("terminal detected",
		"term", caps.Term,
		"tty", caps.TTY,
		"ssh", caps.SSH,
		"profile", caps.Profile,
		"width", caps.Width,
	)
	r := components.NewRenderer(os.Stdout, caps.Profile)

	// Determine operation mode
	switch {
	case *listThemes:
		printThemes(r, style)

	case flag.CommandLine.Changed("value"):
		unit := inputUnit
		if flag.CommandLine.Changed("display-unit") {
			unit = displayUnit
		}
		v, err := temperature.Convert(*value, inputUnit, unit)
		if err != nil {
			logger.Error("invalid value", "value", *value, "unit", inputUnit, "error", err)
			os.Exit(1)
		}
		d, err := temperature.Build(v, unit, overrides)
		if err != nil {
			logger.Error("badge failed", "error", err)
			os.Exit(1)
		}
		logger.Debug("rendering badge", "description", d.Description(), "color", d.Color())
		fmt.Println(components.Badge(r, d, style))

	case *runStarship:
		reg, err := newRegistry(cfg, *useMocks, *mockSeed, logger)
		if err != nil {
			logger.Error("source setup failed", "error", err)
			os.Exit(1)
		}
		runner := collectors.NewRunner(reg, nil, collectors.WithLogger(logger))
		updates, err := collectOnce(ctx, runner, *source)
		if err != nil {
			logger.Debug("collection failed", "error", err)
			os.Exit(1)
		}

		entries := starshipEntries(updates, displayUnit, overrides, logger)
		result := starship.Render(starship.Config{
			Icon:     cfg.Starship.Icon,
			MaxWidth: cfg.Starship.MaxWidth,
			Profile:  terminal.PromptProfile(*noColor),
		}, entries)
		if result != "" {
			fmt.Print(result)
		}

	case *runTUI:
		reg, err := newRegistry(cfg, *useMocks, *mockSeed, logger)
		if err != nil {
			logger.Error("source setup failed", "error", err)
			os.Exit(1)
		}
		if err := runDashboard(ctx, cfg, reg, th.Name, displayUnit, style, logger); err != nil {
			logger.Error("TUI error", "error", err)
			os.Exit(1)
		}

	default:
		// Default: one collection pass printed as a row of badges
		reg, err := newRegistry(cfg, *useMocks, *mockSeed, logger)
		if err != nil {
			logger.Error("source setup failed", "error", err)
			os.Exit(1)
		}
		runner := collectors.NewRunner(reg, nil, collectors.WithLogger(logger))
		updates, err := collectOnce(ctx, runner, *source)
		if err != nil {
			logger.Error("collection failed", "error", err, "sources", reg.List())
			os.Exit(1)
		}

		items := rowItems(updates, displayUnit, overrides, logger)
		if len(items) == 0 {
			logger.Error("no readings available", "sources", reg.List(), "health", runner.Health())
			os.Exit(1)
		}
		fmt.Println(components.RenderRow(r, items, style, caps.Width))
	}
}

// resolveTheme loads the optional palette file and picks the active theme.
// An explicit name wins over the file, which wins over display.theme.
func resolveTheme(cfg *config.Config, name string) (theme.Theme, error) {
	if cfg.Display.ThemeFile != "" {
		data, err := os.ReadFile(cfg.Display.ThemeFile)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("read theme file: %w", err)
		}
		t, err := theme.LoadFromTOML(data)
		if err != nil {
			return theme.Theme{}, err
		}
		if err := theme.Register(t); err != nil {
			return theme.Theme{}, err
		}
		if name == "" {
			name = t.Name
		}
	}
	if name == "" {
		name = cfg.Display.Theme
	}
	t, ok := theme.Lookup(name)
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(theme.Names(), ", "))
	}
	return t, nil
}

// printThemes prints every palette name with a badge per band.
func printThemes(r *lipgloss.Renderer, style components.BadgeStyle) {
	names := theme.Names()
	nameW := 0
	for _, n := range names {
		nameW = max(nameW, len(n))
	}

	for _, n := range names {
		t := theme.Get(n)
		st := style
		st.Theme = t
		o := theme.Apply(t, temperature.Overrides{})

		var items []components.RowItem
		for _, c := range sampleCelsius {
			d, err := temperature.Build(c, temperature.Celsius, o)
			if err != nil {
				continue
			}
			items = append(items, components.RowItem{Display: d})
		}

		marker := " "
		if n == strings.ToLower(theme.Current.Name) {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, components.Pad(n, nameW), components.RenderRow(r, items, st, 0))
	}
}

// sampleCelsius holds one value inside each default band.
var sampleCelsius = []float64{-20, 0, 10, 20, 28, 38}

// runDashboard starts every source in the background and runs the TUI
// until the user quits or ctx is cancelled.
func runDashboard(ctx context.Context, cfg *config.Config, reg *collectors.Registry, themeName string, unit temperature.Unit, style components.BadgeStyle, logger *slog.Logger) error {
	updates := make(chan collectors.Update, collectors.DefaultUpdateBufferSize)
	runner := collectors.NewRunner(reg, updates, collectors.WithLogger(logger))
	if err := runner.Start(ctx); err != nil {
		return err
	}
	defer runner.Stop()

	opts := tui.DefaultOptions()
	opts.Unit = unit
	opts.Theme = themeName
	opts.Style = style
	opts.Updates = updates
	opts.Overrides = cfg.Overrides
	slowest := max(cfg.General.PollInterval.Duration, cfg.Sensors.Interval.Duration, time.Second)
	if cfg.GPU.Enabled {
		slowest = max(slowest, cfg.GPU.Interval.Duration)
	}
	opts.StaleAfter = 3 * slowest

	model := tui.New(opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
