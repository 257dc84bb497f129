package config

// Config is the complete thermo-badge configuration.
type Config struct {
	General    GeneralConfig     `toml:"general" yaml:"general"`
	Display    DisplayConfig     `toml:"display" yaml:"display"`
	Colors     map[string]string `toml:"colors" yaml:"colors"`
	ColorScale []ScaleEntry      `toml:"color_scale" yaml:"color_scale"`
	Sensors    SensorsConfig     `toml:"sensors" yaml:"sensors"`
	GPU        GPUConfig         `toml:"gpu" yaml:"gpu"`
	Readings   []ReadingConfig   `toml:"readings" yaml:"readings"`
	Starship   StarshipConfig    `toml:"starship" yaml:"starship"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel     string   `toml:"log_level" yaml:"log_level"`
	PollInterval Duration `toml:"poll_interval" yaml:"poll_interval"`
}

// DisplayConfig controls how readings are shown.
type DisplayConfig struct {
	Unit      string `toml:"unit" yaml:"unit"`             // celsius, fahrenheit, kelvin
	Theme     string `toml:"theme" yaml:"theme"`           // built-in palette name
	ThemeFile string `toml:"theme_file" yaml:"theme_file"` // TOML palette, registered at startup
	Padding   int    `toml:"padding" yaml:"padding"`
	Bold      bool   `toml:"bold" yaml:"bold"`
}

// ScaleEntry is one custom breakpoint. Exactly one of Celsius, Fahrenheit
// or Kelvin must be set.
type ScaleEntry struct {
	Celsius    *float64 `toml:"celsius" yaml:"celsius"`
	Fahrenheit *float64 `toml:"fahrenheit" yaml:"fahrenheit"`
	Kelvin     *float64 `toml:"kelvin" yaml:"kelvin"`
	Color      string   `toml:"color" yaml:"color"`
}

// SensorsConfig configures the hardware sensor source.
type SensorsConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	Include  []string `toml:"include" yaml:"include"` // sensor key prefixes, empty = all
	Interval Duration `toml:"interval" yaml:"interval"`
}

// GPUConfig configures the nvidia-smi source.
type GPUConfig struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"`
	Command  string   `toml:"command" yaml:"command"`
	Interval Duration `toml:"interval" yaml:"interval"`
}

// ReadingConfig is a fixed reading served by the static source.
type ReadingConfig struct {
	Name  string  `toml:"name" yaml:"name"`
	Value float64 `toml:"value" yaml:"value"`
	Unit  string  `toml:"unit" yaml:"unit"`
}

// StarshipConfig controls the one-line prompt segment.
type StarshipConfig struct {
	MaxWidth int    `toml:"max_width" yaml:"max_width"`
	Icon     string `toml:"icon" yaml:"icon"`
}
