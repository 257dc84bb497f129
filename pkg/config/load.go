package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const appName = "thermo-badge"

// Load reads the first config file found under
// $XDG_CONFIG_HOME/thermo-badge or ~/.config/thermo-badge, trying
// config.toml, config.yaml and config.yml in each. Without a file it returns
// the defaults with environment overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return withEnv(DefaultConfig()), nil
}

// LoadFromFile reads one config file. .yaml and .yml select YAML, anything
// else is TOML. A missing file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return withEnv(DefaultConfig()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		return LoadFromYAML(f)
	}
	return LoadFromReader(f)
}

// LoadFromReader decodes TOML over the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse TOML: %w", err)
	}
	return withEnv(cfg), nil
}

// LoadFromYAML decodes YAML over the defaults. An empty document is valid.
func LoadFromYAML(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse YAML: %w", err)
	}
	return withEnv(cfg), nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:     "info",
			PollInterval: Duration{5 * time.Second},
		},
		Display: DisplayConfig{
			Unit:    "celsius",
			Theme:   "default",
			Padding: 1,
			Bold:    true,
		},
		Sensors: SensorsConfig{
			Enabled:  true,
			Interval: Duration{5 * time.Second},
		},
		GPU: GPUConfig{
			Command:  "nvidia-smi",
			Interval: Duration{10 * time.Second},
		},
		Starship: StarshipConfig{
			MaxWidth: 40,
			Icon:     "🌡",
		},
	}
}

// withEnv applies the THERMO_BADGE_* variables to cfg and returns it.
func withEnv(cfg *Config) *Config {
	for name, field := range map[string]*string{
		"THERMO_BADGE_UNIT":      &cfg.Display.Unit,
		"THERMO_BADGE_THEME":     &cfg.Display.Theme,
		"THERMO_BADGE_LOG_LEVEL": &cfg.General.LogLevel,
	} {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	return cfg
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	dirs := []string{xdgConfigHome(home)}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if dirs[0] != defaultXDG {
		dirs = append(dirs, defaultXDG)
	}

	var paths []string
	for _, d := range dirs {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			paths = append(paths, filepath.Join(d, appName, name))
		}
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
