// Package config loads simulation settings from YAML, JSON or TOML files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/anggasct/trafficsim"
)

// Duration is a time.Duration written as a Go duration string ("5s", "1m").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for yaml, json and toml.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(b), err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds runtime parameters for a simulation run.
type Config struct {
	Rounds      int      `json:"rounds" yaml:"rounds" toml:"rounds"`
	Delay       Duration `json:"delay" yaml:"delay" toml:"delay"`
	Vehicles    []string `json:"vehicles" yaml:"vehicles" toml:"vehicles"`
	Separator   string   `json:"separator" yaml:"separator" toml:"separator"`
	LogLevel    string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat   string   `json:"log_format" yaml:"log_format" toml:"log_format"`
	MetricsFile string   `json:"metrics_file" yaml:"metrics_file" toml:"metrics_file"`
}

// Default returns the fixed five-round scenario.
func Default() Config {
	sim := trafficsim.DefaultSimulationConfig()
	return Config{
		Rounds:    sim.Rounds,
		Delay:     Duration(sim.Delay),
		Vehicles:  sim.Vehicles,
		Separator: sim.Separator,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads a configuration file based on its extension, on top of Default().
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

var (
	validLevels  = []string{"debug", "info", "warn", "error", "disabled"}
	validFormats = []string{"console", "json"}
)

// Validate checks simulation and logging settings.
func (c Config) Validate() error {
	if err := c.ToSimulation().Validate(); err != nil {
		return err
	}
	if !contains(validLevels, c.LogLevel) {
		return trafficsim.NewConfigurationError("Logging",
			fmt.Sprintf("log level must be one of %s, got %q", strings.Join(validLevels, "|"), c.LogLevel))
	}
	if !contains(validFormats, c.LogFormat) {
		return trafficsim.NewConfigurationError("Logging",
			fmt.Sprintf("log format must be one of %s, got %q", strings.Join(validFormats, "|"), c.LogFormat))
	}
	return nil
}

// ToSimulation converts the file settings into a simulation configuration.
func (c Config) ToSimulation() trafficsim.SimulationConfig {
	separator := c.Separator
	if separator == "" {
		separator = trafficsim.DefaultSeparator
	}
	vehicles := make([]string, len(c.Vehicles))
	copy(vehicles, c.Vehicles)
	return trafficsim.SimulationConfig{
		Rounds:    c.Rounds,
		Delay:     time.Duration(c.Delay),
		Vehicles:  vehicles,
		Separator: separator,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
