// Package config holds the storenav runtime configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/storenav/confirm"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the flat storenav configuration.
type Config struct {
	// Listen is the address of the narration server.
	Listen string `yaml:"listen"`
	// Layout is a YAML layout file; empty selects the reference layout.
	Layout string `yaml:"layout,omitempty"`
	// Database is the SQLite file holding shopping lists.
	Database string `yaml:"database"`
	// DistanceScale and DistanceUnit convert cells to a display unit.
	DistanceScale float64 `yaml:"distance_scale"`
	DistanceUnit  string  `yaml:"distance_unit"`
	// LocalSearch refines the visiting order with 2-opt.
	LocalSearch bool `yaml:"local_search"`
	// Confirm configures the shelf-photo judge; disabled unless Enabled.
	Confirm ConfirmConfig `yaml:"confirm"`
	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// ConfirmConfig selects the item-confirmation service.
type ConfirmConfig struct {
	Enabled bool                  `yaml:"enabled"`
	Vision  confirm.VisionOptions `yaml:",inline"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level string `yaml:"level"`         // debug, info, warn, error
	Dir   string `yaml:"dir,omitempty"` // empty = stdout only
}

// Default returns a configuration with every field set.
func Default() *Config {
	return &Config{
		Listen:        "localhost:10090",
		Database:      defaultDatabase(),
		DistanceScale: 1,
		DistanceUnit:  "steps",
		Log:           LogConfig{Level: "info"},
	}
}

func defaultDatabase() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "storenav.db"
	}
	return filepath.Join(home, ".storenav", "storenav.db")
}

// Load overlays the YAML file at path onto Default. A missing file is not
// an error when path is empty.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !(c.DistanceScale > 0) {
		return fmt.Errorf("%w: distance_scale must be positive (%g)", ErrInvalid, c.DistanceScale)
	}
	if c.DistanceUnit == "" {
		return fmt.Errorf("%w: distance_unit is empty", ErrInvalid)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
