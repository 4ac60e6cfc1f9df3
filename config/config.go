// Package config provides tool configuration for the diary augmenter.
//
// Configuration is optional: every field has a working default, a missing
// file yields the defaults, and CLI flags override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration.
type Config struct {
	Column  ColumnConfig      `yaml:"column"`
	Aliases map[string]string `yaml:"aliases"`
	Logging LoggingConfig     `yaml:"logging"`

	// KeepCarbs leaves the raw carbs column visible after augmenting.
	KeepCarbs bool `yaml:"keep_carbs"`
}

// ColumnConfig controls the inserted net-carbs column.
type ColumnConfig struct {
	// Position is the insertion target; nil means after the carbs column.
	Position *int   `yaml:"position"`
	Title    string `yaml:"title"`
	Unit     string `yaml:"unit"`
}

// LoggingConfig controls CLI logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Column: ColumnConfig{
			Title: "nCarbs",
			Unit:  "g",
		},
		Aliases: map[string]string{
			"carbohydrates": "carbs",
			"carb":          "carbs",
			"fibre":         "fiber",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from a YAML file, layered over the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// TargetPosition returns the configured insertion target, or -1 when the
// position should be derived from the carbs column.
func (c *Config) TargetPosition() int {
	if c.Column.Position == nil {
		return -1
	}
	return *c.Column.Position
}
