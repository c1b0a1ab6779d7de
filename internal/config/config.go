// Package config loads jsondiff settings from YAML, TOML or JSON files.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/qri-io/jsondiff"
)

// ErrInvalidConfig is matched by every validation failure in this package
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats
const (
	OutputText    = "text"
	OutputJSON    = "json"
	OutputSummary = "summary"
	OutputStats   = "stats"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	IgnoreArrayOrder bool     `yaml:"ignore_array_order" toml:"ignore_array_order" json:"ignore_array_order"`
	KeyFields        []string `yaml:"key_fields" toml:"key_fields" json:"key_fields"`
	IgnoreCase       bool     `yaml:"ignore_case" toml:"ignore_case" json:"ignore_case"`
	NumericTolerance float64  `yaml:"numeric_tolerance" toml:"numeric_tolerance" json:"numeric_tolerance"`
	// MaxDepth is nil when depth is unbounded
	MaxDepth *int   `yaml:"max_depth" toml:"max_depth" json:"max_depth"`
	Output   string `yaml:"output" toml:"output" json:"output"` // "text", "json", "summary" or "stats"
	Color    string `yaml:"color" toml:"color" json:"color"`    // "auto", "always" or "never"
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputText,
		Color:  ColorAuto,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputSummary, OutputStats:
	default:
		return fmt.Errorf("%w: output must be one of text, json, summary or stats, got %q", ErrInvalidConfig, c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be one of auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}

	dc := c.DiffConfig(nil)
	if err := dc.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DiffConfig converts comparison settings into a library configuration.
// logger may be nil
func (c *Config) DiffConfig(logger *log.Logger) jsondiff.Config {
	dc := *jsondiff.DefaultConfig()
	dc.IgnoreArrayOrder = c.IgnoreArrayOrder
	dc.KeyFields = append([]string(nil), c.KeyFields...)
	dc.IgnoreCase = c.IgnoreCase
	dc.NumericTolerance = c.NumericTolerance
	if c.MaxDepth != nil {
		dc.MaxDepth = *c.MaxDepth
	}
	dc.Logger = logger
	return dc
}

// Options returns comparison settings as diff options
func (c *Config) Options(logger *log.Logger) []jsondiff.DiffOption {
	return []jsondiff.DiffOption{jsondiff.OptionConfig(c.DiffConfig(logger))}
}
