package jsondiff

import (
	"math"

	"github.com/charmbracelet/log"
)

// NoDepthLimit is the default MaxDepth: recurse as deep as the input goes
const NoDepthLimit = math.MaxInt

// Config are any possible configuration parameters for calculating diffs
type Config struct {
	// IgnoreArrayOrder correlates array elements by best content match
	// instead of by position
	IgnoreArrayOrder bool
	// KeyFields correlates elements of arrays of objects by the values of
	// these fields. takes precedence over IgnoreArrayOrder
	KeyFields []string
	// IgnoreCase compares strings using unicode case folding
	IgnoreCase bool
	// NumericTolerance treats numbers as unchanged if abs(a-b) <= tolerance
	NumericTolerance float64
	// MaxDepth stops descending into containers at this depth, comparing
	// them as opaque blobs instead. the root is depth 0
	MaxDepth int
	// Logger receives debug traces & warnings about inconsistent input,
	// like duplicate array keys. defaults to log.Default()
	Logger *log.Logger
}

// DefaultConfig returns the configuration used when no options are given
func DefaultConfig() *Config {
	return &Config{
		MaxDepth: NoDepthLimit,
	}
}

// Validate checks configuration values, returning an *OptionsError
// describing the first problem found
func (c *Config) Validate() error {
	if math.IsNaN(c.NumericTolerance) || math.IsInf(c.NumericTolerance, 0) {
		return &OptionsError{Field: "NumericTolerance", Message: "must be a finite number"}
	}
	if c.NumericTolerance < 0 {
		return &OptionsError{Field: "NumericTolerance", Message: "must not be negative"}
	}
	if c.MaxDepth < 0 {
		return &OptionsError{Field: "MaxDepth", Message: "must not be negative"}
	}
	seen := map[string]bool{}
	for _, f := range c.KeyFields {
		if f == "" {
			return &OptionsError{Field: "KeyFields", Message: "must not contain empty field names"}
		}
		if seen[f] {
			return &OptionsError{Field: "KeyFields", Message: "must not repeat field " + f}
		}
		seen[f] = true
	}
	return nil
}

func (c *Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// DiffOption is a function that adjust a config, zero or more DiffOptions
// can be passed to the Compare function
type DiffOption func(cfg *Config)

// OptionIgnoreArrayOrder correlates array elements by content
func OptionIgnoreArrayOrder(ignore bool) DiffOption {
	return func(cfg *Config) {
		cfg.IgnoreArrayOrder = ignore
	}
}

// OptionKeyFields correlates elements of arrays of objects by field values
func OptionKeyFields(fields ...string) DiffOption {
	return func(cfg *Config) {
		cfg.KeyFields = append([]string(nil), fields...)
	}
}

// OptionIgnoreCase makes string comparison case-insensitive
func OptionIgnoreCase(ignore bool) DiffOption {
	return func(cfg *Config) {
		cfg.IgnoreCase = ignore
	}
}

// OptionNumericTolerance sets the absolute tolerance for number comparison
func OptionNumericTolerance(tolerance float64) DiffOption {
	return func(cfg *Config) {
		cfg.NumericTolerance = tolerance
	}
}

// OptionMaxDepth bounds recursion depth
func OptionMaxDepth(depth int) DiffOption {
	return func(cfg *Config) {
		cfg.MaxDepth = depth
	}
}

// OptionLogger sets the logger a comparison reports to
func OptionLogger(l *log.Logger) DiffOption {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// OptionConfig replaces the whole configuration with a copy of c
func OptionConfig(c Config) DiffOption {
	return func(cfg *Config) {
		*cfg = c
		cfg.KeyFields = append([]string(nil), c.KeyFields...)
	}
}

func newConfig(opts []DiffOption) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
