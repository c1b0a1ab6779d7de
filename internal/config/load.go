package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/qri-io/jsondiff"
)

// LoadFromFile loads configuration from a YAML, TOML or JSON file, picked
// by extension. Unset fields keep their defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format, err := jsondiff.FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Load(format, data)
}

// Load parses configuration data in the given format
func Load(format jsondiff.Format, data []byte) (*Config, error) {
	doc := map[string]interface{}{}
	cfg := Default()

	switch format {
	case jsondiff.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
		if err := ValidateDocument(doc); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
	case jsondiff.FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
		if err := ValidateDocument(doc); err != nil {
			return nil, err
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
	case jsondiff.FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
		if err := ValidateDocument(doc); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
