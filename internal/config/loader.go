package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	path, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{
				Path: path,
				Hint: "toolscout runs with built-in defaults; save a config to customize",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Restore from .bak file if available",
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Fix the field and try again",
		}
	}

	return &cfg, nil
}

// LoadOrCreate reads the default config, falling back to built-in defaults
// when no config file exists.
func LoadOrCreate() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		var notFound *ConfigNotFoundError
		if errors.As(err, &notFound) {
			return NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
