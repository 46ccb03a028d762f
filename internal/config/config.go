/*
Package config handles loading, saving, and validating toolscout configuration.

Configuration is stored in ~/.toolscout.json.

Schema:

	{
	  "dataDir": "~/.toolscout",
	  "catalogPath": "/path/to/catalog.json",
	  "defaultUser": "guest",
	  "limits": {
	    "recommend": 6,
	    "similar": 4,
	    "trending": 6,
	    "category": 6
	  },
	  "weights": { ... },
	  "similarity": { ... }
	}

All fields are optional; missing fields fall back to the built-in defaults.
The weights/similarity blocks override the recommendation engine's scoring
policy wholesale when present.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toolscout/toolscout/internal/recommend"
)

// Config represents the root configuration structure.
type Config struct {
	// DataDir is the directory holding the preference database.
	DataDir string `json:"dataDir,omitempty"`

	// CatalogPath optionally points at a catalog JSON file to use instead
	// of the embedded default catalog.
	CatalogPath string `json:"catalogPath,omitempty"`

	// DefaultUser is the user ID assumed when a command has no --user flag.
	DefaultUser string `json:"defaultUser,omitempty"`

	// Limits are the default result counts per surface.
	Limits *Limits `json:"limits,omitempty"`

	// Weights overrides the recommendation scoring policy when set.
	Weights *recommend.Weights `json:"weights,omitempty"`

	// Similarity overrides the similarity scoring policy when set.
	Similarity *recommend.SimilarityWeights `json:"similarity,omitempty"`
}

// Limits holds the default result counts for each ranking surface.
type Limits struct {
	Recommend int `json:"recommend,omitempty"`
	Similar   int `json:"similar,omitempty"`
	Trending  int `json:"trending,omitempty"`
	Category  int `json:"category,omitempty"`
}

// NewConfig creates a configuration with built-in defaults.
func NewConfig() *Config {
	return &Config{
		DefaultUser: "guest",
		Limits: &Limits{
			Recommend: 6,
			Similar:   4,
			Trending:  6,
			Category:  6,
		},
	}
}

// GetDefaultConfigPath returns the path to ~/.toolscout.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".toolscout.json"), nil
}

// ResolveDataDir returns the directory for the preference database,
// defaulting to ~/.toolscout.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".toolscout"), nil
}

// DBPath returns the full path of the preference database.
func (c *Config) DBPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs.db"), nil
}

// EngineWeights returns the configured scoring policy, or the defaults.
func (c *Config) EngineWeights() recommend.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return recommend.DefaultWeights()
}

// SimilarityWeights returns the configured similarity policy, or the defaults.
func (c *Config) SimilarityWeights() recommend.SimilarityWeights {
	if c.Similarity != nil {
		return *c.Similarity
	}
	return recommend.DefaultSimilarityWeights()
}

// ResolveLimits returns the configured limits with defaults filled in for
// missing or non-positive values.
func (c *Config) ResolveLimits() Limits {
	defaults := *NewConfig().Limits
	if c.Limits == nil {
		return defaults
	}

	limits := *c.Limits
	if limits.Recommend <= 0 {
		limits.Recommend = defaults.Recommend
	}
	if limits.Similar <= 0 {
		limits.Similar = defaults.Similar
	}
	if limits.Trending <= 0 {
		limits.Trending = defaults.Trending
	}
	if limits.Category <= 0 {
		limits.Category = defaults.Category
	}
	return limits
}

// User returns the acting user: the explicit flag value if non-empty,
// otherwise the configured default user.
func (c *Config) User(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.DefaultUser != "" {
		return c.DefaultUser
	}
	return "guest"
}
