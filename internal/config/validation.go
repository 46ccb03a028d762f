package config

import (
	"fmt"
	"os"
)

// Validate checks the configuration for internally inconsistent values.
func (c *Config) Validate() error {
	if c.Limits != nil {
		if err := validateLimit("limits.recommend", c.Limits.Recommend); err != nil {
			return err
		}
		if err := validateLimit("limits.similar", c.Limits.Similar); err != nil {
			return err
		}
		if err := validateLimit("limits.trending", c.Limits.Trending); err != nil {
			return err
		}
		if err := validateLimit("limits.category", c.Limits.Category); err != nil {
			return err
		}
	}

	if c.Weights != nil {
		if c.Weights.RecentViewWindow < 0 {
			return fmt.Errorf("weights.recentViewWindow: must not be negative")
		}
		if c.Weights.HighRatingThreshold < 0 || c.Weights.HighRatingThreshold > 5 {
			return fmt.Errorf("weights.highRatingThreshold: must be within [0, 5]")
		}
	}

	if c.Similarity != nil {
		if c.Similarity.TightBand < 0 || c.Similarity.LooseBand < 0 {
			return fmt.Errorf("similarity bands must not be negative")
		}
		if c.Similarity.TightBand > c.Similarity.LooseBand {
			return fmt.Errorf("similarity.tightBand must not exceed similarity.looseBand")
		}
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("catalogPath: %w", err)
		}
	}

	return nil
}

// validateLimit rejects negative limit values (zero means "use default").
func validateLimit(field string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s: must not be negative", field)
	}
	return nil
}
