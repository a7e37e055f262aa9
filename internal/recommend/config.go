// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package recommend

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains request limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`

	// TagScore contains the weights of the tag strategy.
	TagScore TagScoreConfig `json:"tag_score"`
}

// LimitsConfig bounds result counts.
type LimitsConfig struct {
	// DefaultTopN applies when a query does not set TopN.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps TopN.
	MaxTopN int `json:"max_top_n"`
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Size    int           `json:"size"`
	TTL     time.Duration `json:"ttl"`
}

// TagScoreConfig holds the additive weights of the tag strategy.
type TagScoreConfig struct {
	LanguageWeight float64 `json:"language_weight"`
	GenreWeight    float64 `json:"genre_weight"`
	ArtistWeight   float64 `json:"artist_weight"`

	// NearYearWeight is added when release years differ by at most
	// NearYearWindow; otherwise FarYearWeight when within FarYearWindow.
	NearYearWeight float64 `json:"near_year_weight"`
	FarYearWeight  float64 `json:"far_year_weight"`
	NearYearWindow int     `json:"near_year_window"`
	FarYearWindow  int     `json:"far_year_window"`
}

// MaxScore returns the score of a track against itself.
func (c TagScoreConfig) MaxScore() float64 {
	return c.LanguageWeight + c.GenreWeight + c.ArtistWeight + c.NearYearWeight
}

// DefaultTagScoreConfig returns the 5/3/2/1/0.5 weighting.
func DefaultTagScoreConfig() TagScoreConfig {
	return TagScoreConfig{
		LanguageWeight: 5,
		GenreWeight:    3,
		ArtistWeight:   2,
		NearYearWeight: 1,
		FarYearWeight:  0.5,
		NearYearWindow: 5,
		FarYearWindow:  10,
	}
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultTopN: 10,
			MaxTopN:     100,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    1000,
			TTL:     5 * time.Minute,
		},
		TagScore: DefaultTagScoreConfig(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Limits.DefaultTopN < 1 {
		errs = append(errs, fmt.Errorf("limits.default_top_n must be at least 1, got %d", c.Limits.DefaultTopN))
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		errs = append(errs, fmt.Errorf("limits.max_top_n (%d) must be >= limits.default_top_n (%d)",
			c.Limits.MaxTopN, c.Limits.DefaultTopN))
	}
	if c.Cache.Enabled {
		if c.Cache.Size < 1 {
			errs = append(errs, fmt.Errorf("cache.size must be at least 1, got %d", c.Cache.Size))
		}
		if c.Cache.TTL <= 0 {
			errs = append(errs, fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL))
		}
	}

	t := c.TagScore
	if t.LanguageWeight < 0 || t.GenreWeight < 0 || t.ArtistWeight < 0 || t.NearYearWeight < 0 || t.FarYearWeight < 0 {
		errs = append(errs, errors.New("tag_score weights must not be negative"))
	}
	if t.NearYearWindow < 0 || t.FarYearWindow < t.NearYearWindow {
		errs = append(errs, fmt.Errorf("tag_score year windows invalid: near=%d far=%d", t.NearYearWindow, t.FarYearWindow))
	}

	return errors.Join(errs...)
}
