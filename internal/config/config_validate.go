// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDataset() error {
	if c.Dataset.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must not be negative")
	}
	if c.Dataset.RetryInterval <= 0 {
		return fmt.Errorf("DATASET_RETRY_INTERVAL must be positive")
	}
	switch c.Dataset.Source {
	case SourceBuiltin:
		return nil
	case SourceCSV, SourceDuckDB:
		if strings.TrimSpace(c.Dataset.Path) == "" {
			return fmt.Errorf("DATASET_PATH is required when DATASET_SOURCE=%s", c.Dataset.Source)
		}
		return nil
	default:
		return fmt.Errorf("DATASET_SOURCE must be one of: builtin, csv, duckdb")
	}
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.Strategy != StrategyVector && r.Strategy != StrategyTag {
		return fmt.Errorf("RECOMMEND_STRATEGY must be one of: vector, tag")
	}
	if r.DefaultTopN < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_N must be at least 1")
	}
	if r.MaxTopN < r.DefaultTopN {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N (%d) must be >= RECOMMEND_DEFAULT_TOP_N (%d)", r.MaxTopN, r.DefaultTopN)
	}
	if r.CacheEnabled {
		if r.CacheSize < 1 {
			return fmt.Errorf("RECOMMEND_CACHE_SIZE must be at least 1 when caching is enabled")
		}
		if r.CacheTTL <= 0 {
			return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled")
		}
	}
	if r.Strategy == StrategyTag {
		return c.validateTagScore()
	}
	return nil
}

func (c *Config) validateTagScore() error {
	t := c.Recommend.TagScore
	for name, w := range map[string]float64{
		"TAG_LANGUAGE_WEIGHT":  t.LanguageWeight,
		"TAG_GENRE_WEIGHT":     t.GenreWeight,
		"TAG_ARTIST_WEIGHT":    t.ArtistWeight,
		"TAG_NEAR_YEAR_WEIGHT": t.NearYearWeight,
		"TAG_FAR_YEAR_WEIGHT":  t.FarYearWeight,
	} {
		if w < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if t.NearYearWindow < 0 || t.FarYearWindow < t.NearYearWindow {
		return fmt.Errorf("TAG_FAR_YEAR_WINDOW must be >= TAG_NEAR_YEAR_WINDOW >= 0")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
