// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package config

import "time"

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: override any setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Dataset sources.
const (
	SourceBuiltin = "builtin"
	SourceCSV     = "csv"
	SourceDuckDB  = "duckdb"
)

// DatasetConfig selects where the track catalog is read from.
type DatasetConfig struct {
	// Source is one of builtin, csv, duckdb.
	Source string `koanf:"source"`

	// Path is the CSV file for the csv and duckdb sources. It is created with
	// the default catalog when missing.
	Path string `koanf:"path"`

	// ReloadInterval re-reads the source periodically. Zero disables reloads.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// RetryInterval is the wait between failed initial load attempts.
	RetryInterval time.Duration `koanf:"retry_interval"`
}

// Recommendation strategies.
const (
	StrategyVector = "vector"
	StrategyTag    = "tag"
)

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// Strategy is vector (TF-IDF cosine) or tag (weighted attribute matching).
	Strategy string `koanf:"strategy"`

	DefaultTopN int `koanf:"default_top_n"`
	MaxTopN     int `koanf:"max_top_n"`

	CacheEnabled bool          `koanf:"cache_enabled"`
	CacheSize    int           `koanf:"cache_size"`
	CacheTTL     time.Duration `koanf:"cache_ttl"`

	TagScore TagScoreConfig `koanf:"tag_score"`
}

// TagScoreConfig holds the additive weights of the tag strategy.
type TagScoreConfig struct {
	LanguageWeight float64 `koanf:"language_weight"`
	GenreWeight    float64 `koanf:"genre_weight"`
	ArtistWeight   float64 `koanf:"artist_weight"`
	NearYearWeight float64 `koanf:"near_year_weight"`
	FarYearWeight  float64 `koanf:"far_year_weight"`
	NearYearWindow int     `koanf:"near_year_window"`
	FarYearWindow  int     `koanf:"far_year_window"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings passed to logging.Init.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
