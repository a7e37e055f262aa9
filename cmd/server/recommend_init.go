// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomtom215/musicflow/internal/config"
	"github.com/tomtom215/musicflow/internal/recommend"
	"github.com/tomtom215/musicflow/internal/recommend/algorithms"
)

// initRecommend creates the recommendation engine for the configured strategy.
// The engine starts empty; the catalog service loads it.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	factory, err := algorithmFactory(&cfg.Recommend)
	if err != nil {
		return nil, err
	}

	engineCfg := buildEngineConfig(&cfg.Recommend)
	engine, err := recommend.NewEngine(engineCfg, factory, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Str("strategy", engine.Strategy()).
		Int("default_top_n", engineCfg.Limits.DefaultTopN).
		Int("max_top_n", engineCfg.Limits.MaxTopN).
		Bool("cache_enabled", engineCfg.Cache.Enabled).
		Msg("recommendation engine initialized")
	return engine, nil
}

// algorithmFactory maps the strategy name to a constructor.
func algorithmFactory(cfg *config.RecommendConfig) (recommend.AlgorithmFactory, error) {
	switch cfg.Strategy {
	case config.StrategyVector:
		return func() recommend.Algorithm { return algorithms.NewVectorSimilarity() }, nil
	case config.StrategyTag:
		weights := tagScoreWeights(&cfg.TagScore)
		return func() recommend.Algorithm { return algorithms.NewTagScore(weights) }, nil
	default:
		return nil, fmt.Errorf("unknown recommendation strategy %q", cfg.Strategy)
	}
}

// buildEngineConfig creates the engine configuration from app config.
func buildEngineConfig(cfg *config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultTopN: cfg.DefaultTopN,
			MaxTopN:     cfg.MaxTopN,
		},
		Cache: recommend.CacheConfig{
			Enabled: cfg.CacheEnabled,
			Size:    cfg.CacheSize,
			TTL:     cfg.CacheTTL,
		},
		TagScore: tagScoreWeights(&cfg.TagScore),
	}
}

func tagScoreWeights(cfg *config.TagScoreConfig) recommend.TagScoreConfig {
	return recommend.TagScoreConfig{
		LanguageWeight: cfg.LanguageWeight,
		GenreWeight:    cfg.GenreWeight,
		ArtistWeight:   cfg.ArtistWeight,
		NearYearWeight: cfg.NearYearWeight,
		FarYearWeight:  cfg.FarYearWeight,
		NearYearWindow: cfg.NearYearWindow,
		FarYearWindow:  cfg.FarYearWindow,
	}
}
