// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/config"
	"github.com/tomtom215/musicflow/internal/recommend"
	"github.com/tomtom215/musicflow/internal/recommend/algorithms"
)

func testConfig(strategy string) *config.Config {
	return &config.Config{
		Dataset: config.DatasetConfig{Source: config.SourceBuiltin},
		Recommend: config.RecommendConfig{
			Strategy:     strategy,
			DefaultTopN:  10,
			MaxTopN:      100,
			CacheEnabled: true,
			CacheSize:    100,
			CacheTTL:     time.Minute,
			TagScore: config.TagScoreConfig{
				LanguageWeight: 5,
				GenreWeight:    3,
				ArtistWeight:   2,
				NearYearWeight: 1,
				FarYearWeight:  0.5,
				NearYearWindow: 5,
				FarYearWindow:  10,
			},
		},
	}
}

func TestAlgorithmFactory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		strategy string
		want     string
		wantErr  bool
	}{
		{config.StrategyVector, algorithms.StrategyVector, false},
		{config.StrategyTag, algorithms.StrategyTag, false},
		{"collaborative", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(tt.strategy)
			factory, err := algorithmFactory(&cfg.Recommend)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown strategy")
				}
				return
			}
			if err != nil {
				t.Fatalf("algorithmFactory() error = %v", err)
			}
			if got := factory().Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEngineConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.StrategyTag)
	cfg.Recommend.DefaultTopN = 7
	cfg.Recommend.TagScore.GenreWeight = 4

	got := buildEngineConfig(&cfg.Recommend)
	if got.Limits.DefaultTopN != 7 || got.Limits.MaxTopN != 100 {
		t.Errorf("Limits = %+v", got.Limits)
	}
	if !got.Cache.Enabled || got.Cache.Size != 100 || got.Cache.TTL != time.Minute {
		t.Errorf("Cache = %+v", got.Cache)
	}
	if got.TagScore.GenreWeight != 4 || got.TagScore.LanguageWeight != 5 {
		t.Errorf("TagScore = %+v", got.TagScore)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestInitRecommend_UnknownStrategy(t *testing.T) {
	t.Parallel()

	if _, err := initRecommend(testConfig("random"), zerolog.Nop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestCatalogLoader_Reload(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.StrategyTag)
	engine, err := initRecommend(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}

	if _, err := engine.Dataset(); !errors.Is(err, recommend.ErrNotLoaded) {
		t.Fatalf("Dataset() before load = %v, want ErrNotLoaded", err)
	}

	loader := newCatalogLoader(&cfg.Dataset, engine)
	if err := loader.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	status := engine.Status()
	if !status.Loaded || status.Shape != [2]int{56, 6} {
		t.Errorf("Status() = %+v, want loaded builtin dataset", status)
	}
	if status.Strategy != algorithms.StrategyTag {
		t.Errorf("Strategy = %q", status.Strategy)
	}
}

func TestCatalogLoader_CSVBootstrap(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.StrategyVector)
	cfg.Dataset = config.DatasetConfig{
		Source: config.SourceCSV,
		Path:   filepath.Join(t.TempDir(), "music_data.csv"),
	}
	engine, err := initRecommend(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}

	if err := newCatalogLoader(&cfg.Dataset, engine).Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if got := engine.Status().Shape[0]; got != len(catalog.DefaultTracks()) {
		t.Errorf("rows = %d, want %d", got, len(catalog.DefaultTracks()))
	}
}

func TestCatalogLoader_FailureKeepsSnapshot(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.StrategyVector)
	engine, err := initRecommend(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("initRecommend() error = %v", err)
	}
	if err := newCatalogLoader(&cfg.Dataset, engine).Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	bad := config.DatasetConfig{Source: "parquet"}
	err = newCatalogLoader(&bad, engine).Reload(context.Background())
	if !errors.Is(err, catalog.ErrUnknownSource) {
		t.Fatalf("Reload() error = %v, want ErrUnknownSource", err)
	}
	if got := engine.Status().Shape[0]; got != 56 {
		t.Errorf("rows after failed reload = %d, want 56", got)
	}
}
