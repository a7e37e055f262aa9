// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/musicflow/internal/config"
	"github.com/tomtom215/musicflow/internal/logging"
	"github.com/tomtom215/musicflow/internal/metrics"
)

var (
	// ErrUnknownSource is returned for a dataset source other than builtin, csv or duckdb.
	ErrUnknownSource = errors.New("unknown dataset source")

	// ErrEmptyDataset is returned when a source yields no tracks.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrDuckDBUnavailable is returned by LoadDuckDB in builds without the duckdb tag.
	ErrDuckDBUnavailable = errors.New("duckdb support not compiled (build with -tags duckdb)")
)

// Load reads the dataset described by cfg.
//
// The csv source writes DefaultTracks to a missing file before reading it.
// The duckdb source does the same, then reads the file through DuckDB.
func Load(ctx context.Context, cfg *config.DatasetConfig) (*Dataset, error) {
	log := logging.WithComponent("catalog")
	start := time.Now()

	ds, err := load(ctx, cfg)
	if err == nil && ds.Len() == 0 {
		err = ErrEmptyDataset
	}
	metrics.RecordCatalogLoad(cfg.Source, datasetLen(ds), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", cfg.Source, err)
	}

	shape := ds.Shape()
	log.Info().
		Str("source", cfg.Source).
		Str("path", cfg.Path).
		Int("rows", shape[0]).
		Int("columns", shape[1]).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")
	return ds, nil
}

func load(ctx context.Context, cfg *config.DatasetConfig) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch cfg.Source {
	case config.SourceBuiltin:
		return Builtin(), nil

	case config.SourceCSV:
		ds, created, err := LoadOrCreate(cfg.Path)
		if created {
			logging.Warn().Str("path", cfg.Path).Int("tracks", len(DefaultTracks())).
				Msg("Dataset file missing, wrote default catalog")
		}
		return ds, err

	case config.SourceDuckDB:
		if !DuckDBAvailable {
			return nil, ErrDuckDBUnavailable
		}
		created, err := EnsureFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		if created {
			logging.Warn().Str("path", cfg.Path).Int("tracks", len(DefaultTracks())).
				Msg("Dataset file missing, wrote default catalog")
		}
		return LoadDuckDB(ctx, cfg.Path)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

func datasetLen(ds *Dataset) int {
	if ds == nil {
		return 0
	}
	return ds.Len()
}
