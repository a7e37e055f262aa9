// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package main

import (
	"context"

	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/config"
	"github.com/tomtom215/musicflow/internal/recommend"
)

// catalogLoader reads the configured dataset and publishes it to the engine.
// It implements services.CatalogLoader.
type catalogLoader struct {
	cfg    *config.DatasetConfig
	engine *recommend.Engine
}

func newCatalogLoader(cfg *config.DatasetConfig, engine *recommend.Engine) *catalogLoader {
	return &catalogLoader{cfg: cfg, engine: engine}
}

// Reload loads the dataset and rebuilds the engine's model. On failure the
// engine keeps serving its previous snapshot.
func (l *catalogLoader) Reload(ctx context.Context) error {
	ds, err := catalog.Load(ctx, l.cfg)
	if err != nil {
		return err
	}
	return l.engine.Load(ctx, ds)
}
