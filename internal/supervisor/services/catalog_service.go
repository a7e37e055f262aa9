// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CatalogLoader reads the configured dataset and publishes it to the engine.
type CatalogLoader interface {
	Reload(ctx context.Context) error
}

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	// RetryInterval is the wait between failed initial loads. Default: 30s.
	RetryInterval time.Duration

	// ReloadInterval re-reads the dataset periodically once loaded.
	// Zero disables reloads.
	ReloadInterval time.Duration

	// LoadTimeout bounds a single load. Default: 5m.
	LoadTimeout time.Duration
}

// CatalogService loads the catalog at startup and optionally reloads it.
//
// The initial load is retried until it succeeds. A failed reload is logged
// and the previous snapshot stays active. Serve only returns on shutdown, so
// load failures never trigger supervisor backoff.
type CatalogService struct {
	loader CatalogLoader
	config CatalogServiceConfig
	logger zerolog.Logger
	name   string
	loaded chan struct{}
}

// NewCatalogService creates a catalog service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogService(loader CatalogLoader, cfg CatalogServiceConfig, logger zerolog.Logger) *CatalogService {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 30 * time.Second
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 5 * time.Minute
	}
	return &CatalogService{
		loader: loader,
		config: cfg,
		logger: logger.With().Str("service", "catalog").Logger(),
		name:   "catalog-service",
		loaded: make(chan struct{}),
	}
}

// Loaded is closed after the first successful load.
func (s *CatalogService) Loaded() <-chan struct{} {
	return s.loaded
}

// Serve implements suture.Service.
func (s *CatalogService) Serve(ctx context.Context) error {
	if !s.isLoaded() {
		if err := s.initialLoad(ctx); err != nil {
			return err
		}
	}

	if s.config.ReloadInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog service shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := s.load(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("catalog reload failed, keeping previous dataset")
			}
		}
	}
}

func (s *CatalogService) initialLoad(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		err := s.load(ctx)
		if err == nil {
			close(s.loaded)
			return nil
		}
		s.logger.Error().Err(err).
			Int("attempt", attempt).
			Dur("retry_in", s.config.RetryInterval).
			Msg("initial catalog load failed")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.config.RetryInterval):
		}
	}
}

func (s *CatalogService) load(ctx context.Context) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()
	return s.loader.Reload(loadCtx)
}

func (s *CatalogService) isLoaded() bool {
	select {
	case <-s.loaded:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer for suture's logs.
func (s *CatalogService) String() string {
	return s.name
}
