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

// CacheCleaner drops expired cache entries and reports how many it removed.
type CacheCleaner interface {
	CleanupCache() int
}

// CacheJanitorService periodically evicts expired recommendation results.
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor. A non-positive interval defaults to 1m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := j.cleaner.CleanupCache(); n > 0 {
				j.logger.Debug().Int("evicted", n).Msg("expired cache entries removed")
			}
		}
	}
}

// String implements fmt.Stringer for suture's logs.
func (j *CacheJanitorService) String() string {
	return j.name
}
