// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/musicflow/internal/catalog"
)

var (
	// ErrNotFound is returned when no track matches the query title.
	ErrNotFound = errors.New("song not found in the dataset")

	// ErrNotLoaded is returned for queries issued before a dataset is loaded.
	ErrNotLoaded = errors.New("data not loaded")

	// ErrEmptyTitle is returned for a blank query title.
	ErrEmptyTitle = errors.New("song title is required")
)

// Query is one recommendation request.
type Query struct {
	// Title is matched case-insensitively: exact first, then substring.
	Title string

	// TopN is the maximum number of results. Zero or negative selects the
	// configured default; larger values are capped at the configured maximum.
	TopN int

	// Mood, when non-empty, keeps only results with that mood
	// (case-insensitive). Strategies that do not support it ignore it.
	Mood string
}

// Result is the outcome of a successful query.
type Result struct {
	// Query echoes the title as given by the caller.
	Query string

	// Tracks are the recommendations in ranked order.
	Tracks []catalog.Track

	// Strategy names the algorithm that produced the result.
	Strategy string

	// Cached reports whether the result came from the result cache.
	Cached bool
}

// Algorithm is a recommendation strategy over one immutable dataset.
//
// Build is called exactly once, before any Recommend call, by the engine.
// A built algorithm is read-only and must be safe for concurrent Recommend calls.
type Algorithm interface {
	// Name returns the strategy identifier ("vector", "tag").
	Name() string

	// Build prepares the model for ds.
	Build(ctx context.Context, ds *catalog.Dataset) error

	// Recommend returns ranked row indices into the built dataset.
	// q.TopN is always positive. Returns ErrNotFound for unknown titles.
	Recommend(ctx context.Context, q Query) ([]int, error)
}

// AlgorithmFactory creates an unbuilt Algorithm. The engine calls it once per load.
type AlgorithmFactory func() Algorithm

// Status describes the engine's loaded state.
type Status struct {
	Loaded   bool      `json:"data_loaded"`
	Shape    [2]int    `json:"data_shape"`
	Strategy string    `json:"strategy"`
	LoadedAt time.Time `json:"loaded_at"`
	Loads    int64     `json:"loads"`
}

// Metrics contains engine counters.
type Metrics struct {
	Requests    int64   `json:"requests"`
	CacheHits   int64   `json:"cache_hits"`
	CacheMisses int64   `json:"cache_misses"`
	NotFound    int64   `json:"not_found"`
	Errors      int64   `json:"errors"`
	HitRate     float64 `json:"cache_hit_rate"`
}
