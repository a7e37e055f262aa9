// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/musicflow/internal/cache"
	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/metrics"
)

// cacheType labels the result cache in Prometheus metrics.
const cacheType = "recommendations"

// VocabularySizer is implemented by algorithms that build a term vocabulary.
type VocabularySizer interface {
	VocabularySize() int
}

// snapshot is one loaded dataset with the algorithm built over it.
// It is replaced atomically on reload and never mutated.
type snapshot struct {
	dataset   *catalog.Dataset
	algorithm Algorithm
	loadedAt  time.Time
}

// Engine serves recommendation queries against the most recently loaded
// dataset. It is safe for concurrent use; Load may run while queries are in
// flight, which keep using the previous snapshot.
type Engine struct {
	config  *Config
	factory AlgorithmFactory
	name    string
	logger  zerolog.Logger

	current atomic.Pointer[snapshot]
	loadMu  sync.Mutex
	loads   atomic.Int64

	cache *cache.LRUCache[[]catalog.Track]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	notFound     atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates an engine that builds algorithms with factory.
// A nil cfg selects DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, factory AlgorithmFactory, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if factory == nil {
		return nil, errors.New("algorithm factory is required")
	}

	e := &Engine{
		config:  cfg,
		factory: factory,
		name:    factory().Name(),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRUCache[[]catalog.Track](cfg.Cache.Size, cfg.Cache.TTL)
	}
	return e, nil
}

// Strategy returns the name of the configured algorithm.
func (e *Engine) Strategy() string {
	return e.name
}

// Load builds a fresh algorithm over ds and publishes it. On failure the
// previously loaded snapshot, if any, stays active.
func (e *Engine) Load(ctx context.Context, ds *catalog.Dataset) error {
	if ds == nil || ds.Len() == 0 {
		return catalog.ErrEmptyDataset
	}

	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	alg := e.factory()
	start := time.Now()
	if err := alg.Build(ctx, ds); err != nil {
		e.logger.Error().Err(err).
			Str("strategy", alg.Name()).
			Int("tracks", ds.Len()).
			Msg("model build failed")
		return fmt.Errorf("build %s model: %w", alg.Name(), err)
	}
	elapsed := time.Since(start)

	vocab := -1
	if vs, ok := alg.(VocabularySizer); ok {
		vocab = vs.VocabularySize()
	}
	metrics.RecordModelBuild(alg.Name(), elapsed, vocab)

	e.current.Store(&snapshot{dataset: ds, algorithm: alg, loadedAt: time.Now()})
	e.loads.Add(1)
	if e.cache != nil {
		e.cache.Clear()
		metrics.UpdateCacheSize(cacheType, 0)
	}

	e.logger.Info().
		Str("strategy", alg.Name()).
		Int("tracks", ds.Len()).
		Int("vocabulary", vocab).
		Dur("duration", elapsed).
		Msg("model built")
	return nil
}

// Recommend answers q against the current snapshot.
func (e *Engine) Recommend(ctx context.Context, q Query) (*Result, error) {
	start := time.Now()
	e.requestCount.Add(1)

	res, err := e.recommend(ctx, q)

	outcome := metrics.OutcomeFor(err, ErrNotFound, ErrNotLoaded)
	n := 0
	if res != nil {
		n = len(res.Tracks)
		if res.Cached {
			outcome = metrics.OutcomeCached
		}
	}
	metrics.RecordRecommendation(e.name, outcome, time.Since(start), n)

	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		e.notFound.Add(1)
	case errors.Is(err, ErrNotLoaded), errors.Is(err, ErrEmptyTitle):
	default:
		e.errorCount.Add(1)
		e.logger.Error().Err(err).Str("title", q.Title).Msg("recommendation failed")
	}
	return res, err
}

func (e *Engine) recommend(ctx context.Context, q Query) (*Result, error) {
	snap := e.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	if strings.TrimSpace(q.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q.TopN = e.clampTopN(q.TopN)
	key := cacheKey(e.name, q)

	if e.cache != nil {
		if tracks, ok := e.cache.Get(key); ok {
			e.cacheHits.Add(1)
			metrics.RecordCacheLookup(cacheType, true)
			return &Result{Query: q.Title, Tracks: cloneTracks(tracks), Strategy: e.name, Cached: true}, nil
		}
		e.cacheMisses.Add(1)
		metrics.RecordCacheLookup(cacheType, false)
	}

	rows, err := snap.algorithm.Recommend(ctx, q)
	if err != nil {
		return nil, err
	}

	tracks := make([]catalog.Track, len(rows))
	for i, r := range rows {
		tracks[i] = snap.dataset.At(r)
	}

	// Skip caching when a reload landed mid-query.
	if e.cache != nil && e.current.Load() == snap {
		e.cache.Add(key, cloneTracks(tracks))
		metrics.UpdateCacheSize(cacheType, e.cache.Len())
	}

	return &Result{Query: q.Title, Tracks: tracks, Strategy: e.name}, nil
}

// MaxTopN returns the largest result count a query may ask for.
func (e *Engine) MaxTopN() int {
	return e.config.Limits.MaxTopN
}

func (e *Engine) clampTopN(n int) int {
	if n <= 0 {
		return e.config.Limits.DefaultTopN
	}
	if n > e.config.Limits.MaxTopN {
		return e.config.Limits.MaxTopN
	}
	return n
}

// cacheKey identifies a normalized query. Title and mood are folded because
// both are matched case-insensitively.
func cacheKey(strategy string, q Query) string {
	var b strings.Builder
	b.Grow(len(strategy) + len(q.Title) + len(q.Mood) + 8)
	b.WriteString(strategy)
	b.WriteByte('|')
	b.WriteString(strings.ToLower(q.Title))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(q.TopN))
	b.WriteByte('|')
	b.WriteString(strings.ToLower(q.Mood))
	return b.String()
}

func cloneTracks(in []catalog.Track) []catalog.Track {
	out := make([]catalog.Track, len(in))
	copy(out, in)
	return out
}

// Dataset returns the loaded dataset or ErrNotLoaded.
func (e *Engine) Dataset() (*catalog.Dataset, error) {
	snap := e.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.dataset, nil
}

// Status reports whether data is loaded and its shape.
func (e *Engine) Status() Status {
	st := Status{Strategy: e.name, Loads: e.loads.Load()}
	if snap := e.current.Load(); snap != nil {
		st.Loaded = true
		st.Shape = snap.dataset.Shape()
		st.LoadedAt = snap.loadedAt
	}
	return st
}

// Metrics returns a snapshot of the engine counters.
func (e *Engine) Metrics() Metrics {
	m := Metrics{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		NotFound:    e.notFound.Load(),
		Errors:      e.errorCount.Load(),
	}
	if total := m.CacheHits + m.CacheMisses; total > 0 {
		m.HitRate = float64(m.CacheHits) / float64(total)
	}
	return m
}

// CleanupCache drops expired cache entries and returns how many were removed.
func (e *Engine) CleanupCache() int {
	if e.cache == nil {
		return 0
	}
	n := e.cache.CleanupExpired()
	metrics.UpdateCacheSize(cacheType, e.cache.Len())
	return n
}
