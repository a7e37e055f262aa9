// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package algorithms

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/recommend"
)

// BaseAlgorithm provides common functionality for all algorithms.
type BaseAlgorithm struct {
	name    string
	built   bool
	version int
	builtAt time.Time
	dataset *catalog.Dataset
	mu      sync.RWMutex
}

// NewBaseAlgorithm creates a new base algorithm with the given name.
func NewBaseAlgorithm(name string) BaseAlgorithm {
	return BaseAlgorithm{
		name: name,
	}
}

// Name returns the algorithm identifier.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// IsBuilt returns whether Build has completed.
func (b *BaseAlgorithm) IsBuilt() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.built
}

// Version returns how many times the model was built.
func (b *BaseAlgorithm) Version() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// BuiltAt returns when the model was last built.
func (b *BaseAlgorithm) BuiltAt() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.builtAt
}

// markBuilt records ds as the model's dataset.
// Must be called while holding the build lock.
func (b *BaseAlgorithm) markBuilt(ds *catalog.Dataset) {
	b.dataset = ds
	b.built = true
	b.version++
	b.builtAt = time.Now()
}

func (b *BaseAlgorithm) acquireBuildLock() { b.mu.Lock() }
func (b *BaseAlgorithm) releaseBuildLock() { b.mu.Unlock() }
func (b *BaseAlgorithm) acquireQueryLock() { b.mu.RLock() }
func (b *BaseAlgorithm) releaseQueryLock() { b.mu.RUnlock() }

// resolve maps a query title to its dataset row.
// Must be called while holding the query lock.
func (b *BaseAlgorithm) resolve(title string) (int, error) {
	if !b.built {
		return -1, recommend.ErrNotLoaded
	}
	idx, ok := b.dataset.Resolve(title)
	if !ok {
		return -1, recommend.ErrNotFound
	}
	return idx, nil
}

// rankDescending orders rows by score, highest first. Equal scores keep
// their input order.
func rankDescending(rows []int, score func(int) float64) {
	slices.SortStableFunc(rows, func(a, b int) int {
		return cmp.Compare(score(b), score(a))
	})
}

// truncate returns at most n leading rows.
func truncate(rows []int, n int) []int {
	if n >= 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

// Ensure all algorithms implement the interface.
var (
	_ recommend.Algorithm       = (*TagScore)(nil)
	_ recommend.Algorithm       = (*VectorSimilarity)(nil)
	_ recommend.VocabularySizer = (*VectorSimilarity)(nil)
)

// ContextCancelled checks if the context has been canceled.
func ContextCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
