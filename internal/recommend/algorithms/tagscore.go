// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package algorithms

import (
	"context"

	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/recommend"
)

// StrategyTag is the name of the tag-score strategy.
const StrategyTag = "tag"

// TagScore ranks tracks by an additive score over shared attributes.
// It does not support mood filtering; Query.Mood is ignored.
type TagScore struct {
	BaseAlgorithm
	weights recommend.TagScoreConfig
}

// NewTagScore creates a tag-score algorithm with the given weights.
func NewTagScore(weights recommend.TagScoreConfig) *TagScore {
	return &TagScore{
		BaseAlgorithm: NewBaseAlgorithm(StrategyTag),
		weights:       weights,
	}
}

// Build binds the dataset. There is no model to precompute.
func (t *TagScore) Build(ctx context.Context, ds *catalog.Dataset) error {
	if ContextCancelled(ctx) {
		return ctx.Err()
	}
	if ds == nil || ds.Len() == 0 {
		return catalog.ErrEmptyDataset
	}

	t.acquireBuildLock()
	defer t.releaseBuildLock()
	t.markBuilt(ds)
	return nil
}

// Score returns the similarity of b to a. It is symmetric.
func (t *TagScore) Score(a, b catalog.Track) float64 {
	var s float64
	if a.Language == b.Language {
		s += t.weights.LanguageWeight
	}
	if a.Genre == b.Genre {
		s += t.weights.GenreWeight
	}
	if a.Artist == b.Artist {
		s += t.weights.ArtistWeight
	}

	diff := a.Year - b.Year
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= t.weights.NearYearWindow:
		s += t.weights.NearYearWeight
	case diff <= t.weights.FarYearWindow:
		s += t.weights.FarYearWeight
	}
	return s
}

// Recommend scores every track whose title differs from the query track's
// title (case-sensitive) and returns the top q.TopN rows.
func (t *TagScore) Recommend(ctx context.Context, q recommend.Query) ([]int, error) {
	t.acquireQueryLock()
	defer t.releaseQueryLock()

	idx, err := t.resolve(q.Title)
	if err != nil {
		return nil, err
	}
	ds := t.dataset
	target := ds.At(idx)

	rows := make([]int, 0, ds.Len())
	scores := make([]float64, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		tr := ds.At(i)
		if tr.Title == target.Title {
			continue
		}
		scores[i] = t.Score(target, tr)
		rows = append(rows, i)
	}
	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	rankDescending(rows, func(i int) float64 { return scores[i] })
	return truncate(rows, q.TopN), nil
}
