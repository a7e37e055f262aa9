// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package algorithms

import (
	"context"
	"math"
	"strings"

	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/recommend"
)

// StrategyVector is the name of the TF-IDF vector strategy.
const StrategyVector = "vector"

// similarityScale is the resolution similarities are rounded to. Cosines of
// equally weighted documents can differ in the last bits depending on
// summation order; rounding makes them compare equal so ties keep dataset
// order.
const similarityScale = 1e12

// VectorSimilarity ranks tracks by cosine similarity of TF-IDF vectors built
// from each track's genre, artist, title, language and, when the dataset has
// moods, mood. The full pairwise similarity matrix is computed at build time.
type VectorSimilarity struct {
	BaseAlgorithm

	n      int
	matrix []float64 // row-major n×n
	vocab  int
}

// NewVectorSimilarity creates an unbuilt vector-similarity algorithm.
func NewVectorSimilarity() *VectorSimilarity {
	return &VectorSimilarity{
		BaseAlgorithm: NewBaseAlgorithm(StrategyVector),
	}
}

// Document returns the text blob vectorized for t. The mood is left out
// unless withMood is set.
func Document(t catalog.Track, withMood bool) string {
	fields := []string{t.Genre, t.Artist, t.Title, t.Language}
	if withMood {
		fields = append(fields, t.Mood)
	}
	return strings.Join(fields, " ")
}

// Build fits the vectorizer and computes the similarity matrix.
func (v *VectorSimilarity) Build(ctx context.Context, ds *catalog.Dataset) error {
	if ContextCancelled(ctx) {
		return ctx.Err()
	}
	if ds == nil || ds.Len() == 0 {
		return catalog.ErrEmptyDataset
	}

	n := ds.Len()
	docs := make([]string, n)
	for i := 0; i < n; i++ {
		docs[i] = Document(ds.At(i), ds.HasMood())
	}

	model, err := fitTFIDF(docs)
	if err != nil {
		return err
	}

	matrix := make([]float64, n*n)
	for i := 0; i < n; i++ {
		if ContextCancelled(ctx) {
			return ctx.Err()
		}
		matrix[i*n+i] = 1
		for j := i + 1; j < n; j++ {
			s := math.Round(model.vectors[i].dot(model.vectors[j])*similarityScale) / similarityScale
			if s > 1 {
				s = 1
			}
			matrix[i*n+j] = s
			matrix[j*n+i] = s
		}
	}

	v.acquireBuildLock()
	defer v.releaseBuildLock()
	v.n = n
	v.matrix = matrix
	v.vocab = len(model.vocabulary)
	v.markBuilt(ds)
	return nil
}

// VocabularySize returns the number of distinct terms in the fitted model.
func (v *VectorSimilarity) VocabularySize() int {
	v.acquireQueryLock()
	defer v.releaseQueryLock()
	return v.vocab
}

// Similarity returns the cosine similarity of rows i and j.
func (v *VectorSimilarity) Similarity(i, j int) float64 {
	v.acquireQueryLock()
	defer v.releaseQueryLock()
	return v.matrix[i*v.n+j]
}

// Recommend ranks all rows by similarity to the query row, drops the first
// ranked entry (normally the query itself), keeps q.TopN, and then applies
// the mood filter. A mood filter can therefore return fewer than q.TopN rows.
func (v *VectorSimilarity) Recommend(ctx context.Context, q recommend.Query) ([]int, error) {
	v.acquireQueryLock()
	defer v.releaseQueryLock()

	idx, err := v.resolve(q.Title)
	if err != nil {
		return nil, err
	}
	if ContextCancelled(ctx) {
		return nil, ctx.Err()
	}

	row := v.matrix[idx*v.n : (idx+1)*v.n]
	rows := make([]int, v.n)
	for i := range rows {
		rows[i] = i
	}
	rankDescending(rows, func(i int) float64 { return row[i] })

	rows = truncate(rows[1:], q.TopN)
	if q.Mood == "" {
		return rows, nil
	}

	out := make([]int, 0, len(rows))
	for _, r := range rows {
		if strings.EqualFold(v.dataset.At(r).Mood, q.Mood) {
			out = append(out, r)
		}
	}
	return out, nil
}
