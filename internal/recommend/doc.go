// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

// Package recommend implements the content-based recommendation engine.
//
// # Architecture
//
// The Engine owns one loaded catalog.Dataset and one Algorithm built over it.
// Two strategies ship in the algorithms subpackage:
//
//   - vector: TF-IDF over a per-track text blob, ranked by cosine similarity,
//     with an optional mood filter
//   - tag: additive attribute score (language, genre, artist, year proximity)
//
// Algorithms return row indices; the engine resolves them to tracks, applies
// top-N defaults and caps, and caches results in an LRU keyed by the
// normalized query.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(),
//	    func() recommend.Algorithm { return algorithms.NewVectorSimilarity() },
//	    logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Load(ctx, catalog.Builtin()); err != nil {
//	    return err
//	}
//	res, err := engine.Recommend(ctx, recommend.Query{Title: "Tum Hi Ho", TopN: 5})
//
// # Thread Safety
//
// Load builds a new model off to the side and swaps it in atomically. Queries
// never block on a reload and always see a consistent dataset/model pair.
// A failed Load leaves the previous model active.
//
// # Errors
//
//   - ErrNotLoaded: no dataset has been loaded yet
//   - ErrNotFound: the query title matched no track
//   - ErrEmptyTitle: the query title is blank
package recommend
