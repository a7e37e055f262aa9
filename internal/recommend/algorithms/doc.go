// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

// Package algorithms implements the recommendation strategies used by the
// recommend engine.
//
// Each algorithm implements the recommend.Algorithm interface: it is built
// once over a catalog.Dataset and then answers queries with ranked row
// indices.
//
// # Strategies
//
// VectorSimilarity ("vector"):
//   - Document per track: "genre artist title language mood"
//   - Tokens: lowercase runs of two or more letters, digits or underscores,
//     English stop words removed
//   - Weights: raw term count times smoothed IDF, ln((1+n)/(1+df)) + 1,
//     each row L2-normalized
//   - Ranking: cosine similarity from a precomputed n×n matrix; the first
//     ranked row is dropped, then top-N, then the optional mood filter
//
// TagScore ("tag"):
//   - Score: +5 same language, +3 same genre, +2 same artist, +1 when years
//     are within 5, else +0.5 within 10 (weights configurable)
//   - Every row sharing the query track's exact title is excluded
//   - Mood is ignored
//
// Both strategies break score ties by dataset order.
//
// # Thread Safety
//
// Build takes an exclusive lock; queries take a shared lock. The engine
// builds a fresh instance per load, so in practice queries never contend
// with a build.
package algorithms
