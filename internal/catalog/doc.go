// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package catalog holds the track dataset the recommender works on.

A Dataset is built once and never changes. Rows are identified by position:
titles repeat in the sample data, and lookups resolve to the first match.

# Sources

	builtin  56 in-memory tracks, no mood column (every track is "Happy")
	csv      a flat file; created with DefaultTracks when missing
	duckdb   the same file read through DuckDB read_csv_auto (-tags duckdb)

CSV files need the columns track_name, artist_name, genre and year in any
order. language and mood are optional and default to "English" and "Happy"
when the column is absent or a cell is empty.

# Lookups

	ds, err := catalog.Load(ctx, &cfg.Dataset)
	i, ok := ds.Resolve("tum hi ho")   // exact (case-insensitive), then substring
	hits := ds.Search("beatles")       // title or artist substring
	genres := ds.Genres()              // distinct, first-seen order
*/
package catalog
