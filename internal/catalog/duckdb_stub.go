// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

//go:build !duckdb

package catalog

import "context"

// DuckDBAvailable reports whether the DuckDB loader is compiled in.
const DuckDBAvailable = false

// LoadDuckDB is a stub for builds without DuckDB (build with -tags duckdb).
func LoadDuckDB(_ context.Context, _ string) (*Dataset, error) {
	return nil, ErrDuckDBUnavailable
}
