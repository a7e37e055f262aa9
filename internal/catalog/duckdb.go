// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

//go:build duckdb

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDBAvailable reports whether the DuckDB loader is compiled in.
const DuckDBAvailable = true

// duckDBDSN opens an in-memory database without touching the network for extensions.
const duckDBDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

// LoadDuckDB reads the CSV at path through DuckDB's read_csv_auto. A missing
// language column, and empty cells in it, become DefaultLanguage. Mood is
// read as-is so NewDataset can tell whether the source had any.
func LoadDuckDB(ctx context.Context, path string) (*Dataset, error) {
	db, err := sql.Open("duckdb", duckDBDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	// One connection keeps the view visible to every statement.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get duckdb connection: %w", err)
	}
	defer conn.Close()

	createView := fmt.Sprintf(
		"CREATE VIEW tracks AS SELECT * FROM read_csv_auto(%s, header = true, all_varchar = true)",
		quoteLiteral(path))
	if _, err := conn.ExecContext(ctx, createView); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	columns, err := viewColumns(ctx, conn)
	if err != nil {
		return nil, err
	}
	for _, col := range requiredColumns {
		if !columns[col] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	query := fmt.Sprintf(`SELECT
		COALESCE(TRIM(track_name), ''),
		COALESCE(TRIM(artist_name), ''),
		COALESCE(TRIM(genre), ''),
		COALESCE(TRIM(year), ''),
		%s,
		%s
	FROM tracks`,
		optionalColumn(columns, ColumnLanguage, DefaultLanguage),
		optionalColumn(columns, ColumnMood, ""))

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		var year string
		if err := rows.Scan(&t.Title, &t.Artist, &t.Genre, &year, &t.Language, &t.Mood); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		if t.Year, err = parseYear(year); err != nil {
			return nil, fmt.Errorf("row %d: %w", len(tracks)+1, err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracks: %w", err)
	}
	return NewDataset(tracks), nil
}

func viewColumns(ctx context.Context, conn *sql.Conn) (map[string]bool, error) {
	rows, err := conn.QueryContext(ctx,
		"SELECT column_name FROM information_schema.columns WHERE table_name = 'tracks'")
	if err != nil {
		return nil, fmt.Errorf("failed to describe tracks: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		columns[strings.ToLower(name)] = true
	}
	return columns, rows.Err()
}

// optionalColumn selects col with def for NULL or blank cells, or the
// constant def when the column is absent.
func optionalColumn(columns map[string]bool, col, def string) string {
	if !columns[col] {
		return quoteLiteral(def)
	}
	return fmt.Sprintf("COALESCE(NULLIF(TRIM(%s), ''), %s)", col, quoteLiteral(def))
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
