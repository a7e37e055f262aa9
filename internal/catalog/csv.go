// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ReadCSV parses tracks from r. The first record is the header; columns are
// matched by name, so their order is free. language and mood are optional.
func ReadCSV(r io.Reader) ([]Track, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	field := func(rec []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var tracks []Track
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line, _ := cr.FieldPos(0)

		year, err := parseYear(field(rec, ColumnYear))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tracks = append(tracks, Track{
			Title:    field(rec, ColumnTitle),
			Artist:   field(rec, ColumnArtist),
			Genre:    field(rec, ColumnGenre),
			Year:     year,
			Language: field(rec, ColumnLanguage),
			Mood:     field(rec, ColumnMood),
		}.withDefaults())
	}
	return tracks, nil
}

// parseYear accepts integers and integral floats ("1975.0").
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty year")
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(f), nil
}

// LoadCSV reads a dataset from a CSV file.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	tracks, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return NewDataset(tracks), nil
}

// WriteCSV writes tracks with the full header. The file is written to a
// temporary sibling and renamed into place.
func WriteCSV(path string, tracks []Track) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dataset-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range tracks {
		t = t.withDefaults()
		rec := []string{t.Title, t.Artist, t.Genre, strconv.Itoa(t.Year), t.Language, t.Mood}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename dataset: %w", err)
	}
	return nil
}

// LoadOrCreate loads path, first writing DefaultTracks to it when the file
// does not exist. created reports whether the file was written.
func LoadOrCreate(path string) (ds *Dataset, created bool, err error) {
	created, err = EnsureFile(path)
	if err != nil {
		return nil, false, err
	}
	ds, err = LoadCSV(path)
	if err != nil {
		return nil, created, err
	}
	return ds, created, nil
}

// EnsureFile writes DefaultTracks to path, creating parent directories, when
// the file does not exist. It reports whether the file was written.
func EnsureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat dataset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("create dataset directory: %w", err)
		}
	}
	if err := WriteCSV(path, DefaultTracks()); err != nil {
		return false, err
	}
	return true, nil
}
