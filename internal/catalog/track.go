// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package catalog

import "strings"

// Defaults applied to tracks whose language or mood is missing.
const (
	DefaultLanguage = "English"
	DefaultMood     = "Happy"
)

// Column names of the backing CSV file, in write order.
const (
	ColumnTitle    = "track_name"
	ColumnArtist   = "artist_name"
	ColumnGenre    = "genre"
	ColumnYear     = "year"
	ColumnLanguage = "language"
	ColumnMood     = "mood"
)

// Columns lists every CSV column in the order WriteCSV emits them.
var Columns = []string{ColumnTitle, ColumnArtist, ColumnGenre, ColumnYear, ColumnLanguage, ColumnMood}

// requiredColumns must be present in any CSV header.
var requiredColumns = []string{ColumnTitle, ColumnArtist, ColumnGenre, ColumnYear}

// Track is one song metadata record. Titles are not unique.
type Track struct {
	Title    string `json:"track_name"`
	Artist   string `json:"artist_name"`
	Genre    string `json:"genre"`
	Year     int    `json:"year"`
	Language string `json:"language"`
	Mood     string `json:"mood"`
}

// withDefaults fills an empty language or mood.
func (t Track) withDefaults() Track {
	if strings.TrimSpace(t.Language) == "" {
		t.Language = DefaultLanguage
	}
	if strings.TrimSpace(t.Mood) == "" {
		t.Mood = DefaultMood
	}
	return t
}
