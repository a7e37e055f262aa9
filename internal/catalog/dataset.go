// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package catalog

import "strings"

// Dataset is an ordered, read-only sequence of tracks. Track identity is the
// row index. A Dataset is never mutated after construction and is safe for
// concurrent use.
type Dataset struct {
	tracks      []Track
	lowerTitles []string

	genres    []string
	artists   []string
	languages []string
	moods     []string

	hasMood bool
}

// NewDataset copies tracks, fills missing language and mood, and precomputes
// the lookup tables. HasMood reports whether any input row carried a mood
// before the defaults were applied.
func NewDataset(tracks []Track) *Dataset {
	d := &Dataset{
		tracks:      make([]Track, len(tracks)),
		lowerTitles: make([]string, len(tracks)),
	}
	for i, t := range tracks {
		if strings.TrimSpace(t.Mood) != "" {
			d.hasMood = true
		}
		t = t.withDefaults()
		d.tracks[i] = t
		d.lowerTitles[i] = strings.ToLower(t.Title)
	}

	d.genres = distinct(d.tracks, func(t Track) string { return t.Genre })
	d.artists = distinct(d.tracks, func(t Track) string { return t.Artist })
	d.languages = distinct(d.tracks, func(t Track) string { return t.Language })
	d.moods = distinct(d.tracks, func(t Track) string { return t.Mood })
	return d
}

// Len returns the number of tracks.
func (d *Dataset) Len() int { return len(d.tracks) }

// At returns the track at row i. It panics when i is out of range.
func (d *Dataset) At(i int) Track { return d.tracks[i] }

// Tracks returns a copy of every track in dataset order.
func (d *Dataset) Tracks() []Track {
	out := make([]Track, len(d.tracks))
	copy(out, d.tracks)
	return out
}

// HasMood reports whether the source supplied moods. When false every mood
// is DefaultMood.
func (d *Dataset) HasMood() bool { return d.hasMood }

// Shape returns [rows, columns].
func (d *Dataset) Shape() [2]int {
	return [2]int{len(d.tracks), len(Columns)}
}

// Resolve finds the row for a title: the first case-insensitive exact match,
// else the first row whose title contains title case-insensitively.
func (d *Dataset) Resolve(title string) (int, bool) {
	q := strings.ToLower(title)
	for i, t := range d.lowerTitles {
		if t == q {
			return i, true
		}
	}
	for i, t := range d.lowerTitles {
		if strings.Contains(t, q) {
			return i, true
		}
	}
	return -1, false
}

// Search returns tracks whose title or artist contains q, case-insensitively,
// in dataset order. The result is never nil.
func (d *Dataset) Search(q string) []Track {
	q = strings.ToLower(q)
	out := make([]Track, 0)
	for i, t := range d.tracks {
		if strings.Contains(d.lowerTitles[i], q) || strings.Contains(strings.ToLower(t.Artist), q) {
			out = append(out, t)
		}
	}
	return out
}

// Genres returns the distinct genres in first-seen order.
func (d *Dataset) Genres() []string { return clone(d.genres) }

// Artists returns the distinct artists in first-seen order.
func (d *Dataset) Artists() []string { return clone(d.artists) }

// Languages returns the distinct languages in first-seen order.
func (d *Dataset) Languages() []string { return clone(d.languages) }

// Moods returns the distinct moods in first-seen order.
func (d *Dataset) Moods() []string { return clone(d.moods) }

func distinct(tracks []Track, field func(Track) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, t := range tracks {
		v := field(t)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
