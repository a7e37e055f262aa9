// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package algorithms

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/recommend"
)

func newBuiltTagScore(t *testing.T, ds *catalog.Dataset) *TagScore {
	t.Helper()
	alg := NewTagScore(recommend.DefaultTagScoreConfig())
	if err := alg.Build(context.Background(), ds); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return alg
}

func titles(ds *catalog.Dataset, rows []int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = ds.At(r).Title
	}
	return out
}

func TestTagScore_Score(t *testing.T) {
	t.Parallel()

	alg := NewTagScore(recommend.DefaultTagScoreConfig())
	base := catalog.Track{Title: "A", Artist: "X", Genre: "Rock", Year: 2000, Language: "English"}

	tests := []struct {
		name  string
		other catalog.Track
		want  float64
	}{
		{"identical", base, 11},
		{"same language only, far year", catalog.Track{Artist: "Y", Genre: "Pop", Year: 1980, Language: "English"}, 5},
		{"genre and artist", catalog.Track{Artist: "X", Genre: "Rock", Year: 1950, Language: "Hindi"}, 5},
		{"year within 5", catalog.Track{Artist: "Y", Genre: "Pop", Year: 2005, Language: "Hindi"}, 1},
		{"year within 10", catalog.Track{Artist: "Y", Genre: "Pop", Year: 1990, Language: "Hindi"}, 0.5},
		{"year beyond 10", catalog.Track{Artist: "Y", Genre: "Pop", Year: 2011, Language: "Hindi"}, 0},
		{"case-sensitive attributes", catalog.Track{Artist: "x", Genre: "rock", Year: 1900, Language: "english"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := alg.Score(base, tt.other); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
			if got := alg.Score(tt.other, base); got != tt.want {
				t.Errorf("Score() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagScore_RecommendBuiltin(t *testing.T) {
	t.Parallel()

	ds := catalog.Builtin()
	alg := newBuiltTagScore(t, ds)

	rows, err := alg.Recommend(context.Background(), recommend.Query{Title: "Tum Hi Ho", TopN: 5})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	want := []string{"Gerua", "Agar Tum Saath Ho", "Kesariya", "Tere Sang Yaara", "Raabta"}
	got := titles(ds, rows)
	if len(got) != len(want) {
		t.Fatalf("got %d results %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTagScore_ExcludesEveryCopyOfQueryTitle(t *testing.T) {
	t.Parallel()

	ds := catalog.Builtin()
	alg := newBuiltTagScore(t, ds)

	rows, err := alg.Recommend(context.Background(), recommend.Query{Title: "tum hi ho", TopN: 100})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	// 56 rows, two of them "Tum Hi Ho".
	if len(rows) != ds.Len()-2 {
		t.Errorf("got %d rows, want %d", len(rows), ds.Len()-2)
	}
	for _, r := range rows {
		if ds.At(r).Title == "Tum Hi Ho" {
			t.Errorf("row %d has the query title", r)
		}
	}
	for i := 1; i < len(rows); i++ {
		prev, cur := alg.Score(ds.At(20), ds.At(rows[i-1])), alg.Score(ds.At(20), ds.At(rows[i]))
		if prev < cur {
			t.Fatalf("results not sorted at %d: %v < %v", i, prev, cur)
		}
		if prev == cur && rows[i-1] > rows[i] {
			t.Fatalf("tie at %d not in dataset order: %d before %d", i, rows[i-1], rows[i])
		}
	}
}

func TestTagScore_TitleExclusionIsCaseSensitive(t *testing.T) {
	t.Parallel()

	ds := catalog.NewDataset([]catalog.Track{
		{Title: "Song", Artist: "A", Genre: "Rock", Year: 2000},
		{Title: "song", Artist: "B", Genre: "Pop", Year: 1900},
		{Title: "Other", Artist: "C", Genre: "Jazz", Year: 1900},
	})
	alg := newBuiltTagScore(t, ds)

	rows, err := alg.Recommend(context.Background(), recommend.Query{Title: "SONG", TopN: 10})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	got := titles(ds, rows)
	if len(got) != 2 || got[0] != "song" || got[1] != "Other" {
		t.Errorf("got %v, want [song Other]", got)
	}
}

func TestTagScore_IgnoresMood(t *testing.T) {
	t.Parallel()

	ds := catalog.NewDataset(catalog.DefaultTracks())
	alg := newBuiltTagScore(t, ds)

	plain, err := alg.Recommend(context.Background(), recommend.Query{Title: "Gerua", TopN: 5})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	filtered, err := alg.Recommend(context.Background(), recommend.Query{Title: "Gerua", TopN: 5, Mood: "Energetic"})
	if err != nil {
		t.Fatalf("Recommend() with mood error = %v", err)
	}
	if len(plain) != len(filtered) {
		t.Fatalf("mood changed result count: %d vs %d", len(plain), len(filtered))
	}
	for i := range plain {
		if plain[i] != filtered[i] {
			t.Errorf("mood changed result[%d]: %d vs %d", i, plain[i], filtered[i])
		}
	}
}

func TestTagScore_Errors(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		alg := newBuiltTagScore(t, catalog.Builtin())
		_, err := alg.Recommend(context.Background(), recommend.Query{Title: "No Such Song", TopN: 5})
		if !errors.Is(err, recommend.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("not built", func(t *testing.T) {
		t.Parallel()
		alg := NewTagScore(recommend.DefaultTagScoreConfig())
		_, err := alg.Recommend(context.Background(), recommend.Query{Title: "Imagine", TopN: 5})
		if !errors.Is(err, recommend.ErrNotLoaded) {
			t.Errorf("err = %v, want ErrNotLoaded", err)
		}
	})

	t.Run("empty dataset", func(t *testing.T) {
		t.Parallel()
		alg := NewTagScore(recommend.DefaultTagScoreConfig())
		if err := alg.Build(context.Background(), catalog.NewDataset(nil)); !errors.Is(err, catalog.ErrEmptyDataset) {
			t.Errorf("err = %v, want ErrEmptyDataset", err)
		}
	})

	t.Run("cancelled build", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		alg := NewTagScore(recommend.DefaultTagScoreConfig())
		if err := alg.Build(ctx, catalog.Builtin()); !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if alg.IsBuilt() {
			t.Error("IsBuilt() = true after cancelled build")
		}
	})
}

func TestTagScore_BuildState(t *testing.T) {
	t.Parallel()

	alg := newBuiltTagScore(t, catalog.Builtin())
	if alg.Name() != StrategyTag {
		t.Errorf("Name() = %q, want %q", alg.Name(), StrategyTag)
	}
	if !alg.IsBuilt() || alg.Version() != 1 || alg.BuiltAt().IsZero() {
		t.Errorf("unexpected build state: built=%v version=%d at=%v", alg.IsBuilt(), alg.Version(), alg.BuiltAt())
	}
}
