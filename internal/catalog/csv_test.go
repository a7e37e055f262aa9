// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/musicflow/internal/config"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Track
		wantErr error
		errText string
	}{
		{
			name:  "full header",
			input: "track_name,artist_name,genre,year,language,mood\nImagine,John Lennon,Pop,1971,English,Calm\n",
			want:  []Track{{Title: "Imagine", Artist: "John Lennon", Genre: "Pop", Year: 1971, Language: "English", Mood: "Calm"}},
		},
		{
			name:  "missing optional columns are backfilled",
			input: "track_name,artist_name,genre,year\nGerua,Arijit Singh,Bollywood,2015\n",
			want:  []Track{{Title: "Gerua", Artist: "Arijit Singh", Genre: "Bollywood", Year: 2015, Language: "English", Mood: "Happy"}},
		},
		{
			name:  "columns in any order with empty cells",
			input: "year,mood,genre,artist_name,track_name,language\n1975,,Rock,Queen,Bohemian Rhapsody,\n",
			want:  []Track{{Title: "Bohemian Rhapsody", Artist: "Queen", Genre: "Rock", Year: 1975, Language: "English", Mood: "Happy"}},
		},
		{
			name:  "quoted fields and float year",
			input: "track_name,artist_name,genre,year\n\"Jatt & Juliet, Pt. 1\",Diljit Dosanjh,Punjabi Pop,2012.0\n",
			want:  []Track{{Title: "Jatt & Juliet, Pt. 1", Artist: "Diljit Dosanjh", Genre: "Punjabi Pop", Year: 2012, Language: "English", Mood: "Happy"}},
		},
		{
			name:    "missing required column",
			input:   "track_name,artist_name,year\nImagine,John Lennon,1971\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "malformed year names the line",
			input:   "track_name,artist_name,genre,year\nImagine,John Lennon,Pop,1971\nHelp!,The Beatles,Pop,sixties\n",
			errText: "line 3",
		},
		{
			name:    "empty input",
			input:   "",
			errText: "read header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil || tt.errText != "" {
				if err == nil {
					t.Fatal("ReadCSV() error = nil, want error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadCSV() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("ReadCSV() error = %v, want it to contain %q", err, tt.errText)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadCSV() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadCSV() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tracks.csv")

	if err := WriteCSV(path, DefaultTracks()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "track_name,artist_name,genre,year,language,mood\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}

	ds, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if !reflect.DeepEqual(ds.Tracks(), DefaultTracks()) {
		t.Error("round-tripped tracks differ from DefaultTracks()")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestLoadOrCreate(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "music_data.csv")

	ds, created, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	if !created {
		t.Error("created = false for missing file")
	}
	if ds.Len() != 41 {
		t.Errorf("Len() = %d, want 41", ds.Len())
	}

	_, created, err = LoadOrCreate(path)
	if err != nil {
		t.Fatalf("second LoadOrCreate() error = %v", err)
	}
	if created {
		t.Error("created = true for existing file")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("builtin", func(t *testing.T) {
		t.Parallel()
		ds, err := Load(context.Background(), &config.DatasetConfig{Source: config.SourceBuiltin})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if ds.Len() != 56 {
			t.Errorf("Len() = %d, want 56", ds.Len())
		}
	})

	t.Run("csv creates default file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "music_data.csv")
		ds, err := Load(context.Background(), &config.DatasetConfig{Source: config.SourceCSV, Path: path})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if ds.Len() != 41 {
			t.Errorf("Len() = %d, want 41", ds.Len())
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("dataset file not created: %v", err)
		}
	})

	t.Run("csv header only is empty", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "empty.csv")
		if err := os.WriteFile(path, []byte("track_name,artist_name,genre,year\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := Load(context.Background(), &config.DatasetConfig{Source: config.SourceCSV, Path: path})
		if !errors.Is(err, ErrEmptyDataset) {
			t.Errorf("Load() error = %v, want ErrEmptyDataset", err)
		}
	})

	t.Run("unknown source", func(t *testing.T) {
		t.Parallel()
		_, err := Load(context.Background(), &config.DatasetConfig{Source: "parquet"})
		if !errors.Is(err, ErrUnknownSource) {
			t.Errorf("Load() error = %v, want ErrUnknownSource", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Load(ctx, &config.DatasetConfig{Source: config.SourceBuiltin})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Load() error = %v, want context.Canceled", err)
		}
	})
}
