// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package validation

import (
	"strings"
	"testing"
)

type testRequest struct {
	Title string `json:"song_title" validate:"required,notblank,max=20"`
	TopN  int    `json:"top_n" validate:"min=0,max=100"`
	Mood  string `json:"mood_filter,omitempty" validate:"omitempty,max=10"`
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil {
		t.Fatal("GetValidator() = nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     testRequest
		wantErr   bool
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid request",
			input: testRequest{Title: "Imagine", TopN: 5},
		},
		{
			name:  "zero top_n is allowed",
			input: testRequest{Title: "Imagine"},
		},
		{
			name:      "missing title",
			input:     testRequest{TopN: 5},
			wantErr:   true,
			wantField: "song_title",
			wantMsg:   "song_title is required",
		},
		{
			name:      "blank title",
			input:     testRequest{Title: "   "},
			wantErr:   true,
			wantField: "song_title",
			wantMsg:   "song_title is required",
		},
		{
			name:      "title too long",
			input:     testRequest{Title: strings.Repeat("a", 21)},
			wantErr:   true,
			wantField: "song_title",
			wantMsg:   "song_title must be at most 20 characters",
		},
		{
			name:      "top_n above max",
			input:     testRequest{Title: "Imagine", TopN: 101},
			wantErr:   true,
			wantField: "top_n",
			wantMsg:   "top_n must be at most 100",
		},
		{
			name:      "negative top_n",
			input:     testRequest{Title: "Imagine", TopN: -1},
			wantErr:   true,
			wantField: "top_n",
			wantMsg:   "top_n must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.input)
			if !tt.wantErr {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("len(Errors()) = %d, want 1", len(errs))
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single error", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&testRequest{}).ToAPIError()
		if apiErr.Code != "VALIDATION_FAILED" {
			t.Errorf("Code = %q, want VALIDATION_FAILED", apiErr.Code)
		}
		if apiErr.Message != "song_title is required" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "song_title" {
			t.Errorf("Details[field] = %v, want song_title", apiErr.Details["field"])
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		t.Parallel()
		apiErr := ValidateStruct(&testRequest{TopN: 500, Mood: "extremely-happy"}).ToAPIError()
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 3 {
			t.Fatalf("Details[fields] = %v, want 3 entries", apiErr.Details["fields"])
		}
		if !strings.Contains(apiErr.Message, "top_n must be at most 100") {
			t.Errorf("Message = %q, want top_n failure", apiErr.Message)
		}
	})
}
