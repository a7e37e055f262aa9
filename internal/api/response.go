// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/musicflow/internal/catalog"
	"github.com/tomtom215/musicflow/internal/logging"
	"github.com/tomtom215/musicflow/internal/recommend"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a human-readable message.
	Error string `json:"error" example:"Song not found in the dataset"`

	// Code is a machine-readable error code.
	Code string `json:"code" example:"NOT_FOUND"`

	// Details carries per-field validation failures.
	Details interface{} `json:"details,omitempty"`

	// RequestID correlates the response with server logs.
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status     string  `json:"status" example:"healthy"`
	Message    string  `json:"message" example:"Music Recommendation API is running"`
	DataLoaded bool    `json:"data_loaded"`
	DataShape  *[2]int `json:"data_shape,omitempty"`
	Strategy   string  `json:"strategy" example:"vector"`
	Uptime     float64 `json:"uptime_seconds"`

	// Stats are the recommendation counters since startup.
	Stats recommend.Metrics `json:"stats"`
}

// SongsResponse is the body of GET /api/songs.
type SongsResponse struct {
	Songs []catalog.Track `json:"songs"`
}

// RecommendationsResponse is the body of POST /api/recommendations.
type RecommendationsResponse struct {
	QuerySong       string          `json:"query_song" example:"Tum Hi Ho"`
	Recommendations []catalog.Track `json:"recommendations"`
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Results []catalog.Track `json:"results"`
}

// GenresResponse is the body of GET /api/genres.
type GenresResponse struct {
	Genres []string `json:"genres"`
}

// ArtistsResponse is the body of GET /api/artists.
type ArtistsResponse struct {
	Artists []string `json:"artists"`
}

// LanguagesResponse is the body of GET /api/languages.
type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

// MoodsResponse is the body of GET /api/moods.
type MoodsResponse struct {
	Moods []string `json:"moods"`
}

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends an error response. err, when set, is logged but never
// written to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondErrorWithDetails(w, r, status, code, message, nil, err)
}

func respondErrorWithDetails(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}, err error) {
	if err != nil {
		ev := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			ev = logging.Ctx(r.Context()).Error()
		}
		ev.Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Str("path", r.URL.Path).
			Msg("API error")
	}

	respondJSON(w, status, &ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}
