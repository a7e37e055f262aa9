// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/musicflow/internal/recommend"
)

// Error codes for API responses
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeDataNotLoaded    = "DATA_NOT_LOADED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Client-facing messages.
const (
	msgSongNotFound     = "Song not found in the dataset"
	msgTitleRequired    = "Song title is required"
	msgQueryRequired    = "Search query is required"
	msgDataNotLoaded    = "Data not loaded"
	msgInvalidBody      = "Invalid request body"
	msgInternalError    = "Internal server error"
	msgRouteNotFound    = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
)

// respondEngineError maps engine errors onto HTTP responses:
// not found → 404, blank title → 400, not loaded and anything else → 500.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgSongNotFound, nil)
	case errors.Is(err, recommend.ErrEmptyTitle):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed, msgTitleRequired, nil)
	case errors.Is(err, recommend.ErrNotLoaded):
		respondError(w, r, http.StatusInternalServerError, ErrCodeDataNotLoaded, msgDataNotLoaded, err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, msgInternalError, err)
	}
}
