// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/musicflow/internal/logging"
	"github.com/tomtom215/musicflow/internal/recommend"
)

// maxRequestBody caps the recommendation request body.
const maxRequestBody = 64 << 10

// Recommendations returns songs similar to song_title.
//
// @Summary Get song recommendations
// @Description Resolves song_title (exact, then substring, case-insensitive) and ranks similar songs with the active strategy. mood_filter applies to the vector strategy only, after top_n truncation.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Query"
// @Success 200 {object} RecommendationsResponse
// @Failure 400 {object} ErrorResponse "Missing title, top_n above the configured maximum, or invalid body"
// @Failure 404 {object} ErrorResponse "Song not found"
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, msgInvalidBody, err)
		return
	}

	if strings.TrimSpace(req.SongTitle) == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed, msgTitleRequired, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}
	if apiErr := req.checkTopN(h.engine.MaxTopN()); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	res, err := h.engine.Recommend(ctx, recommend.Query{
		Title: req.SongTitle,
		TopN:  req.TopN,
		Mood:  req.MoodFilter,
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("song", sanitizeLogValue(req.SongTitle)).
		Int("results", len(res.Tracks)).
		Bool("cached", res.Cached).
		Msg("Recommendation served")

	respondJSON(w, http.StatusOK, RecommendationsResponse{
		QuerySong:       res.Query,
		Recommendations: res.Tracks,
	})
}
