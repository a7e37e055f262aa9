// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"fmt"

	"github.com/tomtom215/musicflow/internal/validation"
)

// RecommendRequest is the body of POST /api/recommendations.
//
// Fields:
//   - SongTitle: title to find similar songs for (required, not blank)
//   - TopN: number of results; 0 or absent selects the configured default,
//     and the upper bound is recommend.max_top_n
//   - MoodFilter: keep only results with this mood (vector strategy only)
type RecommendRequest struct {
	SongTitle  string `json:"song_title" validate:"required,notblank,max=200" example:"Tum Hi Ho"`
	TopN       int    `json:"top_n" validate:"min=0" example:"10"`
	MoodFilter string `json:"mood_filter,omitempty" validate:"max=50" example:"Romantic"`
}

// checkTopN rejects a TopN above maxTopN with the same payload the
// validator produces for a max rule.
func (req *RecommendRequest) checkTopN(maxTopN int) *validation.APIError {
	if req.TopN <= maxTopN {
		return nil
	}
	return &validation.APIError{
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("top_n must be at most %d", maxTopN),
		Details: map[string]interface{}{
			"field": "top_n",
			"tag":   "max",
		},
	}
}

// SearchRequest holds the query parameters of GET /api/search.
type SearchRequest struct {
	Query string `json:"q" validate:"required,max=200"`
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *validation.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}
