// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

// Package validation wraps go-playground/validator v10 for request structs.
//
// A single validator instance is shared process-wide. Field names in error
// messages use the json tag, so a missing song title is reported as
// "song_title is required" rather than "SongTitle is required".
//
//	type RecommendRequest struct {
//	    SongTitle string `json:"song_title" validate:"required,notblank,max=200"`
//	    TopN      int    `json:"top_n" validate:"min=0"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code and apiErr.Message
//	}
package validation
