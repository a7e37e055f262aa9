// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

// Package main provides the MusicFlow HTTP server
//
// @title MusicFlow API
// @version 1.0
// @description Content-based music recommendations over a small in-memory track catalog.
// @description
// @description ## Strategies
// @description
// @description - **vector** (default): TF-IDF over genre, artist, title, language and mood with a precomputed cosine similarity matrix
// @description - **tag**: additive attribute matching (language 5, genre 3, artist 2, year within 5 = 1, within 10 = 0.5)
// @description
// @description The `/moods` endpoint is only registered for the vector strategy.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on `/api`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": "Song not found in the dataset",
// @description   "code": "NOT_FOUND",
// @description   "request_id": "a1b2c3"
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/musicflow/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api
// @schemes http https
//
// @tag.name Core
// @tag.description Health and data status
//
// @tag.name Catalog
// @tag.description Track listing, search and distinct field values
//
// @tag.name Recommendations
// @tag.description Similar-song recommendations
package main
