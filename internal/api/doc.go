// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package api provides the HTTP interface of the recommendation service.

# Endpoints

All JSON, under /api:

	GET  /api/health           service status, data_loaded, data_shape, strategy
	GET  /api/songs            every track
	POST /api/recommendations  {song_title, top_n?, mood_filter?}
	GET  /api/search?q=        title or artist substring match
	GET  /api/genres           distinct genres
	GET  /api/artists          distinct artists
	GET  /api/languages        distinct languages
	GET  /api/moods            distinct moods (vector strategy only)

Outside /api: GET /metrics (Prometheus) and GET /swagger/* (Swagger UI).

# Middleware

Global: request ID with logging context, RealIP, request logging, panic
recovery, CORS. The /api group adds Prometheus metrics, per-IP rate limiting
via go-chi/httprate, and security headers.

# Errors

Every error body has the shape

	{"error": "Song not found in the dataset", "code": "NOT_FOUND", "request_id": "..."}

Status mapping: unknown song 404 NOT_FOUND; missing title, missing query, bad
JSON or out-of-range top_n 400 (VALIDATION_FAILED or BAD_REQUEST); dataset
not loaded 500 DATA_NOT_LOADED; anything else 500 INTERNAL_ERROR.
*/
package api
