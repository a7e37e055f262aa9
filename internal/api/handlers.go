// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"time"

	"github.com/tomtom215/musicflow/internal/recommend"
)

// recommendTimeout bounds a single recommendation query.
const recommendTimeout = 10 * time.Second

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: health endpoint
//   - handlers_catalog.go: songs, search, and facet listings
//   - handlers_recommend.go: recommendations
type Handler struct {
	engine    *recommend.Engine
	startTime time.Time
}

// NewHandler creates a handler serving queries from engine.
//
// Example:
//
//	handler := api.NewHandler(engine)
//	router := api.NewRouter(handler, &cfg.Security)
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(engine *recommend.Engine) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
}
