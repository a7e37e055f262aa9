// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"net/http"
	"time"
)

// Health handles health check requests. It always answers 200; data_loaded
// tells whether the catalog is ready.
//
// @Summary Get service health
// @Description Reports whether the catalog is loaded, its shape, the active strategy and recommendation counters
// @Tags Core
// @Produce json
// @Success 200 {object} HealthResponse "Service is running"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.engine.Status()

	resp := HealthResponse{
		Status:     "healthy",
		Message:    "Music Recommendation API is running",
		DataLoaded: st.Loaded,
		Strategy:   st.Strategy,
		Uptime:     time.Since(h.startTime).Seconds(),
		Stats:      h.engine.Metrics(),
	}
	if st.Loaded {
		shape := st.Shape
		resp.DataShape = &shape
	}

	respondJSON(w, http.StatusOK, resp)
}
