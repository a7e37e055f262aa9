// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"net/http"

	"github.com/tomtom215/musicflow/internal/catalog"
)

// dataset returns the loaded dataset or writes the error response.
func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) (*catalog.Dataset, bool) {
	ds, err := h.engine.Dataset()
	if err != nil {
		respondEngineError(w, r, err)
		return nil, false
	}
	return ds, true
}

// Songs lists every track in dataset order.
//
// @Summary List all songs
// @Tags Catalog
// @Produce json
// @Success 200 {object} SongsResponse
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /songs [get]
func (h *Handler) Songs(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, SongsResponse{Songs: ds.Tracks()})
}

// Search finds tracks whose title or artist contains q, case-insensitively.
// q is matched literally, surrounding whitespace included.
//
// @Summary Search songs
// @Tags Catalog
// @Produce json
// @Param q query string true "Substring of title or artist"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse "Missing query"
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	req := SearchRequest{Query: r.URL.Query().Get("q")}
	if req.Query == "" {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidationFailed, msgQueryRequired, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondErrorWithDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ds, ok := h.dataset(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, SearchResponse{Results: ds.Search(req.Query)})
}

// Genres lists distinct genres.
//
// @Summary List genres
// @Tags Catalog
// @Produce json
// @Success 200 {object} GenresResponse
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	if ds, ok := h.dataset(w, r); ok {
		respondJSON(w, http.StatusOK, GenresResponse{Genres: ds.Genres()})
	}
}

// Artists lists distinct artists.
//
// @Summary List artists
// @Tags Catalog
// @Produce json
// @Success 200 {object} ArtistsResponse
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /artists [get]
func (h *Handler) Artists(w http.ResponseWriter, r *http.Request) {
	if ds, ok := h.dataset(w, r); ok {
		respondJSON(w, http.StatusOK, ArtistsResponse{Artists: ds.Artists()})
	}
}

// Languages lists distinct languages.
//
// @Summary List languages
// @Tags Catalog
// @Produce json
// @Success 200 {object} LanguagesResponse
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /languages [get]
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	if ds, ok := h.dataset(w, r); ok {
		respondJSON(w, http.StatusOK, LanguagesResponse{Languages: ds.Languages()})
	}
}

// Moods lists distinct moods. Only routed for the vector strategy.
//
// @Summary List moods
// @Tags Catalog
// @Produce json
// @Success 200 {object} MoodsResponse
// @Failure 500 {object} ErrorResponse "Data not loaded"
// @Router /moods [get]
func (h *Handler) Moods(w http.ResponseWriter, r *http.Request) {
	if ds, ok := h.dataset(w, r); ok {
		respondJSON(w, http.StatusOK, MoodsResponse{Moods: ds.Moods()})
	}
}
