// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/musicflow/internal/config"
	"github.com/tomtom215/musicflow/internal/middleware"
	"github.com/tomtom215/musicflow/internal/recommend/algorithms"
)

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil security config uses the middleware defaults.
func NewRouter(handler *Handler, security *config.SecurityConfig) *Router {
	var chiMw *ChiMiddleware
	if security == nil {
		chiMw = NewChiMiddleware(nil)
	} else {
		chiMw = NewChiMiddlewareFromSecurity(
			security.CORSOrigins,
			security.RateLimitReqs,
			security.RateLimitWindow,
			security.RateLimitDisabled,
		)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())      // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(RequestLogger())             // One log line per request
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgRouteNotFound, nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, msgMethodNotAllowed, nil)
	})

	// ========================
	// API Endpoints
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics) // first, so throttled requests are counted
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Get("/health", router.handler.Health)
		r.Get("/songs", router.handler.Songs)
		r.Post("/recommendations", router.handler.Recommendations)
		r.Get("/search", router.handler.Search)
		r.Get("/genres", router.handler.Genres)
		r.Get("/artists", router.handler.Artists)
		r.Get("/languages", router.handler.Languages)

		// Only the vector strategy reads moods.
		if router.handler.engine.Strategy() == algorithms.StrategyVector {
			r.Get("/moods", router.handler.Moods)
		}
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
