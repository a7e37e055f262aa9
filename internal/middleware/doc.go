// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package middleware provides HTTP middleware shared by the API router.

PrometheusMetrics instruments every /api request with the collectors from
the metrics package. It is a standard func(http.Handler) http.Handler and is
mounted with chi's r.Use:

	r.Route("/api", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Use(rateLimiter)
	    r.Get("/songs", h.Songs)
	})

Endpoint labels use the matched chi route pattern, so /api/search?q=love and
/api/search?q=rock share one series.
*/
package middleware
