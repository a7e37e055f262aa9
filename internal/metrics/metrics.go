// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package metrics

import (
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by strategy and outcome",
		},
		[]string{"strategy", "outcome"}, // "ok", "cached", "not_found", "not_loaded", "error"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent computing recommendations (cache misses only)",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"strategy"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"strategy"},
	)

	// Model Metrics
	ModelBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_build_duration_seconds",
			Help:    "Time spent building a recommendation model from the catalog",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"strategy"},
	)

	ModelVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_vocabulary_terms",
			Help: "Number of distinct terms in the TF-IDF vocabulary",
		},
	)

	// Catalog Metrics
	CatalogTracks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_tracks",
			Help: "Number of tracks in the loaded catalog",
		},
	)

	CatalogLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Total number of catalog load attempts",
		},
		[]string{"source", "status"}, // status: "success", "error"
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"source"},
	)

	CatalogLastLoad = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_load_timestamp_seconds",
			Help: "Unix timestamp of the last successful catalog load",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version", "strategy"},
	)

	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_start_time_seconds",
			Help: "Unix timestamp at which the process started serving",
		},
	)
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeOK        = "ok"
	OutcomeCached    = "cached"
	OutcomeNotFound  = "not_found"
	OutcomeNotLoaded = "not_loaded"
	OutcomeError     = "error"
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one recommendation request. duration and
// results are only observed for computed (non-cached, successful) results.
func RecordRecommendation(strategy, outcome string, duration time.Duration, results int) {
	RecommendationsTotal.WithLabelValues(strategy, outcome).Inc()
	switch outcome {
	case OutcomeOK:
		RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
		RecommendationResults.WithLabelValues(strategy).Observe(float64(results))
	case OutcomeCached:
		RecommendationResults.WithLabelValues(strategy).Observe(float64(results))
	}
}

// RecordModelBuild records how long a strategy took to build its model.
// vocabulary is ignored when negative (strategies without a vocabulary).
func RecordModelBuild(strategy string, duration time.Duration, vocabulary int) {
	ModelBuildDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if vocabulary >= 0 {
		ModelVocabularySize.Set(float64(vocabulary))
	}
}

// RecordCatalogLoad records a catalog load attempt.
func RecordCatalogLoad(source string, tracks int, duration time.Duration, err error) {
	CatalogLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		CatalogLoadsTotal.WithLabelValues(source, "error").Inc()
		return
	}
	CatalogLoadsTotal.WithLabelValues(source, "success").Inc()
	CatalogTracks.Set(float64(tracks))
	CatalogLastLoad.Set(float64(time.Now().Unix()))
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// UpdateCacheSize sets the entry gauge for the named cache.
func UpdateCacheSize(cacheType string, size int) {
	CacheSize.WithLabelValues(cacheType).Set(float64(size))
}

// SetAppInfo publishes build information and the start time.
func SetAppInfo(version, strategy string) {
	AppInfo.WithLabelValues(version, runtime.Version(), strategy).Set(1)
	AppStartTime.Set(float64(time.Now().Unix()))
}

// OutcomeFor maps an error from the recommendation engine to an outcome label.
// The sentinel errors are passed in to keep this package free of engine imports.
func OutcomeFor(err, notFound, notLoaded error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, notFound):
		return OutcomeNotFound
	case errors.Is(err, notLoaded):
		return OutcomeNotLoaded
	default:
		return OutcomeError
	}
}
