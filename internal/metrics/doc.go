// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
are exposed by the HTTP server at /metrics:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendations_total: Requests by outcome (counter)
    Labels: strategy, outcome (ok, cached, not_found, not_loaded, error)
  - recommendation_duration_seconds: Compute time on cache miss (histogram)
  - recommendation_results: Result list length (histogram)
  - model_build_duration_seconds: Model build time per catalog load (histogram)
  - model_vocabulary_terms: TF-IDF vocabulary size (gauge)

Catalog Metrics:
  - catalog_tracks: Tracks in the loaded catalog (gauge)
  - catalog_loads_total: Load attempts (counter)
    Labels: source (builtin, csv, duckdb), status (success, error)
  - catalog_load_duration_seconds: Load time (histogram)
  - catalog_last_load_timestamp_seconds: Last successful load (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total (counter)
  - cache_entries (gauge)
    Labels: cache_type

System Metrics:
  - app_info: Build information (gauge, always 1)
    Labels: version, go_version, strategy
  - app_start_time_seconds (gauge)

# Usage

	start := time.Now()
	recs, err := engine.Recommend(ctx, q)
	metrics.RecordRecommendation("vector", metrics.OutcomeOK, time.Since(start), len(recs))

# Example Queries

	# Recommendation p95 latency
	histogram_quantile(0.95, rate(recommendation_duration_seconds_bucket[5m]))

	# Cache hit ratio
	sum(rate(cache_hits_total[5m])) /
	(sum(rate(cache_hits_total[5m])) + sum(rate(cache_misses_total[5m])))

	# Unknown-song rate
	rate(recommendations_total{outcome="not_found"}[5m])
*/
package metrics
