// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package config loads MusicFlow configuration with Koanf v2.

Sources are layered, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/musicflow/config.yaml
 3. Environment variables

# Environment Variables

	HTTP_PORT / PORT          listen port (default: 5000)
	HTTP_HOST                 bind address (default: 0.0.0.0)
	HTTP_TIMEOUT              read/write timeout (default: 30s)
	DATASET_SOURCE            builtin, csv, duckdb (default: csv)
	DATASET_PATH              CSV catalog path (default: music_data.csv)
	RECOMMEND_STRATEGY        vector, tag (default: vector)
	RECOMMEND_DEFAULT_TOP_N   default result count (default: 10)
	RECOMMEND_MAX_TOP_N       upper bound for top_n (default: 100)
	RECOMMEND_CACHE_ENABLED   cache recommendation results (default: true)
	CORS_ORIGINS              comma-separated allowed origins (default: *)
	RATE_LIMIT_REQUESTS       requests per window per IP (default: 100)
	LOG_LEVEL / LOG_FORMAT    see package logging

Validate is called by Load and rejects unknown strategies, sources and log
levels before the server starts.
*/
package config
