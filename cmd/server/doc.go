// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package main is the entry point for the MusicFlow server.

MusicFlow recommends songs similar to a given title using either a TF-IDF
vector strategy or a weighted tag strategy, and serves the catalog over a
small JSON API.

# Application Architecture

	RootSupervisor ("musicflow")
	├── DataSupervisor ("data-layer")
	│   ├── Catalog service (load with retry, optional reload)
	│   └── Cache janitor (when the result cache is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Engine: strategy chosen by RECOMMEND_STRATEGY, empty until loaded
 4. Router: chi with CORS, rate limiting, request IDs and Prometheus metrics
 5. Supervisor tree: catalog service and HTTP server start together

Requests that arrive before the first catalog load return DATA_NOT_LOADED.

# Configuration

	HTTP_PORT=5000                 # HTTP server port
	RECOMMEND_STRATEGY=vector      # vector or tag
	DATASET_SOURCE=csv             # builtin, csv or duckdb
	DATASET_PATH=music_data.csv    # created with the default catalog when missing
	DATASET_RELOAD_INTERVAL=0      # periodic reload, 0 disables
	LOG_LEVEL=info                 # trace, debug, info, warn, error
	LOG_FORMAT=json                # json or console

# Build Tags

	go build ./cmd/server                # builtin and csv sources
	go build -tags duckdb ./cmd/server   # adds the duckdb source

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and waits up to HTTP_SHUTDOWN_TIMEOUT for in-flight requests.
*/
package main
