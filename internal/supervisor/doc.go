// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

/*
Package supervisor provides process supervision using suture v4.

# Overview

	RootSupervisor ("musicflow")
	├── DataSupervisor ("data-layer")
	│   ├── CatalogService (initial load with retry, optional periodic reload)
	│   └── CacheJanitorService (expired result eviction)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The HTTP server starts immediately. Requests that arrive before the first
catalog load completes get DATA_NOT_LOADED instead of blocking.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogService(loader, services.CatalogServiceConfig{}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	errCh := tree.ServeBackground(ctx)

Supervisor events (starts, failures, backoff) are logged through the
sutureslog adapter, which writes to zerolog via logging.NewSlogLogger.
*/
package supervisor
