// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

// Package services provides suture.Service wrappers for the long-running
// parts of the server.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
//   - CatalogService: initial dataset load with retry, optional periodic reload
//   - CacheJanitorService: periodic eviction of expired cached results
//
// All return ctx.Err() on shutdown, which suture treats as a clean stop.
package services
