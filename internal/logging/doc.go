// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

// Package logging provides the zerolog-based structured logger used across MusicFlow.
//
// A single global logger is configured once from main via Init and read from
// everywhere else through the level helpers or component loggers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("tracks", n).Msg("Catalog loaded")
//
//	log := logging.WithComponent("catalog")
//	log.Warn().Str("path", p).Msg("Dataset file missing, writing defaults")
//
// # Request Context
//
// The HTTP layer stores a request ID and a short correlation ID on the request
// context. Ctx(ctx) returns a logger that carries both fields:
//
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
//
// # slog Adapter
//
// Suture reports supervisor events through sutureslog, which needs an
// *slog.Logger. NewSlogLogger bridges those events into zerolog.
//
// # Configuration
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  true, false (default: false)
//
// Always terminate event chains with Msg or Send; an unterminated chain is never written.
package logging
