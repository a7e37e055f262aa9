// MusicFlow - Content-Based Music Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicflow

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/musicflow/docs" // Import generated swagger docs
	"github.com/tomtom215/musicflow/internal/api"
	"github.com/tomtom215/musicflow/internal/config"
	"github.com/tomtom215/musicflow/internal/logging"
	"github.com/tomtom215/musicflow/internal/metrics"
	"github.com/tomtom215/musicflow/internal/supervisor"
	"github.com/tomtom215/musicflow/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const cacheCleanupInterval = time.Minute

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("strategy", cfg.Recommend.Strategy).
		Str("dataset_source", cfg.Dataset.Source).
		Str("dataset_path", cfg.Dataset.Path).
		Msg("Starting MusicFlow with supervisor tree")

	engine, err := initRecommend(cfg, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}
	metrics.SetAppInfo(version, engine.Strategy())

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	handler := api.NewHandler(engine)
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	// Data layer: the HTTP server starts alongside it and answers
	// DATA_NOT_LOADED until the first load completes.
	catalogSvc := services.NewCatalogService(
		newCatalogLoader(&cfg.Dataset, engine),
		services.CatalogServiceConfig{
			RetryInterval:  cfg.Dataset.RetryInterval,
			ReloadInterval: cfg.Dataset.ReloadInterval,
		},
		logging.WithComponent("catalog"),
	)
	tree.AddDataService(catalogSvc)
	if cfg.Recommend.CacheEnabled {
		tree.AddDataService(services.NewCacheJanitorService(engine, cacheCleanupInterval, logging.WithComponent("cache")))
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	go func() {
		select {
		case <-catalogSvc.Loaded():
			status := engine.Status()
			logging.Info().
				Int("rows", status.Shape[0]).
				Int("columns", status.Shape[1]).
				Str("strategy", status.Strategy).
				Msg("Catalog ready, recommendations available")
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// The channel receives exactly one value and is never closed.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
