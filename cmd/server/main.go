// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/bytewise/internal/api"
	"github.com/tomtom215/bytewise/internal/catalog"
	"github.com/tomtom215/bytewise/internal/config"
	"github.com/tomtom215/bytewise/internal/logging"
	"github.com/tomtom215/bytewise/internal/metrics"
	"github.com/tomtom215/bytewise/internal/recommend"
	"github.com/tomtom215/bytewise/internal/state"
	"github.com/tomtom215/bytewise/internal/supervisor"
	"github.com/tomtom215/bytewise/internal/supervisor/services"
	"github.com/tomtom215/bytewise/internal/timeofday"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().Str("config", cfg.String()).Msg("Starting Bytewise with supervisor tree")

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED")
	}
	if cfg.Storage.InMemory {
		logging.Warn().Msg("State store is in memory; sessions are lost on restart")
	}

	store, err := state.Open(state.Options{
		Path:            cfg.Storage.Path,
		InMemory:        cfg.Storage.InMemory,
		SyncWrites:      cfg.Storage.SyncWrites,
		CatalogCacheTTL: cfg.Storage.CatalogCacheTTL,
	}, logging.WithComponent("state"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open state store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing state store")
		}
	}()
	logging.Info().Msg("State store opened")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the gauge from whatever catalog survived the last run.
	if items, err := store.LoadCatalog(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to read stored catalog")
	} else {
		metrics.SetCatalogItems(len(items))
	}

	categorizer := timeofday.NewCategorizer(cfg.TimeOfDay.Thresholds())
	normalizer := catalog.NewNormalizer(categorizer, logging.Logger())
	orchestrator := recommend.NewOrchestrator(cfg.Recommend.Engine(), logging.Logger(), recommend.WithCategorizer(categorizer))

	handler := api.NewHandler(store, orchestrator, normalizer, cfg, logging.Logger())
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + supervisor.DefaultTreeConfig().ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Storage.GCInterval > 0 && !cfg.Storage.InMemory {
		tree.AddDataService(services.NewStoreGCService(store, cfg.Storage.GCInterval, logging.Logger()))
		logging.Info().Dur("interval", cfg.Storage.GCInterval).Msg("Store GC service added")
	}

	if cfg.Catalog.Path != "" {
		tree.AddCatalogService(services.NewCatalogReloadService(
			cfg.Catalog.Path, cfg.Catalog.ReloadInterval, store, normalizer, logging.Logger()))
		logging.Info().
			Str("path", cfg.Catalog.Path).
			Dur("interval", cfg.Catalog.ReloadInterval).
			Msg("Catalog reload service added")
	} else {
		logging.Info().Msg("No catalog file configured; upload one with PUT /api/v1/catalog")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
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
