// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/localescout/internal/api"
	"github.com/tomtom215/localescout/internal/cache"
	"github.com/tomtom215/localescout/internal/chart"
	"github.com/tomtom215/localescout/internal/config"
	"github.com/tomtom215/localescout/internal/dashboard"
	"github.com/tomtom215/localescout/internal/database"
	"github.com/tomtom215/localescout/internal/logging"
	"github.com/tomtom215/localescout/internal/middleware"
	"github.com/tomtom215/localescout/internal/session"
	"github.com/tomtom215/localescout/internal/supervisor"
	"github.com/tomtom215/localescout/internal/supervisor/services"
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
	})

	logging.Info().
		Str("version", api.Version).
		Str("driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Bool("map_token", cfg.Map.Token != "").
		Msg("Starting Localescout")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	queries := cache.New("queries", cfg.Analytics.CacheTTL)
	defer queries.Close()

	svc := dashboard.New(
		db,
		chart.NewBuilder(chart.MapOptions{
			Token: cfg.Map.Token,
			Style: cfg.Map.Style,
			Zoom:  cfg.Map.Zoom,
		}),
		session.NewTopTenStore(cfg.Analytics.SessionTTL, 10*time.Minute),
		queries,
		dashboard.Options{
			TopN:               cfg.Analytics.TopN,
			TopK:               cfg.Analytics.TopK,
			ExcludedAttributes: cfg.Analytics.ExcludedAttributes,
			DefaultTag:         cfg.Analytics.DefaultTag,
			DefaultCity:        cfg.Analytics.DefaultCity,
		},
	)

	handler := api.NewHandler(svc, db, cfg)
	router := api.NewRouter(
		handler,
		api.NewChiMiddlewareFromConfig(cfg.Security),
		middleware.SessionOptions{MaxAge: cfg.Analytics.SessionTTL, Secure: cfg.IsProduction()},
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: 15 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewStoreMonitor(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop in time")
		}
	}

	logging.Info().Msg("Localescout stopped")
}
