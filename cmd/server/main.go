// Pitwall - Formula 1 Reliability Analytics
// Copyright 2026 Pitwall Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pitwall-dev/pitwall

// Package main is the entry point for the Pitwall server.
//
// Pitwall serves reliability analytics over the historical Formula 1
// results dataset: mechanical failure rates, per-circuit breakdowns and
// constructor head-to-head comparisons, all derived from a denormalized
// fact table held in memory.
//
// The server initializes in order:
//
//  1. Configuration: Koanf v2 layered sources (env > file > defaults)
//  2. Logging: zerolog, JSON or console format
//  3. Dataset: CSV ingestion via DuckDB into the reference tables
//  4. Fact table: inner joins of results against all reference tables
//  5. HTTP server: Chi router with the dashboard API and /metrics
//
// The dataset is immutable once loaded; every request recomputes its view
// from the in-memory fact table, with marshaled responses memoized per
// filter.
//
// Shutdown is graceful on SIGINT and SIGTERM: the listener stops accepting
// connections and in-flight requests get ShutdownTimeout to finish.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pitwall-dev/pitwall/internal/analytics"
	"github.com/pitwall-dev/pitwall/internal/api"
	"github.com/pitwall-dev/pitwall/internal/cache"
	"github.com/pitwall-dev/pitwall/internal/config"
	"github.com/pitwall-dev/pitwall/internal/dataset"
	"github.com/pitwall-dev/pitwall/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.Info().
		Str("dataset_dir", cfg.Dataset.Dir).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Pitwall")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refs, err := dataset.Load(ctx, cfg.Dataset.Dir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}
	rows := dataset.BuildFactTable(refs)
	if len(rows) == 0 {
		logging.Fatal().Msg("Fact table is empty after joins; check the dataset directory")
	}

	session := analytics.NewSession(rows)
	bounds := session.YearBounds()
	logging.Info().
		Int("fact_rows", len(rows)).
		Int("min_year", bounds.MinYear).
		Int("max_year", bounds.MaxYear).
		Msg("Fact table ready")

	responses := cache.New(cfg.Cache.Entries, cfg.Cache.TTL)
	handler := api.NewHandler(session, responses)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
