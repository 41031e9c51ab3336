// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 StreamPick Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/streampick/streampick

// Command server runs the StreamPick recommendation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/streampick/streampick/internal/api"
	"github.com/streampick/streampick/internal/config"
	"github.com/streampick/streampick/internal/contentstack"
	"github.com/streampick/streampick/internal/logging"
	"github.com/streampick/streampick/internal/mlscorer"
	"github.com/streampick/streampick/internal/recommend"
	"github.com/streampick/streampick/internal/subscribers"
	"github.com/streampick/streampick/internal/supervisor"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

// run constructs every client up front so misconfiguration fails at startup,
// not on the first request.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logger.Info().
		Str("version", version).
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Bool("scorer_configured", cfg.Scorer.URL != "").
		Msg("starting streampick server")

	var cache *contentstack.CatalogCache
	if cfg.Cache.Enabled {
		cache, err = contentstack.NewCatalogCache(cfg.Cache.Path, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("open catalog cache: %w", err)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Warn().Err(err).Msg("catalog cache close failed")
			}
		}()
	}

	delivery := contentstack.NewDeliveryClient(
		cfg.Contentstack.DeliveryHost,
		cfg.Contentstack.APIKey,
		cfg.Contentstack.DeliveryToken,
		cfg.Contentstack.Environment,
		cfg.Contentstack.Timeout,
		cache,
		logger,
	)

	management := contentstack.NewManagementClient(
		cfg.Contentstack.ManagementHost,
		cfg.Contentstack.APIKey,
		cfg.Contentstack.ManagementToken,
		cfg.Contentstack.SubscribersEntryUID,
		cfg.Contentstack.Timeout,
		logger,
	)
	store := contentstack.NewBreakerClient(management, logger)

	scorer := mlscorer.NewClient(cfg.Scorer.URL, cfg.Scorer.DialTimeout, cfg.Scorer.Timeout)
	engine := recommend.NewEngine(delivery, scorer, cfg.Scorer.TopN, logger)
	subs := subscribers.NewService(store, logger)

	handlers := api.NewHandlers(engine, delivery, subs, cfg.Scorer.URL != "")
	router := api.NewRouter(handlers, cfg.API)

	sup := supervisor.New("streampick")
	sup.Add(supervisor.NewHTTPService(
		fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		router,
		cfg.Server.Timeout,
		cfg.Server.ShutdownTimeout,
		logger,
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = sup.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logger.Info().Msg("server shut down cleanly")
	return nil
}
