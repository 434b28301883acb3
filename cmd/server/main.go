// Postmap - Social Post Search and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postmap

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

	_ "github.com/tomtom215/postmap/docs" // swagger spec
	"github.com/tomtom215/postmap/internal/api"
	"github.com/tomtom215/postmap/internal/cache"
	"github.com/tomtom215/postmap/internal/config"
	"github.com/tomtom215/postmap/internal/logging"
	"github.com/tomtom215/postmap/internal/mapview"
	"github.com/tomtom215/postmap/internal/nlp"
	"github.com/tomtom215/postmap/internal/search"
	"github.com/tomtom215/postmap/internal/supervisor"
	"github.com/tomtom215/postmap/internal/supervisor/services"
	"github.com/tomtom215/postmap/internal/timewindow"
	"github.com/tomtom215/postmap/internal/vk"
)

const (
	shutdownTimeout = 10 * time.Second
	warmRetry       = 5 * time.Second
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

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("timezone", cfg.Search.Timezone).
		Str("cache_backend", cfg.Cache.Backend).
		Str("embedding_provider", cfg.Embedding.Provider).
		Msg("Starting postmap")

	if cfg.Embedding.LexicalRanking() {
		logging.Warn().Msg("Ranking by lexical similarity (hashing embedder); set EMBEDDING_URL to rank with a language model")
	}

	converter, err := timewindow.LoadConverter(cfg.Search.Timezone)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load search time zone")
	}

	vkClient := vk.NewCircuitBreakerClient(vk.NewClient(&cfg.VK))

	responseCache, badgerDB, closeCache, err := openResponseCache(&cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open response cache")
	}
	defer closeCache()

	// Warmed by ModelWarmService so a slow embedding endpoint delays
	// readiness rather than startup.
	model, err := nlp.BuildModel(&cfg.Embedding)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build embedding model")
	}

	searchService, err := search.NewService(search.Config{
		Searcher:  vkClient,
		Cache:     responseCache,
		Ranker:    nlp.NewRanker(model),
		Renderer:  mapview.NewRenderer(&cfg.Map),
		Converter: converter,
		MaxCount:  cfg.Search.MaxCount,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create search service")
	}

	handler := api.NewHandler(api.HandlerConfig{
		Search:       searchService,
		Model:        model,
		VKBreaker:    vkClient,
		Location:     converter.Location(),
		DefaultCount: cfg.Search.DefaultCount,
		MaxCount:     cfg.Search.MaxCount,
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewModelWarmService(model, warmRetry))
	if badgerDB != nil {
		tree.AddDataService(services.NewCacheGCService(badgerDB, cfg.Cache.GCInterval))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("postmap stopped")
}

// openResponseCache opens the configured cache backend. The returned
// *cache.BadgerCache is nil for the memory backend.
func openResponseCache(cfg *config.CacheConfig) (search.ResponseCache, *cache.BadgerCache, func(), error) {
	switch cfg.Backend {
	case "badger":
		db, err := cache.OpenBadger(cache.BadgerOptions{Path: cfg.Path, TTL: cfg.TTL})
		if err != nil {
			return nil, nil, nil, err
		}
		logging.Info().Str("path", cfg.Path).Dur("ttl", cfg.TTL).Msg("Badger response cache opened")
		closeFn := func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing badger cache")
			}
		}
		return search.NewBadgerResponseCache(db), db, closeFn, nil

	case "memory", "":
		mem := cache.New(cfg.TTL)
		logging.Info().Dur("ttl", cfg.TTL).Msg("In-memory response cache created")
		return search.NewMemoryCache(mem), nil, mem.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
