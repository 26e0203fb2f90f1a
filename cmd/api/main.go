// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

// Command api is the entry point for the Modena catalogue API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bpetkov/modena/internal/api"
	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/brochure"
	"github.com/bpetkov/modena/internal/core/compare"
	"github.com/bpetkov/modena/internal/core/override"
	"github.com/bpetkov/modena/internal/core/resolution"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/config"
	"github.com/bpetkov/modena/internal/platform/constants"
	"github.com/bpetkov/modena/internal/platform/migration"
	pgstore "github.com/bpetkov/modena/internal/platform/postgres"
	redisstore "github.com/bpetkov/modena/internal/platform/redis"
	"github.com/bpetkov/modena/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Modena] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Verification ─────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt verifier")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	attributeRepo := attribute.NewCachedRepository(attribute.NewPostgresRepository(pool), rdb, cfg.CatalogCacheTTL, log)
	attributeService := attribute.NewService(attributeRepo, log)

	vehicleRepo := vehicle.NewPostgresRepository(pool)
	vehicleService := vehicle.NewService(vehicleRepo, log)

	overrideRepo := override.NewPostgresRepository(pool)
	overrideService := override.NewService(overrideRepo, attributeService, vehicleRepo, log)

	resolutionEngine := resolution.NewEngine(attributeService, vehicleRepo, overrideRepo, log)
	compareEngine := compare.NewEngine(resolutionEngine, log)

	// Snapshot captures run against the lock transaction: every repo under
	// the comparison reads through the transaction-bound querier, not the
	// pool, so the payload is consistent with the commit. The catalogue is
	// read uncached for the same reason.
	engineFactory := func(querier pgstore.BeginQuerier) brochure.Comparer {
		txCatalog := attribute.NewService(attribute.NewPostgresRepository(querier), log)
		txResolution := resolution.NewEngine(
			txCatalog,
			vehicle.NewPostgresRepository(querier),
			override.NewPostgresRepository(querier),
			log,
		)
		return compare.NewEngine(txResolution, log)
	}

	brochureService := brochure.NewService(
		brochure.NewPostgresRepository(pool),
		vehicleRepo,
		compareEngine,
		engineFactory,
		log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Attribute:  attribute.NewHandler(attributeService),
		Vehicle:    vehicle.NewHandler(vehicleService),
		Override:   override.NewHandler(overrideService),
		Resolution: resolution.NewHandler(resolutionEngine),
		Compare:    compare.NewHandler(compareEngine),
		Brochure:   brochure.NewHandler(brochureService),
	}

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
