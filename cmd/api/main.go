// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Fyyur HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the listing store (PostgreSQL + migrations, or in-memory).
//  4. Connect to Redis when configured.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/fyyur/internal/api"
	"github.com/taibuivan/fyyur/internal/auth"
	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/reference"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/config"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/memstore"
	"github.com/taibuivan/fyyur/internal/platform/migration"
	pgstore "github.com/taibuivan/fyyur/internal/platform/postgres"
	redisstore "github.com/taibuivan/fyyur/internal/platform/redis"
	"github.com/taibuivan/fyyur/internal/platform/sec"
)

// repositories bundles the persistence implementations chosen by STORE_DRIVER.
type repositories struct {
	venues  venue.Repository
	artists artist.Repository
	shows   show.Repository
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("[Fyyur] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
	)

	if cfg.IsProduction() && !cfg.UsesPostgres() {
		log.Warn("memory_store_in_production")
	}

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	healthDeps := api.HealthDependencies{}

	// ── 3. Listing Store ──────────────────────────────────────────────────
	var repos repositories

	if cfg.UsesPostgres() {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		if cfg.RunMigrations {
			must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		}

		repos = postgresRepositories(pool)
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	} else {
		store := memstore.New(time.Now)
		repos = repositories{venues: store, artists: store, shows: store}
		log.Warn("memory_store_enabled", slog.String("detail", "listings are lost on restart"))
	}

	// ── 4. Redis (token revocation) ───────────────────────────────────────
	var revocations auth.RevocationStore = auth.NewMemoryRevocationStore()

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		revocations = auth.NewRedisRevocationStore(rdb)
		healthDeps.CheckCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	}

	// ── 5. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	editorRole, _ := sec.ParseRole(cfg.EditorRole)
	authService := auth.NewService(
		auth.Editor{Username: cfg.EditorUsername, PasswordHash: cfg.EditorPasswordHash, Role: editorRole},
		jwtSvc,
		revocations,
		cfg.AccessTokenTTL,
		log,
	)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService),
		Venue:     venue.NewHandler(venue.NewService(repos.venues, log, time.Now)),
		Artist:    artist.NewHandler(artist.NewService(repos.artists, log, time.Now)),
		Show:      show.NewHandler(show.NewService(repos.shows, log)),
		Reference: reference.NewHandler(),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, authService, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
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

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(
		slog.String("app", constants.AppName),
		slog.String("version", constants.AppVersion),
	)
}

func postgresRepositories(pool *pgxpool.Pool) repositories {
	return repositories{
		venues:  venue.NewPostgresRepository(pool),
		artists: artist.NewPostgresRepository(pool),
		shows:   show.NewPostgresRepository(pool),
	}
}

func closeRedis(log *slog.Logger, rdb *goredis.Client) {
	log.Info("closing redis client")
	if cerr := rdb.Close(); cerr != nil {
		log.Error("redis close error", slog.Any("error", cerr))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
