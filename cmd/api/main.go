// Copyright (c) 2026 Foodgram

// Command api is the entry point for the Foodgram HTTP API server.
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

	"github.com/IvanZabelin/foodgram/internal/api"
	"github.com/IvanZabelin/foodgram/internal/cart"
	"github.com/IvanZabelin/foodgram/internal/catalog/ingredient"
	"github.com/IvanZabelin/foodgram/internal/catalog/tag"
	"github.com/IvanZabelin/foodgram/internal/favorite"
	"github.com/IvanZabelin/foodgram/internal/media"
	"github.com/IvanZabelin/foodgram/internal/platform/config"
	"github.com/IvanZabelin/foodgram/internal/platform/constants"
	"github.com/IvanZabelin/foodgram/internal/platform/migration"
	pgstore "github.com/IvanZabelin/foodgram/internal/platform/postgres"
	redisstore "github.com/IvanZabelin/foodgram/internal/platform/redis"
	"github.com/IvanZabelin/foodgram/internal/platform/sec"
	"github.com/IvanZabelin/foodgram/internal/recipe"
	"github.com/IvanZabelin/foodgram/internal/users/account"
	"github.com/IvanZabelin/foodgram/internal/users/auth"
	"github.com/IvanZabelin/foodgram/internal/users/subscribe"
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

	log.Info("service_initializing")

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

	// ── 6. Token Service & Media Store ────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	mediaStore, err := media.NewStore(cfg.MediaRoot)
	must(log, err, "initialize media store")

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
	userRepository := auth.NewPostgresUserRepository(pool)
	sessionRepository := auth.NewRedisSessionRepository(rdb)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	accountRepository := account.NewPostgresRepository(pool)
	accountService := account.NewService(accountRepository, mediaStore, log)
	accountHandler := account.NewHandler(accountService)

	subscribeRepository := subscribe.NewPostgresRepository(pool)
	subscribeService := subscribe.NewService(subscribeRepository, log)
	subscribeHandler := subscribe.NewHandler(subscribeService)

	ingredientRepository := ingredient.NewPostgresRepository(pool)
	ingredientService := ingredient.NewService(ingredientRepository, log)
	ingredientHandler := ingredient.NewHandler(ingredientService)

	tagRepository := tag.NewPostgresRepository(pool)
	tagService := tag.NewService(tagRepository, log)
	tagHandler := tag.NewHandler(tagService)

	recipeRepository := recipe.NewPostgresRepository(pool)
	recipeService := recipe.NewService(recipeRepository, ingredientRepository, tagRepository, mediaStore, log)
	recipeHandler := recipe.NewHandler(recipeService, cfg.BaseURL)

	favoriteRepository := favorite.NewPostgresRepository(pool)
	favoriteService := favorite.NewService(favoriteRepository, log)
	favoriteHandler := favorite.NewHandler(favoriteService)

	cartRepository := cart.NewPostgresRepository(pool)
	cartService := cart.NewService(cartRepository, log)
	cartHandler := cart.NewHandler(cartService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Account:    accountHandler,
		Subscribe:  subscribeHandler,
		Ingredient: ingredientHandler,
		Tag:        tagHandler,
		Recipe:     recipeHandler,
		Favorite:   favoriteHandler,
		Cart:       cartHandler,
		MediaRoot:  cfg.MediaRoot,
	}

	// The server context outlives startup: the rate limiter's cleanup
	// goroutine runs until process exit.
	server := api.NewServer(context.Background(), cfg, log, authService, handlers)

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
