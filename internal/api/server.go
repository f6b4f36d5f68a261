// Copyright (c) 2026 Foodgram

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/IvanZabelin/foodgram/internal/cart"
	"github.com/IvanZabelin/foodgram/internal/catalog/ingredient"
	"github.com/IvanZabelin/foodgram/internal/catalog/tag"
	"github.com/IvanZabelin/foodgram/internal/favorite"
	"github.com/IvanZabelin/foodgram/internal/platform/config"
	"github.com/IvanZabelin/foodgram/internal/platform/constants"
	"github.com/IvanZabelin/foodgram/internal/platform/middleware"
	"github.com/IvanZabelin/foodgram/internal/recipe"
	"github.com/IvanZabelin/foodgram/internal/users/account"
	"github.com/IvanZabelin/foodgram/internal/users/auth"
	"github.com/IvanZabelin/foodgram/internal/users/subscribe"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration and the token lifecycle.
	Auth *auth.Handler

	// Account serves public profiles and avatar management.
	Account *account.Handler

	// Subscribe manages author subscriptions and the feed.
	Subscribe *subscribe.Handler

	// Ingredient serves the read-only ingredient catalog.
	Ingredient *ingredient.Handler

	// Tag serves the tag catalog and its admin mutations.
	Tag *tag.Handler

	// Recipe handles recipe composition and short links.
	Recipe *recipe.Handler

	// Favorite manages the per-user favorites ledger.
	Favorite *favorite.Handler

	// Cart manages the shopping cart and list download.
	Cart *cart.Handler

	// MediaRoot is served read-only under /media for stored images.
	MediaRoot string
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Short links live outside the API prefix.
	r.Get("/s/{id}", h.Recipe.RedirectShort)

	// Stored images. The handler strips the prefix so media references
	// ("recipes/<file>") resolve directly under the media root.
	if h.MediaRoot != "" {
		fileServer := http.StripPrefix("/media/", http.FileServer(http.Dir(h.MediaRoot)))
		r.Get("/media/*", fileServer.ServeHTTP)
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Route("/auth/token", h.Auth.RegisterTokenRoutes)

		api.Route("/users", func(users chi.Router) {
			h.Auth.RegisterUserRoutes(users)
			h.Subscribe.RegisterRoutes(users)
			h.Account.RegisterRoutes(users)
		})

		api.Route("/ingredients", h.Ingredient.RegisterRoutes)
		api.Route("/tags", h.Tag.RegisterRoutes)

		api.Route("/recipes", func(recipes chi.Router) {
			h.Cart.RegisterRoutes(recipes)
			h.Favorite.RegisterRoutes(recipes)
			h.Recipe.RegisterRoutes(recipes)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
