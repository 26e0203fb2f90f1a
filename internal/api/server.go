// Copyright (c) 2026 Modena. All rights reserved.
// Author: b.petkov.dev@gmail.com

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

	"github.com/bpetkov/modena/internal/core/attribute"
	"github.com/bpetkov/modena/internal/core/brochure"
	"github.com/bpetkov/modena/internal/core/compare"
	"github.com/bpetkov/modena/internal/core/override"
	"github.com/bpetkov/modena/internal/core/resolution"
	"github.com/bpetkov/modena/internal/core/vehicle"
	"github.com/bpetkov/modena/internal/platform/config"
	"github.com/bpetkov/modena/internal/platform/constants"
	"github.com/bpetkov/modena/internal/platform/middleware"
	"github.com/bpetkov/modena/internal/platform/sec"
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

	// Attribute serves the attribute catalogue.
	Attribute *attribute.Handler

	// Vehicle serves the make/model/model-year/edition taxonomy.
	Vehicle *vehicle.Handler

	// Override reads and replaces stored attribute overrides.
	Override *override.Handler

	// Resolution serves effective attributes per edition.
	Resolution *resolution.Handler

	// Compare builds ad-hoc comparison tables.
	Compare *compare.Handler

	// Brochure manages brochures, compare sheets, and snapshots.
	Brochure *brochure.Handler
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

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/attributes", h.Attribute.RegisterRoutes)
		h.Vehicle.RegisterRoutes(api)
		api.Route("/editions", h.Resolution.RegisterRoutes)
		api.Route("/compare", h.Compare.RegisterRoutes)

		// Override writes mutate catalogue data: editor role required.
		api.Route("/overrides", func(router chi.Router) {
			router.Use(middleware.RequireRole(sec.RoleEditor))
			h.Override.RegisterRoutes(router)
		})

		api.Route("/brochures", func(router chi.Router) {
			h.Brochure.RegisterRoutes(router)
			router.Group(func(editor chi.Router) {
				editor.Use(middleware.RequireRole(sec.RoleEditor))
				h.Brochure.RegisterEditorRoutes(editor)
			})
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
