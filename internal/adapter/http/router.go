package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/cartera/internal/adapter/http/handler"
	"github.com/iho/cartera/internal/adapter/http/middleware"
	"github.com/iho/cartera/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ReconciliationHandler *handler.ReconciliationHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	RateLimiter           *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Health)
	r.Get("/ready", cfg.HealthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Post("/recalculations", cfg.ReconciliationHandler.RecalculateBatch)

		r.Route("/counterparties/{counterpartyID}", func(r chi.Router) {
			r.Post("/recalculate", cfg.ReconciliationHandler.Recalculate)
			r.Get("/pending-invoices", cfg.ReconciliationHandler.PendingInvoices)
			r.Get("/allocations", cfg.ReconciliationHandler.ListAllocations)
		})
	})

	return r
}
