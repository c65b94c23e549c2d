// Package router exposes the debug/admin HTTP surface over the operation
// gateway: health, cache stats and state, full sync, clear, fetch, search,
// and Prometheus metrics.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tbeaudouin05/stripe-mirror/api/app"
	"github.com/tbeaudouin05/stripe-mirror/api/bootstrap"
)

// NewRouter returns the central HTTP router, wiring the process-wide
// service from bootstrap.
func NewRouter() http.Handler {
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap ensure failed", "err", err)
	}
	return New(bootstrap.GetService())
}

// New builds the router around an explicit service, which is what tests use.
func New(svc app.Service) http.Handler {
	h := handler{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/stats", h.stats)
		r.Get("/state", h.state)
		r.Get("/config", h.configView)
		r.Post("/sync", h.syncAll)
		r.Post("/clear", h.clear)
		r.Get("/resources/{kind}/{id}", h.fetch)
		r.Get("/search", h.search)
	})

	return r
}
