package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the service router: API routes, health probes, and the
// metrics endpoint behind the standard middleware chain.
func NewRouter(h *Handler, health *HealthHandler, metricsHandler http.Handler, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(instrument)

	h.Register(r)
	health.Register(r)
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	return r
}
