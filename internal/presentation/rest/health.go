package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	logger     *slog.Logger
	readyCheck func(ctx context.Context) error
}

// NewHealthHandler creates a health handler. readyCheck verifies downstream
// dependencies (the database) and may be nil.
func NewHealthHandler(logger *slog.Logger, readyCheck func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{logger: logger, readyCheck: readyCheck}
}

// Register attaches the probe routes.
func (h *HealthHandler) Register(r chi.Router) {
	r.Get("/healthz", h.liveness)
	r.Get("/readyz", h.readiness)
}

func (h *HealthHandler) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "credit-system",
	})
}

func (h *HealthHandler) readiness(w http.ResponseWriter, r *http.Request) {
	if h.readyCheck != nil {
		if err := h.readyCheck(r.Context()); err != nil {
			h.logger.WarnContext(r.Context(), "readiness check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":  "unavailable",
				"service": "credit-system",
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "credit-system",
	})
}
