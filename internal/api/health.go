package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// HealthChecker probes the upstream backend.
type HealthChecker interface {
	Health(ctx context.Context) (json.RawMessage, error)
}

// HealthHandler reports whether the backend is reachable.
type HealthHandler struct {
	Backend HealthChecker
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	body, err := h.Backend.Health(r.Context())
	if err != nil {
		slog.Warn("backend health check failed", "error", err)
		jsonResponse(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"backend": body,
	})
}
