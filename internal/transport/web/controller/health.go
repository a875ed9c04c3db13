package controller

import (
	"context"
	"net/http"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

type Health struct {
	// Check reports whether storage is reachable. Nil means always healthy.
	Check func(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (c Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if c.Check != nil {
		if err := c.Check(ctx); err != nil {
			domain.LoggerFromContext(ctx).ErrorContext(ctx, "health check failed", "error", err)
			writeJSON(ctx, w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
	}

	writeJSON(ctx, w, http.StatusOK, HealthResponse{Status: "ok"})
}
