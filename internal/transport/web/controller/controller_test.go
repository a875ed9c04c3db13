package controller

import (
	"log/slog"
	"net/http"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

func testContextWithUserID(userID domain.UserID) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}
