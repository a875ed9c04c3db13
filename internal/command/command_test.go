package command

import (
	"context"
	"log/slog"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}
