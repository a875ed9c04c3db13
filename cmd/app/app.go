package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mutualmatch/mutual-backend/internal/app"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := setupLogger(app.MustGetEnvAsString(ctx, "LOG_LEVEL"))
	ctx = domain.ContextWithLogger(ctx, logger)

	components, err := app.Setup(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "unable to setup components", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "starting components", "count", len(components))
	grp, grpCtx := errgroup.WithContext(ctx)
	for _, c := range components {
		grp.Go(func() error {
			return c.Run(grpCtx)
		})
	}

	if err = grp.Wait(); err != nil {
		logger.ErrorContext(ctx, "shutting down due to error", "error", err)
		os.Exit(1)
	}
	logger.InfoContext(ctx, "shut down")
}

// setupLogger installs a JSON logger at the given level as the slog default.
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		panic(fmt.Sprintf("unable to setup logger, LOG_LEVEL not recognised [%s]", level))
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}
