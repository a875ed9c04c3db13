// Command migrate creates or updates the schema for the configured STORAGE_DRIVER.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mutualmatch/mutual-backend/internal/app"
	"github.com/mutualmatch/mutual-backend/internal/datasources/mysql"
	"github.com/mutualmatch/mutual-backend/internal/datasources/postgres"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "migration failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "migration completed successfully")
}

func run(ctx context.Context) error {
	switch driver := app.GetEnvAsStringOr("STORAGE_DRIVER", "mysql"); driver {
	case "mysql":
		db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return fmt.Errorf("connecting to MySQL: %w", err)
		}
		defer func() { _ = db.Close() }()

		return mysql.Migrate(ctx, db)
	case "postgres":
		db, err := postgres.Connect(ctx, app.MustGetEnvAsString(ctx, "POSTGRES_DSN"))
		if err != nil {
			return fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer func() { _ = sqlDB.Close() }()
		}

		return postgres.Migrate(ctx, db)
	case "memory":
		return nil
	default:
		return fmt.Errorf("unknown storage driver [%s]", driver)
	}
}
