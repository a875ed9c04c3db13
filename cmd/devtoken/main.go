// Command devtoken prints a signed access token for local testing against the jwt auth driver.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mutualmatch/mutual-backend/internal/app"
	"github.com/mutualmatch/mutual-backend/internal/authtoken"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

func main() {
	userID := flag.Int64("user", 0, "user ID to issue the token for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := domain.ContextWithLogger(context.Background(), logger)

	if *userID <= 0 {
		logger.ErrorContext(ctx, "a positive -user is required")
		os.Exit(2)
	}

	token, err := authtoken.Issue(
		[]byte(app.MustGetEnvAsString(ctx, "JWT_SIGNING_KEY")),
		domain.UserID(*userID),
		time.Now(),
		*ttl,
	)
	if err != nil {
		logger.ErrorContext(ctx, "unable to issue token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
