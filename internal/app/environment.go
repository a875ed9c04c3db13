package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// GetEnvAsStringOr returns fallback when name is unset.
func GetEnvAsStringOr(name, fallback string) string {
	if s, exists := os.LookupEnv(name); exists {
		return s
	}
	return fallback
}

// GetEnvAsIntOr returns fallback when name is unset, and panics when it is set but malformed.
func GetEnvAsIntOr(ctx context.Context, name string, fallback int) int {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}
	return mustParseEnv(ctx, name, "integer", s, strconv.Atoi)
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return mustParseEnv(ctx, name, "boolean ('true'/'false')", MustGetEnvAsString(ctx, name),
		func(s string) (bool, error) {
			switch strings.ToLower(s) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			}
			return false, fmt.Errorf("not a boolean")
		})
}

// GetEnvAsDurationOr returns fallback when name is unset, and panics when it is set but malformed.
func GetEnvAsDurationOr(ctx context.Context, name string, fallback time.Duration) time.Duration {
	s, exists := os.LookupEnv(name)
	if !exists {
		return fallback
	}
	return mustParseEnv(ctx, name, "duration", s, time.ParseDuration)
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming spaces and dropping empty entries.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	var values []string
	for _, part := range strings.Split(MustGetEnvAsString(ctx, name), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

func mustParseEnv[T any](ctx context.Context, name, kind, s string, parse func(string) (T, error)) T {
	v, err := parse(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as "+kind,
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as %s [%s]: %s", kind, name, s))
	}
	return v
}
