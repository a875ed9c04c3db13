package domain

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerContextKey contextKey = "logger"

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := ctx.Value(loggerContextKey)
	if logger == nil {
		logger = slog.Default()
	}

	return logger.(*slog.Logger)
}

const userContextKey contextKey = "user"

func ContextWithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, userContextKey, userID)
}

// UserIDFromContext returns AnonymousUserID when no authenticated user is attached.
func UserIDFromContext(ctx context.Context) UserID {
	userID, ok := ctx.Value(userContextKey).(UserID)
	if !ok {
		return AnonymousUserID
	}
	return userID
}

// AuthMethod identifies which validator authenticated a request.
type AuthMethod string

const (
	AuthMethodAuth0 AuthMethod = "auth0"
	AuthMethodJWT   AuthMethod = "jwt"
)

const authMethodContextKey contextKey = "auth_method"

func ContextWithAuthMethod(ctx context.Context, method AuthMethod) context.Context {
	return context.WithValue(ctx, authMethodContextKey, method)
}

func AuthMethodFromContext(ctx context.Context) AuthMethod {
	method, _ := ctx.Value(authMethodContextKey).(AuthMethod)
	return method
}
