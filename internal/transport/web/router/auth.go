package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/mutualmatch/mutual-backend/internal/authtoken"
	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/domain"
)

const auth0TokenPrefix = "auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID domain.UserID
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// Browsers cannot set headers on websocket handshakes, so the token may also come as ?access_token=.
var extractToken = jwtmiddleware.MultiTokenExtractor(
	jwtmiddleware.AuthHeaderTokenExtractor,
	jwtmiddleware.ParameterTokenExtractor("access_token"),
)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"error":%q}`, err.Error())
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With("user_id", result.UserID)
				ctx := domain.ContextWithLogger(r.Context(), logger)
				ctx = domain.ContextWithUserID(ctx, result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens, sent as "auth0|<jwt>".
// The token subject is linked to a user through the user directory.
func NewAuth0Validator(
	auth0Domain, auth0Audience string,
	subjects datasources.UserBySubjectResolver,
) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		token, err := extractToken(r)
		if err != nil || !strings.HasPrefix(token, auth0TokenPrefix) {
			return nil, nil
		}

		validated, err := jwtValidator.ValidateToken(r.Context(), token[len(auth0TokenPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := validated.(*validator.ValidatedClaims)
		user, err := subjects.ResolveUserBySubject(r.Context(), claims.RegisteredClaims.Subject)
		if errors.Is(err, domain.ErrUnknownUser) {
			return nil, fmt.Errorf("no user linked to this account")
		}
		if err != nil {
			return nil, fmt.Errorf("unable to resolve user: %w", err)
		}

		return &AuthResult{
			UserID: user.ID,
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}

// NewJWTValidator creates a validator for tokens issued by this service. It applies to any
// bearer token without another driver's prefix, so it should be the last validator.
func NewJWTValidator(signingKey []byte) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		token, err := extractToken(r)
		if err != nil {
			return nil, fmt.Errorf("malformed authorization: %w", err)
		}
		if token == "" || strings.HasPrefix(token, auth0TokenPrefix) {
			return nil, nil
		}

		userID, err := authtoken.Verify(signingKey, token)
		if err != nil {
			return nil, fmt.Errorf("invalid access token")
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodJWT,
		}, nil
	}
}
