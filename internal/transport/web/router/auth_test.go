package router

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/authtoken"
	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("router-test-key")

func testRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(domain.ContextWithLogger(req.Context(), slog.New(slog.DiscardHandler)))
}

func TestJWTValidator(t *testing.T) {
	token, err := authtoken.Issue(testSigningKey, 7, time.Now(), time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name       string
		header     string
		query      string
		wantUserID domain.UserID
		wantSkip   bool
		wantErr    bool
	}{
		{name: "bearer_header", header: "Bearer " + token, wantUserID: 7},
		{name: "query_parameter", query: "?access_token=" + token, wantUserID: 7},
		{name: "no_token", wantSkip: true},
		{name: "auth0_token_skipped", header: "Bearer auth0|abc", wantSkip: true},
		{name: "invalid_token", header: "Bearer abc", wantErr: true},
		{name: "malformed_header", header: "Basic abc", wantErr: true},
	}

	validate := NewJWTValidator(testSigningKey)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest("/v1/matches" + tc.query)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			result, err := validate(req)
			switch {
			case tc.wantErr:
				assert.Error(t, err)
				assert.Nil(t, result)
			case tc.wantSkip:
				assert.NoError(t, err)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, tc.wantUserID, result.UserID)
				assert.Equal(t, domain.AuthMethodJWT, result.Method)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	token, err := authtoken.Issue(testSigningKey, 7, time.Now(), time.Hour)
	require.NoError(t, err)

	var seen domain.UserID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = domain.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewAuthMiddleware([]AuthValidator{NewJWTValidator(testSigningKey)})(next)

	cases := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID domain.UserID
	}{
		{name: "authenticated", header: "Bearer " + token, wantStatus: http.StatusNoContent, wantUserID: 7},
		{name: "anonymous_passes_through", wantStatus: http.StatusNoContent, wantUserID: domain.AnonymousUserID},
		{name: "rejected", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = -1
			req := testRequest("/v1/matches")
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusNoContent {
				assert.Equal(t, tc.wantUserID, seen)
			}
		})
	}
}

func TestRequireAuthMiddleware(t *testing.T) {
	handler := requireAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, testRequest("/v1/matches"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := testRequest("/v1/matches")
	req = req.WithContext(domain.ContextWithUserID(req.Context(), 7))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.example.com"})

	req := testRequest("/v1/chat/2")
	assert.True(t, check(req), "non-browser clients send no origin")

	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))

	assert.True(t, originChecker([]string{"*"})(req))
}
