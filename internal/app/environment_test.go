package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestMustGetEnvAsStrings(t *testing.T) {
	t.Setenv("TEST_LIST", " a, b ,,c ")
	assert.Equal(t, []string{"a", "b", "c"}, MustGetEnvAsStrings(testContext(), "TEST_LIST"))

	t.Setenv("TEST_LIST", "")
	assert.Empty(t, MustGetEnvAsStrings(testContext(), "TEST_LIST"))
}

func TestGetEnvFallbacks(t *testing.T) {
	assert.Equal(t, "memory", GetEnvAsStringOr("TEST_UNSET_DRIVER", "memory"))
	assert.Equal(t, 64, GetEnvAsIntOr(testContext(), "TEST_UNSET_BUFFER", 64))

	t.Setenv("TEST_BUFFER", "8")
	assert.Equal(t, 8, GetEnvAsIntOr(testContext(), "TEST_BUFFER", 64))

	t.Setenv("TEST_BUFFER", "eight")
	assert.Panics(t, func() { GetEnvAsIntOr(testContext(), "TEST_BUFFER", 64) })

	assert.Equal(t, time.Minute, GetEnvAsDurationOr(testContext(), "TEST_UNSET_WAIT", time.Minute))

	t.Setenv("TEST_WAIT", "90s")
	assert.Equal(t, 90*time.Second, GetEnvAsDurationOr(testContext(), "TEST_WAIT", time.Minute))

	t.Setenv("TEST_WAIT", "soon")
	assert.Panics(t, func() { GetEnvAsDurationOr(testContext(), "TEST_WAIT", time.Minute) })
}

func TestMustGetEnvAsTypedValues(t *testing.T) {
	t.Setenv("TEST_BOOL", "TRUE")
	assert.True(t, MustGetEnvAsBoolean(testContext(), "TEST_BOOL"))

	t.Setenv("TEST_BOOL", "yes")
	assert.Panics(t, func() { MustGetEnvAsBoolean(testContext(), "TEST_BOOL") })

	assert.Panics(t, func() { MustGetEnvAsString(testContext(), "TEST_DEFINITELY_UNSET") })
}

func TestSetup_MemoryStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("MEMORY_USERS", "1:ivan,2:maria")
	t.Setenv("BROADCAST_DRIVER", "local")
	t.Setenv("AUTH_DRIVERS", "jwt")
	t.Setenv("JWT_SIGNING_KEY", "test-key")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")
	t.Setenv("HTTP_TLS_DISABLED", "true")
	t.Setenv("PORT", "0")

	components, err := Setup(testContext())
	assert.NoError(t, err)
	assert.Len(t, components, 1)
}

func TestSetup_RejectsUnknownDrivers(t *testing.T) {
	base := map[string]string{
		"STORAGE_DRIVER":       "memory",
		"BROADCAST_DRIVER":     "local",
		"AUTH_DRIVERS":         "jwt",
		"JWT_SIGNING_KEY":      "test-key",
		"CORS_ALLOWED_ORIGINS": "*",
		"HTTP_TLS_DISABLED":    "true",
	}

	cases := []struct {
		name     string
		override map[string]string
		wantErr  string
	}{
		{
			name:     "storage",
			override: map[string]string{"STORAGE_DRIVER": "cassandra"},
			wantErr:  "setting up dataset repository: unknown storage driver [cassandra]",
		},
		{
			name:     "broadcast",
			override: map[string]string{"BROADCAST_DRIVER": "nats"},
			wantErr:  "setting up broadcast broker: unknown broadcast driver [nats]",
		},
		{
			name:     "auth",
			override: map[string]string{"AUTH_DRIVERS": "api_token"},
			wantErr:  "setting up auth middleware: unknown auth driver [api_token]",
		},
		{
			name:     "jwt_not_last",
			override: map[string]string{"AUTH_DRIVERS": "jwt,auth0"},
			wantErr:  "setting up auth middleware: auth driver [jwt] must be listed last",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range base {
				t.Setenv(k, v)
			}
			for k, v := range tc.override {
				t.Setenv(k, v)
			}

			_, err := Setup(testContext())
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}
