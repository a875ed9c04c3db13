package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestServer_RunUntilCancelled(t *testing.T) {
	port := freePort(t)
	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler)))
	defer cancel()

	srv := &Server{
		TLSDisabled:     true,
		TLSDisabledPort: port,
		Router: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	}

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not stop")
	}
}
