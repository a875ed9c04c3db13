package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mutualmatch/mutual-backend/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
// Requests, including upgraded chat connections, inherit ctx and are cancelled with it.
func (s *Server) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	var listener net.Listener
	if s.TLSDisabled {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", s.TLSDisabledPort))
		if err != nil {
			return fmt.Errorf("listening on port %d: %w", s.TLSDisabledPort, err)
		}
		listener = l
	} else {
		listener = autocert.NewListener(s.AutocertHostnames...)
	}

	srv := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()
	logger.InfoContext(ctx, "serving HTTP", "address", listener.Addr().String())

	select {
	case err := <-serveErr:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}
