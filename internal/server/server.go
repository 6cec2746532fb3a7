package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/renato0307/gitdash/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Server serves the dashboard JSON API over HTTP
type Server struct {
	address    string
	httpServer *http.Server
}

// NewServer creates a server listening on host:port
func NewServer(host string, port int, handler *Handler) *Server {
	router := mux.NewRouter()
	router.Use(requestLogger)
	handler.RegisterRoutes(router)

	address := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return &Server{
		address: address,
		httpServer: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting HTTP server", "address", s.address)
	fmt.Printf("gitdash listening on http://%s\n", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	logging.Logger.Info("HTTP server stopped")
	return nil
}
