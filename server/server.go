// Package server exposes a movies.Store over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rlch/movies"
)

// Config holds HTTP server settings.
type Config struct {
	// Address to listen on, e.g. ":8080".
	Address string

	// ShutdownTimeout bounds how long Run waits for in-flight requests.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is passed to http.Server.
	ReadHeaderTimeout time.Duration
}

// DefaultConfig returns settings for the given port.
func DefaultConfig(port int) Config {
	return Config{
		Address:           fmt.Sprintf(":%d", port),
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Server serves the movie graph endpoints.
type Server struct {
	store  movies.Store
	logger *zap.Logger
	config Config
}

// New creates a server for store. A nil logger disables logging.
func New(store movies.Store, logger *zap.Logger, config Config) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		store:  store,
		logger: logger,
		config: config,
	}
}

// Handler returns the routed handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", s.indexHandler())
	mux.Handle("GET /static/", s.staticHandler())
	mux.HandleFunc("GET /graph", s.handleGraph)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /movie/{title}", s.handleMovie)
	mux.HandleFunc("POST /movie/{title}/vote", s.handleVote)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return s.withRequestID(s.withLogging(mux))
}

// Run serves HTTP/1.1 and cleartext HTTP/2 on the configured address until
// ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address, err)
	}

	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errc := make(chan error, 1)

	go func() {
		errc <- httpServer.Serve(listener)
	}()

	s.logger.Info("Listening", zap.String("address", listener.Addr().String()),
		zap.String("dialect", s.store.Name()))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down")

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
