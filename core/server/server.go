package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start on a server that is serving.
var ErrAlreadyRunning = errors.New("server: already running")

const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)

// Server wraps http.Server with context-driven lifecycle and graceful
// shutdown. Safe for concurrent use.
type Server struct {
	mu       sync.Mutex
	addr     string
	server   *http.Server
	log      *slog.Logger
	shutdown time.Duration

	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration

	running bool
}

// New creates a server for the given address.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:         addr,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdown:     DefaultShutdownTimeout,
		readTimeout:  DefaultReadTimeout,
		writeTimeout: DefaultWriteTimeout,
		idleTimeout:  DefaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves handler and blocks until the context is canceled or the
// listener fails. Cancellation triggers a graceful shutdown bounded by the
// configured timeout; a clean shutdown returns ctx.Err().
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
		IdleTimeout:  s.idleTimeout,
	}
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.log.InfoContext(ctx, "starting server", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		return err
	case <-ctx.Done():
		if err := s.Stop(); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// Stop gracefully shuts down the server. It returns immediately when the
// server is not running.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	s.log.Info("shutting down server", "timeout", s.shutdown)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	s.running = false
	if err != nil {
		s.log.Error("server shutdown error", "error", err)
		return err
	}
	return nil
}

// Run serves handler with default settings until ctx is canceled.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr).Start(ctx, handler)
}
