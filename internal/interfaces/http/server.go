package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nutrirx/DrugFood-Intelligence/internal/config"
	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with graceful shutdown.
type Server struct {
	srv             *http.Server
	log             logging.Logger
	shutdownTimeout time.Duration
}

// NewServer builds the HTTP server from config and a fully assembled
// handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log:             log.Named("server"),
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Start serves until the listener fails or Shutdown is called.  A clean
// shutdown returns nil.
func (s *Server) Start() error {
	s.log.Info("http server listening", logging.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	s.log.Info("http server shutting down")
	return s.srv.Shutdown(ctx)
}
