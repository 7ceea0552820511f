package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	config "github.com/InfoRubix/filecase-tracking-management-system/internal/config/server"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/log"
)

// Server is the HTTP listener of the agent.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     log.LoggerService
	errCh      chan error
}

func NewServer(cfg config.HTTPServerConfig, handler http.Handler, logger log.LoggerService) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Address,
			Handler:           handler,
			ReadTimeout:       config.Duration(cfg.ReadTimeout, 15*time.Second),
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      config.Duration(cfg.WriteTimeout, 30*time.Second),
			IdleTimeout:       config.Duration(cfg.IdleTimeout, 60*time.Second),
		},
		logger: logger,
		errCh:  make(chan error, 1),
	}
}

// Start binds the address and serves in the background. Errors after the
// bind are reported on Errors.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = listener

	go func() {
		s.logger.Info("HTTP server listening on %s", listener.Addr())
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
		close(s.errCh)
	}()

	return nil
}

// Addr is the bound address once Start succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Errors yields a serve failure, and is closed once serving stops.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}
