package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"shapegen/internal/logging"

	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// ShutdownTimeout. ln is closed on return. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.opts.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, s.opts.MaxConnections)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	addr := ln.Addr().String()
	s.logger.Info("shape API listening", zap.String("addr", addr), zap.Int("max_connections", s.opts.MaxConnections))
	logging.Boot("HTTP server listening on %s", addr)
	logging.Audit().ServerStart(addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down shape API", zap.Duration("timeout", s.opts.ShutdownTimeout))
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	logging.Audit().ServerStop(err)
	if err != nil {
		logging.BootError("HTTP server stopped: %v", err)
		return err
	}
	logging.Boot("HTTP server stopped")
	return nil
}
