// Package server exposes the converters over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/az-ai-labs/numwords/internal/cache"
	"github.com/az-ai-labs/numwords/internal/config"
	"github.com/az-ai-labs/numwords/internal/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

const slowRequest = 500 * time.Millisecond

// Options carries the collaborators of a Server.
type Options struct {
	Logger logger.Logger
	Cache  cache.Store // nil disables memoization
}

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	cfg     config.ServerConfig
	log     logger.Logger
	cache   cache.Store
	limiter *rate.Limiter
	binder  *binder
	mux     *chi.Mux
	srv     *http.Server
}

// New builds a Server with all routes mounted.
func New(cfg config.ServerConfig, opt Options) *Server {
	s := &Server{
		cfg:    cfg,
		log:    logger.Named(opt.Logger, "http"),
		cache:  opt.Cache,
		binder: newBinder(),
		mux:    chi.NewRouter(),
	}
	if s.cache == nil {
		s.cache = cache.Nop{}
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}

	s.mux.Use(requestID)
	s.mux.Use(chimw.RealIP)
	s.mux.Use(accessLog(s.log, slowRequest))
	s.mux.Use(recoverJSON(s.log))
	s.mount(s.mux)

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully within
// the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info().Dur("timeout", timeout).Msg("http shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
