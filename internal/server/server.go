// Package server exposes the compilation pipeline over HTTP.
//
// This is the request/response boundary design-tool plugins talk to: a
// plugin extracts the selected frames, POSTs the scene document to
// /api/v1/compile, and receives the compiled unit in the response body.
// The server owns no compilation logic; everything flows through the
// same pipeline.Runner the CLI uses.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkoenig/framesmith/pkg/history"
	"github.com/mkoenig/framesmith/pkg/pipeline"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// maxBodyBytes bounds the accepted document size. Design exports
	// with embedded raster payloads get large, but not unbounded.
	maxBodyBytes = 32 << 20 // 32 MiB
)

// Server serves the compile API.
type Server struct {
	Addr    string
	Runner  *pipeline.Runner
	History history.Store
	Logger  *log.Logger
}

// New creates a server. The history store may be nil, which disables
// the history endpoint.
func New(addr string, runner *pipeline.Runner, store history.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		Addr:    addr,
		Runner:  runner,
		History: store,
		Logger:  logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compile", s.handleCompile)
		r.Get("/history", s.handleHistory)
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests
// with a shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.Logger.Info("server started", "addr", s.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.Logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
