// Package server exposes the word-cloud pipeline over HTTP.
//
// The API is deliberately small: one endpoint generates clouds, one
// lists themes, and a history store keeps a record of past runs when a
// MongoDB connection is configured. All heavy lifting happens in
// pkg/pipeline; the server only translates HTTP to pipeline options
// and back.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordspin/pkg/pipeline"
)

// Server wires the pipeline runner and optional history store behind a
// chi router.
type Server struct {
	runner  *pipeline.Runner
	history *History
	logger  *log.Logger
	addr    string
}

// Config holds server construction options.
type Config struct {
	Addr    string
	Runner  *pipeline.Runner
	History *History // nil disables run history
	Logger  *log.Logger
}

// New creates a server. A nil logger falls back to the default logger.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	return &Server{
		runner:  cfg.Runner,
		history: cfg.History,
		logger:  logger,
		addr:    addr,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/clouds", s.handleGenerate)
		r.Get("/clouds", s.handleListRuns)
		r.Get("/clouds/{id}", s.handleGetRun)
		r.Get("/themes", s.handleThemes)
	})
	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
