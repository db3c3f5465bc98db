// Package httpserver provides the HTTP REST API server for the paper catalog
// service.
package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/scholarly/paper-catalog/internal/database"
	"github.com/scholarly/paper-catalog/internal/observability"
	"github.com/scholarly/paper-catalog/internal/service"
)

// AuthorService is the author surface the handlers call.
type AuthorService interface {
	CreateAuthor(ctx context.Context, input service.CreateAuthorInput) (*service.AuthorRecord, error)
	GetAuthor(ctx context.Context, id int64) (*service.AuthorRecord, error)
	ListAuthors(ctx context.Context, limit, offset int) ([]*service.AuthorRecord, int64, error)
}

// PaperService is the paper surface the handlers call.
type PaperService interface {
	CreatePaper(ctx context.Context, input service.CreatePaperInput) (*service.CreatePaperResult, error)
	GetPaper(ctx context.Context, id int64) (*service.PaperRecord, error)
	ListPapers(ctx context.Context, limit, offset int) ([]*service.PaperRecord, int64, error)
}

// Config holds HTTP server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Server is the HTTP REST API server.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	authors    AuthorService
	papers     PaperService
	db         *database.DB
	metrics    *observability.Metrics
	logger     zerolog.Logger
	cfg        Config
}

// NewServer creates a new HTTP server with all dependencies.
func NewServer(
	cfg Config,
	authors AuthorService,
	papers PaperService,
	db *database.DB,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *Server {
	s := &Server{
		authors: authors,
		papers:  papers,
		db:      db,
		metrics: metrics,
		logger:  logger.With().Str("component", "http-server").Logger(),
		cfg:     cfg,
	}

	s.router = s.buildRouter()

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// buildRouter creates the chi router with all middleware and routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(correlationIDMiddleware(s.logger))
	r.Use(jsonContentTypeMiddleware)
	if s.metrics != nil {
		r.Use(metricsMiddleware(s.metrics))
	}
	if s.cfg.RateLimitEnabled {
		limiter := rate.NewLimiter(rate.Limit(s.cfg.RateLimitRPS), s.cfg.RateLimitBurst)
		r.Use(rateLimitMiddleware(limiter))
	}

	r.Get("/healthz", s.healthHandler)
	r.Get("/readyz", s.readinessHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/authors", func(r chi.Router) {
			r.Post("/", s.createAuthor)
			r.Get("/", s.listAuthors)
			r.Get("/{authorID}", s.getAuthor)
		})
		r.Route("/papers", func(r chi.Router) {
			r.Post("/", s.createPaper)
			r.Get("/", s.listPapers)
			r.Get("/{paperID}", s.getPaper)
		})
	})

	return r
}

// Router exposes the handler tree, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("HTTP server starting")
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on HTTP address: %w", err)
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// healthHandler returns basic liveness status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readinessHandler returns readiness status including database connectivity.
func (s *Server) readinessHandler(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}

	health := s.db.Health(r.Context())
	if health.Status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "not_ready",
			"database": health.Status,
			"error":    health.Error,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "healthy",
	})
}
