// Package server assembles the HTTP router shared by every feature package.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
	AllowedHeaders []string
	RequestTimeout time.Duration // 0 disables the per-request timeout
	Metrics        bool
}

// Server is the folio HTTP server.
type Server struct {
	cfg        Config
	router     chi.Router
	timed      chi.Router
	logger     *zap.Logger
	httpServer *http.Server
}

// New creates a server. Collectors registered on gatherer are exposed at
// /metrics when cfg.Metrics is set.
func New(cfg Config, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}
	s.router = s.buildRouter(gatherer)
	return s
}

// buildRouter creates and configures the chi router with shared routes.
func (s *Server) buildRouter(gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	headers := s.cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Accept", "Authorization", "Content-Type"}
	}
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: headers,
		MaxAge:         300,
	}))

	// Streaming responses outlive any request timeout, so only the
	// timed group carries one.
	s.timed = r
	if s.cfg.RequestTimeout > 0 {
		s.timed = r.With(middleware.Timeout(s.cfg.RequestTimeout))
	}

	// Health check
	s.timed.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.cfg.Metrics && gatherer != nil {
		s.timed.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// Router returns the router for ordinary request/response routes.
func (s *Server) Router() chi.Router { return s.timed }

// Streaming returns the router for routes that hold the connection open.
func (s *Server) Streaming() chi.Router { return s.router }

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Config returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port. It returns nil once
// Shutdown has been called.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("folio server listening", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
