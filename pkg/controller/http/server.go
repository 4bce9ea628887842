package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/qmsboard/pkg/domain/interfaces"
	"github.com/secmon-lab/qmsboard/pkg/domain/model"
	"github.com/secmon-lab/qmsboard/pkg/service/metrics"
)

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	risk      interfaces.Risk
	kpi       interfaces.KPI
	document  interfaces.Document
	dashboard interfaces.Dashboard
}

// NewUseCases creates a new UseCases bundle
func NewUseCases(risk interfaces.Risk, kpi interfaces.KPI, document interfaces.Document, dashboard interfaces.Dashboard) *UseCases {
	return &UseCases{
		risk:      risk,
		kpi:       kpi,
		document:  document,
		dashboard: dashboard,
	}
}

// Option configures the server
type Option func(*Server)

// WithMetrics exposes /metrics and counts requests
func WithMetrics(collector *metrics.Collector) Option {
	return func(s *Server) {
		s.metrics = collector
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	metrics *metrics.Collector
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, uc *UseCases, opts ...Option) *Server {
	router := chi.NewRouter()
	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
	for _, opt := range opts {
		opt(server)
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(CORS)
	if server.metrics != nil {
		router.Use(MetricsMiddleware(server.metrics))
		router.Handle("/metrics", server.metrics.Handler())
	}

	// Health check
	router.Get("/health", handleHealth)

	h := &handler{uc: uc}

	router.Route("/api", func(r chi.Router) {
		r.Use(RoleMiddleware)
		r.Get("/me", h.getMe)

		r.Route("/risks", func(r chi.Router) {
			r.With(RequirePermission(model.PermRisksView)).Get("/", h.listRisks)
			r.With(RequirePermission(model.PermRisksCreate)).Post("/", h.createRisk)
			r.With(RequirePermission(model.PermRisksView)).Get("/matrix", h.getMatrix)
			r.With(RequirePermission(model.PermRisksView)).Post("/matrix/select", h.selectCell)
			r.With(RequirePermission(model.PermRisksView)).Get("/{id}", h.getRisk)
		})

		r.Route("/kpis", func(r chi.Router) {
			r.Use(RequirePermission(model.PermKPIsView))
			r.Get("/", h.listKPIs)
			r.Get("/{id}", h.getKPI)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Use(RequirePermission(model.PermDocumentsView))
			r.Get("/", h.searchDocuments)
			r.Get("/{id}", h.getDocument)
		})

		r.With(RequirePermission(model.PermDashboardView)).Get("/dashboard", h.getDashboard)
	})

	return server
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "qmsboard",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
