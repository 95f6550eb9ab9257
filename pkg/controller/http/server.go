// Package http exposes the application over a JSON REST API.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/revisor-lab/revisor/pkg/service/export"
	"github.com/revisor-lab/revisor/pkg/service/ingest"
	"github.com/revisor-lab/revisor/pkg/usecase"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	ingest  *ingest.Service
	export  *export.Service
	noAuthn bool
}

type Options func(*Server)

// WithNoAuthn disables the auth middleware, mainly for local use
func WithNoAuthn(enabled bool) Options {
	return func(s *Server) {
		s.noAuthn = enabled
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		ingest: ingest.New(),
		export: export.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Login is the only unauthenticated endpoint
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			if !s.noAuthn {
				r.Use(authMiddleware(s.uc.Auth))
			}

			r.Post("/auth/logout", s.handleLogout)
			r.Get("/auth/me", s.handleMe)

			r.Route("/audit-types", func(r chi.Router) {
				r.Get("/", s.handleListAuditTypes)
				r.Post("/", s.handleCreateAuditType)
				r.Get("/active", s.handleListActiveAuditTypes)
				r.Get("/{id}", s.handleGetAuditType)
				r.Put("/{id}", s.handleUpdateAuditType)
				r.Delete("/{id}", s.handleDeleteAuditType)
				r.Post("/{id}/toggle", s.handleToggleAuditType)
			})

			r.Route("/audits", func(r chi.Router) {
				r.Get("/", s.handleListAudits)
				r.Post("/", s.handleCreateAudit)
				r.Get("/{id}", s.handleGetAudit)
				r.Put("/{id}", s.handleUpdateAudit)
				r.Delete("/{id}", s.handleDeleteAudit)
			})

			r.Route("/executions", func(r chi.Router) {
				r.Get("/", s.handleListExecutions)
				r.Post("/", s.handleCreateExecution)
				r.Post("/restore", s.handleRestoreExecutions)
				r.Get("/{id}", s.handleGetExecution)
				r.Put("/{id}", s.handleUpdateExecution)
				r.Delete("/{id}", s.handleDeleteExecution)

				r.Post("/{id}/items", s.handleAddItem)
				r.Put("/{id}/items/{itemID}", s.handleUpdateItem)
				r.Delete("/{id}/items/{itemID}", s.handleRemoveItem)
				r.Post("/{id}/items/{itemID}/toggle", s.handleToggleItem)

				r.Post("/{id}/findings", s.handleAddExecutionFinding)
				r.Put("/{id}/findings/{findingID}", s.handleUpdateExecutionFinding)
				r.Delete("/{id}/findings/{findingID}", s.handleRemoveExecutionFinding)
			})

			r.Route("/actions", func(r chi.Router) {
				r.Get("/", s.handleListActions)
				r.Post("/", s.handleCreateAction)
				r.Get("/{id}", s.handleGetAction)
				r.Put("/{id}", s.handleUpdateAction)
				r.Delete("/{id}", s.handleDeleteAction)
			})
			r.Get("/findings", s.handleAvailableFindings)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", s.handleListReports)
				r.Post("/", s.handleCreateReport)
				r.Get("/prefill/{executionID}", s.handlePrefill)
				r.Get("/{id}", s.handleGetReport)
				r.Put("/{id}", s.handleUpdateReport)
				r.Delete("/{id}", s.handleDeleteReport)
				r.Get("/{id}/export", s.handleExportReport)

				r.Post("/{id}/findings", s.handleAddReportFinding)
				r.Put("/{id}/findings/{findingID}", s.handleUpdateReportFinding)
				r.Delete("/{id}/findings/{findingID}", s.handleRemoveReportFinding)
			})

			r.Post("/ingest", s.handleIngest)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
