// Package web serves the asset console: login, per-category lists, detail and
// edit pages, usage history and spreadsheet reports, all backed by the REST
// store through internal/api.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/itams/internal/api"
	"github.com/JonMunkholm/itams/internal/config"
	"github.com/JonMunkholm/itams/internal/view"
	"github.com/JonMunkholm/itams/internal/web/middleware"
)

//go:embed static
var staticFiles embed.FS

// Server is the HTTP server of the console.
type Server struct {
	client  *api.Client
	cfg     *config.Config
	pages   *renderer
	imports *ImportLimiter
	router  *chi.Mux
	server  *http.Server

	limiters []*rateLimiter

	// now is the clock used for token expiry and history defaults.
	now func() time.Time
}

// NewServer wires routes and middleware around client. The client carries no
// session; each request binds its own cookie state.
func NewServer(client *api.Client, cfg *config.Config) (*Server, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		client:  client,
		cfg:     cfg,
		pages:   pages,
		imports: NewImportLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime),
		router:  chi.NewRouter(),
		now:     time.Now,
	}
	s.setupMiddleware()
	if err := s.setupRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(middleware.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))
	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))
	s.router.Use(middleware.Sessions(s.cfg.Security.SecureCookies))

	if s.cfg.Rate.Enabled {
		s.router.Use(s.newLimiter(s.cfg.Rate.RequestsPerMinute).middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("static files: %w", err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.Get("/health", s.handleHealth)

	s.router.Get(view.LoginPath, s.handleLoginPage)
	s.router.With(s.limit(s.cfg.Rate.LoginLimit)).Post(view.LoginPath, s.handleLogin)
	s.router.Post("/logout", s.handleLogout)
	s.router.Post("/theme", s.handleTheme)

	s.router.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(view.LoginPath, s.clock))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, view.DashboardPath, http.StatusSeeOther)
		})
		r.Get(view.DashboardPath, s.handleDashboard)

		r.Get("/assets/{category}", s.handleList)
		r.Get("/assets/{category}/new", s.handleNewAsset)
		r.Post("/assets/{category}/new", s.handleCreateAsset)

		r.Route("/asset/{id}", func(r chi.Router) {
			r.Get("/", s.handleDetail)
			r.Get("/edit", s.handleEditAsset)
			r.Post("/edit", s.handleUpdateAsset)
			r.Get("/delete", s.handleDeletePage)
			r.Post("/delete", s.handleDelete)
			r.Get("/history/new", s.handleNewHistory)
			r.Post("/history/new", s.handleAddHistory)
		})

		r.Get(view.ReportsPath, s.handleReports)
		r.Get(view.ReportsPath+"/export", s.handleExport)
		r.With(s.limit(s.cfg.Rate.UploadLimit)).Post(view.ReportsPath+"/import", s.handleImport)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, r, api.ErrNotFound, http.StatusNotFound)
	})
	return nil
}

// limit returns a per-route rate limit, or a no-op when limiting is disabled.
func (s *Server) limit(perMinute int) func(http.Handler) http.Handler {
	if !s.cfg.Rate.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return s.newLimiter(perMinute).middleware
}

func (s *Server) newLimiter(perMinute int) *rateLimiter {
	rl := newRateLimiter(perMinute, time.Minute)
	s.limiters = append(s.limiters, rl)
	return rl
}

func (s *Server) clock() time.Time {
	return s.now()
}

// Start listens on the configured address until Shutdown.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	slog.Info("listening", "addr", s.server.Addr, "api", s.client.BaseURL())
	return s.server.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	for _, rl := range s.limiters {
		rl.stop()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// ImportStatus reports the import limiter state.
func (s *Server) ImportStatus() ImportLimiterStatus {
	return s.imports.Status()
}

// WaitForImports blocks until running imports finish or ctx ends.
func (s *Server) WaitForImports(ctx context.Context) error {
	return s.imports.WaitForDrain(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' https: data:; form-action 'self'; frame-ancestors 'none'"

// securityHeaders adds security headers to all responses. Asset pictures are
// external URLs, so images may load from any https origin.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if enableCSP {
				h.Set("Content-Security-Policy", contentSecurityPolicy)
			}
			next.ServeHTTP(w, r)
		})
	}
}

type healthResponse struct {
	Status  string              `json:"status"`
	API     string              `json:"api"`
	Imports ImportLimiterStatus `json:"imports"`
}

// handleHealth reports liveness. It does not contact the store.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		API:     s.client.BaseURL(),
		Imports: s.imports.Status(),
	})
}
