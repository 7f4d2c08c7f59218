package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sssbpuc/campusd/internal/handler"
	"github.com/sssbpuc/campusd/internal/server/middleware"
	"github.com/sssbpuc/campusd/internal/service"
	"github.com/sssbpuc/campusd/internal/store"
)

// Config holds the HTTP server configuration.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
	// PublicRequestsPerMinute is the per-IP throttle on the public surface.
	PublicRequestsPerMinute int
}

// DefaultConfig returns a Config with sensible production defaults. The
// public surface is intentionally open to any origin: the admission form
// and portal pages are static-hosted separately from this API.
func DefaultConfig() Config {
	return Config{
		Host:                    "0.0.0.0",
		Port:                    8080,
		ShutdownTimeout:         30 * time.Second,
		CORSOrigins:             []string{"*"},
		PublicRequestsPerMinute: 60,
	}
}

// Server is the top-level HTTP server for campusd. It owns the Chi router,
// the datastore, and the intake, portal, and auth services.
type Server struct {
	cfg        Config
	router     chi.Router
	store      *store.Store
	intake     *service.IntakeService
	portal     *service.PortalService
	authSvc    *service.AuthService
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a new Server with all routes and middleware wired, ready for
// ListenAndServe.
func New(cfg Config, st *store.Store, intake *service.IntakeService, portal *service.PortalService, authSvc *service.AuthService, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		store:   st,
		intake:  intake,
		portal:  portal,
		authSvc: authSvc,
		logger:  logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chimw.Compress(5))

	// --- Health checks ---
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	admissionHandler := handler.NewAdmissionHandler(s.intake, s.store)
	portalHandler := handler.NewPortalHandler(s.portal)
	staffHandler := handler.NewStaffHandler(s.store)
	contentHandler := handler.NewContentHandler(s.store)
	portalUserHandler := handler.NewPortalUserHandler(s.store)
	sysHandler := handler.NewSystemHandler(s.store, s.authSvc)

	r.Route("/api/v1", func(r chi.Router) {

		// Public surface: admission intake, portal login, directory, content.
		r.Group(func(r chi.Router) {
			if s.cfg.PublicRequestsPerMinute > 0 {
				r.Use(middleware.ThrottlePublic(s.cfg.PublicRequestsPerMinute))
			}

			r.Post("/admissions", admissionHandler.Submit)
			r.Post("/portal/login", portalHandler.Login)
			r.Get("/staff", staffHandler.ListPublic)
			r.Get("/content", contentHandler.GetAll)
			r.Get("/content/{section}", contentHandler.GetOne)
		})

		// Admin session endpoints: login is unauthenticated by nature.
		r.Post("/system/admin/session", sysHandler.Login)
		r.Delete("/system/admin/session", sysHandler.Logout)

		// Admin surface: everything behind a valid session token.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authenticate(s.authSvc))

			r.Get("/admins", sysHandler.ListAdmins)

			r.Get("/submissions", admissionHandler.List)
			r.Get("/submissions/{id}", admissionHandler.Get)
			r.Patch("/submissions/{id}/status", admissionHandler.UpdateStatus)
			r.Delete("/submissions/{id}", admissionHandler.Delete)

			r.Get("/staff", staffHandler.ListAdmin)
			r.Post("/staff", staffHandler.Create)
			r.Put("/staff/{id}", staffHandler.Update)
			r.Patch("/staff/{id}/active", staffHandler.SetActive)
			r.Delete("/staff/{id}", staffHandler.Delete)

			r.Get("/portal-users", portalUserHandler.List)
			r.Post("/portal-users", portalUserHandler.Create)
			r.Put("/portal-users/{id}", portalUserHandler.Update)
			r.Patch("/portal-users/{id}/active", portalUserHandler.SetActive)
			r.Delete("/portal-users/{id}", portalUserHandler.Delete)

			r.Put("/content/{section}", contentHandler.Put)
		})
	})

	s.router = r
}

// handleHealthz is a liveness probe. Returns 200 if the process is running.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleReadyz is a readiness probe. Returns 200 when the datastore is
// reachable, 503 otherwise.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := s.store.Ping(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"degraded"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// ListenAndServe starts the HTTP server and blocks until SIGINT or SIGTERM,
// then drains in-flight requests before returning.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Router returns the underlying Chi router, useful for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler, delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
