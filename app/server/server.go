// Package server provides HTTP server for the link hub.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/linkhub/app/enum"
	"github.com/umputun/linkhub/app/links"
	"github.com/umputun/linkhub/app/server/api"
	"github.com/umputun/linkhub/app/server/internal"
	"github.com/umputun/linkhub/app/server/web"
)

// PreferenceStore defines the interface for visitor preference storage.
// Defined here (consumer side) to allow different store implementations.
type PreferenceStore interface {
	Get(ctx context.Context, visitor string) (string, error)
	Set(ctx context.Context, visitor, theme string) error
	Delete(ctx context.Context, visitor string) error
}

// Server represents the HTTP server.
type Server struct {
	cfg        Config
	version    string
	baseURL    string
	checker    *LinkChecker // nil when link checking is disabled
	apiHandler *api.Handler
	webHandler *web.Handler
	staticFS   fs.FS // embedded static files
}

// Config holds server configuration.
type Config struct {
	Address         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	Version         string
	BaseURL         string       // base URL path for reverse proxy (e.g., /hub)
	Storage         enum.Storage // where theme preferences are kept

	// link checker, disabled if interval is 0
	LinkCheckInterval time.Duration
	LinkCheckTimeout  time.Duration

	// limits
	BodySizeLimit  int64 // max request body size in bytes
	RequestsPerSec int64 // max requests per second
}

// New creates a new Server instance.
// st is required for db storage only, pass nil for cookie storage.
func New(st PreferenceStore, catalogue links.Catalogue, cfg Config) (*Server, error) {
	if cfg.Storage == enum.StorageDB && st == nil {
		return nil, errors.New("db storage requires a preference store")
	}

	staticContent, err := web.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		version:  cfg.Version,
		baseURL:  cfg.BaseURL,
		staticFS: staticContent,
	}

	env := internal.EnvConfig{Storage: cfg.Storage, BaseURL: cfg.BaseURL}
	if st != nil {
		env.Store = st
	}

	// create web handler
	webHandler, err := web.New(web.Config{
		BaseURL:   cfg.BaseURL,
		Version:   cfg.Version,
		Env:       env,
		Catalogue: catalogue,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create web handler: %w", err)
	}
	s.webHandler = webHandler

	// create api handler, link status is served only when the checker runs
	var source api.StatusSource
	if cfg.LinkCheckInterval > 0 {
		s.checker = NewLinkChecker(catalogue.Links, LinkCheckerConfig{
			Interval: cfg.LinkCheckInterval,
			Timeout:  s.linkCheckTimeout(),
		})
		source = s.checker
	}
	s.apiHandler = api.New(env, catalogue, source)

	return s, nil
}

// Run starts the HTTP server and blocks until context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	if s.checker != nil {
		go s.checker.Run(ctx)
	}

	// graceful shutdown
	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] shutdown error: %v", err)
		}
	}()

	log.Printf("[DEBUG] started server on %s", s.cfg.Address)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// handler returns the HTTP handler, wrapping routes with base URL support if configured.
func (s *Server) handler() http.Handler {
	routes := s.routes()
	if s.baseURL == "" {
		return routes
	}
	mux := http.NewServeMux()
	// redirect /base to /base/
	mux.HandleFunc(s.baseURL, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.baseURL+"/", http.StatusMovedPermanently)
	})
	// strip prefix for all routes under base URL
	mux.Handle(s.baseURL+"/", http.StripPrefix(s.baseURL, routes))
	return mux
}

// routes configures and returns the HTTP handler with all routes and middleware.
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	// global middleware (applies to all routes)
	router.Use(
		rest.Recoverer(log.Default()),
		rest.RealIP, // must be before Throttle to rate-limit by real client IP
		rest.Throttle(s.requestsPerSec()),
		rest.Trace,
		rest.SizeLimit(s.bodySizeLimit()),
		rest.AppInfo("linkhub", "umputun", s.version),
		rest.Ping,
		internal.ClientHints,
	)

	router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(s.staticFS))))

	// web UI routes
	router.Group().Route(s.webHandler.Register)

	// json API routes
	router.Mount("/api").Route(s.apiHandler.Register)

	return router
}

// bodySizeLimit returns the configured body size limit, or default 64KB if not set.
func (s *Server) bodySizeLimit() int64 {
	if s.cfg.BodySizeLimit > 0 {
		return s.cfg.BodySizeLimit
	}
	return 64 * 1024 // 64KB default
}

// requestsPerSec returns the configured requests per second limit, or default 1000 if not set.
func (s *Server) requestsPerSec() int64 {
	if s.cfg.RequestsPerSec > 0 {
		return s.cfg.RequestsPerSec
	}
	return 1000 // default
}

// linkCheckTimeout returns the configured link check timeout, or default 10s if not set.
func (s *Server) linkCheckTimeout() time.Duration {
	if s.cfg.LinkCheckTimeout > 0 {
		return s.cfg.LinkCheckTimeout
	}
	return 10 * time.Second
}
