// Package web serves the portfolio page.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/gitfolio/internal/content"
	"github.com/louisbranch/gitfolio/internal/github"
	"github.com/louisbranch/gitfolio/internal/web/httpx"
)

const shutdownTimeout = 5 * time.Second

//go:embed static
var staticFS embed.FS

// Loader fetches the owner's profile and project list.
type Loader interface {
	Load(ctx context.Context, username string) (github.LoadResult, error)
}

// Config holds the web server configuration.
type Config struct {
	HTTPAddr string
	// SiteFS holds the site-local text resources (identity and about files).
	SiteFS fs.FS
	// Loader fetches profile data; required.
	Loader Loader
	// Username overrides owner resolution entirely when set.
	Username string
	// PagesDomain is the hosting suffix used for hostname-derived usernames.
	PagesDomain string
	// FallbackUsername is the owner used for loopback hosts.
	FallbackUsername string
	// HideFormWhenEmail suppresses the contact form when a contact email is
	// known, showing a mailto notice instead.
	HideFormWhenEmail bool
	Logger            *log.Logger
}

// Server renders the portfolio page over HTTP.
type Server struct {
	cfg    Config
	store  *content.Store
	loader Loader
	logger *log.Logger
}

// NewServer builds a portfolio server from configuration.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Loader == nil {
		return nil, errors.New("web: loader is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:    cfg,
		store:  content.NewStore(cfg.SiteFS),
		loader: cfg.Loader,
		logger: logger,
	}, nil
}

// Handler returns the routed HTTP handler with shared middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", httpx.Chain(http.HandlerFunc(s.handleHome), httpx.RequireMethod(http.MethodGet)))
	mux.Handle("/theme", httpx.Chain(http.HandlerFunc(s.handleThemeToggle), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/contact", httpx.Chain(http.HandlerFunc(s.handleContactSubmit), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/healthz", httpx.Chain(http.HandlerFunc(s.handleHealth), httpx.RequireMethod(http.MethodGet)))
	mux.Handle("/static/", http.FileServer(http.FS(staticFS)))

	return httpx.Chain(mux, httpx.RequestID(), httpx.RequestLogger(s.logger))
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.Handler(),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
