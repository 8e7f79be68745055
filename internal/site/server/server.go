// Package server serves the landing page, its stylesheet and the WebAssembly bundle.
package server

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Its-donkey/landing/internal/contract"
	"github.com/Its-donkey/landing/internal/site/config"
	"github.com/Its-donkey/landing/internal/site/content"
	"github.com/Its-donkey/landing/logging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/styles.css
var stylesheet []byte

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Options configures the site server.
type Options struct {
	Config config.Config
	Logger *logging.Logger
	// Sections overrides the Markdown copy loaded from Config.Content.
	Sections []content.Section
	// Now is used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Server renders the landing page and serves the browser assets.
type Server struct {
	cfg      config.Config
	logger   *logging.Logger
	home     *template.Template
	sections []content.Section
	now      func() time.Time
	router   chi.Router
}

type navItem struct {
	ID    string
	Title string
}

type pageData struct {
	PageTitle       string
	Description     string
	SiteName        string
	BrowserLogLevel string
	CurrentYear     int
	Nav             []navItem
	Sections        []content.Section
}

// New parses the page templates, loads the copy and wires the routes.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	home, err := template.New("home").ParseFS(templateFS, "templates/base.tmpl", "templates/home.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse home templates: %w", err)
	}

	sections := opts.Sections
	if sections == nil {
		sections, err = content.Load(opts.Config.Content)
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
	}

	s := &Server{
		cfg:      opts.Config,
		logger:   opts.Logger,
		home:     home,
		sections: sections,
		now:      opts.Now,
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(logging.NewHTTPLogger(s.logger).Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/", s.handleHome)
	r.Get("/styles.css", s.handleStyles)
	r.Get("/wasm_exec.js", s.assetHandler("wasm_exec.js", "text/javascript; charset=utf-8"))
	r.Get("/main.wasm", s.assetHandler("main.wasm", "application/wasm"))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) pageData() pageData {
	nav := make([]navItem, 0, len(s.sections))
	for _, sec := range s.sections {
		if sec.ID != "" && sec.Title != "" {
			nav = append(nav, navItem{ID: sec.ID, Title: sec.Title})
		}
	}
	return pageData{
		PageTitle:       s.cfg.SiteName + " - " + s.cfg.Description,
		Description:     s.cfg.Description,
		SiteName:        s.cfg.SiteName,
		BrowserLogLevel: s.cfg.BrowserLogLevel,
		CurrentYear:     s.now().Year(),
		Nav:             nav,
		Sections:        s.sections,
	}
}

// Render writes the home page markup.
func (s *Server) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.home.ExecuteTemplate(&buf, "base", s.pageData()); err != nil {
		return nil, fmt.Errorf("render home: %w", err)
	}
	return buf.Bytes(), nil
}

// Check renders the home page and inspects it for the markup the browser bundle binds to.
func (s *Server) Check() (contract.Report, error) {
	page, err := s.Render()
	if err != nil {
		return contract.Report{}, err
	}
	return contract.Inspect("/", bytes.NewReader(page))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := s.Render()
	if err != nil {
		s.logger.WithRequestID(logging.RequestID(r.Context())).WithCategory("render").Error("Home page render failed", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(stylesheet)
}

func (s *Server) assetHandler(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(s.cfg.Assets, name)
		if _, err := os.Stat(path); err != nil {
			s.logger.WithRequestID(logging.RequestID(r.Context())).
				WithCategory("assets").
				WithField("path", path).
				Warn("Asset not found; build the WebAssembly bundle first")
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		http.ServeFile(w, r, path)
	}
}

// Run checks the page markup, then serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	report, err := s.Check()
	if err != nil {
		return err
	}
	s.logReport(report)

	server := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	s.logger.Info("server", fmt.Sprintf("Serving %s on http://%s", s.cfg.SiteName, s.cfg.Listen), map[string]any{
		"assets":   s.cfg.Assets,
		"sections": len(s.sections),
	})

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	}
}

func (s *Server) logReport(report contract.Report) {
	if failed := report.Failed(); len(failed) > 0 {
		s.logger.Warn("contract", "Page is missing markup the browser bundle requires", map[string]any{
			"missing": failed,
		})
	}
	if absent := report.Absent(); len(absent) > 0 {
		s.logger.Debug("contract", "Optional page features absent", map[string]any{
			"absent": absent,
		})
	}
}
