package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net"
	"net/http"
	"time"

	"loandash/internal/charts"
	"loandash/internal/dashboard"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

//go:embed templates static content
var embeddedFiles embed.FS

// Server serves the dashboard page and its htmx callbacks
type Server struct {
	router    *gin.Engine
	dash      *dashboard.Dashboard
	sessions  *dashboard.SessionStore
	exporter  *charts.Exporter
	templates *template.Template
	about     template.HTML
	files     fs.FS
}

// NewServer creates a new web server instance. exporter may be nil.
func NewServer(dash *dashboard.Dashboard, exporter *charts.Exporter) *Server {
	return &Server{
		router:   gin.Default(),
		dash:     dash,
		sessions: dashboard.NewSessionStore(dash, dashboard.DefaultMaxSessions),
		exporter: exporter,
		files:    embeddedFiles,
	}
}

// Initialize parses templates and registers middleware and routes
func (s *Server) Initialize() error {
	funcMap := template.FuncMap{
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
		"num": func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(s.files, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = templates

	about, err := renderMarkdown(s.files, "content/about.md")
	if err != nil {
		log.Printf("[TemplateInit] About panel unavailable: %v", err)
	}
	s.about = about

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	// htmx callbacks
	s.router.POST("/api/controls/:control", s.handleControl)
	s.router.GET("/api/charts/:chart", s.handleChart)
	s.router.GET("/api/charts/:chart/standalone", s.handleStandalone)

	if s.exporter.Enabled() {
		s.router.GET("/exports/*file", gin.WrapH(s.exportsHandler()))
	}
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled
func (s *Server) Start(ctx context.Context, addr string) error {
	log.Printf("Starting loan dashboard on http://localhost%s", addr)

	eg, egctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
