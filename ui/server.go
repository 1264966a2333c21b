package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"launchdash/internal"
	"launchdash/internal/dashboard"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html static
var embeddedFiles embed.FS

var logger = internal.DefaultLogger.With("ui")

// Config holds web server settings
type Config struct {
	GinMode           string
	SummaryConfidence float64
}

// Server serves the dashboard page and its chart callbacks
type Server struct {
	router     *gin.Engine
	dash       *dashboard.Dashboard
	templates  *template.Template
	confidence float64
	pageConfig string
}

// pageConfig is handed to the page script: bindings, defaults and slider extent
type pageConfig struct {
	Bindings []dashboard.Binding    `json:"bindings"`
	Defaults dashboard.ControlState `json:"defaults"`
	Slider   dashboard.RangeSlider  `json:"slider"`
	Endpoint string                 `json:"endpoint"`
}

// NewServer creates the web server for dash
func NewServer(dash *dashboard.Dashboard, config Config) (*Server, error) {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	templates, err := template.New("").Funcs(template.FuncMap{
		"headingStyle": headingStyle,
	}).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	cfg, err := json.Marshal(pageConfig{
		Bindings: dash.Bindings(),
		Defaults: dash.DefaultState(),
		Slider:   dash.Page().Slider,
		Endpoint: "/api/callbacks/",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode page config: %w", err)
	}

	s := &Server{
		router:     gin.New(),
		dash:       dash,
		templates:  templates,
		confidence: config.SummaryConfidence,
		pageConfig: string(cfg),
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()

	return s, nil
}

// setupMiddleware configures Gin middleware and static assets
func (s *Server) setupMiddleware() error {
	s.router.Use(gin.Recovery())
	s.router.Use(RequestID())
	s.router.Use(AccessLog())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)

	api := s.router.Group("/api")
	api.GET("/layout", s.handleLayout)
	api.POST("/callbacks/:output", s.handleCallback)
	api.GET("/summary", s.handleSummary)

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "code": "NOT_FOUND"})
	})
}

// Handler exposes the router for an http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}

func headingStyle(style dashboard.Style) template.CSS {
	return template.CSS(fmt.Sprintf("text-align: %s; color: %s; font-size: %dpx", style.TextAlign, style.Color, style.FontSize))
}
