// Package clubsite is the content backend for a student nonprofit's
// marketing website. It serves the JSON documents behind the public pages
// (events, gallery, pages, programs, projects), a password-gated admin API
// that edits them, image uploads, and an AI-assisted image categorizer.
package clubsite

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atldatalab/clubsite/analytics"
	"github.com/atldatalab/clubsite/vision"
)

// App is the central clubsite application. It wires together the storage
// adapter, the authentication gate, the content repositories, the vision
// client, and the HTTP surface.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Storage Storage
	Gate    *Gate

	Content  *ContentRepo
	Pages    *PagesRepo
	Programs *ProgramsRepo
	Projects *ProjectsRepo

	Vision *vision.Client

	metrics        *prometheus.Registry
	analyticsStore *analytics.Store
	analyticsSalt  string
	customRoutes   []func(*App)
}

// New creates a new clubsite App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:  cfg,
		Echo:    echo.New(),
		metrics: prometheus.NewRegistry(),
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes storage, repositories, auth, middleware, and routes,
// then starts the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init wires every component without starting the listener.
func (a *App) init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("clubsite: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("clubsite: SessionSecret is required")
	}

	// Storage backend is chosen exactly once, from explicit configuration.
	if a.Storage == nil {
		if a.Config.S3Bucket != "" {
			s3store, err := NewS3Storage(a.Config.S3Bucket, a.Config.S3Region, a.Config.S3BaseURL)
			if err != nil {
				return fmt.Errorf("clubsite: init s3 storage: %w", err)
			}
			a.Storage = s3store
		} else {
			uploadsDir := filepath.Join(a.Config.StaticDir, "uploads")
			a.Storage = NewFSStorage(a.Config.DataDir, uploadsDir)
		}
	}

	locks := newDocLocks()
	a.Content = NewContentRepo(a.Storage, locks)
	a.Pages = NewPagesRepo(a.Storage, locks)
	a.Programs = NewProgramsRepo(a.Storage, locks)
	a.Projects = NewProjectsRepo(a.Storage, locks)

	a.Gate = NewGate(a.Config.AdminPassword, newLoginLimiter(5, time.Minute))

	if a.Vision == nil && a.Config.VisionAPIKey != "" {
		client, err := vision.NewClient(context.Background(), vision.Config{
			APIKey: a.Config.VisionAPIKey,
			Model:  a.Config.VisionModel,
		})
		if err != nil {
			return fmt.Errorf("clubsite: init vision client: %w", err)
		}
		a.Vision = client
	}

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("clubsite: init analytics: %w", err)
		}
		salt, err := analytics.InitSalt(store)
		if err != nil {
			return fmt.Errorf("clubsite: init analytics salt: %w", err)
		}
		a.analyticsStore = store
		a.analyticsSalt = salt
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", a.handleHealth)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.metrics,
	}))

	// Uploaded images are only served from disk with local storage; the S3
	// adapter returns absolute URLs instead.
	e.Static("/uploads", filepath.Join(a.Config.StaticDir, "uploads"))

	api := e.Group("/api")

	api.POST("/auth", a.handleLogin)
	api.GET("/auth", a.handleAuthStatus)
	api.DELETE("/auth", a.handleLogout)

	api.GET("/content", a.handleContentList)
	api.GET("/content/:id", a.handleContentGet)
	api.POST("/content", a.handleContentCreate)
	api.PUT("/content/:id", a.handleContentUpdate)
	api.DELETE("/content/:id", a.handleContentDelete)

	api.GET("/pages", a.handlePagesGet)
	api.PUT("/pages", a.handlePagesUpdate)

	api.GET("/programs", a.handleProgramsGet)
	api.PUT("/programs", a.handleProgramsPut)
	api.POST("/programs", a.handleProgramsPost)
	api.DELETE("/programs", a.handleProgramsDelete)

	api.GET("/projects", a.handleProjectsGet)
	api.PUT("/projects", a.handleProjectsPut)
	api.POST("/projects", a.handleProjectsPost)
	api.PATCH("/projects", a.handleProjectsPatch)
	api.DELETE("/projects", a.handleProjectsDelete)

	api.POST("/gallery-upload", a.handleGalleryUpload)
	api.POST("/team-image", a.handleTeamImage)

	api.POST("/analyze-image", a.handleAnalyzeImage)
	api.POST("/analyze-schedule", a.handleAnalyzeSchedule)

	api.POST("/seed", a.handleSeed)

	api.GET("/admin/stats", a.handleAdminStats)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("clubsite: required environment variable %s is not set", key)
	}
	return v
}
