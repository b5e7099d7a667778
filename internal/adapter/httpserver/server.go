package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lincooln/dockboard/internal/app"
	"github.com/lincooln/dockboard/internal/domain"
	"github.com/lincooln/dockboard/internal/platform/config"
	"github.com/lincooln/dockboard/web"
)

type appService interface {
	DashboardServices(ctx context.Context) ([]domain.Service, error)
	AdminServices(ctx context.Context) ([]domain.Service, error)
	HideService(ctx context.Context, containerID string) error
	UpdateOverride(ctx context.Context, containerID string, patch domain.OverridePatch) error
	DeleteOverride(ctx context.Context, containerID string) error

	SortSettings(ctx context.Context) (domain.SortSettings, error)
	UpdateSortSettings(ctx context.Context, patch domain.SortSettingsPatch) error
	ResetViewSettings(ctx context.Context) error
	UISettings(ctx context.Context) (domain.UISettings, error)
	UpdateUISettings(ctx context.Context, settings domain.UISettings) error
	DiskSettings(ctx context.Context) (domain.DiskSettings, error)
	UpdateDiskSettings(ctx context.Context, settings domain.DiskSettings) error

	Favorites(ctx context.Context) ([]domain.Favorite, error)
	UpdateFavorites(ctx context.Context, favorites []domain.Favorite) error
	DeleteFavorite(ctx context.Context, id string) error

	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error

	Stats(ctx context.Context) app.Stats
	PageStats(ctx context.Context) app.PageStats
	ContainerUsage(ctx context.Context) ([]domain.ContainerStats, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app appService

	templates    *template.Template
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app appService, healthChecks []HealthCheck) (*Server, error) {
	templates, err := template.ParseFS(web.TemplateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		templates:    templates,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Template execution failed", "path", c.Request().URL.Path, "error", err)
		if err := c.String(http.StatusInternalServerError, "Failed to render page"); err != nil {
			return fmt.Errorf("failed to send error response: %w", err)
		}
		return nil
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}
