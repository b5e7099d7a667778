package httpserver

import (
	"context"
	"html/template"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lincooln/dockboard/internal/app"
	"github.com/lincooln/dockboard/internal/domain"
	"github.com/lincooln/dockboard/internal/platform/config"
)

// --- Mock implementations ---

type mockAppService struct {
	dashboardServicesFn  func(ctx context.Context) ([]domain.Service, error)
	adminServicesFn      func(ctx context.Context) ([]domain.Service, error)
	hideServiceFn        func(ctx context.Context, id string) error
	updateOverrideFn     func(ctx context.Context, id string, patch domain.OverridePatch) error
	deleteOverrideFn     func(ctx context.Context, id string) error
	sortSettingsFn       func(ctx context.Context) (domain.SortSettings, error)
	updateSortSettingsFn func(ctx context.Context, patch domain.SortSettingsPatch) error
	resetViewSettingsFn  func(ctx context.Context) error
	uiSettingsFn         func(ctx context.Context) (domain.UISettings, error)
	updateUISettingsFn   func(ctx context.Context, settings domain.UISettings) error
	diskSettingsFn       func(ctx context.Context) (domain.DiskSettings, error)
	updateDiskSettingsFn func(ctx context.Context, settings domain.DiskSettings) error
	favoritesFn          func(ctx context.Context) ([]domain.Favorite, error)
	updateFavoritesFn    func(ctx context.Context, favorites []domain.Favorite) error
	deleteFavoriteFn     func(ctx context.Context, id string) error
	startContainerFn     func(ctx context.Context, id string) error
	stopContainerFn      func(ctx context.Context, id string) error
	statsFn              func(ctx context.Context) app.Stats
	pageStatsFn          func(ctx context.Context) app.PageStats
	containerUsageFn     func(ctx context.Context) ([]domain.ContainerStats, error)
}

func (m *mockAppService) DashboardServices(ctx context.Context) ([]domain.Service, error) {
	if m.dashboardServicesFn != nil {
		return m.dashboardServicesFn(ctx)
	}
	return []domain.Service{}, nil
}

func (m *mockAppService) AdminServices(ctx context.Context) ([]domain.Service, error) {
	if m.adminServicesFn != nil {
		return m.adminServicesFn(ctx)
	}
	return []domain.Service{}, nil
}

func (m *mockAppService) HideService(ctx context.Context, id string) error {
	if m.hideServiceFn != nil {
		return m.hideServiceFn(ctx, id)
	}
	return nil
}

func (m *mockAppService) UpdateOverride(ctx context.Context, id string, patch domain.OverridePatch) error {
	if m.updateOverrideFn != nil {
		return m.updateOverrideFn(ctx, id, patch)
	}
	return nil
}

func (m *mockAppService) DeleteOverride(ctx context.Context, id string) error {
	if m.deleteOverrideFn != nil {
		return m.deleteOverrideFn(ctx, id)
	}
	return nil
}

func (m *mockAppService) SortSettings(ctx context.Context) (domain.SortSettings, error) {
	if m.sortSettingsFn != nil {
		return m.sortSettingsFn(ctx)
	}
	return domain.DefaultSortSettings(), nil
}

func (m *mockAppService) UpdateSortSettings(ctx context.Context, patch domain.SortSettingsPatch) error {
	if m.updateSortSettingsFn != nil {
		return m.updateSortSettingsFn(ctx, patch)
	}
	return nil
}

func (m *mockAppService) ResetViewSettings(ctx context.Context) error {
	if m.resetViewSettingsFn != nil {
		return m.resetViewSettingsFn(ctx)
	}
	return nil
}

func (m *mockAppService) UISettings(ctx context.Context) (domain.UISettings, error) {
	if m.uiSettingsFn != nil {
		return m.uiSettingsFn(ctx)
	}
	return domain.DefaultUISettings(), nil
}

func (m *mockAppService) UpdateUISettings(ctx context.Context, settings domain.UISettings) error {
	if m.updateUISettingsFn != nil {
		return m.updateUISettingsFn(ctx, settings)
	}
	return nil
}

func (m *mockAppService) DiskSettings(ctx context.Context) (domain.DiskSettings, error) {
	if m.diskSettingsFn != nil {
		return m.diskSettingsFn(ctx)
	}
	return domain.DefaultDiskSettings(), nil
}

func (m *mockAppService) UpdateDiskSettings(ctx context.Context, settings domain.DiskSettings) error {
	if m.updateDiskSettingsFn != nil {
		return m.updateDiskSettingsFn(ctx, settings)
	}
	return nil
}

func (m *mockAppService) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	if m.favoritesFn != nil {
		return m.favoritesFn(ctx)
	}
	return []domain.Favorite{}, nil
}

func (m *mockAppService) UpdateFavorites(ctx context.Context, favorites []domain.Favorite) error {
	if m.updateFavoritesFn != nil {
		return m.updateFavoritesFn(ctx, favorites)
	}
	return nil
}

func (m *mockAppService) DeleteFavorite(ctx context.Context, id string) error {
	if m.deleteFavoriteFn != nil {
		return m.deleteFavoriteFn(ctx, id)
	}
	return nil
}

func (m *mockAppService) StartContainer(ctx context.Context, id string) error {
	if m.startContainerFn != nil {
		return m.startContainerFn(ctx, id)
	}
	return nil
}

func (m *mockAppService) StopContainer(ctx context.Context, id string) error {
	if m.stopContainerFn != nil {
		return m.stopContainerFn(ctx, id)
	}
	return nil
}

func (m *mockAppService) Stats(ctx context.Context) app.Stats {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return app.Stats{}
}

func (m *mockAppService) PageStats(ctx context.Context) app.PageStats {
	if m.pageStatsFn != nil {
		return m.pageStatsFn(ctx)
	}
	return app.PageStats{Hostname: "test-host"}
}

func (m *mockAppService) ContainerUsage(ctx context.Context) ([]domain.ContainerStats, error) {
	if m.containerUsageFn != nil {
		return m.containerUsageFn(ctx)
	}
	return []domain.ContainerStats{}, nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	tmpl := template.Must(template.New("index.html").Parse(`Dashboard {{len .Services}} services`))
	template.Must(tmpl.New("settings.html").Parse(`Settings {{.SortSettings.Method}} {{.Message}}`))
	template.Must(tmpl.New("appearance.html").Parse(`Appearance {{.UISettings.Background}}`))
	template.Must(tmpl.New("favorites.html").Parse(`Favorites {{len .Favorites}}`))
	template.Must(tmpl.New("details.html").Parse(`Details {{.Stats.Hostname}}`))

	e := echo.New()

	srv := &Server{
		echo:      e,
		config:    &config.Config{Port: "8080", DataDir: ".", StatsCacheTTL: 2 * time.Second},
		app:       app,
		templates: tmpl,
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}
