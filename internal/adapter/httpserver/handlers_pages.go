package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lincooln/dockboard/internal/domain"
)

// maxFavoriteSlots bounds the favorites form.
const maxFavoriteSlots = 10

func (s *Server) registerPageRoutes() {
	s.echo.GET("/", s.handleDashboardPage)
	s.echo.GET("/settings", s.handleSettingsPage)
	s.echo.GET("/appearance", s.handleAppearancePage)
	s.echo.GET("/favorites", s.handleFavoritesPage)
	s.echo.GET("/details", s.handleDetailsPage)

	s.echo.POST("/settings/sort", s.handleSaveSortForm)
	s.echo.POST("/settings/containers", s.handleSaveContainersForm)
	s.echo.POST("/settings/disks", s.handleSaveDisksForm)
	s.echo.POST("/appearance/save", s.handleSaveAppearanceForm)
	s.echo.POST("/favorites/save", s.handleSaveFavoritesForm)
}

// favoriteView decorates a favorite for templates: icons that are URLs
// render as images rather than text.
type favoriteView struct {
	domain.Favorite
	IsURLIcon bool
}

// favoriteSlots pads the favorites out to the form's fixed slot count so the
// edit page always shows every row.
func favoriteSlots(favorites []domain.Favorite) []favoriteView {
	slots := favoriteViews(favorites)
	for len(slots) < maxFavoriteSlots {
		slots = append(slots, favoriteView{})
	}
	return slots[:maxFavoriteSlots]
}

func favoriteViews(favorites []domain.Favorite) []favoriteView {
	views := make([]favoriteView, 0, len(favorites))
	for _, fav := range favorites {
		views = append(views, favoriteView{
			Favorite:  fav,
			IsURLIcon: strings.HasPrefix(fav.Icon, "http"),
		})
	}
	return views
}

// handleDashboardPage renders the main dashboard. A failing discovery never
// produces an error page: the service list just comes up empty.
func (s *Server) handleDashboardPage(c echo.Context) error {
	ctx := c.Request().Context()

	services, err := s.app.DashboardServices(ctx)
	if err != nil {
		slog.Error("Failed to list services for dashboard", "error", err)
		services = []domain.Service{}
	}

	favorites, err := s.app.Favorites(ctx)
	if err != nil {
		slog.Warn("Failed to load favorites", "error", err)
	}

	ui, err := s.app.UISettings(ctx)
	if err != nil {
		ui = domain.DefaultUISettings()
	}

	data := map[string]any{
		"Services":   services,
		"Stats":      s.app.PageStats(ctx),
		"Favorites":  favoriteViews(favorites),
		"UISettings": ui,
	}
	return s.renderTemplate(c, "index.html", data)
}

func (s *Server) handleSettingsPage(c echo.Context) error {
	ctx := c.Request().Context()

	var message string
	if c.QueryParam("reset") == "1" {
		if err := s.app.ResetViewSettings(ctx); err != nil {
			slog.Error("Failed to reset view settings", "error", err)
			message = "Failed to reset settings"
		} else {
			message = "Settings restored to defaults"
		}
	}

	services, err := s.app.AdminServices(ctx)
	if err != nil {
		slog.Error("Failed to list services for settings", "error", err)
		services = []domain.Service{}
	}

	sortSettings, err := s.app.SortSettings(ctx)
	if err != nil {
		sortSettings = domain.DefaultSortSettings()
	}

	diskSettings, err := s.app.DiskSettings(ctx)
	if err != nil {
		diskSettings = domain.DefaultDiskSettings()
	}

	ui, err := s.app.UISettings(ctx)
	if err != nil {
		ui = domain.DefaultUISettings()
	}

	data := map[string]any{
		"Services":     services,
		"SortSettings": sortSettings,
		"DiskSettings": diskSettings,
		"UISettings":   ui,
		"Stats":        s.app.PageStats(ctx),
		"Message":      message,
	}
	return s.renderTemplate(c, "settings.html", data)
}

func (s *Server) handleAppearancePage(c echo.Context) error {
	ctx := c.Request().Context()

	ui, err := s.app.UISettings(ctx)
	if err != nil {
		ui = domain.DefaultUISettings()
	}

	data := map[string]any{
		"UISettings": ui,
		"Stats":      s.app.PageStats(ctx),
	}
	return s.renderTemplate(c, "appearance.html", data)
}

func (s *Server) handleFavoritesPage(c echo.Context) error {
	ctx := c.Request().Context()

	favorites, err := s.app.Favorites(ctx)
	if err != nil {
		slog.Warn("Failed to load favorites", "error", err)
	}

	ui, err := s.app.UISettings(ctx)
	if err != nil {
		ui = domain.DefaultUISettings()
	}

	data := map[string]any{
		"Favorites":  favoriteViews(favorites),
		"Slots":      favoriteSlots(favorites),
		"UISettings": ui,
		"Stats":      s.app.PageStats(ctx),
	}
	return s.renderTemplate(c, "favorites.html", data)
}

func (s *Server) handleDetailsPage(c echo.Context) error {
	ctx := c.Request().Context()

	ui, err := s.app.UISettings(ctx)
	if err != nil {
		ui = domain.DefaultUISettings()
	}

	data := map[string]any{
		"UISettings": ui,
		"Stats":      s.app.PageStats(ctx),
	}
	return s.renderTemplate(c, "details.html", data)
}

func (s *Server) handleSaveSortForm(c echo.Context) error {
	method := c.FormValue("method")
	if !validSortMethod(method) {
		method = domain.SortNameAsc
	}
	groupByStatus := c.FormValue("group_by_status") == "on"

	patch := domain.SortSettingsPatch{Method: &method, GroupByStatus: &groupByStatus}
	if err := s.app.UpdateSortSettings(c.Request().Context(), patch); err != nil {
		slog.Error("Failed to save sort settings", "error", err)
	}
	return redirect(c, "/settings")
}

// handleSaveContainersForm applies the settings page's bulk form: one row
// per container with hidden/name/url/icon inputs keyed by container ID.
func (s *Server) handleSaveContainersForm(c echo.Context) error {
	ctx := c.Request().Context()

	form, err := c.FormParams()
	if err != nil {
		return redirect(c, "/settings")
	}

	for _, id := range form["container_ids"] {
		visible := c.FormValue("hidden_"+id) != "on"
		patch := domain.OverridePatch{Visible: &visible}

		if name := strings.TrimSpace(c.FormValue("name_" + id)); name != "" {
			patch.CustomName = &name
		}
		if url := strings.TrimSpace(c.FormValue("url_" + id)); url != "" {
			patch.CustomURL = &url
		}
		if icon := strings.TrimSpace(c.FormValue("icon_" + id)); icon != "" {
			patch.Icon = &icon
		}

		if err := s.app.UpdateOverride(ctx, id, patch); err != nil {
			slog.Error("Failed to save container settings", "container_id", id, "error", err)
		}
	}
	return redirect(c, "/settings")
}

func (s *Server) handleSaveDisksForm(c echo.Context) error {
	settings := domain.DiskSettings{
		ShowSystem:  c.FormValue("show_system") == "on",
		ShowMounted: c.FormValue("show_mounted") == "on",
	}
	if err := s.app.UpdateDiskSettings(c.Request().Context(), settings); err != nil {
		slog.Error("Failed to save disk settings", "error", err)
	}
	return redirect(c, "/settings")
}

func (s *Server) handleSaveAppearanceForm(c echo.Context) error {
	defaults := domain.DefaultUISettings()
	settings := domain.UISettings{
		Background:     formValueOr(c, "background", defaults.Background),
		CardBackground: formValueOr(c, "card_background", defaults.CardBackground),
		TextColor:      formValueOr(c, "text_color", defaults.TextColor),
		AccentColor:    formValueOr(c, "accent_color", defaults.AccentColor),
		BorderColor:    formValueOr(c, "border_color", defaults.BorderColor),
		BorderRadius:   formValueOr(c, "border_radius", defaults.BorderRadius),
		FontSizeBase:   formValueOr(c, "font_size_base", defaults.FontSizeBase),
		FontSizeLarge:  formValueOr(c, "font_size_large", defaults.FontSizeLarge),
		FontSizeSmall:  formValueOr(c, "font_size_small", defaults.FontSizeSmall),
	}
	if err := s.app.UpdateUISettings(c.Request().Context(), settings); err != nil {
		slog.Error("Failed to save ui settings", "error", err)
	}
	return redirect(c, "/appearance")
}

func (s *Server) handleSaveFavoritesForm(c echo.Context) error {
	entries := make([]domain.Favorite, 0, maxFavoriteSlots)
	for i := 0; i < maxFavoriteSlots; i++ {
		entries = append(entries, domain.Favorite{
			ID:   c.FormValue(fmt.Sprintf("fav_id_%d", i)),
			Name: c.FormValue(fmt.Sprintf("fav_name_%d", i)),
			URL:  c.FormValue(fmt.Sprintf("fav_url_%d", i)),
			Icon: c.FormValue(fmt.Sprintf("fav_icon_%d", i)),
		})
	}

	if err := s.app.UpdateFavorites(c.Request().Context(), entries); err != nil {
		slog.Error("Failed to save favorites", "error", err)
	}
	return redirect(c, "/favorites")
}

func formValueOr(c echo.Context, key, fallback string) string {
	if v := strings.TrimSpace(c.FormValue(key)); v != "" {
		return v
	}
	return fallback
}

func redirect(c echo.Context, target string) error {
	if err := c.Redirect(http.StatusSeeOther, target); err != nil {
		return fmt.Errorf("failed to redirect: %w", err)
	}
	return nil
}
