package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lincooln/dockboard/internal/domain"
	apperrors "github.com/lincooln/dockboard/internal/platform/errors"
)

func (s *Server) registerAPIRoutes() {
	s.echo.GET("/api/services", s.handleListServices)
	s.echo.GET("/api/services/admin", s.handleListServicesAdmin)
	s.echo.POST("/api/services/:id/hide", s.handleHideService)
	s.echo.PATCH("/api/services/:id/settings", s.handleUpdateOverride)
	s.echo.DELETE("/api/services/:id/settings", s.handleDeleteOverride)

	s.echo.GET("/api/settings/sort", s.handleGetSortSettings)
	s.echo.PUT("/api/settings/sort", s.handleUpdateSortSettings)
	s.echo.GET("/api/settings/ui", s.handleGetUISettings)
	s.echo.PUT("/api/settings/ui", s.handleUpdateUISettings)
	s.echo.GET("/api/settings/disks", s.handleGetDiskSettings)
	s.echo.PUT("/api/settings/disks", s.handleUpdateDiskSettings)

	s.echo.GET("/api/favorites", s.handleGetFavorites)
	s.echo.PUT("/api/favorites", s.handleUpdateFavorites)
	s.echo.DELETE("/api/favorites/:id", s.handleDeleteFavorite)

	s.echo.POST("/api/containers/:id/start", s.handleStartContainer)
	s.echo.POST("/api/containers/:id/stop", s.handleStopContainer)

	s.echo.GET("/api/stats", s.handleStats)
	s.echo.GET("/api/containers/stats", s.handleContainerUsage)
}

func (s *Server) handleListServices(c echo.Context) error {
	services, err := s.app.DashboardServices(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list services", err)
	}
	return jsonResponse(c, http.StatusOK, services)
}

func (s *Server) handleListServicesAdmin(c echo.Context) error {
	services, err := s.app.AdminServices(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to list services", err)
	}
	return jsonResponse(c, http.StatusOK, services)
}

func (s *Server) handleHideService(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.ValidationError("container id is required")
	}

	if err := s.app.HideService(c.Request().Context(), id); err != nil {
		return apperrors.InternalError("failed to hide service", err).WithField("container_id", id)
	}
	return statusOK(c)
}

func (s *Server) handleUpdateOverride(c echo.Context) error {
	id := c.Param("id")

	var patch domain.OverridePatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid settings payload").WithField("container_id", id)
	}

	if err := s.app.UpdateOverride(c.Request().Context(), id, patch); err != nil {
		return apperrors.InternalError("failed to update settings", err).WithField("container_id", id)
	}
	return statusOK(c)
}

func (s *Server) handleDeleteOverride(c echo.Context) error {
	id := c.Param("id")

	if err := s.app.DeleteOverride(c.Request().Context(), id); err != nil {
		return err
	}
	return statusOK(c)
}

func (s *Server) handleGetSortSettings(c echo.Context) error {
	settings, err := s.app.SortSettings(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to read sort settings", err)
	}
	return jsonResponse(c, http.StatusOK, settings)
}

func (s *Server) handleUpdateSortSettings(c echo.Context) error {
	var patch domain.SortSettingsPatch
	if err := c.Bind(&patch); err != nil {
		return apperrors.ValidationError("invalid sort settings payload")
	}

	if patch.Method != nil && !validSortMethod(*patch.Method) {
		return apperrors.ValidationError("unknown sort method").WithField("method", *patch.Method)
	}

	if err := s.app.UpdateSortSettings(c.Request().Context(), patch); err != nil {
		return apperrors.InternalError("failed to save sort settings", err)
	}
	return statusOK(c)
}

func (s *Server) handleGetUISettings(c echo.Context) error {
	settings, err := s.app.UISettings(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to read ui settings", err)
	}
	return jsonResponse(c, http.StatusOK, settings)
}

func (s *Server) handleUpdateUISettings(c echo.Context) error {
	var settings domain.UISettings
	if err := c.Bind(&settings); err != nil {
		return apperrors.ValidationError("invalid ui settings payload")
	}

	if err := s.app.UpdateUISettings(c.Request().Context(), settings); err != nil {
		return apperrors.InternalError("failed to save ui settings", err)
	}
	return statusOK(c)
}

func (s *Server) handleGetDiskSettings(c echo.Context) error {
	settings, err := s.app.DiskSettings(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to read disk settings", err)
	}
	return jsonResponse(c, http.StatusOK, settings)
}

func (s *Server) handleUpdateDiskSettings(c echo.Context) error {
	var settings domain.DiskSettings
	if err := c.Bind(&settings); err != nil {
		return apperrors.ValidationError("invalid disk settings payload")
	}

	if err := s.app.UpdateDiskSettings(c.Request().Context(), settings); err != nil {
		return apperrors.InternalError("failed to save disk settings", err)
	}
	return statusOK(c)
}

func (s *Server) handleGetFavorites(c echo.Context) error {
	favorites, err := s.app.Favorites(c.Request().Context())
	if err != nil {
		return apperrors.InternalError("failed to read favorites", err)
	}
	return jsonResponse(c, http.StatusOK, favorites)
}

func (s *Server) handleUpdateFavorites(c echo.Context) error {
	var payload struct {
		Favorites []domain.Favorite `json:"favorites"`
	}
	if err := c.Bind(&payload); err != nil {
		return apperrors.ValidationError("invalid favorites payload")
	}

	if err := s.app.UpdateFavorites(c.Request().Context(), payload.Favorites); err != nil {
		return apperrors.InternalError("failed to save favorites", err)
	}
	return statusOK(c)
}

func (s *Server) handleDeleteFavorite(c echo.Context) error {
	id := c.Param("id")
	if err := s.app.DeleteFavorite(c.Request().Context(), id); err != nil {
		return err
	}
	return statusOK(c)
}

func (s *Server) handleStartContainer(c echo.Context) error {
	id := c.Param("id")
	if err := s.app.StartContainer(c.Request().Context(), id); err != nil {
		return err
	}
	return statusOK(c)
}

func (s *Server) handleStopContainer(c echo.Context) error {
	id := c.Param("id")
	if err := s.app.StopContainer(c.Request().Context(), id); err != nil {
		return err
	}
	return statusOK(c)
}

func (s *Server) handleStats(c echo.Context) error {
	return jsonResponse(c, http.StatusOK, s.app.Stats(c.Request().Context()))
}

func (s *Server) handleContainerUsage(c echo.Context) error {
	usage, err := s.app.ContainerUsage(c.Request().Context())
	if err != nil {
		return apperrors.ExternalError("failed to read container stats", err)
	}
	return jsonResponse(c, http.StatusOK, usage)
}

func validSortMethod(method string) bool {
	switch method {
	case domain.SortNameAsc, domain.SortNameDesc, domain.SortPortsAsc, domain.SortPortsDesc:
		return true
	}
	return false
}

func statusOK(c echo.Context) error {
	return jsonResponse(c, http.StatusOK, map[string]string{"status": "ok"})
}

func jsonResponse(c echo.Context, code int, payload any) error {
	if err := c.JSON(code, payload); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
