package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lincooln/dockboard/internal/domain"
)

// discoveryFacade is the slice of the discovery package the use cases need.
type discoveryFacade interface {
	ListForDashboard(ctx context.Context) ([]domain.Service, error)
	ListForAdmin(ctx context.Context) ([]domain.Service, error)
}

// Service implements the dashboard use cases.
type Service struct {
	discovery discoveryFacade
	store     domain.SettingsStore
	source    domain.ContainerSource
	control   domain.ContainerController
	usage     domain.ContainerStatsSource
	host      domain.HostStatsSource
	clock     clockwork.Clock
}

func NewService(
	discovery discoveryFacade,
	store domain.SettingsStore,
	source domain.ContainerSource,
	control domain.ContainerController,
	usage domain.ContainerStatsSource,
	host domain.HostStatsSource,
	clock clockwork.Clock,
) *Service {
	return &Service{
		discovery: discovery,
		store:     store,
		source:    source,
		control:   control,
		usage:     usage,
		host:      host,
		clock:     clock,
	}
}

// DashboardServices lists visible services, sorted per the stored policy.
func (s *Service) DashboardServices(ctx context.Context) ([]domain.Service, error) {
	return s.discovery.ListForDashboard(ctx)
}

// AdminServices lists every service including hidden ones.
func (s *Service) AdminServices(ctx context.Context) ([]domain.Service, error) {
	return s.discovery.ListForAdmin(ctx)
}

// HideService removes a service from the dashboard without deleting its
// customizations.
func (s *Service) HideService(ctx context.Context, containerID string) error {
	if containerID == "" {
		return fmt.Errorf("container id is required")
	}
	hidden := false
	return s.store.SetOverride(ctx, containerID, domain.OverridePatch{Visible: &hidden})
}

// UpdateOverride applies a partial customization to one container. Custom
// URLs are normalized before they are stored.
func (s *Service) UpdateOverride(ctx context.Context, containerID string, patch domain.OverridePatch) error {
	if containerID == "" {
		return fmt.Errorf("container id is required")
	}
	if patch.CustomURL != nil {
		normalized := NormalizeURL(*patch.CustomURL)
		patch.CustomURL = &normalized
	}
	if patch.CustomName != nil {
		trimmed := strings.TrimSpace(*patch.CustomName)
		patch.CustomName = &trimmed
	}
	return s.store.SetOverride(ctx, containerID, patch)
}

// DeleteOverride drops all customizations for one container, returning it to
// discovery defaults.
func (s *Service) DeleteOverride(ctx context.Context, containerID string) error {
	return s.store.DeleteOverride(ctx, containerID)
}

func (s *Service) SortSettings(ctx context.Context) (domain.SortSettings, error) {
	return s.store.GetSortSettings(ctx)
}

func (s *Service) UpdateSortSettings(ctx context.Context, patch domain.SortSettingsPatch) error {
	return s.store.SetSortSettings(ctx, patch)
}

// ResetViewSettings restores sort and disk display settings to their
// defaults. Container customizations and favorites are kept.
func (s *Service) ResetViewSettings(ctx context.Context) error {
	defaults := domain.DefaultSortSettings()
	patch := domain.SortSettingsPatch{Method: &defaults.Method, GroupByStatus: &defaults.GroupByStatus}
	if err := s.store.SetSortSettings(ctx, patch); err != nil {
		return err
	}
	return s.store.SetDiskSettings(ctx, domain.DefaultDiskSettings())
}

func (s *Service) UISettings(ctx context.Context) (domain.UISettings, error) {
	return s.store.GetUISettings(ctx)
}

func (s *Service) UpdateUISettings(ctx context.Context, settings domain.UISettings) error {
	return s.store.SetUISettings(ctx, settings)
}

func (s *Service) DiskSettings(ctx context.Context) (domain.DiskSettings, error) {
	return s.store.GetDiskSettings(ctx)
}

func (s *Service) UpdateDiskSettings(ctx context.Context, settings domain.DiskSettings) error {
	return s.store.SetDiskSettings(ctx, settings)
}

func (s *Service) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	return s.store.GetFavorites(ctx)
}

// UpdateFavorites replaces the favorites list. Entries without a URL are
// dropped, URLs are normalized, names fall back to the URL and new entries
// get an ID and the default icon.
func (s *Service) UpdateFavorites(ctx context.Context, favorites []domain.Favorite) error {
	cleaned := make([]domain.Favorite, 0, len(favorites))
	for _, fav := range favorites {
		fav.URL = NormalizeURL(fav.URL)
		if fav.URL == "" {
			continue
		}
		fav.Name = strings.TrimSpace(fav.Name)
		if fav.Name == "" {
			fav.Name = fav.URL
		}
		if strings.TrimSpace(fav.Icon) == "" {
			fav.Icon = domain.DefaultFavoriteIcon
		}
		if fav.ID == "" {
			fav.ID = uuid.NewString()
		}
		cleaned = append(cleaned, fav)
	}
	return s.store.SetFavorites(ctx, cleaned)
}

// DeleteFavorite removes one favorite by ID.
func (s *Service) DeleteFavorite(ctx context.Context, id string) error {
	favorites, err := s.store.GetFavorites(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Favorite, 0, len(favorites))
	for _, fav := range favorites {
		if fav.ID != id {
			kept = append(kept, fav)
		}
	}
	if len(kept) == len(favorites) {
		return fmt.Errorf("%w: %s", domain.ErrFavoriteNotFound, id)
	}
	return s.store.SetFavorites(ctx, kept)
}

// StartContainer starts a stopped container by ID.
func (s *Service) StartContainer(ctx context.Context, id string) error {
	return s.control.StartContainer(ctx, id)
}

// StopContainer stops a running container by ID.
func (s *Service) StopContainer(ctx context.Context, id string) error {
	return s.control.StopContainer(ctx, id)
}

// NormalizeURL trims whitespace and prepends http:// when no scheme is
// present. Empty input stays empty.
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return url
}
