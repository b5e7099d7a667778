package discovery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lincooln/dockboard/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Facade produces the final service lists consumed by the presentation
// layer. It holds no mutable state of its own: every call reads fresh from
// the container source and the settings store, so concurrent requests are
// safe. Identical concurrent calls are collapsed with singleflight since
// the result is read-mostly and idempotent.
type Facade struct {
	source domain.ContainerSource
	store  domain.SettingsStore
	hostIP func() string

	group singleflight.Group
}

// NewFacade creates the discovery facade. hostIP is called per discovery
// run so a changed host address is picked up without restart.
func NewFacade(source domain.ContainerSource, store domain.SettingsStore, hostIP func() string) *Facade {
	return &Facade{source: source, store: store, hostIP: hostIP}
}

// ListForDashboard returns the sorted, visible services for the main view.
// When the container source is unreachable the result is an empty list, not
// an error: the dashboard degrades to "no services" rather than failing.
func (f *Facade) ListForDashboard(ctx context.Context) ([]domain.Service, error) {
	return f.list(ctx, "dashboard", true)
}

// ListForAdmin returns all services regardless of visibility, for the
// settings view where hidden services must remain toggleable.
func (f *Facade) ListForAdmin(ctx context.Context) ([]domain.Service, error) {
	return f.list(ctx, "admin", false)
}

func (f *Facade) list(ctx context.Context, key string, onlyVisible bool) ([]domain.Service, error) {
	v, err, _ := f.group.Do(key, func() (any, error) {
		return f.discover(ctx, onlyVisible)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Service), nil
}

func (f *Facade) discover(ctx context.Context, onlyVisible bool) ([]domain.Service, error) {
	containers, err := f.source.ListContainers(ctx, true)
	if err != nil {
		// Degraded mode: the source being down must never surface as an
		// error page. Only this specific failure is absorbed.
		slog.Error("Container source unreachable, serving empty service list",
			"error", fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err))
		return []domain.Service{}, nil
	}

	hostIP := f.hostIP()
	services := make([]domain.Service, 0, len(containers))

	for _, ctr := range containers {
		override, found, err := f.store.GetOverride(ctx, ctr.ID)
		if err != nil {
			// Stale or unreadable store entry: fall back to in-memory
			// defaults for this call.
			slog.Warn("Failed to read container override", "container_id", ctr.ID, "error", err)
			found = false
		}

		var ovPtr *domain.Override
		if found {
			ovPtr = &override
		}

		svc, ov, created, err := Normalize(ctr, ovPtr, hostIP)
		if err != nil {
			// One malformed record never aborts the batch.
			slog.Warn("Skipping container during discovery", "container_name", ctr.Name, "error", err)
			continue
		}

		if created {
			if err := f.persistDefaults(ctx, ctr.ID, ov); err != nil {
				// Discovery proceeds with in-memory defaults; persistence
				// is retried on the next encounter.
				slog.Warn("Failed to persist default override", "container_id", ctr.ID, "error", err)
			}
		}

		if onlyVisible && !svc.Visible {
			continue
		}
		services = append(services, svc)
	}

	return SortServices(services, f.sortSettings(ctx)), nil
}

func (f *Facade) persistDefaults(ctx context.Context, containerID string, ov domain.Override) error {
	patch := domain.OverridePatch{
		Visible:    &ov.Visible,
		CustomName: &ov.CustomName,
		CustomURL:  &ov.CustomURL,
		Icon:       &ov.Icon,
	}
	return f.store.SetOverride(ctx, containerID, patch)
}

func (f *Facade) sortSettings(ctx context.Context) domain.SortSettings {
	settings, err := f.store.GetSortSettings(ctx)
	if err != nil {
		slog.Warn("Failed to read sort settings, using defaults", "error", err)
		return domain.DefaultSortSettings()
	}
	return settings
}
