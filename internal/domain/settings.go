package domain

import "context"

// Default icons for services and favorites.
const (
	DefaultServiceIcon  = "🐳"
	DefaultFavoriteIcon = "🌐"
)

// Override is the persisted per-container customization. It is created
// lazily the first time a container is seen and outlives the container:
// removal requires an explicit delete.
type Override struct {
	Visible    bool   `json:"visible"`
	CustomName string `json:"custom_name"`
	CustomURL  string `json:"custom_url"`
	Icon       string `json:"icon"`
}

// DefaultOverride returns the override applied to a container seen for the
// first time. The values are idempotent, so a concurrent double-init is
// harmless.
func DefaultOverride() Override {
	return Override{Visible: true, Icon: DefaultServiceIcon}
}

// OverridePatch is a partial override update. Nil fields are left unchanged.
type OverridePatch struct {
	Visible    *bool   `json:"visible,omitempty"`
	CustomName *string `json:"custom_name,omitempty"`
	CustomURL  *string `json:"custom_url,omitempty"`
	Icon       *string `json:"icon,omitempty"`
}

// Apply merges the patch into an override.
func (p OverridePatch) Apply(o Override) Override {
	if p.Visible != nil {
		o.Visible = *p.Visible
	}
	if p.CustomName != nil {
		o.CustomName = *p.CustomName
	}
	if p.CustomURL != nil {
		o.CustomURL = *p.CustomURL
	}
	if p.Icon != nil {
		o.Icon = *p.Icon
	}
	return o
}

// Sort methods for service ordering.
const (
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPortsAsc  = "ports_asc"
	SortPortsDesc = "ports_desc"
)

// SortSettings is the global, persisted sort policy.
type SortSettings struct {
	Method        string `json:"method"`
	GroupByStatus bool   `json:"group_by_status"`
}

// DefaultSortSettings are used when nothing is persisted or the store read
// fails.
func DefaultSortSettings() SortSettings {
	return SortSettings{Method: SortNameAsc, GroupByStatus: true}
}

// SortSettingsPatch is a partial sort settings update.
type SortSettingsPatch struct {
	Method        *string `json:"method,omitempty"`
	GroupByStatus *bool   `json:"group_by_status,omitempty"`
}

// Apply merges the patch into sort settings.
func (p SortSettingsPatch) Apply(s SortSettings) SortSettings {
	if p.Method != nil {
		s.Method = *p.Method
	}
	if p.GroupByStatus != nil {
		s.GroupByStatus = *p.GroupByStatus
	}
	return s
}

// UISettings holds the dashboard appearance preferences.
type UISettings struct {
	Background     string `json:"background"`
	CardBackground string `json:"card_background"`
	TextColor      string `json:"text_color"`
	AccentColor    string `json:"accent_color"`
	BorderColor    string `json:"border_color"`
	BorderRadius   string `json:"border_radius"`
	FontSizeBase   string `json:"font_size_base"`
	FontSizeLarge  string `json:"font_size_large"`
	FontSizeSmall  string `json:"font_size_small"`
}

// DefaultUISettings returns the stock dark theme.
func DefaultUISettings() UISettings {
	return UISettings{
		Background:     "#1a1a1a",
		CardBackground: "#2d2d2d",
		TextColor:      "#e0e0e0",
		AccentColor:    "#4CAF50",
		BorderColor:    "#404040",
		BorderRadius:   "8",
		FontSizeBase:   "14",
		FontSizeLarge:  "16",
		FontSizeSmall:  "12",
	}
}

// DiskSettings controls which disk categories appear on the dashboard.
type DiskSettings struct {
	ShowSystem  bool `json:"show_system"`
	ShowMounted bool `json:"show_mounted"`
}

// DefaultDiskSettings shows everything.
func DefaultDiskSettings() DiskSettings {
	return DiskSettings{ShowSystem: true, ShowMounted: true}
}

// Favorite is a user-pinned external link shown alongside discovered
// services.
type Favorite struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// SettingsStore abstracts the persisted settings document. Implementations
// serialize their own reads and writes; callers tolerate briefly stale data
// (last write wins).
type SettingsStore interface {
	// GetOverride returns the override for a container and whether one is
	// stored.
	GetOverride(ctx context.Context, containerID string) (Override, bool, error)
	SetOverride(ctx context.Context, containerID string, patch OverridePatch) error
	DeleteOverride(ctx context.Context, containerID string) error

	GetSortSettings(ctx context.Context) (SortSettings, error)
	SetSortSettings(ctx context.Context, patch SortSettingsPatch) error

	GetUISettings(ctx context.Context) (UISettings, error)
	SetUISettings(ctx context.Context, settings UISettings) error

	GetDiskSettings(ctx context.Context) (DiskSettings, error)
	SetDiskSettings(ctx context.Context, settings DiskSettings) error

	GetFavorites(ctx context.Context) ([]Favorite, error)
	SetFavorites(ctx context.Context, favorites []Favorite) error
}
