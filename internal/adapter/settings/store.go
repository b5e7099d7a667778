package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/lincooln/dockboard/internal/domain"
)

const (
	fileName        = "dashboard_settings.json"
	settingsVersion = "3.0"
)

// Store implements domain.SettingsStore on top of a JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store writing to dashboard_settings.json under dataDir.
// The file is created lazily on first access.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, fileName)}
}

// Ping verifies the settings document can be loaded. Used by health checks.
func (s *Store) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.load()
	return err
}

// --- On-disk representation ---
//
// Booleans whose default is true are pointers so that an absent field can be
// distinguished from an explicit false. The merge into domain types happens
// once, at load time.

type overrideDoc struct {
	Visible    *bool  `json:"visible"`
	CustomName string `json:"custom_name"`
	CustomURL  string `json:"custom_url"`
	Icon       string `json:"icon"`
}

type sortDoc struct {
	Method        string `json:"method"`
	GroupByStatus *bool  `json:"group_by_status"`
}

type diskDoc struct {
	ShowSystem  *bool `json:"show_system"`
	ShowMounted *bool `json:"show_mounted"`
}

type document struct {
	Version    string                 `json:"settings_version"`
	Containers map[string]overrideDoc `json:"containers"`
	Sort       sortDoc                `json:"sort_settings"`
	UI         domain.UISettings      `json:"ui_settings"`
	Disks      diskDoc                `json:"disk_settings"`
	Favorites  []domain.Favorite      `json:"favorites"`
}

func defaultDocument() *document {
	return &document{
		Version:    settingsVersion,
		Containers: map[string]overrideDoc{},
		Sort:       toSortDoc(domain.DefaultSortSettings()),
		UI:         domain.DefaultUISettings(),
		Disks:      toDiskDoc(domain.DefaultDiskSettings()),
		Favorites:  []domain.Favorite{},
	}
}

func toOverrideDoc(o domain.Override) overrideDoc {
	visible := o.Visible
	return overrideDoc{Visible: &visible, CustomName: o.CustomName, CustomURL: o.CustomURL, Icon: o.Icon}
}

func (d overrideDoc) merge() domain.Override {
	out := domain.DefaultOverride()
	if d.Visible != nil {
		out.Visible = *d.Visible
	}
	out.CustomName = d.CustomName
	out.CustomURL = d.CustomURL
	if d.Icon != "" {
		out.Icon = d.Icon
	}
	return out
}

func toSortDoc(s domain.SortSettings) sortDoc {
	group := s.GroupByStatus
	return sortDoc{Method: s.Method, GroupByStatus: &group}
}

func (d sortDoc) merge() domain.SortSettings {
	out := domain.DefaultSortSettings()
	if d.Method != "" {
		out.Method = d.Method
	}
	if d.GroupByStatus != nil {
		out.GroupByStatus = *d.GroupByStatus
	}
	return out
}

func toDiskDoc(s domain.DiskSettings) diskDoc {
	show, mounted := s.ShowSystem, s.ShowMounted
	return diskDoc{ShowSystem: &show, ShowMounted: &mounted}
}

func (d diskDoc) merge() domain.DiskSettings {
	out := domain.DefaultDiskSettings()
	if d.ShowSystem != nil {
		out.ShowSystem = *d.ShowSystem
	}
	if d.ShowMounted != nil {
		out.ShowMounted = *d.ShowMounted
	}
	return out
}

func (d *document) mergeUI() domain.UISettings {
	defaults := domain.DefaultUISettings()
	out := d.UI
	if out.Background == "" {
		out.Background = defaults.Background
	}
	if out.CardBackground == "" {
		out.CardBackground = defaults.CardBackground
	}
	if out.TextColor == "" {
		out.TextColor = defaults.TextColor
	}
	if out.AccentColor == "" {
		out.AccentColor = defaults.AccentColor
	}
	if out.BorderColor == "" {
		out.BorderColor = defaults.BorderColor
	}
	if out.BorderRadius == "" {
		out.BorderRadius = defaults.BorderRadius
	}
	if out.FontSizeBase == "" {
		out.FontSizeBase = defaults.FontSizeBase
	}
	if out.FontSizeLarge == "" {
		out.FontSizeLarge = defaults.FontSizeLarge
	}
	if out.FontSizeSmall == "" {
		out.FontSizeSmall = defaults.FontSizeSmall
	}
	return out
}

// --- Load / save ---

func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := defaultDocument()
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		// A corrupted file degrades to defaults for this call; the next
		// write replaces it.
		slog.Warn("Settings file unreadable, using defaults", "path", s.path, "error", err)
		return defaultDocument(), nil
	}

	if doc.Containers == nil {
		doc.Containers = map[string]overrideDoc{}
	}
	if doc.Version != settingsVersion {
		s.migrate(&doc)
	}
	return &doc, nil
}

// migrate lifts a pre-3.0 document to the current version: container
// overrides, sort settings and favorites carry over, everything else gets
// defaults.
func (s *Store) migrate(doc *document) {
	slog.Info("Migrating settings document", "from", doc.Version, "to", settingsVersion)
	doc.Version = settingsVersion
	doc.UI = (&document{UI: doc.UI}).mergeUI()
	if doc.Favorites == nil {
		doc.Favorites = []domain.Favorite{}
	}
	if err := s.save(doc); err != nil {
		slog.Warn("Failed to persist migrated settings", "error", err)
	}
}

func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}
	return nil
}

// --- domain.SettingsStore implementation ---

func (s *Store) GetOverride(_ context.Context, containerID string) (domain.Override, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.Override{}, false, err
	}
	raw, ok := doc.Containers[containerID]
	if !ok {
		return domain.Override{}, false, nil
	}
	return raw.merge(), true, nil
}

func (s *Store) SetOverride(_ context.Context, containerID string, patch domain.OverridePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	current := domain.DefaultOverride()
	if raw, ok := doc.Containers[containerID]; ok {
		current = raw.merge()
	}
	doc.Containers[containerID] = toOverrideDoc(patch.Apply(current))
	return s.save(doc)
}

func (s *Store) DeleteOverride(_ context.Context, containerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Containers[containerID]; !ok {
		return domain.ErrOverrideNotFound
	}
	delete(doc.Containers, containerID)
	return s.save(doc)
}

func (s *Store) GetSortSettings(_ context.Context) (domain.SortSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.SortSettings{}, err
	}
	return doc.Sort.merge(), nil
}

func (s *Store) SetSortSettings(_ context.Context, patch domain.SortSettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Sort = toSortDoc(patch.Apply(doc.Sort.merge()))
	return s.save(doc)
}

func (s *Store) GetUISettings(_ context.Context) (domain.UISettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.UISettings{}, err
	}
	return doc.mergeUI(), nil
}

func (s *Store) SetUISettings(_ context.Context, settings domain.UISettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.UI = settings
	return s.save(doc)
}

func (s *Store) GetDiskSettings(_ context.Context) (domain.DiskSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return domain.DiskSettings{}, err
	}
	return doc.Disks.merge(), nil
}

func (s *Store) SetDiskSettings(_ context.Context, settings domain.DiskSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.Disks = toDiskDoc(settings)
	return s.save(doc)
}

func (s *Store) GetFavorites(_ context.Context) ([]domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	favorites := make([]domain.Favorite, len(doc.Favorites))
	copy(favorites, doc.Favorites)
	for i := range favorites {
		if favorites[i].Icon == "" {
			favorites[i].Icon = domain.DefaultFavoriteIcon
		}
	}
	return favorites, nil
}

func (s *Store) SetFavorites(_ context.Context, favorites []domain.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	doc.Favorites = favorites
	return s.save(doc)
}
