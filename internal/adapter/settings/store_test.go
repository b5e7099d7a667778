package settings

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lincooln/dockboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestStore_CreatesFileWithDefaultsOnFirstAccess(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	sort, err := store.GetSortSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSortSettings(), sort)

	_, err = os.Stat(filepath.Join(dir, fileName))
	assert.NoError(t, err)
}

func TestStore_OverrideRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.SetOverride(ctx, "abc123", domain.OverridePatch{CustomName: strPtr("Foo")})
	require.NoError(t, err)

	ov, found, err := store.GetOverride(ctx, "abc123")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "Foo", ov.CustomName)
	// All other fields keep their defaults.
	assert.True(t, ov.Visible)
	assert.Empty(t, ov.CustomURL)
	assert.Equal(t, domain.DefaultServiceIcon, ov.Icon)
}

func TestStore_PartialPatchLeavesOtherFieldsUntouched(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetOverride(ctx, "abc123", domain.OverridePatch{
		CustomName: strPtr("Foo"),
		CustomURL:  strPtr("http://my.nas"),
	}))
	require.NoError(t, store.SetOverride(ctx, "abc123", domain.OverridePatch{Visible: boolPtr(false)}))

	ov, found, err := store.GetOverride(ctx, "abc123")
	require.NoError(t, err)
	require.True(t, found)

	assert.False(t, ov.Visible)
	assert.Equal(t, "Foo", ov.CustomName)
	assert.Equal(t, "http://my.nas", ov.CustomURL)
}

func TestStore_GetOverrideUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, found, err := store.GetOverride(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_DeleteOverride(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetOverride(ctx, "abc123", domain.OverridePatch{Visible: boolPtr(false)}))
	require.NoError(t, store.DeleteOverride(ctx, "abc123"))

	_, found, err := store.GetOverride(ctx, "abc123")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_DeleteOverrideMissingReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteOverride(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrOverrideNotFound)
}

func TestStore_OverridesSurviveContainerAbsence(t *testing.T) {
	// Overrides are keyed by ID and never cleaned up implicitly; a removed
	// container's override stays until explicitly deleted.
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetOverride(ctx, "gone-container", domain.OverridePatch{CustomName: strPtr("Old")}))

	ov, found, err := store.GetOverride(ctx, "gone-container")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Old", ov.CustomName)
}

func TestStore_SortSettingsPatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	method := domain.SortPortsDesc
	require.NoError(t, store.SetSortSettings(ctx, domain.SortSettingsPatch{Method: &method}))

	sort, err := store.GetSortSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SortPortsDesc, sort.Method)
	// GroupByStatus keeps its default.
	assert.True(t, sort.GroupByStatus)

	require.NoError(t, store.SetSortSettings(ctx, domain.SortSettingsPatch{GroupByStatus: boolPtr(false)}))

	sort, err = store.GetSortSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SortPortsDesc, sort.Method)
	assert.False(t, sort.GroupByStatus)
}

func TestStore_ExplicitFalseSurvivesReload(t *testing.T) {
	// group_by_status=false must not be confused with "absent" on reload.
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetSortSettings(ctx, domain.SortSettingsPatch{GroupByStatus: boolPtr(false)}))

	reopened := NewStore(filepath.Dir(store.path))
	sort, err := reopened.GetSortSettings(ctx)
	require.NoError(t, err)
	assert.False(t, sort.GroupByStatus)
}

func TestStore_CorruptedFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0o644))

	store := NewStore(dir)

	sort, err := store.GetSortSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSortSettings(), sort)
}

func TestStore_MissingFieldsFilledWithDefaults(t *testing.T) {
	dir := t.TempDir()
	partial := `{
		"settings_version": "3.0",
		"containers": {"abc123": {"visible": false}},
		"sort_settings": {"method": "ports_asc"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(partial), 0o644))

	store := NewStore(dir)
	ctx := context.Background()

	ov, found, err := store.GetOverride(ctx, "abc123")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, ov.Visible)
	assert.Equal(t, domain.DefaultServiceIcon, ov.Icon)

	sort, err := store.GetSortSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SortPortsAsc, sort.Method)
	assert.True(t, sort.GroupByStatus)

	ui, err := store.GetUISettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUISettings(), ui)

	disks, err := store.GetDiskSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDiskSettings(), disks)
}

func TestStore_MigratesOldVersion(t *testing.T) {
	dir := t.TempDir()
	old := `{
		"settings_version": "2.0",
		"containers": {"abc123": {"visible": false, "custom_name": "Old Name"}},
		"sort_settings": {"method": "name_desc", "group_by_status": false}
	}`
	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(old), 0o644))

	store := NewStore(dir)
	ctx := context.Background()

	ov, found, err := store.GetOverride(ctx, "abc123")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Old Name", ov.CustomName)

	sort, err := store.GetSortSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SortNameDesc, sort.Method)
	assert.False(t, sort.GroupByStatus)

	// The document on disk is now at the current version.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, settingsVersion, doc["settings_version"])
}

func TestStore_UISettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	ui := domain.DefaultUISettings()
	ui.AccentColor = "#ff0000"
	require.NoError(t, store.SetUISettings(ctx, ui))

	got, err := store.GetUISettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", got.AccentColor)
	assert.Equal(t, ui.Background, got.Background)
}

func TestStore_DiskSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetDiskSettings(ctx, domain.DiskSettings{ShowSystem: false, ShowMounted: true}))

	got, err := store.GetDiskSettings(ctx)
	require.NoError(t, err)
	assert.False(t, got.ShowSystem)
	assert.True(t, got.ShowMounted)
}

func TestStore_FavoritesRoundTripWithIconDefault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	favorites := []domain.Favorite{
		{ID: "f1", Name: "Router", URL: "http://192.168.1.1", Icon: "📡"},
		{ID: "f2", Name: "Docs", URL: "http://wiki.local"},
	}
	require.NoError(t, store.SetFavorites(ctx, favorites))

	got, err := store.GetFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "📡", got[0].Icon)
	assert.Equal(t, domain.DefaultFavoriteIcon, got[1].Icon)
}
