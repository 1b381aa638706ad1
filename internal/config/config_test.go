package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/config"
	"github.com/Paintersrp/sidoc/internal/portal"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()
	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}
	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestEnsureConfigExistsCreatesEmptyFile(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Page() != portal.PageDashboard {
		t.Fatalf("expected dashboard start page, got %v", cfg.Page())
	}
	if cfg.SortField() != catalog.SortDate {
		t.Fatalf("expected date sort, got %v", cfg.SortField())
	}
	if cfg.LogFile != filepath.Join(home, ".sidoc", "sidoc.log") {
		t.Fatalf("unexpected default log file %q", cfg.LogFile)
	}
	if cfg.Profile.Name() != "Alex Davis" || cfg.Profile.Initials() != "AD" {
		t.Fatalf("unexpected default profile %+v", cfg.Profile)
	}
}

func TestLoadReadsValues(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"catalog":    "~/docs/catalog.yaml",
		"start_page": "recent",
		"sort":       "title",
		"layout":     "cards",
		"theme":      "light",
		"notifications": map[string]any{
			"ttl":   "2s",
			"limit": 5,
		},
		"profile": map[string]any{
			"first_name": "Sam",
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Page() != portal.PageRecent {
		t.Fatalf("expected recent start page, got %v", cfg.Page())
	}
	if cfg.SortField() != catalog.SortTitle {
		t.Fatalf("expected title sort, got %v", cfg.SortField())
	}
	if cfg.Catalog != filepath.Join(home, "docs", "catalog.yaml") {
		t.Fatalf("expected catalog path to expand home, got %q", cfg.Catalog)
	}
	if cfg.Notifications.TTL != 2*time.Second || cfg.Notifications.Limit != 5 {
		t.Fatalf("unexpected notifications %+v", cfg.Notifications)
	}
	if cfg.Profile.FirstName != "Sam" || cfg.Profile.LastName != "Davis" {
		t.Fatalf("expected profile defaults to survive partial override, got %+v", cfg.Profile)
	}
	if !cfg.Profile.Permissions.ShareDocuments {
		t.Fatalf("expected default permissions to survive partial override")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		field string
		data  map[string]any
	}{
		{"page", "start_page", map[string]any{"start_page": "settings"}},
		{"viewer", "start_page", map[string]any{"start_page": "viewer"}},
		{"sort", "sort", map[string]any{"sort": "size"}},
		{"layout", "layout", map[string]any{"layout": "grid"}},
		{"theme", "theme", map[string]any{"theme": "neon"}},
		{"limit", "notifications.limit", map[string]any{"notifications": map[string]any{"limit": 0}}},
		{"share", "share_base_url", map[string]any{"share_base_url": "sidoc"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tc.data)

			_, err := config.Load(home)
			var verr *config.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestLoadInvalidPageMatchesSentinel(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"start_page": "nowhere"})

	_, err := config.Load(home)
	if !errors.Is(err, portal.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage in chain, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := cfg.SetStartPage(portal.PageShared); err != nil {
		t.Fatalf("SetStartPage failed: %v", err)
	}
	if err := cfg.SetLayout(config.LayoutCards); err != nil {
		t.Fatalf("SetLayout failed: %v", err)
	}
	if err := cfg.SetLayout("grid"); err == nil {
		t.Fatalf("expected invalid layout to be rejected")
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Page() != portal.PageShared || reloaded.Layout != config.LayoutCards {
		t.Fatalf("saved values not persisted: %+v", reloaded)
	}
	if reloaded.Notifications.TTL != cfg.Notifications.TTL {
		t.Fatalf("ttl changed across save: %s vs %s", reloaded.Notifications.TTL, cfg.Notifications.TTL)
	}
}

func TestEnsureConfigExistsReportsBrokenFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"layout": "grid"})

	err := config.EnsureConfigExists(home)
	var initErr *config.ConfigInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected ConfigInitError, got %v", err)
	}
}

func TestSettersPersist(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := cfg.SetSort("author"); err != nil {
		t.Fatalf("SetSort failed: %v", err)
	}
	if err := cfg.SetTheme("pink"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if err := cfg.SetSort("size"); err == nil {
		t.Fatalf("expected invalid sort to be rejected")
	}
	if err := cfg.SetTheme("neon"); err == nil {
		t.Fatalf("expected invalid theme to be rejected")
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Sort != "author" || reloaded.Theme != "pink" {
		t.Fatalf("expected saved sort and theme, got %q and %q", reloaded.Sort, reloaded.Theme)
	}
}

func TestFailedSetterKeepsPreviousValue(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	err = cfg.SetStartPage(portal.PageViewer)
	if !errors.Is(err, portal.ErrMissingSelection) {
		t.Fatalf("expected viewer start page to be rejected, got %v", err)
	}
	if cfg.StartPage != "dashboard" {
		t.Fatalf("rejected start page leaked into config: %q", cfg.StartPage)
	}
	if err := cfg.SetLayout(config.LayoutCards); err != nil {
		t.Fatalf("SetLayout after a rejected setter failed: %v", err)
	}

	// A directory where the file should be makes the write fail.
	broken := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.MkdirAll(broken, 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	cfg.SetPathForTest(broken)

	if err := cfg.SetTheme("light"); err == nil {
		t.Fatalf("expected write failure")
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("expected theme restored after failed save, got %q", cfg.Theme)
	}
}

func TestViperOverridesFileValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"start_page": "recent",
		"sort":       "title",
		"layout":     "table",
		"theme":      "light",
	})
	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Page() != portal.PageRecent || cfg.ActiveLayout() != config.LayoutTable || cfg.ActiveTheme() != "light" {
		t.Fatalf("expected file values before override")
	}

	viper.Set("page", "documents")
	viper.Set("sort", "author")
	viper.Set("layout", "cards")
	viper.Set("theme", "pink")

	if cfg.Page() != portal.PageDocuments {
		t.Fatalf("expected viper page, got %v", cfg.Page())
	}
	if cfg.SortField() != catalog.SortAuthor {
		t.Fatalf("expected viper sort, got %v", cfg.SortField())
	}
	if cfg.ActiveLayout() != config.LayoutCards || cfg.ActiveTheme() != "pink" {
		t.Fatalf("expected viper layout and theme, got %q and %q", cfg.ActiveLayout(), cfg.ActiveTheme())
	}

	viper.Set("theme", "neon")
	if cfg.ActiveTheme() != "light" {
		t.Fatalf("expected invalid viper theme to fall back to the file, got %q", cfg.ActiveTheme())
	}
}

func TestStartPagesExcludeViewer(t *testing.T) {
	pages := config.StartPages()
	if len(pages) != len(portal.Pages())-1 {
		t.Fatalf("expected every page but the viewer, got %v", pages)
	}
	for _, p := range pages {
		if p == portal.PageViewer.String() {
			t.Fatalf("viewer must not be a start page")
		}
	}
}
