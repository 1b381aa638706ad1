package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/constants"
	"github.com/Paintersrp/sidoc/internal/notify"
	"github.com/Paintersrp/sidoc/internal/pathutil"
	"github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/share"
)

type NotificationConfig struct {
	TTL   time.Duration `yaml:"ttl"   json:"ttl"`
	Limit int           `yaml:"limit" json:"limit"`
}

type Permissions struct {
	CreateDocuments bool `yaml:"create_documents" json:"create_documents"`
	EditDocuments   bool `yaml:"edit_documents"   json:"edit_documents"`
	DeleteDocuments bool `yaml:"delete_documents" json:"delete_documents"`
	ShareDocuments  bool `yaml:"share_documents"  json:"share_documents"`
	ManageUsers     bool `yaml:"manage_users"     json:"manage_users"`
}

type Preferences struct {
	EmailNotifications bool `yaml:"email_notifications" json:"email_notifications"`
	AutoSave           bool `yaml:"auto_save"           json:"auto_save"`
	DarkMode           bool `yaml:"dark_mode"           json:"dark_mode"`
}

type Profile struct {
	FirstName   string      `yaml:"first_name"  json:"first_name"`
	LastName    string      `yaml:"last_name"   json:"last_name"`
	Email       string      `yaml:"email"       json:"email"`
	JobTitle    string      `yaml:"job_title"   json:"job_title"`
	Role        string      `yaml:"role"        json:"role"`
	Verified    bool        `yaml:"verified"    json:"verified"`
	Permissions Permissions `yaml:"permissions" json:"permissions"`
	Preferences Preferences `yaml:"preferences" json:"preferences"`
}

func (p Profile) Name() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Profile) Initials() string {
	var b strings.Builder
	for _, part := range []string{p.FirstName, p.LastName} {
		if part = strings.TrimSpace(part); part != "" {
			b.WriteString(strings.ToUpper(part[:1]))
		}
	}
	return b.String()
}

type Config struct {
	Catalog       string             `yaml:"catalog"        json:"catalog"`
	StartPage     string             `yaml:"start_page"     json:"start_page"`
	Sort          string             `yaml:"sort"           json:"sort"`
	Layout        string             `yaml:"layout"         json:"layout"`
	ShareBaseURL  string             `yaml:"share_base_url" json:"share_base_url"`
	Theme         string             `yaml:"theme"          json:"theme"`
	LogFile       string             `yaml:"log_file"       json:"log_file"`
	LogLevel      string             `yaml:"log_level"      json:"log_level"`
	Notifications NotificationConfig `yaml:"notifications"  json:"notifications"`
	Profile       Profile            `yaml:"profile"        json:"profile"`

	path string `yaml:"-"`
}

const (
	LayoutTable = "table"
	LayoutCards = "cards"
)

var ValidLayouts = map[string]bool{
	LayoutTable: true,
	LayoutCards: true,
}

var validThemeNames = []string{"dracula", "dark", "light", "pink", "notty", "ascii", "auto"}

var ValidThemes = func() map[string]bool {
	themes := make(map[string]bool, len(validThemeNames))
	for _, theme := range validThemeNames {
		themes[theme] = true
	}
	return themes
}()

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the configuration used when the file is empty.
func Default() *Config {
	return &Config{
		StartPage:    portal.PageDashboard.String(),
		Sort:         string(catalog.SortDate),
		Layout:       LayoutTable,
		ShareBaseURL: share.DefaultBaseURL,
		Theme:        "dracula",
		LogLevel:     "info",
		Notifications: NotificationConfig{
			TTL:   notify.DefaultTTL,
			Limit: notify.DefaultLimit,
		},
		Profile: Profile{
			FirstName: "Alex",
			LastName:  "Davis",
			Email:     "alex.davis@company.com",
			JobTitle:  "Senior Documentation Manager",
			Role:      "Admin",
			Verified:  true,
			Permissions: Permissions{
				CreateDocuments: true,
				EditDocuments:   true,
				DeleteDocuments: true,
				ShareDocuments:  true,
				ManageUsers:     true,
			},
			Preferences: Preferences{
				EmailNotifications: true,
				AutoSave:           true,
			},
		},
	}
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.path = path
	cfg.ensureDefaults(home)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) ensureDefaults(home string) {
	defaults := Default()
	if strings.TrimSpace(cfg.StartPage) == "" {
		cfg.StartPage = defaults.StartPage
	}
	if strings.TrimSpace(cfg.Sort) == "" {
		cfg.Sort = defaults.Sort
	}
	if strings.TrimSpace(cfg.Layout) == "" {
		cfg.Layout = defaults.Layout
	}
	if strings.TrimSpace(cfg.ShareBaseURL) == "" {
		cfg.ShareBaseURL = defaults.ShareBaseURL
	}
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = defaults.Theme
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Notifications.TTL <= 0 {
		cfg.Notifications.TTL = defaults.Notifications.TTL
	}
	if strings.TrimSpace(cfg.LogFile) == "" && home != "" {
		cfg.LogFile = filepath.Join(home, constants.ConfigDir, constants.LogFile)
	}
	cfg.Catalog = pathutil.ExpandHome(cfg.Catalog, home)
	cfg.LogFile = pathutil.ExpandHome(cfg.LogFile, home)
}

// Validate checks every enumerated field.
func (cfg *Config) Validate() error {
	page, err := portal.ParsePage(cfg.StartPage)
	if err != nil {
		return &ValidationError{Field: "start_page", Err: err}
	}
	if page == portal.PageViewer {
		return &ValidationError{Field: "start_page", Err: portal.ErrMissingSelection}
	}
	if _, err := catalog.ParseSortField(cfg.Sort); err != nil {
		return &ValidationError{Field: "sort", Err: err}
	}
	if !ValidLayouts[cfg.Layout] {
		return &ValidationError{Field: "layout", Err: fmt.Errorf("invalid layout %q: expected table or cards", cfg.Layout)}
	}
	if !ValidThemes[cfg.Theme] {
		return &ValidationError{Field: "theme", Err: fmt.Errorf("invalid theme %q: expected one of %s", cfg.Theme, strings.Join(validThemeNames, ", "))}
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return &ValidationError{Field: "log_level", Err: fmt.Errorf("invalid log level %q", cfg.LogLevel)}
	}
	if cfg.Notifications.Limit <= 0 {
		return &ValidationError{Field: "notifications.limit", Err: fmt.Errorf("must be positive, got %d", cfg.Notifications.Limit)}
	}
	if _, err := share.Link(cfg.ShareBaseURL, "check"); err != nil {
		return &ValidationError{Field: "share_base_url", Err: err}
	}
	return nil
}

// Page returns the start page. A page set through viper, by a bound flag
// or viper.Set, wins over the file value.
func (cfg *Config) Page() portal.Page {
	for _, raw := range []string{viper.GetString("page"), cfg.StartPage} {
		page, err := portal.ParsePage(raw)
		if err == nil && page != portal.PageViewer {
			return page
		}
	}
	return portal.PageDashboard
}

func (cfg *Config) SortField() catalog.SortField {
	for _, raw := range []string{viper.GetString("sort"), cfg.Sort} {
		if field, err := catalog.ParseSortField(raw); err == nil {
			return field
		}
	}
	return catalog.SortDate
}

// ActiveLayout is the layout in effect, viper first.
func (cfg *Config) ActiveLayout() string {
	if layout := viper.GetString("layout"); ValidLayouts[layout] {
		return layout
	}
	if ValidLayouts[cfg.Layout] {
		return cfg.Layout
	}
	return LayoutTable
}

// ActiveTheme is the markdown theme in effect, viper first.
func (cfg *Config) ActiveTheme() string {
	if theme := viper.GetString("theme"); ValidThemes[theme] {
		return theme
	}
	if ValidThemes[cfg.Theme] {
		return cfg.Theme
	}
	return "dracula"
}

func (cfg *Config) Path() string {
	return cfg.path
}

func (cfg *Config) syncViper() {
	viper.SetDefault("catalog", cfg.Catalog)
	viper.SetDefault("page", cfg.StartPage)
	viper.SetDefault("sort", cfg.Sort)
	viper.SetDefault("layout", cfg.Layout)
	viper.SetDefault("theme", cfg.Theme)
	viper.SetDefault("share_base_url", cfg.ShareBaseURL)
}

// Save writes the configuration back to the file it was loaded from.
func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.path == "" {
		return fmt.Errorf("config has no backing file")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.path), 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(cfg.path, data, 0o644); err != nil {
		return err
	}

	cfg.syncViper()
	return nil
}

// commit applies change and saves. A failed save restores the previous
// values so the config in memory always matches the file.
func (cfg *Config) commit(change func()) error {
	prev := *cfg
	change()
	if err := cfg.Save(); err != nil {
		*cfg = prev
		return err
	}
	return nil
}

func (cfg *Config) SetStartPage(page portal.Page) error {
	if !page.Valid() {
		return &ValidationError{Field: "start_page", Err: &portal.InvalidPageError{Value: page.String()}}
	}
	if page == portal.PageViewer {
		return &ValidationError{Field: "start_page", Err: portal.ErrMissingSelection}
	}
	return cfg.commit(func() { cfg.StartPage = page.String() })
}

func (cfg *Config) SetLayout(layout string) error {
	if !ValidLayouts[layout] {
		return &ValidationError{Field: "layout", Err: fmt.Errorf("invalid layout %q: expected table or cards", layout)}
	}
	return cfg.commit(func() { cfg.Layout = layout })
}

func (cfg *Config) SetSort(field string) error {
	parsed, err := catalog.ParseSortField(field)
	if err != nil {
		return &ValidationError{Field: "sort", Err: err}
	}
	return cfg.commit(func() { cfg.Sort = string(parsed) })
}

func (cfg *Config) SetTheme(theme string) error {
	if !ValidThemes[theme] {
		return &ValidationError{Field: "theme", Err: fmt.Errorf("invalid theme %q: expected one of %s", theme, strings.Join(validThemeNames, ", "))}
	}
	return cfg.commit(func() { cfg.Theme = theme })
}

func (cfg *Config) SetShareBaseURL(base string) error {
	if _, err := share.Link(base, "check"); err != nil {
		return &ValidationError{Field: "share_base_url", Err: err}
	}
	return cfg.commit(func() { cfg.ShareBaseURL = strings.TrimRight(base, "/") })
}

// SetCatalog points the portal at a catalog file. An empty path restores
// the bundled catalog.
func (cfg *Config) SetCatalog(path string) error {
	path = strings.TrimSpace(path)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return &ValidationError{Field: "catalog", Err: err}
		}
	}
	return cfg.commit(func() { cfg.Catalog = path })
}

// StartPages lists the pages that can open without a selected document.
func StartPages() []string {
	var names []string
	for _, page := range portal.Pages() {
		if page != portal.PageViewer {
			names = append(names, page.String())
		}
	}
	return names
}

func ThemeNames() []string {
	return append([]string(nil), validThemeNames...)
}
