package state

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/config"
	"github.com/Paintersrp/sidoc/internal/constants"
	"github.com/Paintersrp/sidoc/internal/logging"
	"github.com/Paintersrp/sidoc/internal/pathutil"
)

type State struct {
	Config  *config.Config
	Catalog *catalog.Memory
	Logger  *zap.Logger
	Watcher *CatalogWatcher
	Home    string

	// CatalogPath is the file Catalog was loaded from, empty for the
	// bundled catalog.
	CatalogPath string
}

// NewState loads the config, the catalog and the logger. A non-empty
// catalogOverride replaces the configured catalog path.
func NewState(catalogOverride string) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	return newState(home, cfg, catalogOverride)
}

func newState(home string, cfg *config.Config, catalogOverride string) (*State, error) {
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	s := &State{
		Config: cfg,
		Logger: logger,
		Home:   home,
	}

	path := cfg.Catalog
	if strings.TrimSpace(catalogOverride) != "" {
		path = catalogOverride
	}

	if err := s.UseCatalog(path); err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return s, nil
}

// UseCatalog loads the catalog at path, or the bundled one when path is
// empty, and watches the file for changes. The previous catalog and watcher
// stay in place when loading fails.
func (s *State) UseCatalog(path string) error {
	path = pathutil.ExpandHome(path, s.Home)

	docs, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if s.Watcher != nil {
		_ = s.Watcher.Close()
		s.Watcher = nil
	}
	s.Catalog = docs
	s.CatalogPath = path

	if path == "" {
		logger.Info("using bundled catalog")
		return nil
	}

	watcher, err := NewCatalogWatcher(path)
	if err != nil {
		logger.Warn("catalog watcher unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}

	catalogLog := logger.Named("catalog")
	watcher.OnChange(func(p string) error {
		if err := docs.Reload(p); err != nil {
			catalogLog.Error("reload failed", zap.String("path", p), zap.Error(err))
			return err
		}
		catalogLog.Info("reloaded", zap.String("path", p))
		return nil
	})
	watcher.OnClose(func() {
		catalogLog.Debug("stopped watching", zap.String("path", path))
	})
	s.Watcher = watcher

	return nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	_ = viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the catalog watcher and flushes the logger.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
