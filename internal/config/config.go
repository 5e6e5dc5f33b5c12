package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
	UI      UIConfig
}

// StorageConfig selects where the roster lives.
type StorageConfig struct {
	Backend string // json | sqlite
	Path    string
}

// LogConfig controls the slog handler. The TUI owns stdout, so logs go to a file.
type LogConfig struct {
	Level  string
	Format string // text | json
	Path   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent      string
	HistoryPath string `mapstructure:"history_path"`
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "clipboard")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "clipboard")
}

// DefaultPath is the config file read when neither an explicit path nor
// CLIPBOARD_CONFIG is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "clipboard", "config.toml")
}

// Load reads configuration from file and env. path overrides CLIPBOARD_CONFIG.
// Env var overrides use prefix CLIPBOARD_, e.g. CLIPBOARD_STORAGE_BACKEND.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("storage.backend", "json")
	v.SetDefault("storage.path", filepath.Join(dataDir(), "roster.json"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.path", filepath.Join(dataDir(), "clipboard.log"))
	v.SetDefault("ui.accent", "63")
	v.SetDefault("ui.history_path", filepath.Join(dataDir(), "history.json"))

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("CLIPBOARD_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("CLIPBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// only a missing default file is fine; a named file must exist and parse
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.history_path", cfg.UI.HistoryPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
