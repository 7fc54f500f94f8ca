package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/platform"
)

// Default values
const (
	DefaultAppName  = "esports-tracker"
	DefaultAppID    = "io.github.ytget.esports-tracker"
	DefaultBackend  = kvstore.BackendFile
	DefaultLogLevel = "info"
	DefaultFileName = "tracker.yaml"

	// UpdatesSubdir holds downloaded releases inside the data directory
	UpdatesSubdir = "updates"
)

// DefaultEnvFiles are loaded, when present, before environment overrides
var DefaultEnvFiles = []string{".env", ".env.local"}

// Config is the tracker configuration. Values come from the YAML file, then
// from TRACKER_* environment variables, then defaults for anything unset.
type Config struct {
	AppName     string `yaml:"app_name" env:"TRACKER_APP_NAME"`
	AppID       string `yaml:"app_id" env:"TRACKER_APP_ID"`
	Backend     string `yaml:"backend" env:"TRACKER_BACKEND"`
	StorePath   string `yaml:"store_path" env:"TRACKER_STORE_PATH"`
	DataDir     string `yaml:"data_dir" env:"TRACKER_DATA_DIR"`
	LogLevel    string `yaml:"log_level" env:"TRACKER_LOG_LEVEL"`
	UpdateFeed  string `yaml:"update_feed" env:"TRACKER_UPDATE_FEED"`
	DownloadDir string `yaml:"download_dir" env:"TRACKER_DOWNLOAD_DIR"`
}

// Load reads configPath (optional), the .env files and the environment.
// A missing configPath is an error only when it was given explicitly.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFiles(DefaultEnvFiles); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads each existing file. Variables already set win.
func loadEnvFiles(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

func (c *Config) applyDefaults() error {
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if c.AppID == "" {
		c.AppID = DefaultAppID
	}
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.DataDir == "" {
		dir, err := platform.DefaultDataDir(c.AppName)
		if err != nil {
			return err
		}
		c.DataDir = dir
	}
	if c.DownloadDir == "" {
		c.DownloadDir = filepath.Join(c.DataDir, UpdatesSubdir)
	}
	return nil
}

// Validate checks backend and log level
func (c *Config) Validate() error {
	switch c.Backend {
	case kvstore.BackendFile, kvstore.BackendSQLite, kvstore.BackendPreferences, kvstore.BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want file, sqlite, preferences or memory)", c.Backend)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// StoreOptions returns the key-value store options for this configuration
func (c *Config) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Backend: c.Backend,
		Path:    c.StorePath,
		DataDir: c.DataDir,
	}
}

// ParseLevel parses debug, info, warn or error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
