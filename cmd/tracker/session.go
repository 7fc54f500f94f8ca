package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/esports-tracker/internal/appstate"
	"github.com/ytget/esports-tracker/internal/config"
	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/platform"
	"github.com/ytget/esports-tracker/internal/update"
)

const closeTimeout = 10 * time.Second

// session is one CLI invocation's view of the tracker: config, the store
// client and the application state on top of it.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	app    fyne.App
	client *kvstore.Client
	store  *appstate.Store
}

type sessionOption func(*sessionSettings)

type sessionSettings struct {
	selector appstate.DirectorySelector
	app      fyne.App
}

func withSelector(sel appstate.DirectorySelector) sessionOption {
	return func(s *sessionSettings) { s.selector = sel }
}

func withApp(a fyne.App) sessionOption {
	return func(s *sessionSettings) { s.app = a }
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.backend != "" {
		cfg.Backend = flags.backend
	}
	if flags.storePath != "" {
		cfg.StorePath = flags.storePath
	}
	if flags.dataDir != "" {
		if cfg.DownloadDir == filepath.Join(cfg.DataDir, config.UpdatesSubdir) {
			cfg.DownloadDir = filepath.Join(flags.dataDir, config.UpdatesSubdir)
		}
		cfg.DataDir = flags.dataDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, verbose bool) *slog.Logger {
	level := cfg.Level()
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openSession loads config, opens the backend behind a message boundary and
// hydrates the state store.
func openSession(ctx context.Context, flags *globalFlags, opts ...sessionOption) (*session, error) {
	var settings sessionSettings
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, flags.verbose)
	slog.SetDefault(logger)

	fyneApp := settings.app
	if fyneApp == nil && cfg.Backend == kvstore.BackendPreferences {
		fyneApp = app.NewWithID(cfg.AppID)
	}

	if err := platform.CreateDirectoryIfNotExists(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("failed to ensure data dir: %w", err)
	}

	storeOpts := cfg.StoreOptions()
	storeOpts.App = fyneApp
	backend, err := kvstore.Open(ctx, storeOpts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Store opened", logfields.Backend(cfg.Backend), logfields.Path(cfg.DataDir))

	client := kvstore.Connect(backend, logger)

	selector := settings.selector
	if selector == nil {
		selector = platform.StaticSelector{AppName: cfg.AppName}
	}
	updater := update.NewService(version, update.FileFeed{Path: cfg.UpdateFeed}, cfg.DownloadDir, logger)

	store := appstate.New(client,
		appstate.WithLogger(logger),
		appstate.WithDirectorySelector(selector),
		appstate.WithUpdater(updater),
	)
	store.Initialize(ctx)
	if !store.Initialized() {
		_ = store.Close(ctx)
		_ = client.Close()
		return nil, fmt.Errorf("failed to load tracker state from %s store", cfg.Backend)
	}
	store.InitializeSavePath(ctx)

	return &session{cfg: cfg, logger: logger, app: fyneApp, client: client, store: store}, nil
}

// close flushes pending writes and closes the store
func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := s.store.Close(ctx); err != nil {
		s.logger.Error("Failed to flush store", logfields.Error(err))
	}
	if err := s.client.Close(); err != nil {
		s.logger.Error("Failed to close store", logfields.Error(err))
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
