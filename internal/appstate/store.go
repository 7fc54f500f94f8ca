package appstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/model"
)

// Persisted keys, one per top-level field
const (
	KeyPlayers          = "players"
	KeyTeams            = "teams"
	KeyMatches          = "matches"
	KeyIsDarkMode       = "isDarkMode"
	KeyIsNavigationMini = "isNavigationMini"
	KeyJSONSavePath     = "jsonSavePath"
	KeyLastRoute        = "lastRoute"
	KeyViewVisibility   = "viewVisibility"
	KeyViewPresets      = "viewPresets"
	KeySelectedPreset   = "selectedPreset"
	KeyCustomViews      = "customViews"
)

// PersistedKeys is the hydration allow-list
var PersistedKeys = []string{
	KeyPlayers, KeyTeams, KeyMatches, KeyIsDarkMode, KeyIsNavigationMini, KeyJSONSavePath,
	KeyLastRoute, KeyViewVisibility, KeyViewPresets, KeySelectedPreset, KeyCustomViews,
}

// SavePathSubdir is appended to any directory chosen as the export location
const SavePathSubdir = "ViewsData"

// DirectorySelector lets the user pick a directory
type DirectorySelector interface {
	// SelectDirectory returns the chosen directory, or ok=false when cancelled.
	SelectDirectory(ctx context.Context) (path string, ok bool, err error)
	// DefaultPath returns the per-user application data directory.
	DefaultPath(ctx context.Context) (string, error)
}

// Updater checks for and downloads new releases
type Updater interface {
	Version() string
	CheckForUpdates(ctx context.Context) error
	DownloadUpdate(ctx context.Context) error
	SetUpdateCallback(func(model.UpdateStatus, *model.ReleaseInfo))
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithDirectorySelector sets the directory picker used for the save path
func WithDirectorySelector(d DirectorySelector) Option {
	return func(s *Store) { s.dirs = d }
}

// WithUpdater connects the update checker
func WithUpdater(u Updater) Option {
	return func(s *Store) { s.updater = u }
}

// WithNavigableViews replaces the built-in view list
func WithNavigableViews(views []model.NavigableView) Option {
	return func(s *Store) { s.builtins = views }
}

// WithIDGenerator replaces the uuid generator for section and field ids
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Store is the in-memory application state. Create one per process with New.
type Store struct {
	logger   *slog.Logger
	dirs     DirectorySelector
	updater  Updater
	builtins []model.NavigableView
	newID    func() string
	persist  *persister

	initMu      sync.Mutex
	initialized bool

	mu               sync.RWMutex
	players          model.Player
	teams            model.Teams
	matches          model.Matches
	isDarkMode       bool
	isNavigationMini bool
	jsonSavePath     string
	lastRoute        string
	viewVisibility   model.Visibility
	viewPresets      model.Presets
	selectedPreset   string
	customViews      []model.CustomView

	appVersion   string
	updateStatus model.UpdateStatus
	releaseInfo  *model.ReleaseInfo
}

// New creates a store holding factory defaults. Call Initialize to load the
// persisted state.
func New(kv kvstore.Store, opts ...Option) *Store {
	s := &Store{
		logger:           slog.Default(),
		builtins:         model.BuiltinViews(),
		newID:            uuid.NewString,
		players:          model.NewPlayer(),
		teams:            model.NewTeams(),
		matches:          model.NewMatches(),
		isNavigationMini: true,
		viewVisibility:   model.Visibility{},
		viewPresets:      model.Presets{},
		customViews:      []model.CustomView{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.persist = newPersister(kv, s.logger)

	if s.updater != nil {
		s.appVersion = s.updater.Version()
		s.updater.SetUpdateCallback(s.SetUpdateStatus)
	}
	return s
}

// Initialized reports whether hydration has completed
func (s *Store) Initialized() bool {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	return s.initialized
}

// Flush waits for every write queued so far
func (s *Store) Flush(ctx context.Context) error {
	return s.persist.flush(ctx)
}

// Close flushes pending writes and stops the persistence worker. The
// key-value store itself is left open.
func (s *Store) Close(ctx context.Context) error {
	return s.persist.close(ctx)
}

// knownViewNames returns built-in names followed by custom view names.
// Caller holds s.mu.
func (s *Store) knownViewNames() []string {
	names := make([]string, 0, len(s.builtins)+len(s.customViews))
	for _, v := range s.builtins {
		names = append(names, v.Name)
	}
	for _, v := range s.customViews {
		names = append(names, v.Name)
	}
	return names
}

// NavigableViews returns the built-in views
func (s *Store) NavigableViews() []model.NavigableView {
	out := make([]model.NavigableView, len(s.builtins))
	copy(out, s.builtins)
	return out
}

// viewNameTaken reports whether a built-in view or a custom view other than
// exceptID already uses name. Caller holds s.mu.
func (s *Store) viewNameTaken(name, exceptID string) bool {
	for _, v := range s.builtins {
		if v.Name == name {
			return true
		}
	}
	for _, v := range s.customViews {
		if v.ID != exceptID && v.Name == name {
			return true
		}
	}
	return false
}

// commit queues entries and releases s.mu, which the caller must hold.
// Queueing under the lock keeps batches in mutation order.
func (s *Store) commit(entries ...entry) *Pending {
	defer s.mu.Unlock()
	return s.persist.enqueue(entries...)
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
