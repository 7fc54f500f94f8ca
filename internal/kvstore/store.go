package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
)

var (
	// ErrClosed is returned by operations on a closed store
	ErrClosed = errors.New("kvstore: store is closed")

	// ErrCorrupt is returned when the backing data cannot be decoded
	ErrCorrupt = errors.New("kvstore: store data is corrupt")
)

// Store is the contract every backend fulfils. No operation spans more than
// one key atomically.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)

	// GetAll returns every stored key and value.
	GetAll(ctx context.Context) (map[string]json.RawMessage, error)

	// Close releases the backend.
	Close() error
}

// Backend names accepted by Open
const (
	BackendFile        = "file"
	BackendSQLite      = "sqlite"
	BackendPreferences = "preferences"
	BackendMemory      = "memory"
)

// Default file names inside the data directory
const (
	DefaultFileName   = "config.json"
	DefaultSQLiteName = "tracker.db"
)

// Options selects and configures a backend
type Options struct {
	Backend string
	// Path is the JSON file path, or the SQLite DSN/path. When empty a
	// default under DataDir is used.
	Path    string
	DataDir string
	// App provides preferences for the preferences backend.
	App fyne.App
}

// Open creates the configured backend
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		path := opts.Path
		if path == "" {
			path = filepath.Join(opts.DataDir, DefaultFileName)
		}
		return NewFileStore(path), nil
	case BackendSQLite:
		dsn := opts.Path
		if dsn == "" {
			dsn = "sqlite://" + filepath.Join(opts.DataDir, DefaultSQLiteName)
		}
		return NewSQLiteStore(ctx, dsn)
	case BackendPreferences:
		if opts.App == nil {
			return nil, fmt.Errorf("preferences backend requires a fyne app")
		}
		return NewPreferencesStore(opts.App.Preferences()), nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q", opts.Backend)
	}
}

func cloneRaw(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}

func cloneAll(m map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = cloneRaw(v)
	}
	return out
}

func validateValue(key string, value json.RawMessage) error {
	if key == "" {
		return fmt.Errorf("kvstore: empty key")
	}
	if !json.Valid(value) {
		return fmt.Errorf("kvstore: value for %q is not valid JSON", key)
	}
	return nil
}
