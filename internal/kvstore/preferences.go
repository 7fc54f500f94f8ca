package kvstore

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"fyne.io/fyne/v2"
)

var _ Store = (*PreferencesStore)(nil)

// Preference keys used by PreferencesStore
const (
	prefPrefix   = "kv."
	prefIndexKey = "kv.__keys"
)

// PreferencesStore keeps values as JSON strings in the Fyne app preferences,
// which Fyne persists per application id. Preferences cannot be enumerated,
// so the set of stored keys is kept alongside the values.
type PreferencesStore struct {
	mu     sync.Mutex
	prefs  fyne.Preferences
	closed bool
}

// NewPreferencesStore wraps prefs
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

func (p *PreferencesStore) keys() []string {
	return p.prefs.StringList(prefIndexKey)
}

func (p *PreferencesStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, false, ErrClosed
	}
	if !slices.Contains(p.keys(), key) {
		return nil, false, nil
	}
	return json.RawMessage(p.prefs.String(prefPrefix + key)), true, nil
}

func (p *PreferencesStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := validateValue(key, value); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.prefs.SetString(prefPrefix+key, string(value))
	if keys := p.keys(); !slices.Contains(keys, key) {
		p.prefs.SetStringList(prefIndexKey, append(keys, key))
	}
	return nil
}

func (p *PreferencesStore) Delete(ctx context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	keys := p.keys()
	i := slices.Index(keys, key)
	if i < 0 {
		return nil
	}
	p.prefs.RemoveValue(prefPrefix + key)
	p.prefs.SetStringList(prefIndexKey, slices.Delete(keys, i, i+1))
	return nil
}

func (p *PreferencesStore) Clear(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	for _, key := range p.keys() {
		p.prefs.RemoveValue(prefPrefix + key)
	}
	p.prefs.RemoveValue(prefIndexKey)
	return nil
}

func (p *PreferencesStore) Has(ctx context.Context, key string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false, ErrClosed
	}
	return slices.Contains(p.keys(), key), nil
}

func (p *PreferencesStore) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	out := make(map[string]json.RawMessage)
	for _, key := range p.keys() {
		out[key] = json.RawMessage(p.prefs.String(prefPrefix + key))
	}
	return out, nil
}

// Close detaches the store. Fyne owns the preference file and saves it itself.
func (p *PreferencesStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
