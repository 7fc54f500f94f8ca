package kvstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ Store = (*FileStore)(nil)

// File permissions for the store file and its directory
const (
	fileMode = 0o600
	dirMode  = 0o755
)

// FileStore keeps all keys in one JSON object on disk. The file is read on
// first use and rewritten in full on every change.
type FileStore struct {
	path string

	mu          sync.Mutex
	data        map[string]json.RawMessage
	loaded      bool
	closed      bool
	lastWritten []byte
}

// NewFileStore creates a store backed by the JSON file at path. The file and
// its directory are created on the first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

// load reads the file if it has not been read yet. Caller holds f.mu.
func (f *FileStore) load() error {
	if f.closed {
		return ErrClosed
	}
	if f.loaded {
		return nil
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.data = make(map[string]json.RawMessage)
			f.loaded = true
			return nil
		}
		return fmt.Errorf("reading store file %s: %w", f.path, err)
	}

	data, err := decodeFile(raw)
	if err != nil {
		return fmt.Errorf("decoding store file %s: %w", f.path, err)
	}
	f.data = data
	f.lastWritten = raw
	f.loaded = true
	return nil
}

func decodeFile(raw []byte) (map[string]json.RawMessage, error) {
	data := make(map[string]json.RawMessage)
	if len(bytes.TrimSpace(raw)) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return data, nil
}

// save writes data to a temp file and renames it over the store file.
// Caller holds f.mu.
func (f *FileStore) save(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("creating store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}

	f.data = data
	f.lastWritten = raw
	return nil
}

func (f *FileStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		return nil, false, err
	}
	v, ok := f.data[key]
	return cloneRaw(v), ok, nil
}

func (f *FileStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := validateValue(key, value); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		return err
	}
	next := cloneAll(f.data)
	next[key] = cloneRaw(value)
	return f.save(next)
}

func (f *FileStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		return err
	}
	if _, ok := f.data[key]; !ok {
		return nil
	}
	next := cloneAll(f.data)
	delete(next, key)
	return f.save(next)
}

// Clear empties the store. It also recovers a corrupt file.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if err := f.save(make(map[string]json.RawMessage)); err != nil {
		return err
	}
	f.loaded = true
	return nil
}

func (f *FileStore) Has(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		return false, err
	}
	_, ok := f.data[key]
	return ok, nil
}

func (f *FileStore) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.load(); err != nil {
		return nil, err
	}
	return cloneAll(f.data), nil
}

func (f *FileStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// reload drops the cache when the file on disk differs from what this store
// last wrote. It reports whether the content changed.
func (f *FileStore) reload() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false, ErrClosed
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			changed := len(f.data) > 0
			f.data = make(map[string]json.RawMessage)
			f.lastWritten = nil
			f.loaded = true
			return changed, nil
		}
		return false, fmt.Errorf("reading store file %s: %w", f.path, err)
	}
	if bytes.Equal(raw, f.lastWritten) {
		return false, nil
	}

	data, err := decodeFile(raw)
	if err != nil {
		// Keep serving the last good copy; the next write replaces the file.
		return false, fmt.Errorf("decoding store file %s: %w", f.path, err)
	}
	f.data = data
	f.lastWritten = raw
	f.loaded = true
	return true, nil
}
