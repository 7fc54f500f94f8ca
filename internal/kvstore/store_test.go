package kvstore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendCase struct {
	name string
	open func(t *testing.T) Store
}

func backends() []backendCase {
	return []backendCase{
		{"memory", func(t *testing.T) Store { return NewMemoryStore() }},
		{"file", func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "nested", DefaultFileName))
		}},
		{"sqlite", func(t *testing.T) Store {
			s, err := NewSQLiteStore(context.Background(), "sqlite://"+filepath.Join(t.TempDir(), "kv.db"))
			require.NoError(t, err)
			return s
		}},
		{"preferences", func(t *testing.T) Store {
			return NewPreferencesStore(test.NewApp().Preferences())
		}},
		{"client", func(t *testing.T) Store { return Connect(NewMemoryStore(), nil) }},
	}
}

func TestStoreContract(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			ctx := context.Background()
			s := bc.open(t)
			t.Cleanup(func() { _ = s.Close() })

			_, found, err := s.Get(ctx, "players")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, s.Set(ctx, "players", json.RawMessage(`{"kills":3}`)))
			require.NoError(t, s.Set(ctx, "isDarkMode", json.RawMessage(`true`)))

			v, found, err := s.Get(ctx, "players")
			require.NoError(t, err)
			require.True(t, found)
			assert.JSONEq(t, `{"kills":3}`, string(v))

			has, err := s.Has(ctx, "isDarkMode")
			require.NoError(t, err)
			assert.True(t, has)

			require.NoError(t, s.Set(ctx, "players", json.RawMessage(`{"kills":4}`)))
			all, err := s.GetAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.JSONEq(t, `{"kills":4}`, string(all["players"]))
			assert.JSONEq(t, `true`, string(all["isDarkMode"]))

			require.NoError(t, s.Delete(ctx, "players"))
			require.NoError(t, s.Delete(ctx, "missing"))
			has, err = s.Has(ctx, "players")
			require.NoError(t, err)
			assert.False(t, has)

			require.NoError(t, s.Clear(ctx))
			all, err = s.GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestStoreRejectsInvalidJSON(t *testing.T) {
	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			s := bc.open(t)
			t.Cleanup(func() { _ = s.Close() })
			assert.Error(t, s.Set(context.Background(), "k", json.RawMessage(`{nope`)))
			assert.Error(t, s.Set(context.Background(), "", json.RawMessage(`1`)))
		})
	}
}

func TestStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := Connect(NewMemoryStore(), nil)
	defer s.Close()

	value := json.RawMessage(`"abc"`)
	require.NoError(t, s.Set(ctx, "k", value))
	value[1] = 'z'

	got, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(got))

	got[1] = 'q'
	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(again))
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := Open(ctx, Options{Backend: BackendFile, DataDir: dir})
	require.NoError(t, err)
	fs, ok := s.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, DefaultFileName), fs.Path())

	s, err = Open(ctx, Options{Backend: BackendSQLite, DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Backend: BackendPreferences})
	assert.Error(t, err)

	s, err = Open(ctx, Options{Backend: BackendPreferences, App: test.NewApp()})
	require.NoError(t, err)
	assert.IsType(t, &PreferencesStore{}, s)

	_, err = Open(ctx, Options{Backend: "etcd"})
	assert.Error(t, err)
}
