package appstate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/model"
)

type fakeSelector struct {
	dir      string
	ok       bool
	err      error
	defaults string
}

func (f fakeSelector) SelectDirectory(context.Context) (string, bool, error) {
	return f.dir, f.ok, f.err
}

func (f fakeSelector) DefaultPath(context.Context) (string, error) {
	return f.defaults, nil
}

func TestSelectSavePath(t *testing.T) {
	dir := t.TempDir()
	s := newTestStore(t, kvstore.NewMemoryStore(), WithDirectorySelector(fakeSelector{dir: dir, ok: true}))

	wait(t, s.SelectSavePath(context.Background()))
	assert.Equal(t, filepath.Join(dir, SavePathSubdir), s.JSONSavePath())
}

func TestSelectSavePathCancelled(t *testing.T) {
	for name, sel := range map[string]fakeSelector{
		"cancelled": {},
		"failed":    {err: errors.New("no display")},
	} {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t, kvstore.NewMemoryStore(), WithDirectorySelector(sel))
			s.SetSavePath("/keep")

			p := s.SelectSavePath(context.Background())
			assert.False(t, p.Applied())
			assert.Equal(t, "/keep", s.JSONSavePath())
		})
	}

	s := newTestStore(t, kvstore.NewMemoryStore())
	assert.False(t, s.SelectSavePath(context.Background()).Applied())
}

func TestInitializeSavePath(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore(), WithDirectorySelector(fakeSelector{defaults: "/data"}))

	wait(t, s.InitializeSavePath(context.Background()))
	assert.Equal(t, filepath.Join("/data", SavePathSubdir), s.JSONSavePath())

	s.SetSavePath("/custom")
	assert.False(t, s.InitializeSavePath(context.Background()).Applied())
	assert.Equal(t, "/custom", s.JSONSavePath())
}

func TestResetSettings(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := newTestStore(t, kv, WithDirectorySelector(fakeSelector{defaults: "/data"}))
	_, _, err := s.AddCustomView(model.CustomView{ID: "v1", Name: "Stats"})
	require.NoError(t, err)
	s.ToggleTheme(true)
	s.ToggleNavigationMode(false)
	s.SetViewVisibility("Stats", false)
	s.SetSavePath("/elsewhere")
	_, err = s.SavePreset("A")
	require.NoError(t, err)

	wait(t, s.ResetSettings(context.Background()))

	assert.False(t, s.IsDarkMode())
	assert.True(t, s.IsNavigationMini())
	assert.Empty(t, s.SelectedPreset())
	assert.Contains(t, s.Presets(), "A")
	assert.Equal(t, filepath.Join("/data", SavePathSubdir), s.JSONSavePath())
	for name, shown := range s.ViewVisibility() {
		assert.True(t, shown, name)
	}

	var dark bool
	require.True(t, stored(t, kv, KeyIsDarkMode, &dark))
	assert.False(t, dark)
}

func TestViewVisibility(t *testing.T) {
	kv := kvstore.NewCounting(kvstore.NewMemoryStore())
	s := newTestStore(t, kv)

	assert.True(t, s.IsViewVisible("Unknown"))
	s.SetViewVisibility("TeamsView", false)
	assert.False(t, s.IsViewVisible("TeamsView"))

	assert.False(t, s.InitializeViewVisibility(nil).Applied(), "nothing new to add")
	p := s.InitializeViewVisibility([]string{"Extra"})
	assert.True(t, p.Applied())
	assert.True(t, s.ViewVisibility()["Extra"])
	assert.False(t, s.ViewVisibility()["TeamsView"], "existing entries are kept")
}

func TestLastRoute(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := newTestStore(t, kv)

	wait(t, s.SetLastRoute("/TodayMatches"))
	assert.Equal(t, "/TodayMatches", s.LastRoute())

	var route string
	require.True(t, stored(t, kv, KeyLastRoute, &route))
	assert.Equal(t, "/TodayMatches", route)
}
