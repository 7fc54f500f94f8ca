package appstate

import (
	"context"
	"path/filepath"

	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

// IsDarkMode returns the theme flag
func (s *Store) IsDarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isDarkMode
}

// IsNavigationMini returns whether the navigation drawer is collapsed
func (s *Store) IsNavigationMini() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isNavigationMini
}

// JSONSavePath returns the export directory, or "" when unset
func (s *Store) JSONSavePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jsonSavePath
}

// LastRoute returns the last visited route
func (s *Store) LastRoute() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRoute
}

// ToggleTheme sets dark mode
func (s *Store) ToggleTheme(dark bool) *Pending {
	s.mu.Lock()
	s.isDarkMode = dark
	return s.commit(entry{KeyIsDarkMode, dark})
}

// ToggleNavigationMode sets the collapsed navigation flag
func (s *Store) ToggleNavigationMode(mini bool) *Pending {
	s.mu.Lock()
	s.isNavigationMini = mini
	return s.commit(entry{KeyIsNavigationMini, mini})
}

// SetLastRoute records the route the user is on
func (s *Store) SetLastRoute(route string) *Pending {
	s.mu.Lock()
	s.lastRoute = route
	return s.commit(entry{KeyLastRoute, nullable(route)})
}

// SetSavePath stores path as the export directory as given
func (s *Store) SetSavePath(path string) *Pending {
	s.mu.Lock()
	s.jsonSavePath = path
	return s.commit(entry{KeyJSONSavePath, nullable(path)})
}

// SelectSavePath asks the directory selector for a directory and stores
// its ViewsData subdirectory. Cancelling or a selector failure leaves the
// path unchanged.
func (s *Store) SelectSavePath(ctx context.Context) *Pending {
	if s.dirs == nil {
		s.logger.Warn("No directory selector configured")
		return noop()
	}
	dir, ok, err := s.dirs.SelectDirectory(ctx)
	if err != nil {
		s.logger.Error("Failed to select directory", logfields.Error(err))
		return noop()
	}
	if !ok || dir == "" {
		return noop()
	}
	return s.SetSavePath(filepath.Join(dir, SavePathSubdir))
}

// InitializeSavePath sets the default export directory when none is set
func (s *Store) InitializeSavePath(ctx context.Context) *Pending {
	if s.JSONSavePath() != "" {
		return noop()
	}
	path, ok := s.defaultSavePath(ctx)
	if !ok {
		return noop()
	}
	return s.SetSavePath(path)
}

func (s *Store) defaultSavePath(ctx context.Context) (string, bool) {
	if s.dirs == nil {
		s.logger.Warn("No directory selector configured")
		return "", false
	}
	dir, err := s.dirs.DefaultPath(ctx)
	if err != nil {
		s.logger.Error("Failed to get default path", logfields.Error(err))
		return "", false
	}
	return filepath.Join(dir, SavePathSubdir), true
}

// ViewVisibility returns a copy of the visibility map
func (s *Store) ViewVisibility() model.Visibility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewVisibility.Clone()
}

// IsViewVisible reports whether name is shown. Unknown names are shown.
func (s *Store) IsViewVisible(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shown, ok := s.viewVisibility[name]
	return !ok || shown
}

// SetViewVisibility shows or hides one view
func (s *Store) SetViewVisibility(name string, visible bool) *Pending {
	s.mu.Lock()
	s.viewVisibility[name] = visible
	snapshot := s.viewVisibility.Clone()
	return s.commit(entry{KeyViewVisibility, snapshot})
}

// InitializeViewVisibility adds a visible entry for every known view that has
// none, plus any extra names given. It only writes when something was added.
func (s *Store) InitializeViewVisibility(extra []string) *Pending {
	s.mu.Lock()
	added := false
	for _, name := range append(s.knownViewNames(), extra...) {
		if _, ok := s.viewVisibility[name]; !ok {
			s.viewVisibility[name] = true
			added = true
		}
	}
	if !added {
		s.mu.Unlock()
		return noop()
	}
	snapshot := s.viewVisibility.Clone()
	return s.commit(entry{KeyViewVisibility, snapshot})
}

// ResetSettings restores theme, navigation, visibility, preset selection and
// the export directory to their defaults.
func (s *Store) ResetSettings(ctx context.Context) *Pending {
	path, ok := s.defaultSavePath(ctx)

	s.mu.Lock()
	s.isDarkMode = false
	s.isNavigationMini = true
	for _, name := range s.knownViewNames() {
		s.viewVisibility[name] = true
	}
	s.selectedPreset = ""
	if ok {
		s.jsonSavePath = path
	}
	entries := []entry{
		{KeyIsDarkMode, s.isDarkMode},
		{KeyIsNavigationMini, s.isNavigationMini},
		{KeyViewVisibility, s.viewVisibility.Clone()},
		{KeySelectedPreset, nullable(s.selectedPreset)},
		{KeyJSONSavePath, nullable(s.jsonSavePath)},
	}

	return s.commit(entries...)
}
