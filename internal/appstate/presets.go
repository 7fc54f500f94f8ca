package appstate

import (
	"strings"
	"unicode/utf8"

	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

// MaxPresetNameLength is the longest preset name the dialog accepts
const MaxPresetNameLength = 50

// ValidatePresetName applies the rules of the save-preset dialog: a name is
// required, at most MaxPresetNameLength characters and not already taken.
func ValidatePresetName(name string, existing model.Presets) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("name", ErrInvalidPresetName)
	}
	if utf8.RuneCountInString(name) > MaxPresetNameLength {
		return invalid("name", ErrPresetNameTooLong)
	}
	if _, ok := existing[name]; ok {
		return invalid("name", ErrPresetExists)
	}
	return nil
}

// Presets returns a copy of the saved presets
func (s *Store) Presets() model.Presets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewPresets.Clone()
}

// SelectedPreset returns the active preset name, or "" when none is active
func (s *Store) SelectedPreset() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedPreset
}

// SavePreset stores the current visibility under name and selects it. An
// existing preset with the same name is overwritten.
func (s *Store) SavePreset(name string) (*Pending, error) {
	if strings.TrimSpace(name) == "" {
		return noop(), invalid("name", ErrInvalidPresetName)
	}

	s.mu.Lock()
	s.viewPresets[name] = s.viewVisibility.Clone()
	s.selectedPreset = name
	entries := []entry{
		{KeyViewPresets, s.viewPresets.Clone()},
		{KeySelectedPreset, nullable(name)},
	}

	s.logger.Debug("Preset saved", logfields.Preset(name))
	return s.commit(entries...), nil
}

// ApplyPreset replaces visibility with the named preset and selects it.
// Unknown names change nothing.
func (s *Store) ApplyPreset(name string) *Pending {
	s.mu.Lock()
	preset, ok := s.viewPresets[name]
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("Preset not found", logfields.Preset(name))
		return noop()
	}
	s.viewVisibility = preset.Clone()
	s.selectedPreset = name
	entries := []entry{
		{KeyViewVisibility, s.viewVisibility.Clone()},
		{KeySelectedPreset, nullable(name)},
	}

	return s.commit(entries...)
}

// UpdatePreset overwrites an existing preset with the current visibility and
// selects it
func (s *Store) UpdatePreset(name string) *Pending {
	s.mu.Lock()
	if _, ok := s.viewPresets[name]; !ok {
		s.mu.Unlock()
		s.logger.Warn("Preset not found", logfields.Preset(name))
		return noop()
	}
	s.viewPresets[name] = s.viewVisibility.Clone()
	s.selectedPreset = name

	return s.commit(
		entry{KeyViewPresets, s.viewPresets.Clone()},
		entry{KeySelectedPreset, nullable(name)},
	)
}

// DeletePreset removes a preset and makes every known view visible again.
// The selection is cleared when it pointed at the deleted preset.
func (s *Store) DeletePreset(name string) *Pending {
	s.mu.Lock()
	if _, ok := s.viewPresets[name]; !ok {
		s.mu.Unlock()
		s.logger.Warn("Preset not found", logfields.Preset(name))
		return noop()
	}
	delete(s.viewPresets, name)
	for _, view := range s.knownViewNames() {
		s.viewVisibility[view] = true
	}
	if s.selectedPreset == name {
		s.selectedPreset = ""
	}
	entries := []entry{
		{KeyViewPresets, s.viewPresets.Clone()},
		{KeyViewVisibility, s.viewVisibility.Clone()},
		{KeySelectedPreset, nullable(s.selectedPreset)},
	}

	return s.commit(entries...)
}
