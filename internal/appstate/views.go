package appstate

import (
	"fmt"
	"strings"

	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

// CustomViews returns a deep copy of the user-defined views
func (s *Store) CustomViews() []model.CustomView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneViews(s.customViews)
}

// CustomView returns the view with id
func (s *Store) CustomView(id string) (model.CustomView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := model.ViewIndex(s.customViews, id)
	if i < 0 {
		return model.CustomView{}, false
	}
	return s.customViews[i].Clone(), true
}

// viewEntries snapshots customViews, plus visibility when it changed.
// Caller holds s.mu.
func (s *Store) viewEntries(visibilityChanged bool) []entry {
	entries := []entry{{KeyCustomViews, model.CloneViews(s.customViews)}}
	if visibilityChanged {
		entries = append(entries, entry{KeyViewVisibility, s.viewVisibility.Clone()})
	}
	return entries
}

// AddCustomView appends a view with no sections and makes it visible. Names
// must not collide with a built-in or another custom view.
func (s *Store) AddCustomView(view model.CustomView) (model.CustomView, *Pending, error) {
	if strings.TrimSpace(view.ID) == "" {
		return model.CustomView{}, noop(), invalid("id", ErrMissingID)
	}
	if strings.TrimSpace(view.Name) == "" {
		return model.CustomView{}, noop(), invalid("name", ErrMissingName)
	}
	view.Sections = []model.Section{}

	s.mu.Lock()
	if model.ViewIndex(s.customViews, view.ID) >= 0 {
		s.mu.Unlock()
		return model.CustomView{}, noop(), invalid("id", ErrDuplicateID)
	}
	if s.viewNameTaken(view.Name, "") {
		s.mu.Unlock()
		return model.CustomView{}, noop(), invalid("name", ErrDuplicateName)
	}
	s.customViews = append(s.customViews, view)
	_, seen := s.viewVisibility[view.Name]
	if !seen {
		s.viewVisibility[view.Name] = true
	}
	entries := s.viewEntries(!seen)

	s.logger.Debug("Custom view added", logfields.View(view.ID))
	return view.Clone(), s.commit(entries...), nil
}

// UpdateCustomView merges u into the view with id. A rename carries the
// view's visibility over to the new name.
func (s *Store) UpdateCustomView(id string, u model.CustomViewUpdate) (*Pending, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return noop(), invalid("name", ErrMissingName)
	}

	s.mu.Lock()
	i := model.ViewIndex(s.customViews, id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn("Custom view not found", logfields.View(id))
		return noop(), nil
	}
	if u.Name != nil && s.viewNameTaken(*u.Name, id) {
		s.mu.Unlock()
		return noop(), invalid("name", ErrDuplicateName)
	}
	old := s.customViews[i].Name
	s.customViews[i] = s.customViews[i].Merge(u)

	renamed := s.customViews[i].Name != old
	if renamed {
		shown, ok := s.viewVisibility[old]
		if !ok {
			shown = true
		}
		delete(s.viewVisibility, old)
		s.viewVisibility[s.customViews[i].Name] = shown
	}
	entries := s.viewEntries(renamed)

	return s.commit(entries...), nil
}

// DeleteCustomView removes the view with id and its visibility entry
func (s *Store) DeleteCustomView(id string) *Pending {
	s.mu.Lock()
	i := model.ViewIndex(s.customViews, id)
	if i < 0 {
		s.mu.Unlock()
		return noop()
	}
	name := s.customViews[i].Name
	s.customViews = append(s.customViews[:i], s.customViews[i+1:]...)
	// Older stores may hold views sharing a name; the entry stays while one remains.
	_, had := s.viewVisibility[name]
	drop := had && !s.viewNameTaken(name, "")
	if drop {
		delete(s.viewVisibility, name)
	}
	entries := s.viewEntries(drop)

	s.logger.Debug("Custom view deleted", logfields.View(id))
	return s.commit(entries...)
}

// AddSection appends an empty section with a generated id to a view.
func (s *Store) AddSection(viewID, name string) (model.Section, *Pending, error) {
	if strings.TrimSpace(name) == "" {
		return model.Section{}, noop(), invalid("name", ErrMissingName)
	}

	s.mu.Lock()
	i := model.ViewIndex(s.customViews, viewID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn("Custom view not found", logfields.View(viewID))
		return model.Section{}, noop(), fmt.Errorf("view %q: %w", viewID, ErrNotFound)
	}
	section := model.Section{ID: s.newID(), Name: name, Fields: []model.Field{}}
	s.customViews[i].AddSection(section)
	entries := s.viewEntries(false)

	return section.Clone(), s.commit(entries...), nil
}

// UpdateSection renames a section
func (s *Store) UpdateSection(viewID, sectionID, name string) (*Pending, error) {
	if strings.TrimSpace(name) == "" {
		return noop(), invalid("name", ErrMissingName)
	}

	s.mu.Lock()
	section := s.section(viewID, sectionID)
	if section == nil {
		s.mu.Unlock()
		return noop(), nil
	}
	section.Name = name
	entries := s.viewEntries(false)

	return s.commit(entries...), nil
}

// DeleteSection removes a section and its fields
func (s *Store) DeleteSection(viewID, sectionID string) *Pending {
	s.mu.Lock()
	i := model.ViewIndex(s.customViews, viewID)
	if i < 0 || !s.customViews[i].RemoveSection(sectionID) {
		s.mu.Unlock()
		return noop()
	}
	entries := s.viewEntries(false)

	return s.commit(entries...)
}

// AddField appends field to a section. The id is generated when empty and
// the value always starts empty.
func (s *Store) AddField(viewID, sectionID string, field model.Field) (model.Field, *Pending, error) {
	if strings.TrimSpace(field.Name) == "" {
		return model.Field{}, noop(), invalid("name", ErrMissingName)
	}
	if field.ID == "" {
		field.ID = s.newID()
	}
	field.Value = ""

	s.mu.Lock()
	section := s.section(viewID, sectionID)
	if section == nil {
		s.mu.Unlock()
		s.logger.Warn("Section not found", logfields.View(viewID), logfields.Section(sectionID))
		return model.Field{}, noop(), fmt.Errorf("section %q in view %q: %w", sectionID, viewID, ErrNotFound)
	}
	if section.FieldIndex(field.ID) >= 0 {
		s.mu.Unlock()
		return model.Field{}, noop(), invalid("id", ErrDuplicateID)
	}
	section.AddField(field)
	entries := s.viewEntries(false)

	return field, s.commit(entries...), nil
}

// UpdateField merges u into a field
func (s *Store) UpdateField(viewID, sectionID, fieldID string, u model.FieldUpdate) (*Pending, error) {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return noop(), invalid("name", ErrMissingName)
	}

	s.mu.Lock()
	section := s.section(viewID, sectionID)
	if section == nil {
		s.mu.Unlock()
		return noop(), nil
	}
	j := section.FieldIndex(fieldID)
	if j < 0 {
		s.mu.Unlock()
		return noop(), nil
	}
	section.Fields[j] = section.Fields[j].Merge(u)
	entries := s.viewEntries(false)

	return s.commit(entries...), nil
}

// DeleteField removes a field
func (s *Store) DeleteField(viewID, sectionID, fieldID string) *Pending {
	s.mu.Lock()
	section := s.section(viewID, sectionID)
	if section == nil || !section.RemoveField(fieldID) {
		s.mu.Unlock()
		return noop()
	}
	entries := s.viewEntries(false)

	return s.commit(entries...)
}

// section returns a pointer into customViews, or nil. Caller holds s.mu.
func (s *Store) section(viewID, sectionID string) *model.Section {
	i := model.ViewIndex(s.customViews, viewID)
	if i < 0 {
		return nil
	}
	j := s.customViews[i].SectionIndex(sectionID)
	if j < 0 {
		return nil
	}
	return &s.customViews[i].Sections[j]
}
