package model

// NavigableView is a built-in dashboard page.
type NavigableView struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Path  string `json:"path"`
}

// BuiltinViews returns the navigable pages shipped with the app
func BuiltinViews() []NavigableView {
	return []NavigableView{
		{Name: "TeamsView", Title: "Brackets View", Icon: "mdi-tournament", Path: "/TeamsView"},
		{Name: "PlayerStats", Title: "Players Stats", Icon: "mdi-account-star", Path: "/PlayerStats"},
		{Name: "TodayMatches", Title: "Today's Matches", Icon: "mdi-calendar-today", Path: "/TodayMatches"},
	}
}

// Visibility maps a view name to whether it is shown in navigation.
type Visibility map[string]bool

// Clone returns an independent copy
func (v Visibility) Clone() Visibility {
	out := make(Visibility, len(v))
	for name, shown := range v {
		out[name] = shown
	}
	return out
}

// Equal reports whether both maps hold the same entries
func (v Visibility) Equal(other Visibility) bool {
	if len(v) != len(other) {
		return false
	}
	for name, shown := range v {
		if o, ok := other[name]; !ok || o != shown {
			return false
		}
	}
	return true
}

// Presets maps a preset name to its saved visibility snapshot.
type Presets map[string]Visibility

// Clone returns an independent copy, snapshots included
func (p Presets) Clone() Presets {
	out := make(Presets, len(p))
	for name, v := range p {
		out[name] = v.Clone()
	}
	return out
}

// Field is a single labelled value inside a section.
type Field struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// FieldUpdate is a partial Field
type FieldUpdate struct {
	Name  *string
	Type  *string
	Value *string
}

// Merge returns f with every non-nil field of u applied
func (f Field) Merge(u FieldUpdate) Field {
	if u.Name != nil {
		f.Name = *u.Name
	}
	if u.Type != nil {
		f.Type = *u.Type
	}
	if u.Value != nil {
		f.Value = *u.Value
	}
	return f
}

// Section groups fields inside a custom view. Field order is display order.
type Section struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Clone returns an independent copy
func (s Section) Clone() Section {
	fields := make([]Field, len(s.Fields))
	copy(fields, s.Fields)
	s.Fields = fields
	return s
}

// FieldIndex returns the position of the field with id, or -1
func (s *Section) FieldIndex(id string) int {
	for i, f := range s.Fields {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// AddField appends a field
func (s *Section) AddField(f Field) {
	s.Fields = append(s.Fields, f)
}

// RemoveField removes the first field with id
func (s *Section) RemoveField(id string) bool {
	i := s.FieldIndex(id)
	if i < 0 {
		return false
	}
	s.Fields = append(s.Fields[:i], s.Fields[i+1:]...)
	return true
}

// CustomView is a user-defined dashboard page.
type CustomView struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Content  string    `json:"content,omitempty"`
	Sections []Section `json:"sections"`
}

// CustomViewUpdate is a partial CustomView. Sections are edited through the
// section operations only.
type CustomViewUpdate struct {
	Name    *string
	Content *string
}

// Merge returns v with every non-nil field of u applied
func (v CustomView) Merge(u CustomViewUpdate) CustomView {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.Content != nil {
		v.Content = *u.Content
	}
	return v
}

// Clone returns an independent copy, sections and fields included
func (v CustomView) Clone() CustomView {
	sections := make([]Section, len(v.Sections))
	for i, s := range v.Sections {
		sections[i] = s.Clone()
	}
	v.Sections = sections
	return v
}

// SectionIndex returns the position of the section with id, or -1
func (v *CustomView) SectionIndex(id string) int {
	for i, s := range v.Sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// AddSection appends a section
func (v *CustomView) AddSection(s Section) {
	v.Sections = append(v.Sections, s)
}

// RemoveSection removes the first section with id
func (v *CustomView) RemoveSection(id string) bool {
	i := v.SectionIndex(id)
	if i < 0 {
		return false
	}
	v.Sections = append(v.Sections[:i], v.Sections[i+1:]...)
	return true
}

// CloneViews deep-copies a view list
func CloneViews(views []CustomView) []CustomView {
	out := make([]CustomView, len(views))
	for i, v := range views {
		out[i] = v.Clone()
	}
	return out
}

// ViewIndex returns the position of the view with id, or -1
func ViewIndex(views []CustomView, id string) int {
	for i, v := range views {
		if v.ID == id {
			return i
		}
	}
	return -1
}
