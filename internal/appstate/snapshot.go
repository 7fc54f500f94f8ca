package appstate

import "github.com/ytget/esports-tracker/internal/model"

// Snapshot is a point-in-time copy of everything the store holds.
type Snapshot struct {
	Players          model.Player       `json:"players"`
	Teams            model.Teams        `json:"teams"`
	Matches          model.Matches      `json:"matches"`
	IsDarkMode       bool               `json:"isDarkMode"`
	IsNavigationMini bool               `json:"isNavigationMini"`
	JSONSavePath     string             `json:"jsonSavePath"`
	LastRoute        string             `json:"lastRoute"`
	ViewVisibility   model.Visibility   `json:"viewVisibility"`
	ViewPresets      model.Presets      `json:"viewPresets"`
	SelectedPreset   string             `json:"selectedPreset"`
	CustomViews      []model.CustomView `json:"customViews"`
	AppVersion       string             `json:"appVersion,omitempty"`
	UpdateStatus     model.UpdateStatus `json:"updateStatus,omitempty"`
}

// Snapshot copies the whole state under one lock
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Players:          s.players.Clone(),
		Teams:            s.teams.Clone(),
		Matches:          s.matches.Clone(),
		IsDarkMode:       s.isDarkMode,
		IsNavigationMini: s.isNavigationMini,
		JSONSavePath:     s.jsonSavePath,
		LastRoute:        s.lastRoute,
		ViewVisibility:   s.viewVisibility.Clone(),
		ViewPresets:      s.viewPresets.Clone(),
		SelectedPreset:   s.selectedPreset,
		CustomViews:      model.CloneViews(s.customViews),
		AppVersion:       s.appVersion,
		UpdateStatus:     s.updateStatus,
	}
}
