package appstate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

// Initialize loads the persisted state. Only the first successful call reads
// the store; later calls return immediately. A failed read is logged and the
// store keeps its defaults, so Initialize may be retried.
func (s *Store) Initialize(ctx context.Context) {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initialized {
		return
	}

	stored, err := s.persist.kv.GetAll(ctx)
	if err != nil {
		s.logger.Error("Failed to initialize store from key-value store", logfields.Error(err))
		return
	}

	s.mu.Lock()
	s.hydrate(stored)
	s.mu.Unlock()

	s.initialized = true
	s.logger.Debug("Store initialized", logfields.Count(len(stored)))

	s.InitializeViewVisibility(nil)
}

// hydrate applies stored values over the defaults. A key that cannot be
// decoded keeps its default. Caller holds s.mu.
func (s *Store) hydrate(stored map[string]json.RawMessage) {
	for _, key := range PersistedKeys {
		raw, ok := stored[key]
		if !ok {
			continue
		}
		if err := s.hydrateKey(key, raw); err != nil {
			s.logger.Warn("Ignoring unreadable stored value", logfields.Key(key), logfields.Error(err))
		}
	}
}

func (s *Store) hydrateKey(key string, raw json.RawMessage) error {
	switch key {
	case KeyPlayers:
		player := s.players
		if err := json.Unmarshal(raw, &player); err != nil {
			return err
		}
		s.players = player

	case KeyTeams:
		var stored map[int]model.Team
		if err := json.Unmarshal(raw, &stored); err != nil {
			return err
		}
		teams := s.teams.Clone()
		for id, team := range stored {
			if !model.ValidTeamID(id) {
				s.logger.Warn("Dropping stored team outside the bracket", logfields.Team(id))
				continue
			}
			team.ID = id
			teams[id] = team
		}
		s.teams = teams

	case KeyMatches:
		matches := s.matches
		if err := json.Unmarshal(raw, &matches); err != nil {
			return err
		}
		s.matches = matches

	case KeyIsDarkMode:
		if b, ok := decodeBool(raw); ok {
			s.isDarkMode = b
		}

	case KeyIsNavigationMini:
		if b, ok := decodeBool(raw); ok {
			s.isNavigationMini = b
		}

	case KeyJSONSavePath:
		if v, err := decodeString(raw); err != nil {
			return err
		} else if v != "" {
			s.jsonSavePath = v
		}

	case KeyLastRoute:
		if v, err := decodeString(raw); err != nil {
			return err
		} else if v != "" {
			s.lastRoute = v
		}

	case KeySelectedPreset:
		if v, err := decodeString(raw); err != nil {
			return err
		} else if v != "" {
			s.selectedPreset = v
		}

	case KeyViewVisibility:
		var v model.Visibility
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v != nil {
			s.viewVisibility = v
		}

	case KeyViewPresets:
		var p model.Presets
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		if p != nil {
			for name, v := range p {
				if v == nil {
					p[name] = model.Visibility{}
				}
			}
			s.viewPresets = p
		}

	case KeyCustomViews:
		var views []model.CustomView
		if err := json.Unmarshal(raw, &views); err != nil {
			return err
		}
		if views != nil {
			s.customViews = normalizeViews(views)
		}

	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

// decodeBool accepts only a JSON boolean
func decodeBool(raw json.RawMessage) (bool, bool) {
	var b *bool
	if err := json.Unmarshal(raw, &b); err != nil || b == nil {
		return false, false
	}
	return *b, true
}

// decodeString accepts a JSON string or null
func decodeString(raw json.RawMessage) (string, error) {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

// normalizeViews replaces null section and field lists with empty ones
func normalizeViews(views []model.CustomView) []model.CustomView {
	for i := range views {
		if views[i].Sections == nil {
			views[i].Sections = []model.Section{}
		}
		for j := range views[i].Sections {
			if views[i].Sections[j].Fields == nil {
				views[i].Sections[j].Fields = []model.Field{}
			}
		}
	}
	return views
}
