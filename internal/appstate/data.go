package appstate

import (
	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

// Players returns the player record
func (s *Store) Players() model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.players.Clone()
}

// Teams returns a copy of the roster
func (s *Store) Teams() model.Teams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teams.Clone()
}

// Team returns one team
func (s *Store) Team(id int) (model.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}

// Matches returns the schedule
func (s *Store) Matches() model.Matches {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matches.Clone()
}

// UpdateTeam merges u into the team with id. Unknown ids are ignored.
func (s *Store) UpdateTeam(id int, u model.TeamUpdate) *Pending {
	s.mu.Lock()
	team, ok := s.teams[id]
	if !ok {
		s.mu.Unlock()
		s.logger.Debug("Ignoring update for unknown team", logfields.Team(id))
		return noop()
	}
	s.teams[id] = team.Merge(u)
	snapshot := s.teams.Clone()
	return s.commit(entry{KeyTeams, snapshot})
}

// ClearTeams resets the roster
func (s *Store) ClearTeams() *Pending {
	s.mu.Lock()
	s.teams = model.NewTeams()
	snapshot := s.teams.Clone()
	return s.commit(entry{KeyTeams, snapshot})
}

// UpdatePlayers merges u into the player record
func (s *Store) UpdatePlayers(u model.PlayerUpdate) *Pending {
	s.mu.Lock()
	s.players = s.players.Merge(u)
	snapshot := s.players.Clone()
	return s.commit(entry{KeyPlayers, snapshot})
}

// ClearPlayers resets the player record
func (s *Store) ClearPlayers() *Pending {
	s.mu.Lock()
	s.players = model.NewPlayer()
	snapshot := s.players.Clone()
	return s.commit(entry{KeyPlayers, snapshot})
}

// UpdateMatches merges u into the schedule
func (s *Store) UpdateMatches(u model.MatchesUpdate) *Pending {
	s.mu.Lock()
	s.matches = s.matches.Merge(u)
	snapshot := s.matches.Clone()
	return s.commit(entry{KeyMatches, snapshot})
}

// UpdateMatchSlot merges u into one slot, leaving the other slot and the
// date alone.
func (s *Store) UpdateMatchSlot(name model.MatchSlotName, u model.MatchSlotUpdate) (*Pending, error) {
	s.mu.Lock()
	slot, err := s.matches.Slot(name)
	if err != nil {
		s.mu.Unlock()
		return noop(), invalid("slot", err)
	}
	matches, _ := s.matches.WithSlot(name, slot.Merge(u))
	s.matches = matches
	snapshot := s.matches.Clone()
	return s.commit(entry{KeyMatches, snapshot}), nil
}

// ClearMatches resets the schedule
func (s *Store) ClearMatches() *Pending {
	s.mu.Lock()
	s.matches = model.NewMatches()
	snapshot := s.matches.Clone()
	return s.commit(entry{KeyMatches, snapshot})
}

// ClearAllData resets players, teams and matches together
func (s *Store) ClearAllData() *Pending {
	players, teams, matches := model.NewPlayer(), model.NewTeams(), model.NewMatches()

	s.mu.Lock()
	s.players = players
	s.teams = teams
	s.matches = matches

	return s.commit(
		entry{KeyPlayers, players.Clone()},
		entry{KeyTeams, teams.Clone()},
		entry{KeyMatches, matches.Clone()},
	)
}
