package model

import "sort"

// TeamCount is the size of the bracket. Team ids run from 1 to TeamCount.
const TeamCount = 32

// Team is one bracket slot.
type Team struct {
	ID        int    `json:"id"`
	TeamImage string `json:"teamImage"`
	FlagImage string `json:"flagImage"`
	TeamName  string `json:"teamName"`
	Score     int    `json:"score"`
}

// TeamUpdate is a partial Team. The id is never changed by a merge.
type TeamUpdate struct {
	TeamImage *string
	FlagImage *string
	TeamName  *string
	Score     *int
}

// Merge returns t with every non-nil field of u applied
func (t Team) Merge(u TeamUpdate) Team {
	if u.TeamImage != nil {
		t.TeamImage = *u.TeamImage
	}
	if u.FlagImage != nil {
		t.FlagImage = *u.FlagImage
	}
	if u.TeamName != nil {
		t.TeamName = *u.TeamName
	}
	if u.Score != nil {
		t.Score = *u.Score
	}
	return t
}

// Teams maps team id to team. It always holds ids 1..TeamCount.
type Teams map[int]Team

// ValidTeamID reports whether id belongs to the bracket
func ValidTeamID(id int) bool {
	return id >= 1 && id <= TeamCount
}

// Clone returns an independent copy of the roster
func (ts Teams) Clone() Teams {
	out := make(Teams, len(ts))
	for id, t := range ts {
		out[id] = t
	}
	return out
}

// IDs returns the team ids in ascending order
func (ts Teams) IDs() []int {
	ids := make([]int, 0, len(ts))
	for id := range ts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Sorted returns the teams ordered by id
func (ts Teams) Sorted() []Team {
	out := make([]Team, 0, len(ts))
	for _, id := range ts.IDs() {
		out = append(out, ts[id])
	}
	return out
}
