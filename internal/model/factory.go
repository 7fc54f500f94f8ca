package model

// NewPlayer returns an empty player record
func NewPlayer() Player {
	return Player{}
}

// NewTeams returns a fresh roster with ids 1..TeamCount, all blank
func NewTeams() Teams {
	teams := make(Teams, TeamCount)
	for id := 1; id <= TeamCount; id++ {
		teams[id] = Team{ID: id}
	}
	return teams
}

// NewMatchSlot returns a blank match slot
func NewMatchSlot() MatchSlot {
	return MatchSlot{}
}

// NewMatches returns a blank schedule with both slots empty
func NewMatches() Matches {
	return Matches{
		FirstMatch:  NewMatchSlot(),
		SecondMatch: NewMatchSlot(),
	}
}
