package model

// Player holds the stats shown on the player card. There is exactly one
// player record per store.
type Player struct {
	PlayerName      string  `json:"playerName"`
	TeamName        string  `json:"teamName"`
	FavouriteWeapon string  `json:"favouriteWeapon"`
	EconomyScore    float64 `json:"economyScore"`
	HeroImage       string  `json:"heroImage"`
	Kills           int     `json:"kills"`
	Deaths          int     `json:"deaths"`
	Assists         int     `json:"assists"`
}

// PlayerUpdate is a partial Player; nil fields are left untouched on merge.
type PlayerUpdate struct {
	PlayerName      *string
	TeamName        *string
	FavouriteWeapon *string
	EconomyScore    *float64
	HeroImage       *string
	Kills           *int
	Deaths          *int
	Assists         *int
}

// Clone returns a copy of the player
func (p Player) Clone() Player {
	return p
}

// Merge returns p with every non-nil field of u applied
func (p Player) Merge(u PlayerUpdate) Player {
	if u.PlayerName != nil {
		p.PlayerName = *u.PlayerName
	}
	if u.TeamName != nil {
		p.TeamName = *u.TeamName
	}
	if u.FavouriteWeapon != nil {
		p.FavouriteWeapon = *u.FavouriteWeapon
	}
	if u.EconomyScore != nil {
		p.EconomyScore = *u.EconomyScore
	}
	if u.HeroImage != nil {
		p.HeroImage = *u.HeroImage
	}
	if u.Kills != nil {
		p.Kills = *u.Kills
	}
	if u.Deaths != nil {
		p.Deaths = *u.Deaths
	}
	if u.Assists != nil {
		p.Assists = *u.Assists
	}
	return p
}

// KDA returns (kills + assists) / deaths, treating zero deaths as one
func (p Player) KDA() float64 {
	deaths := p.Deaths
	if deaths == 0 {
		deaths = 1
	}
	return float64(p.Kills+p.Assists) / float64(deaths)
}
