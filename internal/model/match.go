package model

import "fmt"

// MatchSlotName identifies one of the two match slots
type MatchSlotName string

const (
	FirstMatch  MatchSlotName = "first"
	SecondMatch MatchSlotName = "second"
)

// MatchSlot describes one fixture of the day.
type MatchSlot struct {
	MatchTime     string `json:"matchTime"`
	LeftTeamName  string `json:"leftTeamName"`
	RightTeamName string `json:"rightTeamName"`
	LeftTeamLogo  string `json:"leftTeamLogo"`
	RightTeamLogo string `json:"rightTeamLogo"`
	LeftTeamFlag  string `json:"leftTeamFlag"`
	RightTeamFlag string `json:"rightTeamFlag"`
}

// MatchSlotUpdate is a partial MatchSlot
type MatchSlotUpdate struct {
	MatchTime     *string
	LeftTeamName  *string
	RightTeamName *string
	LeftTeamLogo  *string
	RightTeamLogo *string
	LeftTeamFlag  *string
	RightTeamFlag *string
}

// Merge returns m with every non-nil field of u applied
func (m MatchSlot) Merge(u MatchSlotUpdate) MatchSlot {
	if u.MatchTime != nil {
		m.MatchTime = *u.MatchTime
	}
	if u.LeftTeamName != nil {
		m.LeftTeamName = *u.LeftTeamName
	}
	if u.RightTeamName != nil {
		m.RightTeamName = *u.RightTeamName
	}
	if u.LeftTeamLogo != nil {
		m.LeftTeamLogo = *u.LeftTeamLogo
	}
	if u.RightTeamLogo != nil {
		m.RightTeamLogo = *u.RightTeamLogo
	}
	if u.LeftTeamFlag != nil {
		m.LeftTeamFlag = *u.LeftTeamFlag
	}
	if u.RightTeamFlag != nil {
		m.RightTeamFlag = *u.RightTeamFlag
	}
	return m
}

// Matches is the day's schedule: a date and two fixed slots.
type Matches struct {
	Date        string    `json:"date"`
	FirstMatch  MatchSlot `json:"firstMatch"`
	SecondMatch MatchSlot `json:"secondMatch"`
}

// MatchesUpdate is a partial Matches. Slots are replaced as a whole.
type MatchesUpdate struct {
	Date        *string
	FirstMatch  *MatchSlot
	SecondMatch *MatchSlot
}

// Clone returns a copy of the schedule
func (m Matches) Clone() Matches {
	return m
}

// Merge returns m with every non-nil field of u applied
func (m Matches) Merge(u MatchesUpdate) Matches {
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.FirstMatch != nil {
		m.FirstMatch = *u.FirstMatch
	}
	if u.SecondMatch != nil {
		m.SecondMatch = *u.SecondMatch
	}
	return m
}

// Slot returns the named slot
func (m Matches) Slot(name MatchSlotName) (MatchSlot, error) {
	switch name {
	case FirstMatch:
		return m.FirstMatch, nil
	case SecondMatch:
		return m.SecondMatch, nil
	default:
		return MatchSlot{}, fmt.Errorf("unknown match slot: %q", name)
	}
}

// WithSlot returns m with the named slot replaced
func (m Matches) WithSlot(name MatchSlotName, slot MatchSlot) (Matches, error) {
	switch name {
	case FirstMatch:
		m.FirstMatch = slot
	case SecondMatch:
		m.SecondMatch = slot
	default:
		return m, fmt.Errorf("unknown match slot: %q", name)
	}
	return m, nil
}
