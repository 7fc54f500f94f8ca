package model

import "testing"

func TestTeam_Merge(t *testing.T) {
	team := Team{ID: 4, TeamName: "Old", TeamImage: "old.png", Score: 3}

	merged := team.Merge(TeamUpdate{Score: intPtr(7)})

	if merged.Score != 7 {
		t.Errorf("Expected score 7, got %d", merged.Score)
	}
	if merged.TeamName != "Old" || merged.TeamImage != "old.png" || merged.ID != 4 {
		t.Errorf("Unspecified fields changed: %+v", merged)
	}
	if team.Score != 3 {
		t.Error("Merge mutated the receiver")
	}
}

func TestPlayer_Merge(t *testing.T) {
	player := Player{PlayerName: "s1mple", Kills: 20, Deaths: 10}

	merged := player.Merge(PlayerUpdate{Deaths: intPtr(5), TeamName: strPtr("NAVI")})

	expected := Player{PlayerName: "s1mple", TeamName: "NAVI", Kills: 20, Deaths: 5}
	if merged != expected {
		t.Errorf("Merge() = %+v, expected %+v", merged, expected)
	}
}

func TestPlayer_KDA(t *testing.T) {
	tests := []struct {
		player   Player
		expected float64
	}{
		{Player{Kills: 10, Assists: 5, Deaths: 5}, 3},
		{Player{Kills: 4, Assists: 0, Deaths: 0}, 4},
		{Player{}, 0},
	}

	for _, test := range tests {
		if got := test.player.KDA(); got != test.expected {
			t.Errorf("KDA() for %+v = %v, expected %v", test.player, got, test.expected)
		}
	}
}

func TestMatches_MergeReplacesWholeSlot(t *testing.T) {
	matches := NewMatches()
	matches.FirstMatch.LeftTeamName = "A"
	matches.FirstMatch.RightTeamName = "B"

	merged := matches.Merge(MatchesUpdate{
		Date:       strPtr("2026-10-19"),
		FirstMatch: &MatchSlot{MatchTime: "18:00"},
	})

	if merged.Date != "2026-10-19" {
		t.Errorf("Expected date to be set, got %q", merged.Date)
	}
	if merged.FirstMatch != (MatchSlot{MatchTime: "18:00"}) {
		t.Errorf("Expected first slot to be replaced, got %+v", merged.FirstMatch)
	}
}

func TestMatches_WithSlot(t *testing.T) {
	matches := NewMatches()

	updated, err := matches.WithSlot(SecondMatch, MatchSlot{LeftTeamName: "FaZe"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	slot, _ := updated.Slot(SecondMatch)
	if slot.LeftTeamName != "FaZe" {
		t.Errorf("Expected FaZe, got %q", slot.LeftTeamName)
	}

	if _, err := matches.WithSlot("third", MatchSlot{}); err == nil {
		t.Error("Expected error for unknown slot")
	}
}

func TestCustomView_CloneIsDeep(t *testing.T) {
	view := CustomView{
		ID:   "v1",
		Name: "Stats",
		Sections: []Section{
			{ID: "s1", Name: "Overview", Fields: []Field{{ID: "f1", Name: "Score"}}},
		},
	}

	clone := view.Clone()
	clone.Sections[0].Name = "Changed"
	clone.Sections[0].Fields[0].Value = "99"

	if view.Sections[0].Name != "Overview" {
		t.Error("Clone shares sections with the original")
	}
	if view.Sections[0].Fields[0].Value != "" {
		t.Error("Clone shares fields with the original")
	}
}

func TestSection_RemoveField(t *testing.T) {
	section := Section{Fields: []Field{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	if !section.RemoveField("b") {
		t.Fatal("Expected b to be removed")
	}
	if len(section.Fields) != 2 || section.Fields[0].ID != "a" || section.Fields[1].ID != "c" {
		t.Errorf("Unexpected fields after removal: %+v", section.Fields)
	}
	if section.RemoveField("missing") {
		t.Error("Removing a missing field should report false")
	}
}

func TestVisibility_CloneAndEqual(t *testing.T) {
	v := Visibility{"TeamsView": true, "PlayerStats": false}
	clone := v.Clone()
	if !v.Equal(clone) {
		t.Fatal("Clone should equal the original")
	}
	clone["PlayerStats"] = true
	if v["PlayerStats"] {
		t.Error("Clone shares storage with the original")
	}
	if v.Equal(clone) {
		t.Error("Expected maps to differ after mutation")
	}
}
