package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/esports-tracker/internal/appstate"
	"github.com/ytget/esports-tracker/internal/model"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), appstate.SavePathSubdir)
	teams := model.NewTeams()
	teams[2] = model.Team{ID: 2, TeamName: "Astralis", Score: 1}
	snap := appstate.Snapshot{
		Players: model.Player{PlayerName: "device", Kills: 21},
		Teams:   teams,
		Matches: model.Matches{Date: "2024-06-02"},
		CustomViews: []model.CustomView{
			{ID: "v1", Name: "Stats", Sections: []model.Section{}},
		},
	}

	paths, err := Export(context.Background(), snap, dir)
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Equal(t, filepath.Join(dir, PlayersFile), paths[0])

	var exportedTeams []model.Team
	readJSON(t, filepath.Join(dir, TeamsFile), &exportedTeams)
	require.Len(t, exportedTeams, model.TeamCount)
	assert.Equal(t, 1, exportedTeams[0].ID)
	assert.Equal(t, "Astralis", exportedTeams[1].TeamName)

	var player model.Player
	readJSON(t, filepath.Join(dir, PlayersFile), &player)
	assert.Equal(t, snap.Players, player)

	var views []model.CustomView
	readJSON(t, filepath.Join(dir, ViewsFile), &views)
	assert.Equal(t, snap.CustomViews, views)
}

func TestExportWithoutDirectory(t *testing.T) {
	_, err := Export(context.Background(), appstate.Snapshot{}, "")
	assert.ErrorIs(t, err, ErrNoDirectory)
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
