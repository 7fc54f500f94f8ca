// Package export writes the tracker data as JSON files that overlays and
// other tools can read.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ytget/esports-tracker/internal/appstate"
	"github.com/ytget/esports-tracker/internal/platform"
)

// Exported file names
const (
	PlayersFile = "players.json"
	TeamsFile   = "teams.json"
	MatchesFile = "matches.json"
	ViewsFile   = "views.json"
)

// ErrNoDirectory is returned when no export directory is set
var ErrNoDirectory = errors.New("no export directory set")

// Export writes players, teams, matches and custom views into dir and returns
// the written paths in that order. Teams are written as a list ordered by id.
func Export(ctx context.Context, snap appstate.Snapshot, dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrNoDirectory
	}

	files := []struct {
		name  string
		value any
	}{
		{PlayersFile, snap.Players},
		{TeamsFile, snap.Teams.Sorted()},
		{MatchesFile, snap.Matches},
		{ViewsFile, snap.CustomViews},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		data, err := json.MarshalIndent(f.value, "", "  ")
		if err != nil {
			return written, fmt.Errorf("encoding %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := platform.WriteFile(path, append(data, '\n')); err != nil {
			return written, fmt.Errorf("exporting %s: %w", f.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
