package appstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore returns an initialized store over kv
func newTestStore(t *testing.T, kv kvstore.Store, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	s := New(kv, opts...)
	s.Initialize(context.Background())
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func wait(t *testing.T, p *Pending) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Wait(ctx))
}

func stored(t *testing.T, kv kvstore.Store, key string, v any) bool {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), key)
	require.NoError(t, err)
	if !ok {
		return false
	}
	require.NoError(t, json.Unmarshal(raw, v))
	return true
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestNewDefaults(t *testing.T) {
	s := New(kvstore.NewMemoryStore(), WithLogger(quietLogger()))
	defer s.Close(context.Background())

	assert.False(t, s.Initialized())
	assert.False(t, s.IsDarkMode())
	assert.True(t, s.IsNavigationMini())
	assert.Empty(t, s.JSONSavePath())
	assert.Empty(t, s.SelectedPreset())
	assert.Len(t, s.Teams(), model.TeamCount)
	assert.Equal(t, model.NewMatches(), s.Matches())
	assert.NotNil(t, s.CustomViews())
}

func TestInitializeReadsOnce(t *testing.T) {
	kv := kvstore.NewCounting(kvstore.NewMemoryStore())
	s := New(kv, WithLogger(quietLogger()))
	defer s.Close(context.Background())

	ctx := context.Background()
	s.Initialize(ctx)
	s.Initialize(ctx)

	assert.True(t, s.Initialized())
	assert.Equal(t, 1, kv.Calls(kvstore.OpGetAll))
}

func TestInitializeRetriesAfterFailure(t *testing.T) {
	kv := kvstore.NewCounting(kvstore.NewMemoryStore())
	kv.FailOn(kvstore.OpGetAll, errors.New("disk unplugged"))
	s := New(kv, WithLogger(quietLogger()))
	defer s.Close(context.Background())

	ctx := context.Background()
	s.Initialize(ctx)
	assert.False(t, s.Initialized())
	assert.True(t, s.IsNavigationMini())

	kv.FailOn(kvstore.OpGetAll, nil)
	s.Initialize(ctx)
	assert.True(t, s.Initialized())
	assert.Equal(t, 2, kv.Calls(kvstore.OpGetAll))
}

func TestInitializeBackfillsVisibility(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := newTestStore(t, kv)
	require.NoError(t, s.Flush(context.Background()))

	want := model.Visibility{"TeamsView": true, "PlayerStats": true, "TodayMatches": true}
	assert.Equal(t, want, s.ViewVisibility())

	var persisted model.Visibility
	require.True(t, stored(t, kv, KeyViewVisibility, &persisted))
	assert.Equal(t, want, persisted)
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	seed := map[string]string{
		KeyPlayers:          `{"playerName":"s1mple","kills":30}`,
		KeyTeams:            `{"1":{"teamName":"NaVi","score":2},"40":{"teamName":"Ghost"}}`,
		KeyMatches:          `{"date":"2024-05-01","firstMatch":{"matchTime":"18:00"}}`,
		KeyIsDarkMode:       `true`,
		KeyIsNavigationMini: `"yes"`,
		KeyJSONSavePath:     `""`,
		KeyLastRoute:        `"/PlayerStats"`,
		KeyViewVisibility:   `{"TeamsView":false}`,
		KeyViewPresets:      `{"Stream":{"TeamsView":false}}`,
		KeySelectedPreset:   `"Stream"`,
		KeyCustomViews:      `[{"id":"v1","name":"Stats","sections":null}]`,
	}
	for k, v := range seed {
		require.NoError(t, kv.Set(ctx, k, json.RawMessage(v)))
	}

	s := newTestStore(t, kv)

	players := s.Players()
	assert.Equal(t, "s1mple", players.PlayerName)
	assert.Equal(t, 30, players.Kills)

	teams := s.Teams()
	assert.Len(t, teams, model.TeamCount)
	assert.Equal(t, "NaVi", teams[1].TeamName)
	assert.Equal(t, 1, teams[1].ID)
	assert.Equal(t, 2, teams[1].Score)
	_, ok := teams[40]
	assert.False(t, ok)

	matches := s.Matches()
	assert.Equal(t, "2024-05-01", matches.Date)
	assert.Equal(t, "18:00", matches.FirstMatch.MatchTime)

	assert.True(t, s.IsDarkMode())
	assert.True(t, s.IsNavigationMini(), "non-boolean value must be ignored")
	assert.Empty(t, s.JSONSavePath())
	assert.Equal(t, "/PlayerStats", s.LastRoute())
	assert.Equal(t, "Stream", s.SelectedPreset())
	assert.Equal(t, model.Presets{"Stream": {"TeamsView": false}}, s.Presets())

	views := s.CustomViews()
	require.Len(t, views, 1)
	assert.NotNil(t, views[0].Sections)

	vis := s.ViewVisibility()
	assert.False(t, vis["TeamsView"])
	assert.True(t, vis["PlayerStats"])
	assert.True(t, vis["Stats"])
}

func TestHydrateKeepsDefaultsForUnreadableKeys(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, KeyTeams, json.RawMessage(`[1,2,3]`)))
	require.NoError(t, kv.Set(ctx, KeyPlayers, json.RawMessage(`"nope"`)))
	require.NoError(t, kv.Set(ctx, KeyIsDarkMode, json.RawMessage(`true`)))
	require.NoError(t, kv.Set(ctx, KeyCustomViews, json.RawMessage(`null`)))

	s := newTestStore(t, kv)

	assert.Equal(t, model.NewTeams(), s.Teams())
	assert.Equal(t, model.NewPlayer(), s.Players())
	assert.True(t, s.IsDarkMode())
	assert.Equal(t, []model.CustomView{}, s.CustomViews())
}

func TestStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	first := New(kv, WithLogger(quietLogger()))
	first.Initialize(ctx)
	first.ToggleTheme(true)
	first.UpdateTeam(5, model.TeamUpdate{TeamName: strPtr("Vitality")})
	_, err := first.SavePreset("Caster")
	require.NoError(t, err)
	require.NoError(t, first.Close(ctx))

	second := newTestStore(t, kv)
	assert.True(t, second.IsDarkMode())
	team, ok := second.Team(5)
	require.True(t, ok)
	assert.Equal(t, "Vitality", team.TeamName)
	assert.Equal(t, "Caster", second.SelectedPreset())
}

func TestPersistenceFailureIsIsolatedPerKey(t *testing.T) {
	mem := kvstore.NewMemoryStore()
	kv := kvstore.NewCounting(mem)
	s := newTestStore(t, kv)

	s.UpdatePlayers(model.PlayerUpdate{Kills: intPtr(9)})
	kv.FailOn(kvstore.OpSet+":"+KeyTeams, errors.New("quota exceeded"))
	p := s.ClearAllData()
	wait(t, p)

	assert.True(t, p.Applied())
	var players model.Player
	require.True(t, stored(t, mem, KeyPlayers, &players))
	assert.Equal(t, model.NewPlayer(), players)
	var matches model.Matches
	assert.True(t, stored(t, mem, KeyMatches, &matches))
	var teams model.Teams
	assert.False(t, stored(t, mem, KeyTeams, &teams))

	// in-memory state is kept even though the write failed
	assert.Equal(t, model.NewTeams(), s.Teams())
}

func TestPersistenceOrder(t *testing.T) {
	kv := kvstore.NewCounting(kvstore.NewMemoryStore())
	s := newTestStore(t, kv)
	require.NoError(t, s.Flush(context.Background()))
	before := len(kv.SetKeys())

	s.ToggleTheme(true)
	s.SetLastRoute("/TeamsView")
	s.ClearMatches()
	require.NoError(t, s.Flush(context.Background()))

	assert.Equal(t, []string{KeyIsDarkMode, KeyLastRoute, KeyMatches}, kv.SetKeys()[before:])
}

func TestConcurrentActionsPersistLatestState(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := newTestStore(t, kv)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetViewVisibility(fmt.Sprintf("view-%d", i), i%2 == 0)
		}()
	}
	wg.Wait()
	require.NoError(t, s.Flush(context.Background()))

	var persisted model.Visibility
	require.True(t, stored(t, kv, KeyViewVisibility, &persisted))
	assert.Equal(t, s.ViewVisibility(), persisted)
}

func TestActionsAfterClose(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := New(kv, WithLogger(quietLogger()))
	s.Initialize(context.Background())
	require.NoError(t, s.Close(context.Background()))

	p := s.ToggleTheme(true)
	wait(t, p)
	assert.True(t, s.IsDarkMode())

	has, err := kv.Has(context.Background(), KeyIsDarkMode)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStoreOverMessageBoundary(t *testing.T) {
	ctx := context.Background()
	client := kvstore.Connect(kvstore.NewMemoryStore(), quietLogger())
	defer client.Close()

	s := newTestStore(t, client)
	wait(t, s.ToggleNavigationMode(false))

	raw, ok, err := client.Get(ctx, KeyIsNavigationMini)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `false`, string(raw))
}

func TestSnapshot(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore())
	s.UpdatePlayers(model.PlayerUpdate{PlayerName: strPtr("ZywOo")})

	snap := s.Snapshot()
	assert.Equal(t, "ZywOo", snap.Players.PlayerName)
	assert.Len(t, snap.Teams, model.TeamCount)

	snap.ViewVisibility["TeamsView"] = false
	assert.True(t, s.ViewVisibility()["TeamsView"])
}
