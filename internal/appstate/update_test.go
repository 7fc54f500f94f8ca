package appstate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/model"
)

type fakeUpdater struct {
	notify func(model.UpdateStatus, *model.ReleaseInfo)
	err    error
}

func (f *fakeUpdater) Version() string { return "1.2.0" }

func (f *fakeUpdater) SetUpdateCallback(fn func(model.UpdateStatus, *model.ReleaseInfo)) {
	f.notify = fn
}

func (f *fakeUpdater) CheckForUpdates(context.Context) error {
	if f.err != nil {
		f.notify(model.UpdateStatusError, &model.ReleaseInfo{Error: f.err.Error()})
		return f.err
	}
	f.notify(model.UpdateStatusChecking, nil)
	f.notify(model.UpdateStatusAvailable, &model.ReleaseInfo{Version: "1.3.0"})
	return nil
}

func (f *fakeUpdater) DownloadUpdate(context.Context) error {
	f.notify(model.UpdateStatusDownloading, &model.ReleaseInfo{Version: "1.3.0", Percent: 50})
	f.notify(model.UpdateStatusDownloaded, nil)
	return nil
}

func TestUpdateFlow(t *testing.T) {
	up := &fakeUpdater{}
	kv := kvstore.NewCounting(kvstore.NewMemoryStore())
	s := newTestStore(t, kv, WithUpdater(up))
	ctx := context.Background()

	assert.Equal(t, "1.2.0", s.AppVersion())

	require.NoError(t, s.CheckForUpdates(ctx))
	status, info := s.UpdateStatus()
	assert.Equal(t, model.UpdateStatusAvailable, status)
	require.NotNil(t, info)
	assert.Equal(t, "1.3.0", info.Version)

	require.NoError(t, s.DownloadUpdate(ctx))
	status, info = s.UpdateStatus()
	assert.Equal(t, model.UpdateStatusDownloaded, status)
	require.NotNil(t, info, "nil info keeps the known release")
	assert.Equal(t, float64(50), info.Percent)

	require.NoError(t, s.Flush(ctx))
	assert.NotContains(t, kv.SetKeys(), "updateStatus")

	s.ResetUpdateState()
	status, info = s.UpdateStatus()
	assert.Equal(t, model.UpdateStatusIdle, status)
	assert.Nil(t, info)
}

func TestCheckForUpdatesResetsPreviousResult(t *testing.T) {
	up := &fakeUpdater{}
	s := newTestStore(t, kvstore.NewMemoryStore(), WithUpdater(up))
	s.SetUpdateStatus(model.UpdateStatusDownloaded, &model.ReleaseInfo{Version: "0.9.0"})

	up.err = errors.New("feed missing")
	err := s.CheckForUpdates(context.Background())
	assert.Error(t, err)

	status, info := s.UpdateStatus()
	assert.Equal(t, model.UpdateStatusError, status)
	require.NotNil(t, info)
	assert.Empty(t, info.Version)
}

func TestUpdateWithoutUpdater(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore())
	assert.ErrorIs(t, s.CheckForUpdates(context.Background()), ErrNoUpdater)
	assert.ErrorIs(t, s.DownloadUpdate(context.Background()), ErrNoUpdater)
	assert.Empty(t, s.AppVersion())
}

func TestUpdateActionsRejectedWhileActive(t *testing.T) {
	up := &fakeUpdater{}
	s := newTestStore(t, kvstore.NewMemoryStore(), WithUpdater(up))
	ctx := context.Background()

	s.SetUpdateStatus(model.UpdateStatusDownloading, &model.ReleaseInfo{Version: "1.3.0", Percent: 10})
	assert.ErrorIs(t, s.CheckForUpdates(ctx), ErrUpdateInProgress)
	assert.ErrorIs(t, s.DownloadUpdate(ctx), ErrUpdateInProgress)

	status, info := s.UpdateStatus()
	assert.Equal(t, model.UpdateStatusDownloading, status)
	require.NotNil(t, info)
	assert.Equal(t, float64(10), info.Percent)
}

func TestSetUpdateStatusIgnoresUnknownStatus(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemoryStore())
	s.SetUpdateStatus(model.UpdateStatusAvailable, &model.ReleaseInfo{Version: "1.3.0"})

	s.SetUpdateStatus(model.UpdateStatus("exploded"), &model.ReleaseInfo{Version: "9.9.9"})

	status, info := s.UpdateStatus()
	assert.Equal(t, model.UpdateStatusAvailable, status)
	require.NotNil(t, info)
	assert.Equal(t, "1.3.0", info.Version)
}
