package appstate

import (
	"context"
	"errors"

	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

var (
	// ErrNoUpdater is returned by update actions when no updater is configured
	ErrNoUpdater = errors.New("update checks are not available")

	// ErrUpdateInProgress is returned while a check or download is running
	ErrUpdateInProgress = errors.New("an update check or download is already running")
)

// AppVersion returns the running version reported by the updater
func (s *Store) AppVersion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appVersion
}

// UpdateStatus returns the last reported update status and release
func (s *Store) UpdateStatus() (model.UpdateStatus, *model.ReleaseInfo) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.releaseInfo == nil {
		return s.updateStatus, nil
	}
	info := *s.releaseInfo
	return s.updateStatus, &info
}

// SetUpdateStatus records a status reported by the updater. A nil info keeps
// the release already known and unknown statuses are dropped. Update state is
// never persisted.
func (s *Store) SetUpdateStatus(status model.UpdateStatus, info *model.ReleaseInfo) {
	if _, ok := model.ParseUpdateStatus(status.String()); !ok {
		s.logger.Warn("Ignoring unknown update status", logfields.Status(status.String()))
		return
	}
	s.mu.Lock()
	s.updateStatus = status
	if info != nil {
		cp := *info
		s.releaseInfo = &cp
	}
	s.mu.Unlock()
	s.logger.Debug("Update status changed", logfields.Status(status.String()))
}

// ResetUpdateState forgets the last status and release
func (s *Store) ResetUpdateState() {
	s.mu.Lock()
	s.updateStatus = model.UpdateStatusIdle
	s.releaseInfo = nil
	s.mu.Unlock()
}

// CheckForUpdates clears the previous result and asks the updater for a
// newer release. Progress arrives through SetUpdateStatus.
func (s *Store) CheckForUpdates(ctx context.Context) error {
	if s.updater == nil {
		return ErrNoUpdater
	}
	if s.updateActive() {
		return ErrUpdateInProgress
	}
	s.ResetUpdateState()
	if err := s.updater.CheckForUpdates(ctx); err != nil {
		s.logger.Error("Failed to check for updates", logfields.Error(err))
		return err
	}
	return nil
}

// DownloadUpdate asks the updater to fetch the available release
func (s *Store) DownloadUpdate(ctx context.Context) error {
	if s.updater == nil {
		return ErrNoUpdater
	}
	if s.updateActive() {
		return ErrUpdateInProgress
	}
	if err := s.updater.DownloadUpdate(ctx); err != nil {
		s.logger.Error("Failed to download update", logfields.Error(err))
		return err
	}
	return nil
}

func (s *Store) updateActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updateStatus.IsActive()
}
