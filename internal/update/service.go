package update

import (
	"context"
	"crypto/sha512"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/mod/semver"

	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/model"
)

// ErrNoUpdate is returned by DownloadUpdate when no newer release is known
var ErrNoUpdate = errors.New("no update available")

// ErrChecksum is returned when a downloaded asset does not match the feed
var ErrChecksum = errors.New("checksum mismatch")

const (
	// MaxRetries is how many times a failed download is retried
	MaxRetries = 1

	// RetryDelay is the default backoff between download attempts
	RetryDelay = 2 * time.Second

	// progressInterval throttles downloading notifications
	progressInterval = 500 * time.Millisecond

	copyBufferSize = 32 * 1024
)

// Service handles update checks and downloads
type Service struct {
	version     string
	feed        Feed
	downloadDir string
	retryDelay  time.Duration
	logger      *slog.Logger

	mu       sync.Mutex
	latest   *Release
	onUpdate func(model.UpdateStatus, *model.ReleaseInfo)
}

var _ Checker = (*Service)(nil)

// NewService creates a new update service for the running version
func NewService(version string, feed Feed, downloadDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		version:     version,
		feed:        feed,
		downloadDir: downloadDir,
		retryDelay:  RetryDelay,
		logger:      logger,
	}
}

// Version returns the running version
func (s *Service) Version() string {
	return s.version
}

// SetUpdateCallback sets the callback function for status updates
func (s *Service) SetUpdateCallback(callback func(model.UpdateStatus, *model.ReleaseInfo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// CheckForUpdates reads the feed and reports available or not-available
func (s *Service) CheckForUpdates(ctx context.Context) error {
	s.notify(model.UpdateStatusChecking, nil)

	release, err := s.feed.Latest(ctx)
	if err != nil {
		return s.fail(fmt.Errorf("checking for updates: %w", err))
	}

	newer, err := IsNewer(release.Version, s.version)
	if err != nil {
		return s.fail(err)
	}

	info := releaseInfo(release)
	if !newer {
		s.setLatest(nil)
		s.notify(model.UpdateStatusNotAvailable, info)
		return nil
	}

	s.logger.Info("Update available", logfields.Version(release.Version))
	s.setLatest(release)
	s.notify(model.UpdateStatusAvailable, info)
	return nil
}

// DownloadUpdate copies the available release asset into the download
// directory, retrying once after a failure.
func (s *Service) DownloadUpdate(ctx context.Context) error {
	s.mu.Lock()
	release := s.latest
	s.mu.Unlock()
	if release == nil {
		return s.fail(ErrNoUpdate)
	}
	if release.AssetPath == "" {
		return s.fail(fmt.Errorf("release %s has no asset", release.Version))
	}

	path, err := s.downloadWithRetry(ctx, release)
	if err != nil {
		return s.fail(err)
	}

	info := releaseInfo(release)
	info.Asset = path
	info.Percent = 100
	s.logger.Info("Update downloaded", logfields.Version(release.Version), logfields.Path(path))
	s.notify(model.UpdateStatusDownloaded, info)
	return nil
}

// downloadWithRetry attempts download with retry logic
func (s *Service) downloadWithRetry(ctx context.Context, release *Release) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			s.logger.Warn("Retrying update download", logfields.Version(release.Version), slog.Int("attempt", attempt+1))
		}

		path, err := s.download(ctx, release)
		if err == nil {
			return path, nil
		}
		lastErr = err

		if ctx.Err() != nil || errors.Is(err, ErrChecksum) {
			return "", err
		}
	}
	return "", lastErr
}

func (s *Service) download(ctx context.Context, release *Release) (string, error) {
	src, err := os.Open(release.AssetPath)
	if err != nil {
		return "", fmt.Errorf("opening release asset: %w", err)
	}
	defer src.Close()

	stat, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("reading release asset: %w", err)
	}

	if err := os.MkdirAll(s.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}
	dest := filepath.Join(s.downloadDir, filepath.Base(release.AssetPath))
	tmp, err := os.CreateTemp(s.downloadDir, filepath.Base(dest)+".*.part")
	if err != nil {
		return "", fmt.Errorf("creating download file: %w", err)
	}
	defer os.Remove(tmp.Name())

	var sum hash.Hash
	var w io.Writer = tmp
	if release.SHA512 != "" {
		sum = sha512.New()
		w = io.MultiWriter(tmp, sum)
	}

	err = s.copyWithProgress(ctx, w, src, stat.Size(), release)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}

	if sum != nil {
		got := base64.StdEncoding.EncodeToString(sum.Sum(nil))
		if got != strings.TrimSpace(release.SHA512) {
			return "", fmt.Errorf("release %s: %w", release.Version, ErrChecksum)
		}
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("moving download into place: %w", err)
	}
	return dest, nil
}

func (s *Service) copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total int64, release *Release) error {
	buf := make([]byte, copyBufferSize)
	var written int64
	var last time.Time

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return fmt.Errorf("writing release asset: %w", err)
			}
			written += int64(n)
			if total > 0 && time.Since(last) >= progressInterval {
				last = time.Now()
				info := releaseInfo(release)
				info.Percent = float64(written) / float64(total) * 100
				s.notify(model.UpdateStatusDownloading, info)
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("reading release asset: %w", rerr)
		}
	}
}

func (s *Service) setLatest(r *Release) {
	s.mu.Lock()
	s.latest = r
	s.mu.Unlock()
}

// fail reports err as an error status and returns it
func (s *Service) fail(err error) error {
	s.logger.Error("Error in update service", logfields.Error(err))
	s.notify(model.UpdateStatusError, &model.ReleaseInfo{Error: err.Error()})
	return err
}

// notify calls the update callback if set
func (s *Service) notify(status model.UpdateStatus, info *model.ReleaseInfo) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()
	if callback != nil {
		callback(status, info)
	}
}

func releaseInfo(r *Release) *model.ReleaseInfo {
	return &model.ReleaseInfo{
		Version:      r.Version,
		ReleaseNotes: PlainReleaseNotes(r.ReleaseNotes),
		ReleaseDate:  r.ReleaseDate,
	}
}

// IsNewer reports whether candidate is a higher semantic version than
// current. A leading "v" is optional on both.
func IsNewer(candidate, current string) (bool, error) {
	c, cur := canonical(candidate), canonical(current)
	if !semver.IsValid(c) {
		return false, fmt.Errorf("invalid release version %q", candidate)
	}
	if !semver.IsValid(cur) {
		return false, fmt.Errorf("invalid running version %q", current)
	}
	return semver.Compare(c, cur) > 0, nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
