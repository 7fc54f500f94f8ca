package update

import (
	"context"

	"github.com/ytget/esports-tracker/internal/model"
)

// Feed returns the newest published release
type Feed interface {
	Latest(ctx context.Context) (*Release, error)
}

// Checker defines the interface for the update service.
type Checker interface {
	Version() string
	SetUpdateCallback(func(model.UpdateStatus, *model.ReleaseInfo))
	CheckForUpdates(ctx context.Context) error
	DownloadUpdate(ctx context.Context) error
}
