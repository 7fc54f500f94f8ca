package kvstore

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/esports-tracker/internal/logfields"
)

// Watch reports changes made to the store file by other processes. fn is
// called after the cache has been refreshed. Reload and watcher failures go
// to logger, or slog.Default when nil. Watch blocks until ctx is done.
func (f *FileStore) Watch(ctx context.Context, logger *slog.Logger, fn func()) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	absPath, err := filepath.Abs(f.path)
	if err != nil {
		return fmt.Errorf("failed to resolve store path: %w", err)
	}

	// Watch the directory; the file itself is replaced on every write.
	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch store directory %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			changed, err := f.reload()
			if err != nil {
				logger.Warn("Store file changed but could not be reloaded", logfields.Path(absPath), logfields.Error(err))
				continue
			}
			if changed {
				fn()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Store watcher error", logfields.Path(absPath), logfields.Error(err))
		}
	}
}
