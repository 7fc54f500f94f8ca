package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/esports-tracker/internal/platform"
)

// FolderPicker selects a directory with the Fyne folder dialog
type FolderPicker struct {
	window  fyne.Window
	appName string
}

// NewFolderPicker creates a picker that shows its dialog over window
func NewFolderPicker(window fyne.Window, appName string) *FolderPicker {
	return &FolderPicker{window: window, appName: appName}
}

type folderResult struct {
	path string
	ok   bool
	err  error
}

// SelectDirectory shows the folder dialog and blocks until the user picks a
// folder, dismisses the dialog or ctx ends. Must not be called from the Fyne
// event goroutine.
func (p *FolderPicker) SelectDirectory(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	result := make(chan folderResult, 1)
	fyne.Do(func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				result <- folderResult{err: err}
				return
			}
			if uri == nil {
				result <- folderResult{}
				return
			}
			result <- folderResult{path: uri.Path(), ok: true}
		}, p.window)
	})

	select {
	case r := <-result:
		return r.path, r.ok, r.err
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

// DefaultPath returns the application data directory
func (p *FolderPicker) DefaultPath(ctx context.Context) (string, error) {
	return platform.DefaultDataDir(p.appName)
}
