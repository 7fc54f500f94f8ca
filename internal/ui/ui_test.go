package ui

import (
	"context"
	"image/color"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

func TestTrackerThemeIgnoresSystemVariant(t *testing.T) {
	dark := NewTrackerTheme(true)
	light := NewTrackerTheme(false)

	want := color.RGBA{R: 18, G: 18, B: 18, A: 255}
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != want {
		t.Errorf("Expected dark background, got %v", got)
	}
	want = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != want {
		t.Errorf("Expected light background, got %v", got)
	}
	if got := light.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected compact padding, got %v", got)
	}
}

func TestFolderPickerCancelledContext(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	picker := NewFolderPicker(a.NewWindow("test"), "esports-tracker")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, ok, err := picker.SelectDirectory(ctx); err == nil || ok {
		t.Errorf("Expected cancellation error, got ok=%v err=%v", ok, err)
	}
}

func TestFolderPickerDefaultPath(t *testing.T) {
	picker := NewFolderPicker(nil, "esports-tracker")
	path, err := picker.DefaultPath(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(path) != "esports-tracker" {
		t.Errorf("Expected app directory, got %s", path)
	}
}
