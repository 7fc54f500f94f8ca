package update

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// LatestFileName is the manifest name electron-builder publishes
const LatestFileName = "latest.yml"

// Release is one entry of the feed manifest.
type Release struct {
	Version      string `yaml:"version"`
	Path         string `yaml:"path"`
	SHA512       string `yaml:"sha512"`
	ReleaseDate  string `yaml:"releaseDate"`
	ReleaseNotes string `yaml:"releaseNotes"`

	// AssetPath is Path resolved against the manifest directory
	AssetPath string `yaml:"-"`
}

// FileFeed reads a manifest from disk. Path names the manifest itself or a
// directory holding latest.yml.
type FileFeed struct {
	Path string
}

var _ Feed = FileFeed{}

// Latest parses the manifest
func (f FileFeed) Latest(ctx context.Context) (*Release, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Path == "" {
		return nil, errors.New("no release feed configured")
	}

	manifest := f.Path
	if info, err := os.Stat(manifest); err == nil && info.IsDir() {
		manifest = filepath.Join(manifest, LatestFileName)
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("reading release feed: %w", err)
	}

	var r Release
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing release feed %s: %w", manifest, err)
	}
	if r.Version == "" {
		return nil, fmt.Errorf("release feed %s has no version", manifest)
	}
	if r.Path != "" {
		r.AssetPath = r.Path
		if !filepath.IsAbs(r.AssetPath) {
			r.AssetPath = filepath.Join(filepath.Dir(manifest), r.Path)
		}
	}
	return &r, nil
}

var paragraphOpen = regexp.MustCompile(`(?i)<p>`)
var paragraphClose = regexp.MustCompile(`(?i)</p>`)

// PlainReleaseNotes strips paragraph markup from release notes
func PlainReleaseNotes(notes string) string {
	if strings.TrimSpace(notes) == "" {
		return "No release notes provided."
	}
	notes = paragraphOpen.ReplaceAllString(notes, "\n")
	notes = paragraphClose.ReplaceAllString(notes, "")
	return strings.TrimSpace(notes)
}
