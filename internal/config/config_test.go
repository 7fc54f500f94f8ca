package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/esports-tracker/internal/kvstore"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TRACKER_DATA_DIR", "/tmp/tracker-data")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAppName, cfg.AppName)
	assert.Equal(t, DefaultAppID, cfg.AppID)
	assert.Equal(t, kvstore.BackendFile, cfg.Backend)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, filepath.Join("/tmp/tracker-data", UpdatesSubdir), cfg.DownloadDir)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, DefaultFileName)
	content := "backend: sqlite\nstore_path: ${TRACKER_TEST_DB}\nlog_level: debug\ndata_dir: /srv/tracker\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("TRACKER_TEST_DB", "sqlite:///srv/tracker/kv.db")
	t.Setenv("TRACKER_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, kvstore.BackendSQLite, cfg.Backend)
	assert.Equal(t, "sqlite:///srv/tracker/kv.db", cfg.StorePath)
	assert.Equal(t, slog.LevelWarn, cfg.Level(), "environment overrides the file")

	opts := cfg.StoreOptions()
	assert.Equal(t, "/srv/tracker", opts.DataDir)
	assert.Equal(t, kvstore.BackendSQLite, opts.Backend)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TRACKER_BACKEND=memory\nTRACKER_DATA_DIR=/tmp/x\n"), 0o644))
	// registered so the values loaded from .env are undone after the test
	for _, key := range []string{"TRACKER_BACKEND", "TRACKER_DATA_DIR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, kvstore.BackendMemory, cfg.Backend)
	assert.Equal(t, "/tmp/x", cfg.DataDir)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TRACKER_DATA_DIR", "/tmp/tracker-data")

	t.Setenv("TRACKER_BACKEND", "redis")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("TRACKER_BACKEND", "memory")
	t.Setenv("TRACKER_LOG_LEVEL", "loud")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
