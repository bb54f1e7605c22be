package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigRequiresManifestPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ManifestPath")
}

func TestNewConfigDefaultsDataDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifestFile := filepath.Join(dir, "validation.hcl")
	require.NoError(t, os.WriteFile(manifestFile, []byte(""), 0o644))

	testCases := []struct {
		name    string
		cfg     Config
		wantDir string
	}{
		{
			name:    "file manifest falls back to its parent",
			cfg:     Config{ManifestPath: manifestFile},
			wantDir: dir,
		},
		{
			name:    "directory manifest is its own base",
			cfg:     Config{ManifestPath: dir},
			wantDir: dir,
		},
		{
			name:    "explicit DataDir wins",
			cfg:     Config{ManifestPath: manifestFile, DataDir: "/srv/refs"},
			wantDir: "/srv/refs",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDir, cfg.DataDir)
		})
	}
}

func TestNewLoggerFansOutToFile(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "run.log")
	buf := &SafeBuffer{}

	logger, closeFn, err := newLogger("info", "text", logPath, buf)
	require.NoError(t, err)
	logger.Info("Hello.", "k", "v")
	require.NoError(t, closeFn())

	raw, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"Hello."`)
	assert.Contains(t, buf.String(), "Hello.")
}
