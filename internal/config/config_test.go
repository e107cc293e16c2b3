package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 3, cfg.Shred.Passes)
	assert.Equal(t, "standard", cfg.Shred.Scheme)
	assert.True(t, cfg.Shred.ObfuscateName)
	assert.NotEmpty(t, cfg.Security.ProtectedPaths)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Shred.Passes, cfg.Shred.Passes)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shredfile.yaml")
	data := `
shred:
  passes: 5
  scheme: random
logging:
  level: DEBUG
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Shred.Passes)
	assert.Equal(t, "random", cfg.Shred.Scheme)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, 64*1024, cfg.Shred.ChunkSize)
	assert.True(t, cfg.Security.RequireConfirmation)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Shred.Passes = 0
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Shred.ChunkSize = 0
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Shred.MaxSpeedMBps = -1
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.Security.ProtectedPaths = []string{""}
	assert.Error(t, Validate(cfg))
}

func TestApplyProfile(t *testing.T) {
	cfg := Default()
	require.NoError(t, ApplyProfile(cfg, "paranoid"))
	assert.Equal(t, 7, cfg.Shred.Passes)

	cfg = Default()
	require.NoError(t, ApplyProfile(cfg, "quick"))
	assert.Equal(t, 1, cfg.Shred.Passes)
	assert.Equal(t, "random", cfg.Shred.Scheme)

	assert.Error(t, ApplyProfile(Default(), "warp-speed"))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "shredfile.yaml")
	cfg := Default()
	cfg.Shred.Passes = 4

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Shred.Passes)
}
