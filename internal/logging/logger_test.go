package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shredfile/internal/config"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "audit.log")
	return cfg
}

func TestInitIsIdempotent(t *testing.T) {
	l := New()
	cfg := fileConfig(t)

	require.NoError(t, l.Init(cfg, false))
	require.True(t, l.Ready())

	// A defensive second init is a no-op, not an error.
	require.NoError(t, l.Init(cfg, false))
	assert.True(t, l.Ready())

	require.NoError(t, l.Close())
}

func TestCloseIsIdempotent(t *testing.T) {
	l := New()
	require.NoError(t, l.Init(fileConfig(t), false))

	require.NoError(t, l.Close())
	assert.False(t, l.Ready())
	require.NoError(t, l.Close())
}

func TestNotReadyBeforeInitAndAfterClose(t *testing.T) {
	l := New()
	assert.False(t, l.Ready())

	// Emitting against an unopened handle must not panic.
	l.Info("dropped")
	l.Error("dropped")

	require.NoError(t, l.Init(fileConfig(t), false))
	require.NoError(t, l.Close())
	assert.False(t, l.Ready())
	l.Warn("dropped after close")
}

func TestLogRecordsReachTheFileSink(t *testing.T) {
	cfg := fileConfig(t)
	l := New()
	require.NoError(t, l.Init(cfg, false))

	l.Info("shred started")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(cfg.Logging.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shred started")
}
