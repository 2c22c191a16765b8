package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConfig(t *testing.T, path, level string) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Logging.Level = level
	require.NoError(t, cfg.Save(path))
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	t.Setenv("SHAPEGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	writeConfig(t, path, "info")

	changes := make(chan *Config, 4)
	w, err := NewWatcher(path, func(c *Config) { changes <- c })
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()
	assert.True(t, w.IsWatching())

	writeConfig(t, path, "debug")

	select {
	case c := <-changes:
		assert.Equal(t, "debug", c.Logging.Level)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.GreaterOrEqual(t, stats.Reloads, 1)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapegen.yaml")
	writeConfig(t, path, "info")

	called := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(*Config) { called <- struct{}{} })
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0644))

	select {
	case <-called:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
	assert.Zero(t, w.Stats().Events)
}

func TestWatcher_InvalidConfigKeepsPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	writeConfig(t, path, "info")

	called := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(*Config) { called <- struct{}{} })
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: shouting\n"), 0644))

	require.Eventually(t, func() bool { return w.Stats().Errors > 0 }, 5*time.Second, 10*time.Millisecond)
	select {
	case <-called:
		t.Fatal("invalid config must not be delivered")
	default:
	}
	assert.Contains(t, w.Stats().LastError, "invalid log level")
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "shapegen.yaml"), nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		w.Stop()
		w.Stop()
	})
	assert.False(t, w.IsWatching())
}

func TestWatcher_ContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	writeConfig(t, path, "info")

	ctx, cancel := context.WithCancel(context.Background())
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	w.Stop()
	assert.False(t, w.IsWatching())
}
