package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "shapegen", cfg.Name)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("SHAPEGEN_ADDR", "")
	t.Setenv("SHAPEGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "shapegen.yaml")

	cfg := DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:9000"
	cfg.Logging.DebugMode = true
	cfg.Logging.Categories = map[string]bool{"geometry": false}
	cfg.UI.Precision = 4

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", loaded.Server.Addr)
	assert.True(t, loaded.Logging.DebugMode)
	assert.Equal(t, map[string]bool{"geometry": false}, loaded.Logging.Categories)
	assert.Equal(t, 4, loaded.UI.Precision)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("SHAPEGEN_ADDR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("SHAPEGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty addr", func(c *Config) { c.Server.Addr = " " }, "server address not configured"},
		{"negative connections", func(c *Config) { c.Server.MaxConnections = -1 }, "max_connections"},
		{"zero body", func(c *Config) { c.Server.MaxBodyBytes = 0 }, "max_body_bytes"},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = "soon" }, "read_timeout"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"warning level", func(c *Config) { c.Logging.Level = "WARNING" }, ""},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "invalid log format"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "invalid theme"},
		{"bad precision", func(c *Config) { c.UI.Precision = 11 }, "precision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_DurationGetters(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.GetReadTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, 5*time.Second, cfg.GetShutdownTimeout())

	cfg.Server.ReadTimeout = "250ms"
	cfg.Server.WriteTimeout = "garbage"
	cfg.Server.ShutdownTimeout = "-1s"
	assert.Equal(t, 250*time.Millisecond, cfg.GetReadTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetWriteTimeout(), "invalid values fall back")
	assert.Equal(t, 5*time.Second, cfg.GetShutdownTimeout(), "non-positive values fall back")
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{}
	assert.False(t, lc.IsCategoryEnabled("api"), "production mode disables everything")

	lc.DebugMode = true
	assert.True(t, lc.IsCategoryEnabled("api"))

	lc.Categories = map[string]bool{"api": false}
	assert.False(t, lc.IsCategoryEnabled("api"))
	assert.True(t, lc.IsCategoryEnabled("geometry"))
}

func TestLoggingConfig_Options(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "TEXT", Directory: "/tmp/x", DebugMode: true}
	opts := lc.Options()
	assert.Equal(t, "console", opts.Format)
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "/tmp/x", opts.Directory)
	assert.True(t, opts.DebugMode)
}

func TestUIConfig_GetHistorySize(t *testing.T) {
	assert.Equal(t, 50, (&UIConfig{}).GetHistorySize())
	assert.Equal(t, 7, (&UIConfig{HistorySize: 7}).GetHistorySize())
}
