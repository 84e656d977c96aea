package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "1s", cfg.Demo.Delay)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "demo:\n  delay: 250ms\n  roster_path: people.yaml\nlogging:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "250ms", cfg.Demo.Delay)
		assert.Equal(t, "people.yaml", cfg.Demo.RosterPath)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("demo: [unclosed"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("DEMOKIT_DELAY overrides file value", func(t *testing.T) {
		t.Setenv("DEMOKIT_DELAY", "5s")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "5s", cfg.Demo.Delay)
	})

	t.Run("DEMOKIT_ROSTER sets roster path", func(t *testing.T) {
		t.Setenv("DEMOKIT_ROSTER", "/tmp/roster.yaml")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/roster.yaml", cfg.Demo.RosterPath)
	})

	t.Run("DEMOKIT_LOG_LEVEL sets level", func(t *testing.T) {
		t.Setenv("DEMOKIT_LOG_LEVEL", "warn")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("empty env leaves defaults", func(t *testing.T) {
		t.Setenv("DEMOKIT_DELAY", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "1s", cfg.Demo.Delay)
	})
}

func TestGetDelay(t *testing.T) {
	t.Run("parses valid duration", func(t *testing.T) {
		cfg := &Config{Demo: DemoConfig{Delay: "250ms"}}
		assert.Equal(t, 250*time.Millisecond, cfg.GetDelay())
	})

	t.Run("falls back on garbage", func(t *testing.T) {
		cfg := &Config{Demo: DemoConfig{Delay: "soon"}}
		assert.Equal(t, time.Second, cfg.GetDelay())
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Demo.Delay = "2s"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2s", loaded.Demo.Delay)
}
