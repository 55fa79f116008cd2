package config_test

import (
	"github.com/burenotti/go_nutrition/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Development, cfg.App.Env)
	require.Equal(t, "localhost", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 200*time.Millisecond, cfg.Console.LineDelay)
	require.Equal(t, 600, cfg.Render.Width)
	require.Equal(t, "lightgray", cfg.Render.Background)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
app:
  env: prod
server:
  host: 0.0.0.0
  port: 9000
console:
  line_delay: 50ms
  max_attempts: 3
render:
  width: 800
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Production, cfg.App.Env)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, 50*time.Millisecond, cfg.Console.LineDelay)
	require.Equal(t, 3, cfg.Console.MaxAttempts)
	require.Equal(t, 800, cfg.Render.Width)
	require.Equal(t, 420, cfg.Render.Height)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrConfigNotLoaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrConfigNotLoaded)
	require.Panics(t, func() { config.MustLoad(filepath.Join(t.TempDir(), "missing.yaml")) })
}
