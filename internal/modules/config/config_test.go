package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setLiquidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LIQUID_UN", "user123")
	t.Setenv("LIQUID_PW", "password123")
	t.Setenv("LIQUID_API_BASE_URL", "https://liquid.example.com/api")
	t.Setenv("LIQUID_ACCOUNT_ID", "888")
}

func TestNewConfigFromEnv(t *testing.T) {
	setLiquidEnv(t)
	t.Setenv("LIQUID_LOG_LEVEL", "debug")
	t.Setenv("JAEGER_HOST", "jaeger.local")
	t.Setenv("JAEGER_PORT", "6831")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, "user123", cfg.Liquid.Username)
	require.Equal(t, "password123", cfg.Liquid.Password)
	require.Equal(t, "https://liquid.example.com/api", cfg.Liquid.BaseURL)
	require.Equal(t, "888", cfg.Liquid.AccountID)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "jaeger.local", cfg.Jaeger.Host)
	require.Equal(t, 6831, cfg.Jaeger.Port)
}

func TestNewConfigDefaultLogLevel(t *testing.T) {
	setLiquidEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestNewConfigMissingCredentials(t *testing.T) {
	t.Setenv("LIQUID_UN", "user123")
	t.Setenv("LIQUID_PW", "")
	t.Setenv("LIQUID_API_BASE_URL", "")
	t.Setenv("LIQUID_ACCOUNT_ID", "")

	_, err := NewConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not fully configured")
}

func TestNewConfigFromFileWithEnvOverride(t *testing.T) {
	raw := `liquid:
  username: file-user
  password: file-pass
  base_url: https://file.example.com
  account_id: "111"
log_level: warn
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	t.Setenv("CONFIG_FILE", path)
	// окружение перекрывает файл точечно
	t.Setenv("LIQUID_ACCOUNT_ID", "888")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, "file-user", cfg.Liquid.Username)
	require.Equal(t, "file-pass", cfg.Liquid.Password)
	require.Equal(t, "888", cfg.Liquid.AccountID)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestNewConfigMissingFile(t *testing.T) {
	setLiquidEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := NewConfig()
	require.Error(t, err)
}
