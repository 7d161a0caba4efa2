package config

import (
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

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  url: "postgres://localhost/xeno"
auth:
  jwt_secret: "file-secret"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":3000", cfg.Server.Addr)
	require.Equal(t, Duration(7*24*time.Hour), cfg.Auth.TokenTTL)
	require.Equal(t, "noop", cfg.Sync.Provider)
	require.False(t, cfg.Server.ExposeErrors)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  url: "postgres://localhost/xeno"
auth:
  jwt_secret: "file-secret"
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_URL", "postgres://other/db")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	require.Equal(t, "postgres://other/db", cfg.Database.URL)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadConfigParsesTokenTTL(t *testing.T) {
	path := writeConfig(t, `
database:
  url: "postgres://localhost/xeno"
auth:
  jwt_secret: "file-secret"
  token_ttl: 24h
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Duration(24*time.Hour), cfg.Auth.TokenTTL)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  url: "postgres://localhost/xeno"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "jwt_secret")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
