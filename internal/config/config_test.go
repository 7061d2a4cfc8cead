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
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
env: "dev"
storage_driver: "sqlite"
sqlite:
  path: "/tmp/fyyur.db"
database:
  host: "db"
  port: 6543
http_server:
  address: "0.0.0.0:8080"
  timeout: 10s
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "/tmp/fyyur.db", cfg.SQLite.Path)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "fyyur", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPServer.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.HTTPServer.IdleTimeout)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: \"local\"\n"), 0o600))

	t.Setenv("DB_NAME", "fyyur_test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "fyyur_test", cfg.Database.DBName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
