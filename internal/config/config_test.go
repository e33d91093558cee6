package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "LISTEN_ADDR", "DATABASE_URL", "SITE_URL", "JWT_SECRET", "LOG_LEVEL",
		"LOG_FORMAT", "PAGE_SYNC_INTERVAL", "MIGRATE_ON_START", "KANBAN_PERSIST",
		"ENABLE_SYSTEM_METRICS", configPathEnv,
	} {
		t.Setenv(k, "")
	}
	// keep godotenv from picking up a developer's .env
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, time.Minute, cfg.PageSyncInterval)
	assert.True(t, cfg.KanbanPersist)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/homeswerv")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PAGE_SYNC_INTERVAL", "15s")
	t.Setenv("KANBAN_PERSIST", "false")
	t.Setenv("MIGRATE_ON_START", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Second, cfg.PageSyncInterval)
	assert.False(t, cfg.KanbanPersist)
	assert.False(t, cfg.MigrateOnStart, "unparseable values keep the default")
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "homeswerv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listenAddr: ":9090"
databaseUrl: "postgres://file/homeswerv"
siteUrl: "https://homeswerv.com"
logFormat: ecs
`), 0o600))
	t.Setenv(configPathEnv, path)
	t.Setenv("LISTEN_ADDR", ":7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "postgres://file/homeswerv", cfg.DatabaseURL)
	assert.Equal(t, "https://homeswerv.com", cfg.SiteURL)
	assert.Equal(t, "ecs", cfg.LogFormat)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("JWT_SECRET=from-dotenv\n"), 0o600))
	os.Unsetenv("JWT_SECRET")

	cfg, _ := Load()
	assert.Equal(t, "from-dotenv", cfg.JWTSecret)
	os.Unsetenv("JWT_SECRET")
}

func TestLoadBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenAddr: [unterminated"), 0o600))
	t.Setenv(configPathEnv, path)

	_, err := Load()
	assert.ErrorContains(t, err, "parse config")
}
