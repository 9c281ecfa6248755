package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("STORAGE", "")
	t.Setenv("HTTP_ADDR", "")

	cfg, err := NewLoader().Config()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 20*time.Second, cfg.AITimeout)
	assert.Equal(t, 30*time.Second, cfg.ViewCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AutoMigrate)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("STORAGE", "Memory")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PASSWORD", "pw")

	cfg, err := NewLoader().Config()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AutoMigrate)
	assert.Contains(t, cfg.Postgres.DSN(), "host=db")
	assert.Contains(t, cfg.Postgres.DSN(), "password=pw")
}

func TestSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt")
	require.NoError(t, os.WriteFile(path, []byte("  s3cret\n"), 0o600))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_SECRET_FILE", path)

	cfg, err := NewLoader().Config()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestInvalidValues(t *testing.T) {
	t.Run("storage", func(t *testing.T) {
		t.Setenv("STORAGE", "sqlite")
		_, err := NewLoader().Config()
		assert.Error(t, err)
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("STORAGE", "memory")
		t.Setenv("VIEW_CACHE_TTL", "soon")
		_, err := NewLoader().Config()
		assert.Error(t, err)
	})
}

func TestLoadWithMissingEnvFile(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
