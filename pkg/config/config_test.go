package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideConfig(t *testing.T) {
	t.Setenv("BASE_PATH", "/api")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_PORT", "5432")
	t.Setenv("DATABASE_USERNAME", "user")
	t.Setenv("DATABASE_PASSWORD", "password")
	t.Setenv("DATABASE_NAME", "events")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg := ProvideConfig()

	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, Postgresql{
		Host:         "localhost",
		Port:         5432,
		Username:     "user",
		Password:     "password",
		DatabaseName: "events",
	}, cfg.Postgresql)
	assert.Equal(t, slog.LevelDebug, cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
	assert.False(t, cfg.Tracing.Enabled())
}

func TestProvideClientConfig_Defaults(t *testing.T) {
	cfg := ProvideClientConfig()

	if _, ok := os.LookupEnv("EVENTLOG_URL"); !ok {
		assert.Equal(t, DefaultClientBaseURL, cfg.BaseURL)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("MissingFileIsIgnored", func(t *testing.T) {
		err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))

		require.NoError(t, err)
	})

	t.Run("EnvironmentTakesPrecedence", func(t *testing.T) {
		t.Setenv("EVENTLOG_URL", "http://from-environment")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("EVENTLOG_URL=http://from-file\n"), 0o600))

		err := LoadDotEnv(path)

		require.NoError(t, err)
		assert.Equal(t, "http://from-environment", ProvideClientConfig().BaseURL)
	})
}
