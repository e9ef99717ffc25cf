package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable NewFromEnv reads so the host environment
// cannot leak into a test case.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"WEEKS_WORTH_CONFIG", "DATABASE_PATH", "PORT", "JWT_SECRET", "JWT_EXPIRATION",
		"LOG_LEVEL", "LOG_DEVELOPMENT", "GEMINI_API_KEY", "GEMINI_MODEL",
		"TELEGRAM_BOT_TOKEN", "ADMIN_TELEGRAM_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DATABASE_PATH", "/tmp/test.db")
		t.Setenv("ADMIN_TELEGRAM_ID", "42")
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")

		cfg, err := NewFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
		assert.Equal(t, int64(42), cfg.AdminTelegramID)
		assert.True(t, cfg.MessagesEnabled())
		assert.False(t, cfg.ImportEnabled())
	})

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := NewFromEnv()
		require.NoError(t, err)

		assert.Equal(t, defaultDatabasePath, cfg.DatabasePath)
		assert.Equal(t, defaultPort, cfg.Port)
		assert.Equal(t, 2*time.Hour, cfg.JWTExpiration)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, defaultGeminiModel, cfg.GeminiModel)
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		clearEnv(t)

		_, err := NewFromEnv()
		require.Error(t, err)
		assert.Equal(t, "JWT_SECRET environment variable not set", err.Error())
	})

	t.Run("InvalidExpiration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_EXPIRATION", "soon")

		_, err := NewFromEnv()
		assert.Error(t, err)
	})

	t.Run("YAMLFileWithEnvOverride", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "jwt_secret: from-file\nport: \"9090\"\njwt_expiration: 30m\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		t.Setenv("WEEKS_WORTH_CONFIG", path)
		t.Setenv("PORT", "7070")

		cfg, err := NewFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "from-file", cfg.JWTSecret)
		assert.Equal(t, "7070", cfg.Port)
		assert.Equal(t, 30*time.Minute, cfg.JWTExpiration)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("MissingYAMLFile", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WEEKS_WORTH_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := NewFromEnv()
		assert.Error(t, err)
	})
}
