package config

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_URL", "LEVELS_FILE", "DATA_APP_NAME", "PLAYER_NAME", "AUDIO_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.LevelsFile)
	assert.Equal(t, "frogger", cfg.DataAppName)
	assert.Equal(t, "FROG", cfg.PlayerName)
	assert.True(t, cfg.AudioEnabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://db/frogger")
	t.Setenv("AUDIO_ENABLED", "false")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://db/frogger", cfg.DatabaseURL)
	assert.False(t, cfg.AudioEnabled)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("AUDIO_ENABLED", "maybe")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.AudioEnabled)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetupLogger(&Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	slog.Info("hidden")
	slog.Warn("shown", "session", "ABCD")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"session":"ABCD"`)
}
