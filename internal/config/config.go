package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	LogLevel     string
	LogFormat    string
	DatabaseURL  string
	LevelsFile   string
	DataAppName  string
	PlayerName   string
	AudioEnabled bool
}

func Load() *Config {
	return &Config{
		Port:         getEnvInt("PORT", 8080),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		LevelsFile:   getEnv("LEVELS_FILE", ""),
		DataAppName:  getEnv("DATA_APP_NAME", "frogger"),
		PlayerName:   getEnv("PLAYER_NAME", "FROG"),
		AudioEnabled: getEnvBool("AUDIO_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
