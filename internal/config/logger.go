package config

import (
	"io"
	"log/slog"
)

// SetupLogger installs the default slog logger selected by LOG_LEVEL and
// LOG_FORMAT.
func SetupLogger(cfg *Config, w io.Writer) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
}
