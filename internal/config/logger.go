package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger. Production uses JSON output.
func (c LoggerConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}

	if strings.EqualFold(c.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func (c LoggerConfig) level() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
