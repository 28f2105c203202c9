// Package logging configures the process-wide slog logger for the fqdn
// binaries. The library itself never logs; only cmd/ entrypoints call this.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level string // DEBUG, INFO, WARN, ERROR (case-insensitive)
	JSON  bool   // JSON handler instead of key=value text
}

func Configure(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
