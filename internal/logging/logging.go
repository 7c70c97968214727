// Package logging builds the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a slog logger at the given level. With a directory configured
// the log goes to a size-rotated JSON file there; otherwise it is text on
// stderr.
func New(level, dir string) *slog.Logger {
	lvl := parseLevel(level)

	if dir == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   filepath.Join(dir, "flightdyn-ng.slog"),
		MaxSize:    32, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
