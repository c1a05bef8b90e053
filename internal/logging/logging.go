// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// New returns a tint-backed logger writing to w.
func New(w io.Writer, level slog.Level, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
}

// Setup installs a tint-backed logger as the slog default.
func Setup(w io.Writer, level string, color bool) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(New(w, lvl, color))
	return nil
}

// With returns the default logger tagged with a component.
func With(component string) *slog.Logger {
	return slog.Default().With("component", component)
}
