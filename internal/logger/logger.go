package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates the process logger.
//
// LOG_LEVEL picks the minimum level (debug, info, warn/warning, error; case
// insensitive, info when unset). GO_ENV=production switches to JSON output.
func NewLogger() *slog.Logger {
	level := ParseLevel(os.Getenv("LOG_LEVEL"))
	json := strings.EqualFold(os.Getenv("GO_ENV"), "production")
	log := New(os.Stderr, level, json)
	slog.SetDefault(log)
	return log
}

// New creates a logger writing to w.
func New(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Scope tags a log record with the component that emitted it.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error attaches err to a log record.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
