package common

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Fields represents structured logging fields.
type Fields map[string]any

// ParseLevel maps a configured level name onto a slog level. Unknown names
// fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

// SetupLogger configures the global logger. Output goes to stderr.
func SetupLogger(level slog.Level, format string) error {
	return SetupLoggerTo(os.Stderr, level, format)
}

// SetupLoggerTo configures the global logger to write to w.
func SetupLoggerTo(w io.Writer, level slog.Level, format string) error {
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: level}

	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "console", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// LogError logs an error with additional context.
func LogError(err error, msg string, fields Fields) {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	attrs = append(attrs, slog.String("error", err.Error()))
	attrs = append(attrs, toAttrs(fields)...)

	slog.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

// LogInfo logs an info message with fields.
func LogInfo(msg string, fields Fields) {
	slog.LogAttrs(context.Background(), slog.LevelInfo, msg, toAttrs(fields)...)
}

// LogDebug logs a debug message with fields.
func LogDebug(msg string, fields Fields) {
	slog.LogAttrs(context.Background(), slog.LevelDebug, msg, toAttrs(fields)...)
}

func toAttrs(fields Fields) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}
