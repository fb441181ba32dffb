package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/httplog/v3"
)

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewJSON builds the server logger: JSON lines with ECS attribute names so the
// request logs written by httplog and the application logs share one schema.
func NewJSON(w io.Writer, level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-entry"),
		slog.String("version", version),
		slog.String("env", env),
	)
}

// NewText builds a human-readable logger for terminal tools.
func NewText(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
