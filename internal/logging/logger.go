// Package logging wraps slog with the daemon's default fields and
// level/format selection, configured from internal/config's
// DaemonConfig.Logging section.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/stefdude/linknx/internal/config"
)

// Logger wraps slog.Logger with linknxd-specific defaults.
//
// Thread Safety: all methods are safe for concurrent use from multiple
// goroutines (slog.Logger's own guarantee).
type Logger struct {
	*slog.Logger
}

// New creates a Logger configured from cfg: output destination, level
// filtering, and JSON-vs-text handler selection, with a constant
// service/version pair attached to every record.
func New(cfg config.LoggingConfig, version string) *Logger {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stderr":
		output = os.Stderr
	default:
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(output, opts)
	default:
		handler = slog.NewJSONHandler(output, opts)
	}

	handler = handler.WithAttrs([]slog.Attr{
		slog.String("service", "linknxd"),
		slog.String("version", version),
	})

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// With returns a new Logger with additional default attributes attached.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Default returns a logger usable before configuration has been loaded:
// stdout, JSON, info level.
func Default() *Logger {
	return New(config.LoggingConfig{Level: "info", Format: "json", Output: "stdout"}, "dev")
}
