package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/payments-replay-engine/internal/config"
)

// NewLogger creates and configures a new slog.Logger. Output goes to
// stderr: stdout carries the replayed account records.
func NewLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
		// Add source code location to log output
		AddSource: level == slog.LevelDebug,
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger := slog.New(handler)

	logger.Info("logger initialized", "level", level)

	return logger
}
