// Package telemetry centralises logger setup for the command-line tools.
package telemetry

import (
	"log/slog"
	"os"
)

// Level reads the log level from RUNCFG_LOG_LEVEL. Defaults to info.
func Level() slog.Level {
	switch os.Getenv("RUNCFG_LOG_LEVEL") {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "warn":
		return slog.LevelWarn
	case "ERROR", "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initialises the default logger. Output is human-readable text unless
// RUNCFG_LOG_FORMAT=json selects the structured handler.
func Setup() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     Level(),
		AddSource: Level() == slog.LevelDebug,
	}

	var handler slog.Handler
	if os.Getenv("RUNCFG_LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
