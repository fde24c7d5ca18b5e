package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the level, format and destination of the logger.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // "json" or "text"
	File   string // empty means Output
	// MaxSizeMB rotates File once it grows past this size; 0 means 100.
	MaxSizeMB  int
	MaxBackups int
	// Output is used when File is empty; nil means stdout.
	Output io.Writer
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

// New creates a logger, installs it as the slog default and returns it with
// the rotating file it writes to (nil when not logging to a file). The caller
// closes the file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer = os.Stdout
		closer io.Closer
	)
	if cfg.Output != nil {
		out = cfg.Output
	}
	if cfg.File != "" {
		// Ensure log directory exists
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out, closer = file, file
	}

	logger := slog.New(newHandler(out, cfg.Format, level))
	slog.SetDefault(logger)
	return logger, closer, nil
}

func newHandler(out io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "json":
		return slog.NewJSONHandler(out, opts)
	default: // "text"
		return slog.NewTextHandler(out, opts)
	}
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
