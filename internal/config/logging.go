package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// InitLogger builds the application logger from the logging settings.
// The TUI owns the terminal, so output goes to a file (by default
// ~/.runpace/runpace.log). The returned closer releases the file.
func InitLogger(cfg LoggingConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	path := cfg.File
	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		path = filepath.Join(dir, "runpace.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}

	return NewLogger(f, level), f, nil
}

// NewLogger returns a timestamped logger writing JSON lines to w
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}
