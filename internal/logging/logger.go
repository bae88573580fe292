package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer // defaults to stderr
}

// FileConfig enables a rotated log file next to the stderr output.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	FileName      string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return zerolog.New(formatWriter(out, cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func formatWriter(out io.Writer, cfg Config) io.Writer {
	switch cfg.Format {
	case "json":
		return out
	default:
		timeFormat := cfg.TimeFormat
		if timeFormat == "" {
			timeFormat = time.RFC3339
		}
		return zerolog.ConsoleWriter{Out: out, TimeFormat: timeFormat}
	}
}

// NewWithFile creates a logger that also writes JSON lines to a rotated file.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	if !fileCfg.Enabled {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(fileCfg.LogDir, 0o755); err != nil {
		return New(cfg), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator, err := NewLogRotator(fileCfg.LogDir, fileCfg.FileName, fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
	if err != nil {
		return New(cfg), func() {}, err
	}

	writers := []io.Writer{rotator}
	if fileCfg.WriteToStderr {
		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, formatWriter(out, cfg))
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from plain config strings.
// Unknown formats fall back to console output.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = "json"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// SELSEARCH_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SELSEARCH_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("SELSEARCH_LOG_LEVEL"), os.Getenv("SELSEARCH_LOG_FORMAT"))
}
