// Package logging configures zerolog for healthcalc and carries loggers and
// trace IDs through context.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatText    = "text"
)

// Config describes how the logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is true when logs are written to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is true when a file was requested but could not be opened.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel parses a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewLogger builds a logger writing to w according to cfg.Level and cfg.Format.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format == FormatConsole || cfg.Format == FormatText {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger for cfg. When cfg.Output is "file" it
// opens cfg.File for appending; if that fails it falls back to stderr and
// records why in the result.
func NewLoggerWithPath(cfg Config) LogPathResult {
	switch cfg.Output {
	case OutputFile:
		f, err := openLogFile(cfg.File)
		if err != nil {
			return LogPathResult{
				Logger:         NewLogger(cfg, os.Stderr),
				FallbackUsed:   true,
				FallbackReason: err.Error(),
			}
		}
		return LogPathResult{
			Logger:    NewLogger(cfg, f),
			UsingFile: true,
			FilePath:  cfg.File,
			file:      f,
		}
	case OutputStdout:
		return LogPathResult{Logger: NewLogger(cfg, os.Stdout)}
	default:
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or the zerolog default
// context logger when none is set.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user file logging was unavailable.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
