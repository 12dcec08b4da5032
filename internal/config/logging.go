package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rshade/healthcalc/internal/logging"
)

// defaultLogFileValue selects DefaultLogPath for logging.file.
const defaultLogFileValue = "default"

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	// File enables file logging. "default" means DefaultLogPath.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Validate checks the level and format values.
func (lc *LoggingConfig) Validate() error {
	if lc.Level != "" && !contains(supportedLogLevels, strings.ToLower(lc.Level)) {
		return fmt.Errorf("logging.level %q must be one of %s", lc.Level, strings.Join(supportedLogLevels, ", "))
	}
	switch lc.Format {
	case "", logging.FormatJSON, logging.FormatConsole, logging.FormatText:
		return nil
	default:
		return fmt.Errorf("logging.format %q must be json, console or text", lc.Format)
	}
}

// ResolvedFile returns the log file path, expanding "default".
func (lc *LoggingConfig) ResolvedFile() string {
	if lc.File == defaultLogFileValue {
		return DefaultLogPath()
	}
	return lc.File
}

// ToLoggingConfig converts LoggingConfig to logging.Config.
//
// If File is set, Output becomes "file"; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	file := lc.ResolvedFile()
	if file != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   file,
	}
}

// GetLoggingConfig returns a copy of the global config's logging section.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}

// EnsureLogDir creates the directory of the configured log file.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.ResolvedFile()
	if file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
