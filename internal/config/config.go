// Package config loads and validates healthcalc configuration from
// $HEALTHCALC_HOME/config.yaml, environment variables and overlay files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/healthcalc/internal/health"
)

// Environment variables read by New.
const (
	EnvHome         = "HEALTHCALC_HOME"
	EnvLogLevel     = "HEALTHCALC_LOG_LEVEL"
	EnvLogFormat    = "HEALTHCALC_LOG_FORMAT"
	EnvOutputFormat = "HEALTHCALC_OUTPUT_FORMAT"
	EnvUnits        = "HEALTHCALC_UNITS"
)

const (
	configDirName  = ".healthcalc"
	configFileName = "config.yaml"
	logFileName    = "healthcalc.log"

	defaultOutputFormat = "table"
)

// supportedOutputFormats lists the values accepted for output.default_format.
//
//nolint:gochecknoglobals // Read-only lookup table.
var supportedOutputFormats = []string{"table", "json", "ndjson", "yaml"}

// supportedLogLevels lists the values accepted for logging.level.
//
//nolint:gochecknoglobals // Read-only lookup table.
var supportedLogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Config is the healthcalc configuration.
type Config struct {
	Output   OutputConfig   `yaml:"output" json:"output"`
	Logging  LoggingConfig  `yaml:"logging" json:"logging"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`

	// Requires is an optional semver constraint the running binary must
	// satisfy, e.g. ">= 0.2.0".
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty"`

	configPath string
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// DefaultsConfig holds the values used when a command flag is not given.
type DefaultsConfig struct {
	Units    string `yaml:"units" json:"units"`
	Sex      string `yaml:"sex" json:"sex"`
	Activity string `yaml:"activity" json:"activity"`
	Goal     string `yaml:"goal" json:"goal"`
}

// Default returns a Config populated with built-in defaults and no file path.
func Default() *Config {
	return &Config{
		Output: OutputConfig{DefaultFormat: defaultOutputFormat},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Defaults: DefaultsConfig{
			Units:    "metric",
			Sex:      "male",
			Activity: "sedentary",
			Goal:     "maintain_weight",
		},
	}
}

// HomeDir returns the healthcalc home directory: $HEALTHCALC_HOME when set,
// otherwise ~/.healthcalc. It falls back to the working directory when the
// user home cannot be determined.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// DefaultLogPath returns the log file path used by "logging.file: default".
func DefaultLogPath() string {
	return filepath.Join(HomeDir(), "logs", logFileName)
}

// New returns the configuration from the default config file with
// environment overrides applied. A missing file yields the built-in
// defaults. An unreadable or malformed file also yields the defaults and
// logs a warning.
func New() *Config {
	cfg, err := Load(DefaultConfigPath())
	if err != nil {
		log.Warn().
			Str("component", "config").
			Str("path", DefaultConfigPath()).
			Err(err).
			Msg("config file could not be loaded, using built-in defaults")
		cfg = Default()
		cfg.configPath = DefaultConfigPath()
	}
	cfg.applyEnv()
	return cfg
}

// Load reads the config file at path on top of the built-in defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides fields from HEALTHCALC_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvUnits); v != "" {
		c.Defaults.Units = v
	}
}

// ConfigPath returns the file this config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section. It returns all problems joined together.
func (c *Config) Validate() error {
	var errs []error

	if !contains(supportedOutputFormats, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of %s",
			c.Output.DefaultFormat, strings.Join(supportedOutputFormats, ", ")))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := health.ParseUnitSystem(c.Defaults.Units); err != nil {
		errs = append(errs, fmt.Errorf("defaults.units: %w", err))
	}
	if _, err := health.ParseSex(c.Defaults.Sex); err != nil {
		errs = append(errs, fmt.Errorf("defaults.sex: %w", err))
	}
	if _, err := health.ParseActivityLevel(c.Defaults.Activity); err != nil {
		errs = append(errs, fmt.Errorf("defaults.activity: %w", err))
	}
	if _, err := health.ParseGoal(c.Defaults.Goal); err != nil {
		errs = append(errs, fmt.Errorf("defaults.goal: %w", err))
	}

	if c.Requires != "" {
		if _, err := parseConstraint(c.Requires); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

//nolint:gochecknoglobals // Process-wide config loaded once per CLI invocation.
var (
	globalConfig   *Config
	globalConfigMu sync.Mutex
)

// GetGlobalConfig returns the process-wide config, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process-wide config.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalConfigForTest clears the process-wide config so the next
// GetGlobalConfig call reloads it.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	format := GetGlobalConfig().Output.DefaultFormat
	if format == "" {
		return defaultOutputFormat
	}
	return format
}
