package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/healthcalc/internal/config"
	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/logging"
)

// isolateHome points HEALTHCALC_HOME at a temp dir and clears env overrides.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvUnits, "")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return dir
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Equal(t, "metric", cfg.Defaults.Units)
}

func TestNew_MissingFileUsesDefaults(t *testing.T) {
	home := isolateHome(t)

	cfg := config.New()
	assert.Equal(t, config.Default().Defaults, cfg.Defaults)
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.ConfigPath())
}

func TestNew_ReadsFileAndEnv(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: json
defaults:
  units: imperial
  sex: female
  activity: moderate
  goal: lose
`), 0600))
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvOutputFormat, "yaml")

	cfg := config.New()
	assert.Equal(t, "yaml", cfg.Output.DefaultFormat, "env overrides file")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "imperial", cfg.Defaults.Units)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestNew_MalformedFileWarnsAndUsesDefaults(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("defaults: [unclosed\n"), 0o600))

	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })

	cfg := config.New()
	assert.Equal(t, config.Default().Defaults, cfg.Defaults)
	assert.Contains(t, buf.String(), "config file could not be loaded")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "parsing config file")
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.Defaults.Units = "imperial"
	cfg.Requires = ">= 0.1.0"
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "imperial", loaded.Defaults.Units)
	assert.Equal(t, ">= 0.1.0", loaded.Requires)
	assert.Equal(t, path, loaded.ConfigPath())
}

func TestSave_NoPath(t *testing.T) {
	cfg := config.Default()
	assert.Error(t, cfg.Save())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{
			name:    "bad output format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: "output.default_format",
		},
		{
			name:    "bad log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "bad units",
			mutate:  func(c *config.Config) { c.Defaults.Units = "stones" },
			wantErr: "defaults.units",
		},
		{
			name:    "bad activity is strict in config",
			mutate:  func(c *config.Config) { c.Defaults.Activity = "hyper" },
			wantErr: "defaults.activity",
		},
		{
			name:    "bad goal",
			mutate:  func(c *config.Config) { c.Defaults.Goal = "bulk" },
			wantErr: "defaults.goal",
		},
		{
			name:    "bad constraint",
			mutate:  func(c *config.Config) { c.Requires = "not a version" },
			wantErr: "requires",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := config.Default()
	cfg.Defaults.Sex = "x"
	cfg.Defaults.Units = "y"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, health.ErrUnknownValue)
	assert.Contains(t, err.Error(), "defaults.sex")
	assert.Contains(t, err.Error(), "defaults.units")
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	home := isolateHome(t)

	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	assert.Equal(t, logging.Config{Level: "debug", Format: "json", Output: logging.OutputStderr},
		lc.ToLoggingConfig())

	lc.File = "default"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, filepath.Join(home, "logs", "healthcalc.log"), got.File)
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)
	t.Setenv(config.EnvOutputFormat, "ndjson")

	assert.Equal(t, "ndjson", config.GetDefaultOutputFormat())

	custom := config.Default()
	custom.Output.DefaultFormat = "json"
	config.SetGlobalConfig(custom)
	assert.Same(t, custom, config.GetGlobalConfig())
	assert.Equal(t, "json", config.GetDefaultOutputFormat())
}

func TestEnsureLogDir(t *testing.T) {
	home := isolateHome(t)
	cfg := config.Default()
	cfg.Logging.File = "default"
	config.SetGlobalConfig(cfg)

	require.NoError(t, config.EnsureLogDir())
	info, err := os.Stat(filepath.Join(home, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
