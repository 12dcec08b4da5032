package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/healthcalc/internal/cli"
	"github.com/rshade/healthcalc/internal/config"
)

// setupCLITest isolates the command from the user's home directory and
// environment and resets global config afterwards.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvUnits, "")
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, version string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd(version)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// requireExitCode asserts err is an InputExitError with the given code.
func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var exitErr *cli.InputExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, code, exitErr.ExitCode)
}
