package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/healthcalc/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{DefaultFormat: "table"},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Defaults: config.DefaultsConfig{
			Units:    "metric",
			Sex:      "female",
			Activity: "lightly_active",
			Goal:     "lose_weight",
		},
		Requires: ">= 0.1.0",
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "json", target.Output.DefaultFormat)

	// Other sections should be unchanged.
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, "text", target.Logging.Format)
	assert.Equal(t, "female", target.Defaults.Sex)
	assert.Equal(t, ">= 0.1.0", target.Requires)
}

func TestShallowMergeYAML_MultipleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: json
defaults:
  units: imperial
  sex: male
  activity: very_active
  goal: gain
requires: ">= 1.0.0"
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, config.DefaultsConfig{
		Units: "imperial", Sex: "male", Activity: "very_active", Goal: "gain",
	}, target.Defaults)
	assert.Equal(t, ">= 1.0.0", target.Requires)
	assert.Equal(t, "table", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_SectionIsReplacedWhole(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	// Shallow merge: fields missing from the overlay section become zero.
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Empty(t, target.Logging.Format)
}

func TestShallowMergeYAML_DefaultsMergedPerKey(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
defaults:
  units: imperial
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultsConfig{
		Units:    "imperial",
		Sex:      "female",
		Activity: "lightly_active",
		Goal:     "lose_weight",
	}, target.Defaults)
}

func TestShallowMergeYAML_EmptyOverlayFile(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, "")

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, original.Output, target.Output)
	assert.Equal(t, original.Logging, target.Logging)
	assert.Equal(t, original.Defaults, target.Defaults)
}

func TestShallowMergeYAML_CommentOnlyFile(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, "# this file is intentionally empty\n# just comments\n")

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, original.Output, target.Output)
	assert.Equal(t, original.Logging, target.Logging)
}

func TestShallowMergeYAML_CorruptedYAMLReturnsError(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "{{{{not valid yaml at all")

	err := config.ShallowMergeYAML(target, overlay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing overlay YAML")
}

func TestShallowMergeYAML_MissingFileReturnsError(t *testing.T) {
	target := newDefaultTarget()

	err := config.ShallowMergeYAML(target, "/nonexistent/path/overlay.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading overlay file")
}

func TestShallowMergeYAML_NilTarget(t *testing.T) {
	err := config.ShallowMergeYAML(nil, writeOverlay(t, "output: {}"))
	require.Error(t, err)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: yaml
unknown_section:
  foo: bar
extra_key: 42
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "yaml", target.Output.DefaultFormat)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_WrongSectionTypeReturnsError(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  - not
  - a
  - map
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `applying overlay section "logging"`)
}
