// Package report renders health results as tables, JSON, NDJSON or YAML.
package report

import (
	"fmt"
	"strings"
)

// OutputFormat selects how results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
	OutputYAML   OutputFormat = "yaml"
)

// ErrUnsupportedFormat is returned for unknown output formats.
var ErrUnsupportedFormat = fmt.Errorf("unsupported output format (want one of %s)",
	strings.Join(SupportedFormats(), ", "))

// SupportedFormats returns the accepted format names.
func SupportedFormats() []string {
	return []string{string(OutputTable), string(OutputJSON), string(OutputNDJSON), string(OutputYAML)}
}

// ParseOutputFormat parses a case-insensitive format name.
// "yml" is accepted as an alias of "yaml".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON, OutputYAML:
		return f, nil
	case "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Options control rendering.
type Options struct {
	Format OutputFormat
	// Styled enables lipgloss styling for table output.
	Styled bool
	// Width constrains styled boxes. Zero leaves them unconstrained.
	Width int
}
