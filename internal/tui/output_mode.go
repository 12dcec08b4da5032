package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how table output is presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and files.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text to a terminal.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// isTerminalFn is replaced in tests.
//
//nolint:gochecknoglobals // Test seam for terminal detection.
var isTerminalFn = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DetectOutputMode picks the output mode for table output.
//
// forcePlain wins over everything. NO_COLOR and TERM=dumb disable styling.
// interactive is honored only when stdout is a terminal.
func DetectOutputMode(forcePlain, noColor, interactive bool) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if !isTerminalFn() {
		return OutputModePlain
	}
	if interactive {
		return OutputModeInteractive
	}
	if noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	return OutputModeStyled
}
