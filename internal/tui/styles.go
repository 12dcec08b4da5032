package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/healthcalc/internal/health"
)

// Color palette shared by the styled renderers and the interactive editor.
const (
	ColorHeader    = lipgloss.Color("63")  // purple
	ColorBorder    = lipgloss.Color("240") // grey
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212") // pink
	ColorSpinner   = lipgloss.Color("205")

	ColorOK       = lipgloss.Color("42")  // green
	ColorInfo     = lipgloss.Color("39")  // blue
	ColorWarning  = lipgloss.Color("214") // orange
	ColorCritical = lipgloss.Color("196") // red
)

// Status icons.
const (
	IconOK       = "✓"
	IconWarning  = "⚠"
	IconCritical = "✗"
	IconPointer  = "→"
)

// Common styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorInfo)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorBorder)

	TableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// BandColor returns the display color of a BMI severity band.
func BandColor(b health.Band) lipgloss.Color {
	switch b {
	case health.BandHealthy:
		return ColorOK
	case health.BandUnderweight:
		return ColorInfo
	case health.BandOverweight:
		return ColorWarning
	case health.BandObese:
		return ColorCritical
	default:
		return ColorMuted
	}
}

// BandIcon returns the status icon of a BMI severity band.
func BandIcon(b health.Band) string {
	switch b {
	case health.BandHealthy:
		return IconOK
	case health.BandObese:
		return IconCritical
	default:
		return IconWarning
	}
}

// CategoryStyle returns the bold foreground style for a BMI category.
func CategoryStyle(c health.BMICategory) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BandColor(c.Band())).Bold(true)
}
