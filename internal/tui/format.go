package tui

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(2008) returns "2,008".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with one decimal place and thousand separators.
// Example: FormatFloat(1673.5) returns "1,673.5".
func FormatFloat(f float64) string {
	rounded := math.Round(f*10) / 10 //nolint:mnd // One decimal place.
	formatted := fmt.Sprintf("%.1f", rounded)

	intPart, frac, ok := strings.Cut(formatted, ".")
	if !ok {
		return formatted
	}
	negative := strings.HasPrefix(intPart, "-")
	var n int
	if _, err := fmt.Sscanf(strings.TrimPrefix(intPart, "-"), "%d", &n); err != nil {
		return formatted
	}
	out := FormatNumber(n) + "." + frac
	if negative {
		return "-" + out
	}
	return out
}

// FormatCalories formats a daily calorie value, e.g. "2,008 kcal".
func FormatCalories(kcal int) string {
	return FormatNumber(kcal) + " kcal"
}

// FormatGrams formats a macronutrient amount, e.g. "150 g".
func FormatGrams(g int) string {
	return FormatNumber(g) + " g"
}
