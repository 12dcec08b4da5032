package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/healthcalc/internal/health"
)

// Layout constants for the styled views.
const (
	labelWidth       = 18
	borderPadding    = 2
	categoryColWidth = 20
	rangeColWidth    = 14
	bandColWidth     = 12
)

// RenderBMIView renders a BMI result with its category colored by band.
func RenderBMIView(r health.BMIResult) string {
	var sb strings.Builder
	sb.WriteString(labelLine("BMI"))
	sb.WriteString(ValueStyle.Render(fmt.Sprintf("%.1f", r.Value)))
	sb.WriteString("\n")
	sb.WriteString(labelLine("Category"))
	sb.WriteString(CategoryStyle(r.Category).Render(BandIcon(r.Category.Band()) + " " + r.Category.String()))
	return sb.String()
}

// RenderIdealWeightView renders an ideal-weight range.
func RenderIdealWeightView(r health.IdealWeightRange) string {
	unit := r.Units.WeightUnit()
	return labelLine("Ideal weight") +
		ValueStyle.Render(fmt.Sprintf("%.1f – %.1f %s", r.Min, r.Max, unit))
}

// RenderCaloriesView renders a calorie target with BMR, maintenance level
// and macronutrient split.
func RenderCaloriesView(r health.CalorieResult) string {
	var sb strings.Builder

	sb.WriteString(labelLine("BMR"))
	sb.WriteString(ValueStyle.Render(FormatFloat(r.BMR) + " kcal"))
	sb.WriteString("\n")
	sb.WriteString(labelLine("Maintenance"))
	sb.WriteString(ValueStyle.Render(FormatCalories(r.MaintenanceCalories)))
	sb.WriteString(SubtleStyle.Render(" (" + r.Activity.String() + ")"))
	sb.WriteString("\n")
	sb.WriteString(labelLine("Daily target"))
	sb.WriteString(lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Render(FormatCalories(r.DailyCalories)))
	sb.WriteString(SubtleStyle.Render(" (" + r.Goal.String() + ")"))
	sb.WriteString("\n")
	sb.WriteString(labelLine("Protein"))
	sb.WriteString(ValueStyle.Render(FormatGrams(r.Macros.ProteinGrams)))
	sb.WriteString("\n")
	sb.WriteString(labelLine("Carbohydrates"))
	sb.WriteString(ValueStyle.Render(FormatGrams(r.Macros.CarbGrams)))
	sb.WriteString("\n")
	sb.WriteString(labelLine("Fat"))
	sb.WriteString(ValueStyle.Render(FormatGrams(r.Macros.FatGrams)))

	return sb.String()
}

// RenderReportView renders a full assessment in a bordered box.
// A width of zero or less leaves the box unconstrained.
func RenderReportView(r health.Report, width int) string {
	var content strings.Builder

	title := "HEALTH REPORT"
	if r.Name != "" {
		title += " · " + r.Name
	}
	content.WriteString(HeaderStyle.Render(title))
	content.WriteString("\n\n")

	content.WriteString(RenderBMIView(r.BMI))
	content.WriteString("\n")
	content.WriteString(RenderIdealWeightView(r.IdealWeight))
	content.WriteString("\n\n")
	content.WriteString(RenderCaloriesView(r.Calories))
	content.WriteString("\n\n")

	content.WriteString(HeaderStyle.Render("Recommendations"))
	content.WriteString("\n")
	bullet := lipgloss.NewStyle().Foreground(BandColor(r.BMI.Category.Band())).Render("•")
	for _, rec := range r.Recommendations {
		content.WriteString(bullet + " " + rec + "\n")
	}
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render(r.Disclaimer))

	box := BoxStyle
	if width > borderPadding {
		box = box.Width(width - borderPadding)
	}
	return box.Render(content.String())
}

// RenderErrorView renders a failed assessment.
func RenderErrorView(name string, err error) string {
	label := "error"
	if name != "" {
		label = name
	}
	return ErrorStyle.Render(IconCritical+" "+label+": ") + err.Error()
}

// RenderCategoryTable renders the BMI category reference as styled text.
// The current category, if any, is marked with a pointer.
func RenderCategoryTable(current *health.BMICategory) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("  %-*s %-*s %s",
		categoryColWidth, "Category", rangeColWidth, "BMI", "Band")))
	sb.WriteString("\n")

	for _, c := range health.AllCategories() {
		marker := "  "
		if current != nil && *current == c {
			marker = IconPointer + " "
		}
		line := fmt.Sprintf("%-*s %-*s %-*s",
			categoryColWidth, c.String(), rangeColWidth, CategoryRangeLabel(c), bandColWidth, string(c.Band()))
		sb.WriteString(marker)
		sb.WriteString(CategoryStyle(c).Render(line))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// CategoryRangeLabel formats the published BMI range of c, e.g.
// "18.5 – 24.9" or "40.0+".
func CategoryRangeLabel(c health.BMICategory) string {
	lo, hi := c.DisplayRange()
	if math.IsInf(hi, 1) {
		return fmt.Sprintf("%.1f+", lo)
	}
	return fmt.Sprintf("%.1f – %.1f", lo, hi)
}

// NewCategoryTable creates a table model listing every BMI category.
// The cursor starts on current when it is non-nil.
func NewCategoryTable(current *health.BMICategory, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: categoryColWidth},
		{Title: "BMI", Width: rangeColWidth},
		{Title: "Band", Width: bandColWidth},
	}

	categories := health.AllCategories()
	rows := make([]table.Row, len(categories))
	for i, c := range categories {
		rows[i] = table.Row{c.String(), CategoryRangeLabel(c), string(c.Band())}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	if current != nil {
		t.SetCursor(int(*current))
	}

	return t
}

func labelLine(label string) string {
	return LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label+":"))
}
