package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"syscall"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/healthcalc/internal/batch"
	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/tui"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// RenderBMI writes a BMI result.
func RenderBMI(w io.Writer, opts Options, r health.BMIResult) error {
	return render(w, opts, r, func() error {
		if opts.Styled {
			return writeLine(w, tui.RenderBMIView(r))
		}
		return writeTable(w, [][2]string{
			{"BMI", fmt.Sprintf("%.1f", r.Value)},
			{"Category", r.Category.String()},
		})
	})
}

// RenderIdealWeight writes an ideal-weight range.
func RenderIdealWeight(w io.Writer, opts Options, r health.IdealWeightRange) error {
	return render(w, opts, r, func() error {
		if opts.Styled {
			return writeLine(w, tui.RenderIdealWeightView(r))
		}
		return writeTable(w, [][2]string{{"Ideal weight", idealWeightLabel(r)}})
	})
}

// RenderCalories writes a calorie target and macronutrient split.
func RenderCalories(w io.Writer, opts Options, r health.CalorieResult) error {
	return render(w, opts, r, func() error {
		if opts.Styled {
			return writeLine(w, tui.RenderCaloriesView(r))
		}
		return writeTable(w, calorieRows(r))
	})
}

// RenderReport writes a full assessment.
func RenderReport(w io.Writer, opts Options, r health.Report) error {
	return render(w, opts, r, func() error {
		if opts.Styled {
			return writeLine(w, tui.RenderReportView(r, opts.Width))
		}
		return writePlainReport(w, r)
	})
}

// batchSummary is the aggregate emitted with batch results.
type batchSummary struct {
	Type      string `json:"type,omitempty" yaml:"-"`
	Total     int    `json:"total" yaml:"total"`
	Succeeded int    `json:"succeeded" yaml:"succeeded"`
	Failed    int    `json:"failed" yaml:"failed"`
}

// batchOutput is the JSON and YAML document for batch results.
type batchOutput struct {
	Summary batchSummary   `json:"summary" yaml:"summary"`
	Results []batch.Result `json:"results" yaml:"results"`
}

// BatchTotals counts every profile of a batch run, including those later
// hidden by filters or pagination.
type BatchTotals struct {
	Total     int
	Succeeded int
	Failed    int
}

// TotalsOf counts results.
func TotalsOf(results []batch.Result) BatchTotals {
	ok, failed := batch.Summarize(results)
	return BatchTotals{Total: len(results), Succeeded: ok, Failed: failed}
}

func newBatchSummary(totals BatchTotals) batchSummary {
	return batchSummary{Total: totals.Total, Succeeded: totals.Succeeded, Failed: totals.Failed}
}

// RenderReports writes batch results. The summary reports totals, which may
// cover more profiles than the results shown. NDJSON output starts with a
// summary line followed by one line per result.
func RenderReports(w io.Writer, opts Options, totals BatchTotals, results []batch.Result) error {
	switch opts.Format {
	case OutputJSON:
		return writeJSON(w, batchOutput{Summary: newBatchSummary(totals), Results: results})
	case OutputYAML:
		return writeYAML(w, batchOutput{Summary: newBatchSummary(totals), Results: results})
	case OutputNDJSON:
		summary := newBatchSummary(totals)
		summary.Type = "summary"
		items := make([]any, 0, len(results)+1)
		items = append(items, summary)
		for _, r := range results {
			items = append(items, r)
		}
		return ignoreBrokenPipe(writeNDJSON(w, items...))
	case OutputTable:
		if opts.Styled {
			return writeStyledReports(w, opts, totals, results)
		}
		return writePlainReports(w, totals, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

// categoryRow is the structured form of one BMI category.
type categoryRow struct {
	Category health.BMICategory `json:"category" yaml:"category"`
	Label    string             `json:"label" yaml:"label"`
	Min      float64            `json:"min" yaml:"min"`
	// Max is nil for the open-ended top category.
	Max     *float64    `json:"max" yaml:"max"`
	Band    health.Band `json:"band" yaml:"band"`
	Current bool        `json:"current,omitempty" yaml:"current,omitempty"`
}

func categoryRows(current *health.BMICategory) []categoryRow {
	categories := health.AllCategories()
	rows := make([]categoryRow, 0, len(categories))
	for _, c := range categories {
		lo, hi := c.DisplayRange()
		row := categoryRow{
			Category: c,
			Label:    c.String(),
			Min:      lo,
			Band:     c.Band(),
			Current:  current != nil && *current == c,
		}
		if !math.IsInf(hi, 1) {
			row.Max = &hi
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderCategories writes the BMI category reference table. A non-nil
// current category is highlighted.
func RenderCategories(w io.Writer, opts Options, current *health.BMICategory) error {
	rows := categoryRows(current)

	switch opts.Format {
	case OutputNDJSON:
		items := make([]any, len(rows))
		for i, r := range rows {
			items[i] = r
		}
		return ignoreBrokenPipe(writeNDJSON(w, items...))
	case OutputTable:
		if opts.Styled {
			return writeLine(w, tui.RenderCategoryTable(current))
		}
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		fmt.Fprintf(tw, "CATEGORY\tBMI\tBAND\t\n")
		fmt.Fprintf(tw, "--------\t---\t----\t\n")
		for _, r := range rows {
			marker := ""
			if r.Current {
				marker = "<-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Label, tui.CategoryRangeLabel(r.Category), r.Band, marker)
		}
		return tw.Flush()
	default:
		return render(w, opts, rows, nil)
	}
}

// render dispatches the structured formats and calls table for OutputTable.
func render(w io.Writer, opts Options, v any, table func() error) error {
	switch opts.Format {
	case OutputJSON:
		return writeJSON(w, v)
	case OutputNDJSON:
		return ignoreBrokenPipe(writeNDJSON(w, v))
	case OutputYAML:
		return writeYAML(w, v)
	case OutputTable:
		if table != nil {
			return table()
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeNDJSON(w io.Writer, items ...any) error {
	encoder := json.NewEncoder(w)
	for _, item := range items {
		if err := encoder.Encode(item); err != nil {
			return fmt.Errorf("encoding NDJSON: %w", err)
		}
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // Two-space YAML indent.
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}

// ignoreBrokenPipe drops EPIPE so "healthcalc ... | head -n1" exits cleanly.
func ignoreBrokenPipe(err error) error {
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

func writeTable(w io.Writer, rows [][2]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

func idealWeightLabel(r health.IdealWeightRange) string {
	return fmt.Sprintf("%.1f - %.1f %s", r.Min, r.Max, r.Units.WeightUnit())
}

func calorieRows(r health.CalorieResult) [][2]string {
	return [][2]string{
		{"BMR", tui.FormatFloat(r.BMR) + " kcal"},
		{"Maintenance", tui.FormatCalories(r.MaintenanceCalories)},
		{"Daily calories", fmt.Sprintf("%s (%s, %s)", tui.FormatCalories(r.DailyCalories), r.Activity, r.Goal)},
		{"Protein", tui.FormatGrams(r.Macros.ProteinGrams)},
		{"Carbohydrates", tui.FormatGrams(r.Macros.CarbGrams)},
		{"Fat", tui.FormatGrams(r.Macros.FatGrams)},
	}
}

func writePlainReport(w io.Writer, r health.Report) error {
	var rows [][2]string
	if r.Name != "" {
		rows = append(rows, [2]string{"Name", r.Name})
	}
	rows = append(rows,
		[2]string{"BMI", fmt.Sprintf("%.1f (%s)", r.BMI.Value, r.BMI.Category)},
		[2]string{"Ideal weight", idealWeightLabel(r.IdealWeight)},
	)
	rows = append(rows, calorieRows(r.Calories)...)
	if err := writeTable(w, rows); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("\nRecommendations:\n")
	for _, rec := range r.Recommendations {
		sb.WriteString("  - " + rec + "\n")
	}
	sb.WriteString("\n" + r.Disclaimer + "\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePlainReports(w io.Writer, totals BatchTotals, results []batch.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "#\tNAME\tBMI\tCATEGORY\tIDEAL WEIGHT\tDAILY KCAL\tSTATUS\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t----\t---\t--------\t------------\t----------\t------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, r := range results {
		name := r.Name
		if name == "" {
			name = "-"
		}

		bmi, category, ideal, kcal, status := "ERR", "-", "-", "-", "error"
		if r.Report != nil {
			bmi = fmt.Sprintf("%.1f", r.Report.BMI.Value)
			category = r.Report.BMI.Category.String()
			ideal = idealWeightLabel(r.Report.IdealWeight)
			kcal = tui.FormatNumber(r.Report.Calories.DailyCalories)
			status = "ok"
		}

		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Index+1, name, bmi, category, ideal, kcal, status); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := newBatchSummary(totals)
	if _, err := fmt.Fprintf(w, "\nProfiles: %d  Succeeded: %d  Failed: %d\n",
		summary.Total, summary.Succeeded, summary.Failed); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err == nil && r.Error == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "  #%d %s: %s\n", r.Index+1, r.Name, r.Error); err != nil {
			return err
		}
	}
	return nil
}

func writeStyledReports(w io.Writer, opts Options, totals BatchTotals, results []batch.Result) error {
	for _, r := range results {
		var block string
		if r.Report != nil {
			block = tui.RenderReportView(*r.Report, opts.Width)
		} else {
			block = tui.RenderErrorView(r.Name, errors.New(r.Error))
		}
		if err := writeLine(w, block); err != nil {
			return err
		}
	}

	summary := newBatchSummary(totals)
	return writeLine(w, tui.LabelStyle.Render(fmt.Sprintf("Profiles: %d  Succeeded: %d  Failed: %d",
		summary.Total, summary.Succeeded, summary.Failed)))
}

// RenderConfig writes a configuration value in a structured format. Table
// output is not supported for nested configuration.
func RenderConfig(w io.Writer, opts Options, cfg any) error {
	return render(w, opts, cfg, nil)
}
