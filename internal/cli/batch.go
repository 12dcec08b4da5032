package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/healthcalc/internal/batch"
	"github.com/rshade/healthcalc/internal/cli/pagination"
	"github.com/rshade/healthcalc/internal/report"
)

// batchFlags holds the flags of the batch command.
type batchFlags struct {
	file        string
	concurrency int
	failOnError bool
	filters     []string
	sort        string
	limit       int
	offset      int
}

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	var f batchFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Assess every profile in a YAML file",
		Long: `Reads a YAML document with a "profiles" list and assesses each profile
concurrently. Results are printed in file order unless --sort is given. A
profile that fails validation is reported with its error and does not stop
the others.

Profile fields: name, weight, height, age, sex, units, activity, goal.
Omitted sex, units, activity and goal use the configured defaults.

Filters use key=value syntax and may be repeated; all must match.
Keys: ` + strings.Join(batch.FilterKeys(), ", ") + `.
Sort fields: ` + strings.Join(pagination.NewResultSorter().GetValidFields(), ", ") + `.`,
		Example: `  healthcalc batch --file profiles.yaml
  healthcalc batch --file profiles.yaml --concurrency 4 -o ndjson
  healthcalc batch --file profiles.yaml --filter band=obese --sort bmi:desc --limit 10
  healthcalc batch --file profiles.yaml --fail-on-error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return inputError(runBatch(cmd, &f))
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "path to the profiles YAML file")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", 0, "maximum profiles assessed in parallel (0 = number of CPUs)")
	cmd.Flags().BoolVar(&f.failOnError, "fail-on-error", false,
		fmt.Sprintf("exit with code %d when any profile fails", ExitCodeInput))
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "show only results matching key=value (repeatable)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort results by field[:asc|desc]")
	cmd.Flags().IntVar(&f.limit, "limit", pagination.DefaultLimit, "maximum results to show (0 = all)")
	cmd.Flags().IntVar(&f.offset, "offset", pagination.DefaultOffset, "results to skip before showing")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// listParams validates the sort and window flags before any work is done.
func (f *batchFlags) listParams(sorter pagination.Sorter) (pagination.Params, error) {
	field, order, err := pagination.ParseSort(f.sort)
	if err != nil {
		return pagination.Params{}, err
	}
	if field != "" && !sorter.IsValidField(field) {
		return pagination.Params{}, fmt.Errorf("%w: %q (valid: %s)",
			pagination.ErrInvalidSortField, field, strings.Join(sorter.GetValidFields(), ", "))
	}

	params := pagination.Params{Limit: f.limit, Offset: f.offset, SortField: field, SortOrder: order}
	if err = params.Validate(); err != nil {
		return pagination.Params{}, err
	}
	return params, nil
}

func runBatch(cmd *cobra.Command, f *batchFlags) error {
	ctx := cmd.Context()

	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	sorter := pagination.NewResultSorter()
	params, err := f.listParams(sorter)
	if err != nil {
		return err
	}
	for _, expr := range f.filters {
		if err = batch.ValidateFilter(expr); err != nil {
			return err
		}
	}
	defaults, err := resolveDefaults()
	if err != nil {
		return err
	}

	profiles, err := batch.Load(f.file)
	if err != nil {
		return err
	}

	results, err := batch.Run(ctx, profiles.Profiles, batch.Options{
		Concurrency: f.concurrency,
		Defaults:    defaults,
		OnProgress: func(p *batch.Progress) {
			snap := p.Snapshot()
			logger.Trace().Ctx(ctx).
				Int("done", snap.Succeeded+snap.Failed).
				Int("total", snap.Total).
				Float64("percent", snap.PercentComplete).
				Dur("elapsed", snap.Elapsed).
				Msg("batch progress")
		},
	})
	if err != nil {
		return err
	}
	totals := report.TotalsOf(results)
	failed := totals.Failed

	shown, err := ApplyFilters(ctx, results, f.filters)
	if err != nil {
		return err
	}
	if params.SortField != "" {
		shown = sorter.Sort(shown, params.SortField, params.SortOrder)
	}
	if params.IsEnabled() {
		shown = pagination.Apply(params, shown)
	}
	logger.Debug().Ctx(ctx).
		Int("profiles", len(results)).
		Int("shown", len(shown)).
		Int("failed", failed).
		Msg("batch finished")

	if err = report.RenderReports(cmd.OutOrStdout(), opts, totals, shown); err != nil {
		return err
	}

	if failed > 0 && f.failOnError {
		return &InputExitError{
			ExitCode: ExitCodeInput,
			Err:      fmt.Errorf("%d of %d profiles failed", failed, len(results)),
		}
	}
	return nil
}
