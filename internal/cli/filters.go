package cli

import (
	"context"

	"github.com/rshade/healthcalc/internal/batch"
	"github.com/rshade/healthcalc/internal/logging"
)

// ApplyFilters validates and applies "key=value" filter expressions to batch
// results. All filters are validated before any is applied, so an invalid
// expression returns nil and its error. Empty strings are ignored and an
// empty filter slice returns results unchanged. Filters combine with AND.
func ApplyFilters(ctx context.Context, results []batch.Result, filters []string) ([]batch.Result, error) {
	log := logging.FromContext(ctx)

	if len(filters) == 0 {
		return results, nil
	}

	for _, f := range filters {
		if f == "" {
			continue
		}
		if err := batch.ValidateFilter(f); err != nil {
			log.Warn().Ctx(ctx).
				Str("component", "cli").
				Str("operation", "apply_filters").
				Str("filter", f).
				Err(err).
				Msg("invalid filter expression")
			return nil, err
		}
	}

	filtered := results
	for _, f := range filters {
		if f == "" {
			continue
		}
		before := len(filtered)
		filtered = batch.FilterResults(filtered, f)
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Str("filter", f).
			Int("before", before).
			Int("after", len(filtered)).
			Msg("applied filter")
	}

	if len(filtered) == 0 && len(results) > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Int("original_count", len(results)).
			Msg("no profiles match filter criteria")
	}

	return filtered, nil
}
