package batch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/healthcalc/internal/health"
)

// Filter keys accepted by ValidateFilter.
const (
	FilterKeyName     = "name"
	FilterKeyCategory = "category"
	FilterKeyBand     = "band"
	FilterKeyStatus   = "status"
)

// Result statuses matched by the "status" filter key.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrInvalidFilter is returned for malformed filter expressions.
var ErrInvalidFilter = errors.New("invalid filter")

// filterKeys lists the supported keys in help order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var filterKeys = []string{FilterKeyName, FilterKeyCategory, FilterKeyBand, FilterKeyStatus}

// FilterKeys returns the keys accepted in filter expressions.
func FilterKeys() []string {
	return slices.Clone(filterKeys)
}

// ValidateFilter checks a "key=value" filter expression.
func ValidateFilter(expr string) error {
	key, value, err := splitFilter(expr)
	if err != nil {
		return err
	}

	switch key {
	case FilterKeyName:
		return nil
	case FilterKeyCategory:
		_, err = health.ParseBMICategory(value)
	case FilterKeyBand:
		_, err = health.ParseBand(value)
	case FilterKeyStatus:
		if value != StatusOK && value != StatusError {
			err = fmt.Errorf("status must be %q or %q", StatusOK, StatusError)
		}
	default:
		return fmt.Errorf("%w: unknown key %q (valid: %s)",
			ErrInvalidFilter, key, strings.Join(filterKeys, ", "))
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFilter, expr, err)
	}
	return nil
}

// FilterResults returns the results matching expr. Name matching is a
// case-insensitive substring match. Category and band never match failed
// results. Invalid expressions match nothing; call ValidateFilter first.
func FilterResults(results []Result, expr string) []Result {
	key, value, err := splitFilter(expr)
	if err != nil {
		return nil
	}

	var match func(Result) bool
	switch key {
	case FilterKeyName:
		needle := strings.ToLower(value)
		match = func(r Result) bool { return strings.Contains(strings.ToLower(r.Name), needle) }
	case FilterKeyCategory:
		category, parseErr := health.ParseBMICategory(value)
		if parseErr != nil {
			return nil
		}
		match = func(r Result) bool { return r.Report != nil && r.Report.BMI.Category == category }
	case FilterKeyBand:
		band, parseErr := health.ParseBand(value)
		if parseErr != nil {
			return nil
		}
		match = func(r Result) bool { return r.Report != nil && r.Report.BMI.Category.Band() == band }
	case FilterKeyStatus:
		wantOK := value == StatusOK
		match = func(r Result) bool { return r.OK() == wantOK }
	default:
		return nil
	}

	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if match(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func splitFilter(expr string) (string, string, error) {
	key, value, found := strings.Cut(expr, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if !found || key == "" || value == "" {
		return "", "", fmt.Errorf("%w: %q must be key=value", ErrInvalidFilter, expr)
	}
	if key == FilterKeyStatus {
		value = strings.ToLower(value)
	}
	return key, value, nil
}
