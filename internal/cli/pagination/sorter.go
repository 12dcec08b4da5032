package pagination

import (
	"sort"
	"strings"

	"github.com/rshade/healthcalc/internal/batch"
)

// Sort fields accepted by ResultSorter.
const (
	SortFieldIndex    = "index"
	SortFieldName     = "name"
	SortFieldBMI      = "bmi"
	SortFieldCalories = "calories"
	SortFieldCategory = "category"
)

// Sorter defines the interface for sorting batch results.
type Sorter interface {
	// Sort sorts a slice of results by the specified field and order.
	Sort(results []batch.Result, field, order string) []batch.Result
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// ResultSorter implements Sorter for batch.Result.
type ResultSorter struct {
	validFields map[string]bool
}

// NewResultSorter creates a new ResultSorter with valid sort fields.
func NewResultSorter() *ResultSorter {
	return &ResultSorter{
		validFields: map[string]bool{
			SortFieldIndex:    true,
			SortFieldName:     true,
			SortFieldBMI:      true,
			SortFieldCalories: true,
			SortFieldCategory: true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *ResultSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *ResultSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts results by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
// Failed results have no metrics and always sort after successful ones.
func (s *ResultSorter) Sort(results []batch.Result, field, order string) []batch.Result {
	if !s.IsValidField(field) {
		return results
	}

	sorted := make([]batch.Result, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if field != SortFieldIndex && field != SortFieldName {
			if a.Report == nil || b.Report == nil {
				return a.Report != nil && b.Report == nil
			}
		}

		// For descending order, swap operands in comparisons to maintain stability
		if order == SortOrderDesc {
			a, b = b, a
		}

		switch field {
		case SortFieldIndex:
			return a.Index < b.Index
		case SortFieldName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortFieldBMI:
			return a.Report.BMI.Value < b.Report.BMI.Value
		case SortFieldCalories:
			return a.Report.Calories.DailyCalories < b.Report.Calories.DailyCalories
		case SortFieldCategory:
			return a.Report.BMI.Category < b.Report.BMI.Category
		default:
			return false
		}
	})

	return sorted
}
