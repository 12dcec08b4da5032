package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders and validation limits.
const (
	DefaultLimit     = 0
	MaxLimit         = 10000
	DefaultOffset    = 0
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidLimit      = fmt.Errorf("limit must be between 0 and %d", MaxLimit)
	ErrInvalidOffset     = errors.New("offset must be non-negative")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'bmi:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the list-shaping flags of a command.
// A zero Limit means no limit.
type Params struct {
	Limit     int
	Offset    int
	SortField string
	SortOrder string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks limit and offset bounds.
func (p Params) Validate() error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOffset, p.Offset)
	}
	if p.SortOrder != "" && p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// IsEnabled returns true if a limit or offset is set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0
}

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "field" or "field:order".
// Examples: "bmi", "calories:desc", "name:asc"
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// Apply returns the window of items selected by Offset and Limit.
// An offset beyond the end yields an empty slice.
func Apply[T any](p Params, items []T) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}
