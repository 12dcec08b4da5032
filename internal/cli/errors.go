package cli

import (
	"errors"

	"github.com/rshade/healthcalc/internal/batch"
	"github.com/rshade/healthcalc/internal/cli/pagination"
	"github.com/rshade/healthcalc/internal/health"
	"github.com/rshade/healthcalc/internal/report"
)

// ExitCodeInput is the process exit code for rejected user input.
const ExitCodeInput = 2

// InputExitError carries an exit code for errors caused by user input, such
// as out-of-range measurements or unknown enum values. main extracts the
// code with errors.As.
type InputExitError struct {
	ExitCode int
	Err      error
}

func (e *InputExitError) Error() string {
	return e.Err.Error()
}

func (e *InputExitError) Unwrap() error {
	return e.Err
}

// inputError wraps err in an InputExitError when it was caused by user
// input. Other errors are returned unchanged.
func inputError(err error) error {
	if err == nil {
		return nil
	}
	var existing *InputExitError
	if errors.As(err, &existing) {
		return err
	}
	if errors.Is(err, health.ErrInvalidInput) ||
		errors.Is(err, health.ErrOutOfRange) ||
		errors.Is(err, health.ErrUnknownValue) ||
		errors.Is(err, report.ErrUnsupportedFormat) ||
		errors.Is(err, batch.ErrNoProfiles) ||
		errors.Is(err, batch.ErrInvalidConcurrency) ||
		errors.Is(err, batch.ErrInvalidFilter) ||
		isPaginationError(err) {
		return &InputExitError{ExitCode: ExitCodeInput, Err: err}
	}
	return err
}

func isPaginationError(err error) bool {
	for _, target := range []error{
		pagination.ErrInvalidLimit,
		pagination.ErrInvalidOffset,
		pagination.ErrInvalidSortOrder,
		pagination.ErrInvalidSortFormat,
		pagination.ErrEmptySortField,
		pagination.ErrInvalidSortField,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
