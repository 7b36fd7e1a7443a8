package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/jobboard/internal/validation"
)

// Error taxonomy shared by all services. Handlers translate these at the
// request boundary into flash messages and redirects; none is fatal.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError carries per-field violations for form re-rendering.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f, reason := range e.Violations {
		fields = append(fields, f+": "+reason)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

// AsValidation extracts a *ValidationError from an error chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func notFound(what string) error  { return fmt.Errorf("%s: %w", what, ErrNotFound) }
func forbidden(what string) error { return fmt.Errorf("%s: %w", what, ErrForbidden) }
func conflict(what string) error  { return fmt.Errorf("%s: %w", what, ErrConflict) }
