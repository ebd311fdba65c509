package nachweis

import (
	"errors"
	"fmt"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/hours"
)

// ErrFileNotFound indicates the template file does not exist.
var ErrFileNotFound = errors.New("template not found")

// ErrInvalidFormat indicates the template is not a readable xlsx file.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNotFound indicates a label could not be located in the template.
var ErrNotFound = errors.New("label not found")

// ErrNoTableHeader indicates the worker table header is missing; only the
// table section is skipped.
var ErrNoTableHeader = errors.New("worker table header not found")

// ErrTooManyWorkers indicates a worker slot beyond the template's capacity.
var ErrTooManyWorkers = errors.New("too many workers")

// ErrMalformedTime is re-exported from package hours.
var ErrMalformedTime = hours.ErrMalformedTime

// FieldError is a best-effort failure for a single field of the document.
type FieldError struct {
	Field string // "date", "description", "table", "worker[2].hours", ...
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a new FieldError.
func NewFieldError(field string, err error) *FieldError {
	return &FieldError{
		Field: field,
		Err:   err,
	}
}
