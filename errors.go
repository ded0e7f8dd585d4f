package pagenav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrInvalidPageSize is reported when the page size is not one of the
	// allowed page sizes.
	ErrInvalidPageSize = errors.New("invalid page size")
	// ErrPageIndexOutOfRange is reported when the page index points outside
	// the pages: below the first one or past the last one.
	ErrPageIndexOutOfRange = errors.New("page index out of range")
	// ErrInvalidURL is returned when a URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid url")
	// ErrNoBaseURL is returned when neither a base URL nor a URLSource is available.
	ErrNoBaseURL = errors.New("no base url")
)

// FieldError is a single validation finding bound to a Pager field.
type FieldError struct {
	// Field is the name of the offending field, e.g. "pageSize".
	Field string
	// Value is the rejected value.
	Value any
	// Err is one of the package sentinel errors.
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v (got %v)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors holds every finding of a single validation pass.
type ValidationErrors []*FieldError

func (v ValidationErrors) Error() string {
	return strings.Join(lo.Map(v, func(e *FieldError, _ int) string {
		return e.Error()
	}), "; ")
}

// Unwrap allows errors.Is and errors.As to look at every finding.
func (v ValidationErrors) Unwrap() []error {
	return lo.Map(v, func(e *FieldError, _ int) error {
		return e
	})
}

// Field returns the first finding for field, or nil.
func (v ValidationErrors) Field(field string) *FieldError {
	found, _ := lo.Find(v, func(e *FieldError) bool {
		return e.Field == field
	})

	return found
}

func invalidURL(rawURL string, err error) error {
	return fmt.Errorf("%w '%s': %w", ErrInvalidURL, rawURL, err)
}
