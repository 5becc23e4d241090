package srverr

import (
	"errors"
	"strings"
)

var (
	ErrTypeAssertMismatch = errors.New("type assertion mismatch")

	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("competition is not open for registration")
	ErrCapacityExceeded = errors.New("competition is full")
	ErrConflict         = errors.New("conflicting update")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
)

// Lists the form fields that failed required field validation, in form order
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}

	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Builds a field -> reason map suitable for an API error body
func (e *ValidationError) FieldMap() map[string]string {
	fields := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		fields[f] = "required"
	}

	return fields
}
