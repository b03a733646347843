package errs

import (
	"fmt"
	"strings"
)

// Error is a keyed error with optional formatting arguments and error wrapping
// support. Package-level values act as sentinels: errors.Is matches any Error
// derived from a sentinel through WithArgs or Wrap by its key.
//
// Example usage:
//
//	err := errs.ErrRequiredMissing.WithArgs("input")
//	errors.Is(err, errs.ErrRequiredMissing) // true
type Error struct {
	key     string
	format  string
	args    []any
	wrapped error
}

// New creates a sentinel error identified by key and rendered with format
func New(key, format string) *Error {
	return &Error{key: key, format: format}
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	msg := e.format
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...any) *Error {
	return &Error{
		key:     e.key,
		format:  e.format,
		args:    args,
		wrapped: e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	return &Error{
		key:     e.key,
		format:  e.format,
		args:    e.args,
		wrapped: err,
	}
}

// Is implements errors.Is by comparing keys
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.key == e.key
}

// Key returns the error key
func (e *Error) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *Error) Args() []any {
	return e.args
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// ParseError is returned when an argument vector fails to parse. It carries every
// diagnostic collected during matching, coercion, validation and constraint
// resolution, in the order they were found.
type ParseError struct {
	Diagnostics []error
}

// Error renders the diagnostics as a list
func (e *ParseError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "parse failed: no errors"
	case 1:
		return "parse failed: " + e.Diagnostics[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "parse failed: %d errors", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		fmt.Fprintf(&b, "\n  - %s", d)
	}
	return b.String()
}

// Unwrap exposes the diagnostics to errors.Is and errors.As
func (e *ParseError) Unwrap() []error {
	return e.Diagnostics
}
