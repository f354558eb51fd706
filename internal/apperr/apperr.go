// Package apperr defines the error type used across srm
package apperr

import "fmt"

// Error is an application error with a printf-style message template.
type Error struct {
	Err      error
	Message  string
	template string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target was derived from the same template as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.tmpl() == e.tmpl()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Err:      e.Err,
		Message:  fmt.Sprintf(e.tmpl(), args...),
		template: e.tmpl(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Err:      err,
		Message:  e.Message,
		template: e.tmpl(),
	}
}

func (e *Error) tmpl() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}
