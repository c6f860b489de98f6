package okerr

import (
	"fmt"
)

// New creates an Error from a message, a format string or an existing error.
//
//	New("not found")                  message
//	New("value %d too large", n)      formatted; %w verbs join the chain
//	New(err)                          err becomes the head, its chain kept
//	New(err, "reading ", path)        err with one context layer on top
//
// A string is a format whenever args are given, so New("reading ", path)
// reports path as %!(EXTRA ...). Only the error form joins args with
// fmt.Sprint. A nil error value, typed or not, gives the message "<nil>";
// New always returns a failure. Any other value is rendered with fmt.Sprint.
func New(v any, args ...any) *Error {
	switch x := v.(type) {
	case string:
		if len(args) == 0 {
			return &Error{head: message(x)}
		}

		return Errorf(x, args...)
	case error:
		if isNil(x) {
			x = message("<nil>")
		}

		e := wrap(x)
		if len(args) > 0 {
			e = e.Context(fmt.Sprint(args...))
		}

		return e
	default:
		return &Error{head: message(fmt.Sprint(append([]any{v}, args...)...))}
	}
}

// Errorf formats a message like fmt.Errorf. Errors passed with %w become
// the source of the new head.
func Errorf(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)

	switch err.(type) {
	case interface{ Unwrap() error }, interface{ Unwrap() []error }:
		return &Error{head: err}
	default:
		return &Error{head: message(err.Error())}
	}
}

// Err builds a failure pair for use as a return expression:
//
//	return okerr.Err[int]("cannot divide by zero")
func Err[T any](v any, args ...any) (T, error) {
	var zero T
	return zero, New(v, args...)
}

// FromOK lifts a comma-ok lookup into a result pair. The message is only
// built when ok is false.
func FromOK[T any](v T, ok bool, msg any, args ...any) (T, error) {
	if ok {
		return v, nil
	}

	var zero T

	return zero, New(msg, args...)
}
