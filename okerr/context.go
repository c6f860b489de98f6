package okerr

import (
	"fmt"
)

// ------ layering on *Error (non-mutating, each returns a new *Error)

// Context prepends msg as the new head. The previous chain is kept intact
// so Depth grows by exactly one.
func (e *Error) Context(msg any) *Error {
	if e == nil {
		return nil
	}

	return &Error{head: &contextError{msg: fmt.Sprint(msg), cause: e.head}}
}

// Contextf is Context with a format string.
func (e *Error) Contextf(format string, args ...any) *Error {
	if e == nil {
		return nil
	}

	return e.Context(fmt.Sprintf(format, args...))
}

// WithContext is Context with a lazily built message.
func (e *Error) WithContext(fn func() string) *Error {
	if e == nil {
		return nil
	}

	return e.Context(fn())
}

// ------ layering on plain errors (nil stays nil)

// Context normalizes err and prepends msg. It returns nil when err is nil.
//
//	if err := os.Remove(p); err != nil {
//		return okerr.Context(err, "cleanup failed")
//	}
func Context(err error, msg any) error {
	if isNil(err) {
		return nil
	}

	return wrap(err).Context(msg)
}

// Contextf is Context with a format string.
func Contextf(err error, format string, args ...any) error {
	if isNil(err) {
		return nil
	}

	return wrap(err).Contextf(format, args...)
}

// WithContext is Context with a lazily built message; fn is not called when
// err is nil.
func WithContext(err error, fn func() string) error {
	if isNil(err) {
		return nil
	}

	return wrap(err).WithContext(fn)
}
