package okerr

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/next-trace/scg-okerr/contract"
)

// Error is the unified error container.
//
// It holds the head of a causal chain. The head is one of:
//   - a message created by New / Errorf (no source),
//   - any concrete error handed to FromBoxed, WrapErr or New (its own
//     source links form the rest of the chain),
//   - a context layer added by Context / WithContext (the previous head
//     is its source).
//
// Values are never mutated after construction.
type Error struct {
	head error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// message is a chain entry carrying text only.
type message string

func (m message) Error() string { return string(m) }

// contextError prepends an annotation to an existing chain.
type contextError struct {
	msg   string
	cause error
}

func (c *contextError) Error() string { return c.msg }
func (c *contextError) Unwrap() error { return c.cause }

// wrap turns err into an *Error, reusing err when it already is one.
func wrap(err error) *Error {
	if e, ok := err.(*Error); ok && e != nil {
		return e
	}

	return &Error{head: err}
}

// ------ standard error interface

// Error renders the head message only. Use Full or %+v for the whole chain.
// A nil or zero Error renders "<nil>".
func (e *Error) Error() string {
	if e == nil || e.head == nil {
		return "<nil>"
	}

	return e.head.Error()
}

// Unwrap returns the head so errors.Is / errors.As observe every link.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.head
}

// ------ chain getters

// Depth is the number of entries in the chain (1 + number of source links).
func (e *Error) Depth() int { return e.Chain().Count() }

// Messages returns the message of each chain entry, head first.
func (e *Error) Messages() []string {
	var out []string
	for link := range e.Chain().All() {
		out = append(out, link.Error())
	}

	return out
}

// Root returns the innermost entry of the chain.
func (e *Error) Root() error {
	var root error
	for link := range e.Chain().All() {
		root = link
	}

	return root
}

// Full renders the whole chain on one line, e.g. "outer: middle: root".
func (e *Error) Full() string { return strings.Join(e.Messages(), ": ") }

// Format implements fmt.Formatter.
//
//	%s, %v  head message
//	%q      quoted head message
//	%+v     head message followed by a "Caused by:" section listing each link
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.report())
			return
		}

		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*okerr.Error=%s)", verb, e.Error())
	}
}

func (e *Error) report() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return e.Error()
	}

	var b strings.Builder
	b.WriteString(msgs[0])

	causes := msgs[1:]
	if len(causes) == 0 {
		return b.String()
	}

	b.WriteString("\n\nCaused by:")

	for i, c := range causes {
		b.WriteString("\n    ")

		if len(causes) > 1 {
			fmt.Fprintf(&b, "%d: ", i)
		}

		b.WriteString(c)
	}

	return b.String()
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return slog.StringValue(e.Error())
	}

	return slog.GroupValue(
		slog.String("msg", msgs[0]),
		slog.Any("chain", msgs),
		slog.String("root", msgs[len(msgs)-1]),
	)
}

// ------ downcasting

// Downcast finds the first error in err's tree that is a T.
func Downcast[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)

	return target, ok
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return errors.As(err, target) }
