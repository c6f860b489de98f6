// Package derive defines typed errors from declarative message templates.
//
// A definition is created once at package scope and instances are created
// from it at runtime. Instances match their definition with errors.Is:
//
//	var ErrDivideBy = derive.Define("divide_by", "cannot divide by %d")
//
//	if b < 0 {
//		return 0, ErrDivideBy.New(b)
//	}
//	...
//	if errors.Is(err, ErrDivideBy) { ... }
//
// Definitions support a designated cause (Wrap) and automatic conversion
// of a source error (From). Template defines errors whose messages
// interpolate named fields.
package derive

import (
	"fmt"
	"slices"
	"strings"
)

// Def is an error definition with a fmt-style message format.
// A Def is itself an error so it can be used as an errors.Is target.
type Def struct {
	name   string
	format string
}

// compile-time guarantee that instances are errors
var (
	_ error = (*Def)(nil)
	_ error = (*Error)(nil)
)

// Define creates a definition. format may use any fmt verb, including
// explicit argument indexes such as %[1]s.
func Define(name, format string) *Def {
	return &Def{name: name, format: format}
}

func (d *Def) Error() string   { return d.name }
func (d *Def) Name() string    { return d.name }
func (d *Def) Pattern() string { return d.format }

// New creates an instance whose message is format rendered with args, as
// fmt.Sprintf renders it: args beyond the verbs show as %!(EXTRA ...). A
// format with verbs and no args is kept verbatim.
func (d *Def) New(args ...any) *Error {
	return d.build(nil, args)
}

// Wrap creates an instance with cause as its designated source.
func (d *Def) Wrap(cause error, args ...any) *Error {
	return d.build(cause, args)
}

// From converts cause into an instance of d. When the first verb of the
// format prints strings (%v, %s, %q, %x, %X), cause is its single argument.
// Otherwise the format is used as New would use it without args, so
// Define("x", "code %d").From(err) reads "code %d" rather than a fmt error.
// %w is not a Sprintf verb; use %v to show the cause.
func (d *Def) From(cause error) *Error {
	switch firstVerb(d.format) {
	case 'v', 's', 'q', 'x', 'X':
		return d.build(cause, []any{cause})
	default:
		return d.build(cause, nil)
	}
}

func (d *Def) build(cause error, args []any) *Error {
	msg := d.format
	if len(args) > 0 || !hasVerb(d.format) {
		msg = fmt.Sprintf(d.format, args...)
	}

	return &Error{
		def:   d,
		args:  slices.Clone(args),
		msg:   msg,
		cause: cause,
	}
}

// Error is an instance of a Def.
type Error struct {
	def   *Def
	args  []any
	msg   string
	cause error
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.cause }

// Is matches the definition e was created from.
func (e *Error) Is(target error) bool {
	d, ok := target.(*Def)
	return ok && d == e.def
}

func (e *Error) Def() *Def { return e.def }

// Args returns a copy of the arguments the message was rendered with.
func (e *Error) Args() []any { return slices.Clone(e.args) }

// GoString renders name(arg, ...) for %#v.
func (e *Error) GoString() string {
	parts := make([]string, len(e.args))
	for i, a := range e.args {
		parts[i] = fmt.Sprintf("%#v", a)
	}

	return e.def.name + "(" + strings.Join(parts, ", ") + ")"
}

// hasVerb reports whether format contains a verb other than %%.
func hasVerb(format string) bool { return firstVerb(format) != 0 }

// firstVerb returns the first verb in format, skipping %% and any flags,
// width, precision or argument index. It returns 0 when there is none and
// '!' for a dangling % at the end, which fmt reports as NOVERB.
func firstVerb(format string) rune {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}

		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.*[]", format[i]) >= 0 {
			i++
		}

		if i >= len(format) {
			return '!'
		}

		if format[i] == '%' {
			continue
		}

		return rune(format[i])
	}

	return 0
}
