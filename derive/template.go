package derive

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Tmpl is an error definition whose message interpolates the named fields
// of F with text/template. Sprig functions (quote, upper, default, ...) are
// available in the template.
type Tmpl[F any] struct {
	name string
	tmpl *template.Template
}

// Template creates a definition for field type F. It panics if text does
// not parse, like template.Must, since definitions live at package scope:
//
//	type userFields struct{ Name string; Age int }
//	var ErrUnderage = derive.Template[userFields]("underage",
//		"user {{.Name | quote}} is too young: {{.Age}}")
func Template[F any](name, text string) *Tmpl[F] {
	t := template.Must(template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text))

	return &Tmpl[F]{name: name, tmpl: t}
}

func (t *Tmpl[F]) Error() string { return t.name }
func (t *Tmpl[F]) Name() string  { return t.name }

// New creates an instance from fields.
func (t *Tmpl[F]) New(fields F) *Fielded[F] { return t.build(nil, fields) }

// Wrap creates an instance from fields with cause as its designated source.
func (t *Tmpl[F]) Wrap(cause error, fields F) *Fielded[F] { return t.build(cause, fields) }

func (t *Tmpl[F]) build(cause error, fields F) *Fielded[F] {
	return &Fielded[F]{
		def:    t,
		fields: fields,
		msg:    t.render(fields),
		cause:  cause,
	}
}

func (t *Tmpl[F]) render(fields F) string {
	var b strings.Builder
	if err := t.tmpl.Execute(&b, fields); err != nil {
		return fmt.Sprintf("%s (render failed: %v)", t.name, err)
	}

	return b.String()
}

// Fielded is an instance of a Tmpl.
type Fielded[F any] struct {
	def    *Tmpl[F]
	fields F
	msg    string
	cause  error
}

func (e *Fielded[F]) Error() string { return e.msg }
func (e *Fielded[F]) Unwrap() error { return e.cause }

// Is matches the definition e was created from.
func (e *Fielded[F]) Is(target error) bool {
	d, ok := target.(*Tmpl[F])
	return ok && d == e.def
}

func (e *Fielded[F]) Def() *Tmpl[F] { return e.def }
func (e *Fielded[F]) Fields() F     { return e.fields }

// GoString renders name{Field:value ...} for %#v.
func (e *Fielded[F]) GoString() string {
	return fmt.Sprintf("%s%+v", e.def.name, e.fields)
}
