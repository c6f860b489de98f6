package okerr

import (
	"iter"
	"reflect"

	"github.com/next-trace/scg-okerr/contract"
)

// Chain walks a causal chain head first. It is lazy and consumed by
// iteration; ask for a new Chain to walk again.
type Chain struct {
	next error
	cur  error
}

// Chain returns a cursor positioned before the head of e's chain.
func (e *Error) Chain() *Chain {
	if e == nil {
		return &Chain{}
	}

	return &Chain{next: e.head}
}

// ChainOf returns a cursor over any error's chain.
func ChainOf(err error) *Chain { return &Chain{next: unbox(err)} }

// Next advances to the next link and reports whether there is one.
func (c *Chain) Next() bool {
	if c.next == nil {
		c.cur = nil
		return false
	}

	c.cur = c.next
	c.next = source(c.cur)

	return true
}

// Err returns the link the cursor is positioned on.
func (c *Chain) Err() error { return c.cur }

// Count consumes the remaining links and returns how many there were.
func (c *Chain) Count() int {
	n := 0
	for c.Next() {
		n++
	}

	return n
}

// All yields the remaining links.
func (c *Chain) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		for c.Next() {
			if !yield(c.cur) {
				return
			}
		}
	}
}

// source returns the next link after err: Unwrap() error first, then the
// legacy Cause() error. Aggregates (Unwrap() []error) end the chain.
func source(err error) error {
	var next error

	switch x := err.(type) {
	case interface{ Unwrap() error }:
		next = x.Unwrap()
	case contract.Causer:
		next = x.Cause()
	case contract.Joined:
		return nil
	}

	return unbox(next)
}

// unbox makes *Error links transparent so a container nested inside a
// foreign wrapper does not repeat its head message.
func unbox(err error) error {
	for {
		e, ok := err.(*Error)
		if !ok {
			break
		}

		if e == nil {
			return nil
		}

		err = e.head
	}

	if isNil(err) {
		return nil
	}

	return err
}

// isNil also catches typed nil pointers stored in an error interface and
// the zero Error, which has no chain.
func isNil(err error) bool {
	if err == nil {
		return true
	}

	if e, ok := err.(*Error); ok {
		return e == nil || e.head == nil
	}

	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
