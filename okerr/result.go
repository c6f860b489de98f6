package okerr

import (
	"go.uber.org/multierr"
)

// Result is the (T, error) pair as a single value, for sending outcomes
// over channels or keeping them in slices. A failed Result always holds an
// *Error.
type Result[T any] struct {
	value T
	err   *Error
}

// Of captures the outcome of a fallible call:
//
//	results <- okerr.Of(fetch(ctx, id))
func Of[T any](v T, err error) Result[T] {
	return Result[T]{value: v, err: FromBoxed(err)}
}

// Ok is a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Failed is a failed Result. A nil err yields a successful zero Result.
func Failed[T any](err error) Result[T] { return Result[T]{err: FromBoxed(err)} }

// Get unpacks r into the usual pair.
func (r Result[T]) Get() (T, error) {
	if r.err == nil {
		return r.value, nil
	}

	return r.value, r.err
}

// IsOk reports whether r holds no failure.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Err returns the failure or nil.
func (r Result[T]) Err() error {
	if r.err == nil {
		return nil
	}

	return r.err
}

// Value returns the value regardless of failure.
func (r Result[T]) Value() T { return r.value }

// Must returns the value and panics with the failure if there is one.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}

	return r.value
}

// Context layers msg onto a failed Result; successful Results pass through.
func (r Result[T]) Context(msg any) Result[T] {
	r.err = r.err.Context(msg)
	return r
}

// WithContext is Context with a lazily built message.
func (r Result[T]) WithContext(fn func() string) Result[T] {
	r.err = r.err.WithContext(fn)
	return r
}

// Collect returns the values of every successful Result and, if any failed,
// one *Error aggregating all failures in order.
func Collect[T any](results ...Result[T]) ([]T, error) {
	values := make([]T, 0, len(results))

	var errs error

	for _, r := range results {
		if r.err != nil {
			errs = multierr.Append(errs, r.err)
			continue
		}

		values = append(values, r.value)
	}

	if errs == nil {
		return values, nil
	}

	return values, FromBoxed(errs)
}
