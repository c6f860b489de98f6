package okerr

// bail carries an early-return failure from Fail, Ensure or Try up to the
// deferred Handle of the enclosing function.
type bail struct {
	err *Error
}

// Error is only seen when a bail escapes without a deferred Handle.
func (b bail) Error() string {
	return "okerr: early return without a deferred Handle: " + b.err.Error()
}

// Handle ends an early return started by Fail, Ensure, Try or Try0 and
// stores the failure in *errp. It must be deferred directly, in the same
// goroutine, by the function that should return the failure:
//
//	func load(path string) (cfg Config, err error) {
//		defer okerr.Handle(&err)
//		okerr.Ensure(path != "", "empty path")
//		...
//	}
//
// Panics that did not come from this package are re-raised untouched.
func Handle(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	b, ok := r.(bail)
	if !ok {
		panic(r)
	}

	*errp = b.err
}

// Fail builds an *Error as New does and returns it from the enclosing
// function immediately.
func Fail(v any, args ...any) {
	panic(bail{err: New(v, args...)})
}

// Ensure is a guard clause: when cond is false it fails like Fail. When
// cond is true nothing is built and execution continues.
func Ensure(cond bool, v any, args ...any) {
	if !cond {
		panic(bail{err: New(v, args...)})
	}
}

// Check is the value form of Ensure: nil when cond holds, the failure
// otherwise.
func Check(cond bool, v any, args ...any) error {
	if cond {
		return nil
	}

	return New(v, args...)
}

// Try returns v, or fails the enclosing function with err normalized.
//
//	n := okerr.Try(strconv.Atoi(s))
func Try[T any](v T, err error) T {
	if !isNil(err) {
		panic(bail{err: wrap(err)})
	}

	return v
}

// Try0 is Try for calls that return only an error.
func Try0(err error) {
	if !isNil(err) {
		panic(bail{err: wrap(err)})
	}
}
