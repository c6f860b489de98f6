package okerr

// FromBoxed converts any error value into an *Error without copying its
// message or flattening its chain. Use it for errors from other ecosystems
// that are only available as a plain error (aggregates, opaque reports).
//
// Behavior:
//   - nil input (including a typed nil pointer) => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - otherwise err becomes the head of a new *Error
func FromBoxed(err error) *Error {
	if isNil(err) {
		return nil
	}

	return wrap(err)
}

// WrapErr adapts the result of any fallible call, whatever its concrete
// error type, into a value and an *Error:
//
//	n, err := okerr.WrapErr(strconv.Atoi(s))
//
// v is passed through untouched. A nil or typed-nil err yields a nil error.
func WrapErr[T any, E error](v T, err E) (T, error) {
	var boxed error = err
	if isNil(boxed) {
		return v, nil
	}

	return v, wrap(boxed)
}
