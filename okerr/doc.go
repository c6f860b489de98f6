// Package okerr provides a unified error container and short helpers for
// building, annotating and returning errors.
//
// It exposes a single concrete type Error that implements contract.Error and
// integrates with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Error() renders the head message only; Full and %+v render the chain
//   - Linear causal chain walked through Unwrap() error or legacy Cause() error
//   - Context layering that prepends one entry and keeps every prior link
//   - FromBoxed / WrapErr normalize errors from any ecosystem without losing
//     message or chain
//
// Construction mirrors four shorthand forms:
//
//	e := okerr.New("value %d out of range", n)     // build an *Error
//	return okerr.Err[int]("cannot divide by zero")  // build a failure pair
//	okerr.Fail("oops")                              // build and return now
//	okerr.Ensure(n > 0, "n must be positive")       // guard clause
//
// Fail, Ensure, Try and Try0 return early through a deferred Handle:
//
//	func parse(s string) (n int, err error) {
//		defer okerr.Handle(&err)
//		n = okerr.Try(strconv.Atoi(s))
//		okerr.Ensure(n >= 0, "negative: %d", n)
//		return n, nil
//	}
//
// Typed error definitions live in package derive; logging adapters in
// package report.
package okerr
