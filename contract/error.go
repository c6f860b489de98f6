// Package contract exposes the minimal error interfaces used by other packages.
//
// Implementations must keep their values immutable after construction and
// support errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Error is the minimal, stable surface of a unified error that other packages
// can depend on without importing the concrete implementation.
//
// Implementations must:
//   - Render only the head message from Error() (never the joined chain).
//   - Return the head of the chain from Unwrap() so errors.Is / errors.As
//     observe every link.
//   - Report Depth() == len(Messages()) == 1 + number of source links.
type Error interface {
	error
	Unwrap() error
	// Messages returns the message of every chain entry, head first.
	Messages() []string
	Depth() int
	// Root returns the innermost entry of the chain.
	Root() error
}

// Causer is the source link exposed by error ecosystems that predate
// errors.Unwrap (e.g. github.com/pkg/errors before v0.9).
type Causer interface {
	Cause() error
}

// Joined is implemented by aggregate errors (errors.Join, go.uber.org/multierr).
// Aggregates terminate a linear chain; their members stay reachable through
// errors.Is / errors.As.
type Joined interface {
	Unwrap() []error
}
