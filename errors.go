package hocon

import "errors"

// Common errors used throughout the hocon package
var (
	// ErrNilIncluder is returned when a nil includer is passed to PrependIncluder or AppendIncluder.
	// Options errors
	ErrNilIncluder = errors.New("nil includer")

	// ErrIncludeNotHandled signals that an includer does not handle an include
	// directive and defers it to the next includer in the chain.
	// Includer errors
	ErrIncludeNotHandled = errors.New("include not handled by this includer")

	// ErrResourceNotFound indicates a resource resolver could not locate the named resource.
	// Resolver errors
	ErrResourceNotFound = errors.New("resource not found")
)
