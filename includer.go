package hocon

import "errors"

// IncludeContext carries the state an includer needs to resolve one include
// directive: the parse options in effect and the resolver to load resources
// with (already resolved, so implementations never consult the ambient
// resolver themselves).
type IncludeContext struct {
	Options  *ParseOptions
	Resolver ResourceResolver
}

// IncludeResult is the fetched content of an include directive. The parser
// tokenizes Source itself; the includer only locates and reads it.
type IncludeResult struct {
	Source string
	Origin *Origin
	Syntax Syntax
}

// Includer resolves include directives encountered while parsing.
//
// An includer that does not handle a given name returns an error wrapping
// ErrIncludeNotHandled; when the includer is part of a fallback chain, the
// next includer is consulted only in that case. Any other error is a real
// failure of the handling includer and stops the chain.
type Includer interface {
	Include(ctx *IncludeContext, name string) (IncludeResult, error)

	// WithFallback returns an includer that first consults the receiver and
	// falls back to next for anything the receiver defers. Implementations
	// can delegate to the package-level WithFallback helper.
	WithFallback(next Includer) Includer
}

// fallbackIncluder is the linked (primary, fallback) pair that includer
// chains are built from. Chains are linked, not flattened, so each link keeps
// its own delegation semantics.
type fallbackIncluder struct {
	primary  Includer
	fallback Includer
}

// WithFallback composes two includers: primary is always consulted first and
// fallback only sees the names primary defers.
func WithFallback(primary, fallback Includer) Includer {
	return &fallbackIncluder{primary: primary, fallback: fallback}
}

func (f *fallbackIncluder) Include(ctx *IncludeContext, name string) (IncludeResult, error) {
	result, err := f.primary.Include(ctx, name)
	if err != nil && errors.Is(err, ErrIncludeNotHandled) {
		return f.fallback.Include(ctx, name)
	}
	return result, err
}

func (f *fallbackIncluder) WithFallback(next Includer) Includer {
	return WithFallback(f, next)
}
