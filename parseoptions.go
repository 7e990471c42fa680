// Package hocon provides the configuration model for a HOCON-style
// configuration parser: the immutable options value that tells the parser
// which syntax to assume, how to label origins for diagnostics, whether a
// missing root source is tolerated, how include directives are resolved, and
// which resource resolver locates included content.
package hocon

import (
	"fmt"
	"reflect"
)

// identicalValue reports whether a and b are the same includer or resolver
// without panicking on non-comparable dynamic types. Values == cannot compare
// are never treated as identical, so setting one again allocates a new
// options value instead of short-circuiting.
func identicalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}

// ParseOptions is a set of options related to parsing.
//
// The value is immutable, so the "setters" return a new value and never
// modify the receiver. Setters short-circuit: setting a field to its current
// value returns the receiver itself, so no-op updates allocate nothing.
//
//	opts := hocon.DefaultParseOptions().
//	    WithSyntax(hocon.SyntaxJSON).
//	    WithAllowMissing(false)
type ParseOptions struct {
	syntax            Syntax
	originDescription string
	allowMissing      bool
	includer          Includer
	resolver          ResourceResolver
}

// DefaultParseOptions returns options with every field set to its default:
// syntax and origin description unspecified, missing root sources allowed,
// default includer, ambient resolver. Start with this value and derive any
// changes you need.
func DefaultParseOptions() *ParseOptions {
	return &ParseOptions{allowMissing: true}
}

// WithSyntax sets the syntax to assume. SyntaxUnspecified means guess from
// any available filename extension and fall back to HOCON.
func (o *ParseOptions) WithSyntax(syntax Syntax) *ParseOptions {
	if o.syntax == syntax {
		return o
	}
	modified := *o
	modified.syntax = syntax
	return &modified
}

// Syntax returns the syntax to assume, which may be SyntaxUnspecified.
func (o *ParseOptions) Syntax() Syntax {
	return o.syntax
}

// WithOriginDescription sets a description for the thing being parsed. In
// most cases the loader sets this for you to something like the filename, but
// when parsing a bare reader you might want to improve on it. The description
// is the basis for the Origin of the parsed values. Empty means derive one
// automatically.
func (o *ParseOptions) WithOriginDescription(description string) *ParseOptions {
	if o.originDescription == description {
		return o
	}
	modified := *o
	modified.originDescription = description
	return &modified
}

// OriginDescription returns the origin description, empty for "automatic".
func (o *ParseOptions) OriginDescription() string {
	return o.originDescription
}

// withFallbackOriginDescription sets the origin description only if none is
// set yet, so loader wrappers can supply a sensible default without clobbering
// one the caller chose explicitly. Not public API.
func (o *ParseOptions) withFallbackOriginDescription(description string) *ParseOptions {
	if o.originDescription == "" {
		return o.WithOriginDescription(description)
	}
	return o
}

// WithAllowMissing controls what happens when the root source being parsed is
// missing: true yields an empty document, false makes the load fail. Applies
// only to the root source, never to nested includes.
func (o *ParseOptions) WithAllowMissing(allowMissing bool) *ParseOptions {
	if o.allowMissing == allowMissing {
		return o
	}
	modified := *o
	modified.allowMissing = allowMissing
	return &modified
}

// AllowMissing reports whether a missing root source is tolerated.
func (o *ParseOptions) AllowMissing() bool {
	return o.allowMissing
}

// WithIncluder sets an Includer which customizes how includes are handled.
// nil means use the default includer.
func (o *ParseOptions) WithIncluder(includer Includer) *ParseOptions {
	if identicalValue(o.includer, includer) {
		return o
	}
	modified := *o
	modified.includer = includer
	return &modified
}

// PrependIncluder makes includer the primary includer, with the existing one
// (if any) as its fallback via includer.WithFallback.
func (o *ParseOptions) PrependIncluder(includer Includer) (*ParseOptions, error) {
	if includer == nil {
		return nil, fmt.Errorf("%w passed to PrependIncluder", ErrNilIncluder)
	}
	if identicalValue(o.includer, includer) {
		return o, nil
	}
	if o.includer != nil {
		return o.WithIncluder(includer.WithFallback(o.includer)), nil
	}
	return o.WithIncluder(includer), nil
}

// AppendIncluder keeps the existing includer (if any) primary and adds
// includer as its fallback via the existing includer's WithFallback.
func (o *ParseOptions) AppendIncluder(includer Includer) (*ParseOptions, error) {
	if includer == nil {
		return nil, fmt.Errorf("%w passed to AppendIncluder", ErrNilIncluder)
	}
	if identicalValue(o.includer, includer) {
		return o, nil
	}
	if o.includer != nil {
		return o.WithIncluder(o.includer.WithFallback(includer)), nil
	}
	return o.WithIncluder(includer), nil
}

// Includer returns the current includer, nil for the default includer.
func (o *ParseOptions) Includer() Includer {
	return o.includer
}

// WithResolver sets the resource resolver used to locate included files and
// resources. nil means use the ambient resolver at read time.
func (o *ParseOptions) WithResolver(resolver ResourceResolver) *ParseOptions {
	if identicalValue(o.resolver, resolver) {
		return o
	}
	modified := *o
	modified.resolver = resolver
	return &modified
}

// Resolver returns the resource resolver to use; never nil. When no resolver
// was set it resolves to the current ambient resolver on every call rather
// than caching it, so options values stay oblivious to ambient swaps.
func (o *ParseOptions) Resolver() ResourceResolver {
	if o.resolver == nil {
		return AmbientResolver()
	}
	return o.resolver
}
