// Package topology defines sentinel errors and option types
// for finite topological-space verification.
package topology

import "errors"

// Sentinel errors for space construction and mapping checks.
var (
	// ErrNotSubset indicates an open set contains an element outside the universe.
	ErrNotSubset = errors.New("topology: open set is not a subset of the universe")

	// ErrMissingEmptySet indicates the empty set is absent from the family.
	ErrMissingEmptySet = errors.New("topology: family does not contain the empty set")

	// ErrMissingUniverse indicates the full universe is absent from the family.
	ErrMissingUniverse = errors.New("topology: family does not contain the universe")

	// ErrNotClosedUnderUnion indicates some pairwise union escapes the family.
	ErrNotClosedUnderUnion = errors.New("topology: family is not closed under union")

	// ErrNotClosedUnderIntersection indicates some pairwise intersection escapes the family.
	ErrNotClosedUnderIntersection = errors.New("topology: family is not closed under intersection")

	// ErrNilSpace is returned if a nil space pointer is passed.
	ErrNilSpace = errors.New("topology: space is nil")

	// ErrNilMapping is returned if a nil mapping function is passed.
	ErrNilMapping = errors.New("topology: mapping is nil")
)

// HomeoOption configures homeomorphism checking via functional arguments.
type HomeoOption func(*homeoOptions)

// homeoOptions holds tunables collected from HomeoOption arguments.
type homeoOptions struct {
	// verifyInverse additionally requires forward and inverse to be
	// mutual inverses on their universes.
	verifyInverse bool
}

// WithInverseCheck makes IsHomeomorphism verify that inverse∘forward is the
// identity on space1's universe and forward∘inverse the identity on space2's.
// Off by default: the plain check only tests continuity in both directions
// and trusts the caller that the two maps invert each other.
func WithInverseCheck() HomeoOption {
	return func(o *homeoOptions) {
		o.verifyInverse = true
	}
}
