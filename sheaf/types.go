// Package sheaf defines core types and sentinel errors for sheaf
// verification over finite simplicial complexes.
package sheaf

import "errors"

// Sentinel errors for complex construction and sheaf operations.
var (
	// ErrNilComplex is returned if a nil complex pointer is passed.
	ErrNilComplex = errors.New("sheaf: complex is nil")

	// ErrEmptySimplex indicates a simplex with no vertices.
	ErrEmptySimplex = errors.New("sheaf: simplex must have at least one vertex")

	// ErrDuplicateVertex indicates a vertex label repeats within one simplex.
	ErrDuplicateVertex = errors.New("sheaf: vertex repeats within a simplex")

	// ErrDuplicateSimplex indicates the same vertex tuple is listed twice.
	ErrDuplicateSimplex = errors.New("sheaf: simplex already present in the complex")

	// ErrUnknownSimplex indicates an operation on a simplex outside the complex.
	ErrUnknownSimplex = errors.New("sheaf: simplex is not part of the complex")

	// ErrArityMismatch indicates a data sequence whose length differs from
	// the simplex vertex count.
	ErrArityMismatch = errors.New("sheaf: data length does not match simplex arity")

	// ErrInconsistent indicates local data that disagrees across a
	// face/super-simplex pair, so no global section exists.
	ErrInconsistent = errors.New("sheaf: local data is inconsistent")
)

// Simplex is an ordered tuple of vertex labels. The order is load-bearing:
// position i of a data sequence attached to the simplex is the value at
// vertex i. Vertex labels are globally consistent identifiers across the
// whole complex, never positional.
type Simplex[V comparable] []V

// Dim returns the geometric dimension: vertex count minus one.
func (s Simplex[V]) Dim() int {
	return len(s) - 1
}

// FaceOf reports whether s is a face of sup: set containment of vertex
// labels, ignoring order. Every simplex is a face of itself.
// Complexity: O(len(s) + len(sup)).
func (s Simplex[V]) FaceOf(sup Simplex[V]) bool {
	in := make(map[V]struct{}, len(sup))
	for _, v := range sup {
		in[v] = struct{}{}
	}
	for _, v := range s {
		if _, ok := in[v]; !ok {
			return false
		}
	}

	return true
}

// clone returns an independent copy of the tuple.
func (s Simplex[V]) clone() Simplex[V] {
	return append(Simplex[V](nil), s...)
}
