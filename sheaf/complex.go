// Package sheaf verifies consistency of local data attached to the
// simplices of a finite simplicial complex and resolves global sections.
package sheaf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Complex is an ordered collection of simplices. Vertex labels are interned
// to dense indices and every simplex carries a bitmap of its vertex set, so
// the O(m²) face scans run on bitmap containment instead of tuple walks.
// Immutable once constructed; sheaves share it read-only.
type Complex[V comparable] struct {
	simplices []Simplex[V]
	sets      []*roaring.Bitmap // vertex set per simplex
	index     map[string]int    // tuple key → position in simplices
	vertIdx   map[V]uint32
}

// NewComplex builds a complex from an ordered list of simplices.
// Returns ErrEmptySimplex for a zero-vertex tuple, ErrDuplicateVertex when a
// label repeats within one tuple (which would break the positional data
// convention), and ErrDuplicateSimplex when the exact tuple appears twice.
// Two distinct orderings of the same vertex set are distinct simplices.
// Complexity: O(total vertex count).
func NewComplex[V comparable](simplices ...Simplex[V]) (*Complex[V], error) {
	cx := &Complex[V]{
		simplices: make([]Simplex[V], 0, len(simplices)),
		sets:      make([]*roaring.Bitmap, 0, len(simplices)),
		index:     make(map[string]int, len(simplices)),
		vertIdx:   make(map[V]uint32),
	}
	for _, s := range simplices {
		if len(s) == 0 {
			return nil, ErrEmptySimplex
		}
		bm := roaring.New()
		for _, v := range s {
			id, ok := cx.vertIdx[v]
			if !ok {
				id = uint32(len(cx.vertIdx))
				cx.vertIdx[v] = id
			}
			if bm.Contains(id) {
				return nil, fmt.Errorf("%w: %v in %v", ErrDuplicateVertex, v, s)
			}
			bm.Add(id)
		}
		key := cx.tupleKey(s)
		if _, dup := cx.index[key]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSimplex, s)
		}
		cx.index[key] = len(cx.simplices)
		cx.simplices = append(cx.simplices, s.clone())
		cx.sets = append(cx.sets, bm)
	}

	return cx, nil
}

// tupleKey renders a registered tuple as a canonical position-sensitive key.
// All vertices must already be interned.
func (cx *Complex[V]) tupleKey(s Simplex[V]) string {
	var sb strings.Builder
	for i, v := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(cx.vertIdx[v]), 10))
	}

	return sb.String()
}

// position returns the index of s in the complex, if registered.
// An unregistered tuple (including one using unknown vertices) yields false.
func (cx *Complex[V]) position(s Simplex[V]) (int, bool) {
	for _, v := range s {
		if _, ok := cx.vertIdx[v]; !ok {
			return 0, false
		}
	}
	pos, ok := cx.index[cx.tupleKey(s)]

	return pos, ok
}

// faceOf reports whether simplex b (by position) is a face of simplex a,
// via bitmap containment. Complexity: O(min(|a|, |b|)) word operations.
func (cx *Complex[V]) faceOf(b, a int) bool {
	return roaring.And(cx.sets[b], cx.sets[a]).Equals(cx.sets[b])
}

// Len reports the number of simplices.
func (cx *Complex[V]) Len() int {
	return len(cx.simplices)
}

// Simplices returns a copy of the simplex list in registration order.
func (cx *Complex[V]) Simplices() []Simplex[V] {
	out := make([]Simplex[V], len(cx.simplices))
	for i, s := range cx.simplices {
		out[i] = s.clone()
	}

	return out
}

// Contains reports whether the exact tuple s is registered.
func (cx *Complex[V]) Contains(s Simplex[V]) bool {
	_, ok := cx.position(s)
	return ok
}
