// Package topology verifies that explicitly enumerated finite set families
// satisfy the topology axioms, and checks continuity of mappings between
// validated spaces.
package topology

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Space is an immutable finite topological space over carrier elements of
// type T. Elements are interned to dense indices; every open set is stored
// as a roaring bitmap, and the family supports O(1) membership through a
// canonical-key map. A Space is only ever obtained from New, so holding one
// is proof that the axioms held for the given family.
type Space[T comparable] struct {
	idx      *interner[T]
	universe *roaring.Bitmap
	opens    []*roaring.Bitmap
	keys     map[string]int // canonical key → position in opens
}

// New validates universe and opens as a finite topological space and returns
// the immutable result. Slices are treated as sets: duplicate elements and
// repeated family members collapse silently.
//
// Validation is over the given family only — no closure is computed, and a
// family missing a derived union or intersection is rejected, not repaired.
// Returns ErrNotSubset if an open set escapes the universe,
// ErrMissingEmptySet / ErrMissingUniverse when either required member is
// absent, and ErrNotClosedUnderUnion / ErrNotClosedUnderIntersection when a
// pairwise combination is missing from the family.
// Complexity: O(k²·n) for k family members over an n-element universe.
func New[T comparable](universe []T, opens [][]T) (*Space[T], error) {
	idx := newInterner[T](len(universe))
	uni := roaring.New()
	for _, x := range universe {
		uni.Add(idx.intern(x))
	}

	s := &Space[T]{
		idx:      idx,
		universe: uni,
		opens:    make([]*roaring.Bitmap, 0, len(opens)),
		keys:     make(map[string]int, len(opens)),
	}
	for _, open := range opens {
		bm := roaring.New()
		for _, x := range open {
			i, ok := idx.lookup(x)
			if !ok {
				return nil, fmt.Errorf("%w: element %v of %v", ErrNotSubset, x, open)
			}
			bm.Add(i)
		}
		key := familyKey(bm)
		if _, seen := s.keys[key]; seen {
			continue
		}
		s.keys[key] = len(s.opens)
		s.opens = append(s.opens, bm)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// validate enforces the topology axioms on the interned family.
func (s *Space[T]) validate() error {
	if _, ok := s.keys[familyKey(roaring.New())]; !ok {
		return ErrMissingEmptySet
	}
	if _, ok := s.keys[familyKey(s.universe)]; !ok {
		return ErrMissingUniverse
	}
	// All ordered pairs, U = V included (trivially closed for that case).
	for _, u := range s.opens {
		for _, v := range s.opens {
			if _, ok := s.keys[familyKey(roaring.Or(u, v))]; !ok {
				return fmt.Errorf("%w: %v ∪ %v", ErrNotClosedUnderUnion, s.decode(u), s.decode(v))
			}
			if _, ok := s.keys[familyKey(roaring.And(u, v))]; !ok {
				return fmt.Errorf("%w: %v ∩ %v", ErrNotClosedUnderIntersection, s.decode(u), s.decode(v))
			}
		}
	}

	return nil
}

// decode maps a bitmap back to carrier elements in interning order.
func (s *Space[T]) decode(bm *roaring.Bitmap) []T {
	out := make([]T, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, s.idx.elems[it.Next()])
	}

	return out
}

// Universe returns a copy of the carrier set in first-seen order.
func (s *Space[T]) Universe() []T {
	return append([]T(nil), s.idx.elems...)
}

// Opens returns a copy of the open-set family, each member decoded to
// carrier elements.
func (s *Space[T]) Opens() [][]T {
	out := make([][]T, len(s.opens))
	for i, bm := range s.opens {
		out[i] = s.decode(bm)
	}

	return out
}

// Card reports the number of carrier elements.
func (s *Space[T]) Card() int {
	return s.idx.len()
}

// Size reports the number of distinct open sets in the family.
func (s *Space[T]) Size() int {
	return len(s.opens)
}

// Contains reports whether x belongs to the universe.
// Complexity: O(1).
func (s *Space[T]) Contains(x T) bool {
	_, ok := s.idx.lookup(x)
	return ok
}

// IsOpen reports whether the given element set is a member of the family.
// A set containing elements outside the universe is never open.
// Complexity: O(len(set)).
func (s *Space[T]) IsOpen(set []T) bool {
	bm := roaring.New()
	for _, x := range set {
		i, ok := s.idx.lookup(x)
		if !ok {
			return false
		}
		bm.Add(i)
	}
	_, ok := s.keys[familyKey(bm)]

	return ok
}
