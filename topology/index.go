package topology

import (
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// interner assigns dense uint32 indices to carrier elements so that subsets
// of the universe can be handled as roaring bitmaps. Index order is insertion
// order; element i of elems always holds index uint32(i).
type interner[T comparable] struct {
	elems []T
	index map[T]uint32
}

// newInterner returns an empty interner sized for n elements.
func newInterner[T comparable](n int) *interner[T] {
	return &interner[T]{
		elems: make([]T, 0, n),
		index: make(map[T]uint32, n),
	}
}

// intern returns the index of x, assigning the next free index on first sight.
// Complexity: O(1) amortized.
func (in *interner[T]) intern(x T) uint32 {
	if i, ok := in.index[x]; ok {
		return i
	}
	i := uint32(len(in.elems))
	in.index[x] = i
	in.elems = append(in.elems, x)

	return i
}

// lookup returns the index of x and whether x has been interned.
// Complexity: O(1).
func (in *interner[T]) lookup(x T) (uint32, bool) {
	i, ok := in.index[x]
	return i, ok
}

// len reports how many distinct elements have been interned.
func (in *interner[T]) len() int {
	return len(in.elems)
}

// familyKey renders a bitmap as a canonical string key, so that set-of-sets
// membership becomes a single map probe. Two bitmaps share a key iff they
// hold the same indices.
// Complexity: O(|bm|).
func familyKey(bm *roaring.Bitmap) string {
	var sb strings.Builder
	first := true
	it := bm.Iterator()
	for it.HasNext() {
		if !first {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(it.Next()), 10))
		first = false
	}

	return sb.String()
}
