package sheaf

import "fmt"

// Restrict projects a data sequence attached to sup onto the face sub.
// values[i] is taken to belong to vertex sup[i]. When sub is a face of sup,
// the result maps each shared vertex to its value; when it is not, there is
// no restriction and the second return is false. The projection keys come
// from walking sup's positions, so for a genuine face they are exactly sub's
// vertex set.
// Returns ErrArityMismatch when len(values) != len(sup).
// Complexity: O(len(sup) + len(sub)).
func Restrict[V comparable, D comparable](values []D, sup, sub Simplex[V]) (map[V]D, bool, error) {
	if len(values) != len(sup) {
		return nil, false, fmt.Errorf("%w: %d values for %v", ErrArityMismatch, len(values), sup)
	}
	if !sub.FaceOf(sup) {
		return nil, false, nil
	}

	keep := make(map[V]struct{}, len(sub))
	for _, v := range sub {
		keep[v] = struct{}{}
	}
	out := make(map[V]D, len(sub))
	for i, v := range sup {
		if _, ok := keep[v]; ok {
			out[v] = values[i]
		}
	}

	return out, true, nil
}

// Restrict projects the data stored on sup onto the face sub. The second
// return is false when sup carries no data, when either tuple is not
// registered in the complex, or when sub is not a face of sup.
func (sh *Sheaf[V, D]) Restrict(sup, sub Simplex[V]) (map[V]D, bool) {
	supPos, ok := sh.cx.position(sup)
	if !ok {
		return nil, false
	}
	subPos, ok := sh.cx.position(sub)
	if !ok {
		return nil, false
	}
	m, ok := sh.data[supPos]
	if !ok {
		return nil, false
	}
	if !sh.cx.faceOf(subPos, supPos) {
		return nil, false
	}

	out := make(map[V]D, len(sh.cx.simplices[subPos]))
	for _, v := range sh.cx.simplices[subPos] {
		out[v] = m[v]
	}

	return out, true
}
