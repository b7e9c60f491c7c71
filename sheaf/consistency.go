package sheaf

import "fmt"

// Violation records one disagreement between a simplex and one of its faces:
// the value sup's data restricts to at Vertex differs from the value sub's
// own data assigns there.
type Violation[V comparable, D comparable] struct {
	Sup, Sub   Simplex[V]
	Vertex     V
	Restricted D // value reaching Vertex via restriction from Sup
	Actual     D // value Sub's own data assigns to Vertex
}

// Check scans every ordered pair (sup, sub) of distinct simplices where sub
// is a face of sup and both carry data, and compares the restriction of
// sup's data against sub's own assignment vertex by vertex. It stops at the
// first disagreement and returns it wrapped in ErrInconsistent; nil means
// the sheaf is consistent. Pairs where either side carries no data are
// skipped, and a simplex with no face relation to any other is vacuously
// consistent. The verdict does not depend on the order simplices were
// registered in.
// Complexity: O(m²) pairs, O(arity) comparisons each.
func (sh *Sheaf[V, D]) Check() error {
	if v := sh.scan(true); len(v) > 0 {
		return fmt.Errorf("%w: %v restricted to %v gives %v=%v, stored %v=%v",
			ErrInconsistent, v[0].Sup, v[0].Sub, v[0].Vertex, v[0].Restricted, v[0].Vertex, v[0].Actual)
	}

	return nil
}

// Violations performs the full pairwise scan and returns every disagreement,
// in registration order of the (sup, sub) pairs. Empty means consistent.
func (sh *Sheaf[V, D]) Violations() []Violation[V, D] {
	return sh.scan(false)
}

// scan is the shared pairwise walk behind Check and Violations.
func (sh *Sheaf[V, D]) scan(stopAtFirst bool) []Violation[V, D] {
	var out []Violation[V, D]
	for sup := range sh.cx.simplices {
		supData, ok := sh.data[sup]
		if !ok {
			continue
		}
		for sub := range sh.cx.simplices {
			if sub == sup {
				continue
			}
			subData, ok := sh.data[sub]
			if !ok {
				continue
			}
			if !sh.cx.faceOf(sub, sup) {
				continue
			}
			for _, v := range sh.cx.simplices[sub] {
				if supData[v] != subData[v] {
					out = append(out, Violation[V, D]{
						Sup:        sh.cx.simplices[sup].clone(),
						Sub:        sh.cx.simplices[sub].clone(),
						Vertex:     v,
						Restricted: supData[v],
						Actual:     subData[v],
					})
					if stopAtFirst {
						return out
					}
					break
				}
			}
		}
	}

	return out
}
