package sheaf

import "fmt"

// Sheaf attaches local data to the simplices of a complex: one value of
// type D per vertex of each assigned simplex. The complex is shared
// read-only; the data mapping is owned by the sheaf. Values are compared
// with exact equality only — no tolerance is ever applied, D being a float
// type does not change accept/reject outcomes.
//
// Data is stored as an explicit vertex→value map per simplex rather than a
// positional sequence, which removes any dependence on vertex ordering;
// positional sequences are re-derived from the simplex tuple on read.
type Sheaf[V comparable, D comparable] struct {
	cx   *Complex[V]
	data map[int]map[V]D // simplex position → vertex → value
}

// NewSheaf returns an empty sheaf over cx.
// Returns ErrNilComplex for a nil complex.
func NewSheaf[V comparable, D comparable](cx *Complex[V]) (*Sheaf[V, D], error) {
	if cx == nil {
		return nil, ErrNilComplex
	}

	return &Sheaf[V, D]{cx: cx, data: make(map[int]map[V]D, cx.Len())}, nil
}

// Complex returns the backing complex.
func (sh *Sheaf[V, D]) Complex() *Complex[V] {
	return sh.cx
}

// Assign attaches a data sequence to simplex s, one value per vertex
// position (values[i] belongs to s[i]). Re-assigning replaces the previous
// data; there is no removal operation.
// Returns ErrUnknownSimplex if s is not registered in the complex and
// ErrArityMismatch if the sequence length differs from the vertex count.
// Complexity: O(len(s)).
func (sh *Sheaf[V, D]) Assign(s Simplex[V], values []D) error {
	pos, ok := sh.cx.position(s)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSimplex, s)
	}
	if len(values) != len(s) {
		return fmt.Errorf("%w: %d values for %v", ErrArityMismatch, len(values), s)
	}
	m := make(map[V]D, len(s))
	for i, v := range s {
		m[v] = values[i]
	}
	sh.data[pos] = m

	return nil
}

// Data returns the data sequence assigned to s in s's own vertex order,
// or false when s is unregistered or carries no data.
func (sh *Sheaf[V, D]) Data(s Simplex[V]) ([]D, bool) {
	pos, ok := sh.cx.position(s)
	if !ok {
		return nil, false
	}
	m, ok := sh.data[pos]
	if !ok {
		return nil, false
	}

	return sh.sequence(pos, m), true
}

// sequence re-derives the positional data sequence of the simplex at pos.
func (sh *Sheaf[V, D]) sequence(pos int, m map[V]D) []D {
	s := sh.cx.simplices[pos]
	out := make([]D, len(s))
	for i, v := range s {
		out[i] = m[v]
	}

	return out
}
