package topology

// Homeomorphism pairs a forward and an inverse mapping between two spaces.
// The two maps are intended to be mutual inverses; by default that intent is
// trusted, not verified (see WithInverseCheck), and bijectivity is never
// assumed by the continuity checks themselves.
type Homeomorphism[T, U comparable] struct {
	forward *Func[T, U]
	inverse *Func[U, T]
	opts    homeoOptions
}

// NewHomeomorphism builds a homeomorphism candidate from forward: s1→s2 and
// inverse: s2→s1. Returns ErrNilMapping or ErrNilSpace for nil arguments.
func NewHomeomorphism[T, U comparable](
	forward func(T) U,
	inverse func(U) T,
	s1 *Space[T],
	s2 *Space[U],
	opts ...HomeoOption,
) (*Homeomorphism[T, U], error) {
	fwd, err := NewFunc(forward, s1, s2)
	if err != nil {
		return nil, err
	}
	inv, err := NewFunc(inverse, s2, s1)
	if err != nil {
		return nil, err
	}

	h := &Homeomorphism[T, U]{forward: fwd, inverse: inv}
	for _, opt := range opts {
		opt(&h.opts)
	}

	return h, nil
}

// Forward returns the forward mapping s1→s2.
func (h *Homeomorphism[T, U]) Forward() *Func[T, U] { return h.forward }

// Inverse returns the inverse mapping s2→s1.
func (h *Homeomorphism[T, U]) Inverse() *Func[U, T] { return h.inverse }

// IsHomeomorphism reports whether forward and inverse are both continuous.
// With WithInverseCheck it additionally requires the two maps to invert each
// other on both universes, and reports false when they do not.
func (h *Homeomorphism[T, U]) IsHomeomorphism() bool {
	if h.opts.verifyInverse && !h.mutualInverses() {
		return false
	}

	return h.forward.Continuous() && h.inverse.Continuous()
}

// mutualInverses tests inverse∘forward = id on s1's universe and
// forward∘inverse = id on s2's universe.
func (h *Homeomorphism[T, U]) mutualInverses() bool {
	for _, x := range h.forward.dom.idx.elems {
		if h.inverse.fn(h.forward.fn(x)) != x {
			return false
		}
	}
	for _, y := range h.inverse.dom.idx.elems {
		if h.forward.fn(h.inverse.fn(y)) != y {
			return false
		}
	}

	return true
}

// IsHomeomorphism is a one-shot convenience wrapper around NewHomeomorphism.
func IsHomeomorphism[T, U comparable](
	forward func(T) U,
	inverse func(U) T,
	s1 *Space[T],
	s2 *Space[U],
	opts ...HomeoOption,
) (bool, error) {
	h, err := NewHomeomorphism(forward, inverse, s1, s2, opts...)
	if err != nil {
		return false, err
	}

	return h.IsHomeomorphism(), nil
}
