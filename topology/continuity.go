package topology

import "github.com/RoaringBitmap/roaring"

// Func is a mapping between two finite topological spaces. The spaces are
// shared references, not owned: many Funcs may point at the same Space.
// The mapping must be defined on every element of the domain universe;
// applying it elsewhere is the caller's concern, never checked here.
type Func[T, U comparable] struct {
	fn  func(T) U
	dom *Space[T]
	cod *Space[U]
}

// NewFunc wraps fn as a mapping from dom to cod.
// Returns ErrNilMapping or ErrNilSpace for nil arguments. Totality of fn over
// the domain universe is not verified.
func NewFunc[T, U comparable](fn func(T) U, dom *Space[T], cod *Space[U]) (*Func[T, U], error) {
	if fn == nil {
		return nil, ErrNilMapping
	}
	if dom == nil || cod == nil {
		return nil, ErrNilSpace
	}

	return &Func[T, U]{fn: fn, dom: dom, cod: cod}, nil
}

// Apply evaluates the underlying mapping at x.
func (f *Func[T, U]) Apply(x T) U { return f.fn(x) }

// Domain returns the domain space.
func (f *Func[T, U]) Domain() *Space[T] { return f.dom }

// Codomain returns the codomain space.
func (f *Func[T, U]) Codomain() *Space[U] { return f.cod }

// Continuous reports whether f is continuous: the preimage of every open set
// of the codomain must itself be open in the domain. Membership is an exact
// family test, not a structural one. An empty domain universe is vacuously
// continuous, since the empty preimage is open by the topology axioms.
// Complexity: O(|cod.opens| · |dom.universe|) membership probes, plus one
// application of fn per domain element.
func (f *Func[T, U]) Continuous() bool {
	// Evaluate fn once per domain element; images outside the codomain
	// universe land in no open set.
	type image struct {
		j  uint32
		ok bool
	}
	images := make([]image, len(f.dom.idx.elems))
	for i, x := range f.dom.idx.elems {
		j, ok := f.cod.idx.lookup(f.fn(x))
		images[i] = image{j: j, ok: ok}
	}

	for _, v := range f.cod.opens {
		pre := roaring.New()
		for i := range images {
			if images[i].ok && v.Contains(images[i].j) {
				pre.Add(uint32(i))
			}
		}
		if _, open := f.dom.keys[familyKey(pre)]; !open {
			return false
		}
	}

	return true
}

// IsContinuous is a one-shot convenience wrapper around NewFunc + Continuous.
func IsContinuous[T, U comparable](fn func(T) U, dom *Space[T], cod *Space[U]) (bool, error) {
	f, err := NewFunc(fn, dom, cod)
	if err != nil {
		return false, err
	}

	return f.Continuous(), nil
}
