package sheaf

// LocalDatum pairs a simplex with its data sequence, in the simplex's own
// vertex order.
type LocalDatum[V comparable, D comparable] struct {
	Simplex Simplex[V]
	Values  []D
}

// Section is a glued global assignment: one LocalDatum per assigned simplex,
// in complex registration order.
type Section[V comparable, D comparable] []LocalDatum[V, D]

// GlobalSection resolves the sheaf's global section. When every
// face/super-simplex pair agrees, it returns the stored assignment unchanged
// (simplices with no data are simply absent); resolving a consistent sheaf
// twice yields identical results. When some pair disagrees, it returns the
// Check error, which wraps ErrInconsistent — callers branch with errors.Is,
// never by matching message text, and an empty section on a data-less sheaf
// is still a success.
func (sh *Sheaf[V, D]) GlobalSection() (Section[V, D], error) {
	if err := sh.Check(); err != nil {
		return nil, err
	}

	out := make(Section[V, D], 0, len(sh.data))
	for pos, s := range sh.cx.simplices {
		m, ok := sh.data[pos]
		if !ok {
			continue
		}
		out = append(out, LocalDatum[V, D]{
			Simplex: s.clone(),
			Values:  sh.sequence(pos, m),
		})
	}

	return out, nil
}
