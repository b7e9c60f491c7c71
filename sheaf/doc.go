// Package sheaf checks that local data attached to the simplices of a
// finite simplicial complex agrees under restriction, and resolves the
// glued global section when it does.
//
// 🚀 What does it verify?
//
//	A sheaf-like assignment gives each simplex one value per vertex.
//	Restricting a simplex's data to a face projects values onto the
//	shared vertices. The assignment is consistent iff for every pair
//	(sup, sub) with set(sub) ⊆ set(sup), the restriction of sup's data
//	equals sub's own data — same vertices, same values, exact equality.
//
// ✨ Key features:
//   - Complex[V] — ordered simplices over any comparable vertex type,
//     vertex sets as roaring bitmaps for fast face tests
//   - Sheaf[V,D] — positional assignment API backed by per-vertex maps,
//     so correctness never depends on tuple ordering
//   - Restrict — projection onto a face, "no restriction" for non-faces
//   - Check / Violations — first-failure or full pairwise scan
//   - GlobalSection — tagged-error resolution (errors.Is(err, ErrInconsistent))
//
// ⚙️ Usage:
//
//	import "github.com/velkaren/topos/sheaf"
//
//	cx, _ := sheaf.NewComplex(
//	  sheaf.Simplex[int]{1, 2},
//	  sheaf.Simplex[int]{2, 3},
//	  sheaf.Simplex[int]{1, 2, 3},
//	)
//	sh, _ := sheaf.NewSheaf[int, int](cx)
//	_ = sh.Assign(sheaf.Simplex[int]{1, 2}, []int{10, 20})
//	_ = sh.Assign(sheaf.Simplex[int]{2, 3}, []int{20, 30})
//	_ = sh.Assign(sheaf.Simplex[int]{1, 2, 3}, []int{10, 20, 30})
//
//	section, err := sh.GlobalSection()
//	// err == nil, section holds the assignment unchanged
//
// Performance:
//
//   - Consistency: O(m²) simplex pairs, O(arity) comparisons each
//   - Restriction: O(arity) per pair
//
// See example_test.go for complete walkthroughs.
package sheaf
