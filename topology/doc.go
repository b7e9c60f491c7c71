// Package topology validates finite topological spaces and tests continuity
// of mappings between them, by exhaustive checking over explicitly
// enumerated set families.
//
// 🚀 What does it verify?
//
//	A family of subsets of a finite carrier set is a topology iff:
//	  • the empty set is a member
//	  • the full carrier set is a member
//	  • every pairwise union stays in the family
//	  • every pairwise intersection stays in the family
//	The check is over the given family only — nothing is ever generated
//	or repaired, a near-topology missing one derived set is rejected.
//
// ✨ Key features:
//   - Space[T] — immutable validated space over any comparable element type
//   - Func[T,U] — continuity via exhaustive preimage checking
//   - Homeomorphism[T,U] — continuity in both directions, with an opt-in
//     mutual-inverse verification (WithInverseCheck)
//   - bitmap-backed set algebra: open sets are roaring bitmaps, family
//     membership is a single map probe
//
// ⚙️ Usage:
//
//	import "github.com/velkaren/topos/topology"
//
//	x, err := topology.New(
//	  []int{1, 2, 3},
//	  [][]int{{}, {1}, {1, 2}, {1, 2, 3}},
//	)
//	if err != nil {
//	  // ErrMissingEmptySet, ErrMissingUniverse,
//	  // ErrNotClosedUnderUnion, ErrNotClosedUnderIntersection, ErrNotSubset
//	}
//
//	ok, _ := topology.IsContinuous(func(n int) int { return n }, x, x)
//	// ok == true: the identity is always continuous
//
// Performance:
//
//   - Validation: O(k²·n) for k open sets over an n-element carrier
//   - Continuity: O(k·n) membership probes, one map application per element
//
// See example_test.go for complete walkthroughs.
package topology
