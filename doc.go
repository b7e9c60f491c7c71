// Package topos verifies small, explicitly enumerated finite mathematical
// structures — topological spaces and sheaf-like data assignments — by
// exhaustive pairwise checking.
//
// 🚀 What is topos?
//
//	A library for exact verification over finite structures:
//		• Topology: validate that a family of subsets satisfies the
//		  topology axioms, test continuity of mappings between spaces,
//		  and compose continuity tests into a homeomorphism test
//		• Sheaf: attach local data to the simplices of a simplicial
//		  complex, restrict it along face relations, check consistency
//		  of every face/super-simplex pair, and resolve the glued
//		  global section when all pairs agree
//
// ✨ Why choose topos?
//
//   - Exact by construction – every comparison is discrete equality over
//     hashable values, never a tolerance
//   - Exhaustive – all k² open-set pairs, all m² simplex pairs; nothing
//     is sampled, generated or repaired
//   - Generic – carriers, vertices and local data are any comparable type
//   - Fast set algebra – open sets and vertex sets live in roaring
//     bitmaps, family membership is a single map probe
//
// Everything is organized under two independent subpackages:
//
//	topology/ — Space, Func (continuity), Homeomorphism
//	sheaf/    — Complex, Sheaf, Restrict, Check, GlobalSection
//
// Quick ASCII example:
//
//	    1───2        data 10───20     a consistent sheaf assigns
//	     ╲  │             ╲    │      each vertex the same value on
//	      ╲ │              ╲   │      every simplex containing it
//	        3                 30
//
// Both subsystems are synchronous, allocation-light and free of shared
// state; every check is a finite, terminating scan.
//
//	go get github.com/velkaren/topos
package topos
