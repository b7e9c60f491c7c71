// File: sheaf/example_test.go
package sheaf_test

import (
	"errors"
	"fmt"

	"github.com/velkaren/topos/sheaf"
)

////////////////////////////////////////////////////////////////////////////////
// Example: GlobalSection
////////////////////////////////////////////////////////////////////////////////

// ExampleSheaf_GlobalSection glues local data over a filled triangle.
// Scenario:
//
//   - Complex: edges (1,2), (2,3), (1,3) and the 2-simplex (1,2,3)
//   - Each vertex carries the same value on every simplex containing it,
//     so all restrictions agree and the section is the data unchanged.
func ExampleSheaf_GlobalSection() {
	cx, _ := sheaf.NewComplex(
		sheaf.Simplex[int]{1, 2},
		sheaf.Simplex[int]{2, 3},
		sheaf.Simplex[int]{1, 3},
		sheaf.Simplex[int]{1, 2, 3},
	)
	sh, _ := sheaf.NewSheaf[int, int](cx)
	_ = sh.Assign(sheaf.Simplex[int]{1, 2}, []int{10, 20})
	_ = sh.Assign(sheaf.Simplex[int]{2, 3}, []int{20, 30})
	_ = sh.Assign(sheaf.Simplex[int]{1, 3}, []int{10, 30})
	_ = sh.Assign(sheaf.Simplex[int]{1, 2, 3}, []int{10, 20, 30})

	section, err := sh.GlobalSection()
	fmt.Println("consistent:", err == nil)
	for _, d := range section {
		fmt.Println(d.Simplex, "→", d.Values)
	}

	// Output:
	// consistent: true
	// [1 2] → [10 20]
	// [2 3] → [20 30]
	// [1 3] → [10 30]
	// [1 2 3] → [10 20 30]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Check failure
////////////////////////////////////////////////////////////////////////////////

// ExampleSheaf_Check shows the tagged error on disagreeing data: vertex 3
// carries 30 on the triangle but -30 on edge (2,3).
func ExampleSheaf_Check() {
	cx, _ := sheaf.NewComplex(
		sheaf.Simplex[int]{1, 2},
		sheaf.Simplex[int]{2, 3},
		sheaf.Simplex[int]{1, 3},
		sheaf.Simplex[int]{1, 2, 3},
	)
	sh, _ := sheaf.NewSheaf[int, int](cx)
	_ = sh.Assign(sheaf.Simplex[int]{1, 2}, []int{10, 20})
	_ = sh.Assign(sheaf.Simplex[int]{2, 3}, []int{20, -30})
	_ = sh.Assign(sheaf.Simplex[int]{1, 3}, []int{10, 30})
	_ = sh.Assign(sheaf.Simplex[int]{1, 2, 3}, []int{10, 20, 30})

	err := sh.Check()
	fmt.Println("inconsistent:", errors.Is(err, sheaf.ErrInconsistent))

	// Output:
	// inconsistent: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Restrict
////////////////////////////////////////////////////////////////////////////////

// ExampleRestrict projects triangle data onto one edge, and shows the
// "no restriction" answer for simplices with no face relation.
func ExampleRestrict() {
	sup := sheaf.Simplex[int]{1, 2, 3}

	m, ok, _ := sheaf.Restrict([]int{10, 20, 30}, sup, sheaf.Simplex[int]{1, 3})
	fmt.Println("face:", ok, "| vertex 1:", m[1], "| vertex 3:", m[3])

	_, ok, _ = sheaf.Restrict([]int{10, 20}, sheaf.Simplex[int]{1, 2}, sheaf.Simplex[int]{4, 5})
	fmt.Println("unrelated simplices:", ok)

	// Output:
	// face: true | vertex 1: 10 | vertex 3: 30
	// unrelated simplices: false
}
