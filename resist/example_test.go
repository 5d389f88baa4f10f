package resist_test

import (
	"fmt"

	"github.com/katalvlaran/recap/resist"
)

// ExampleGrid demonstrates the dense index map: every tuple at or below
// the maximum maps one-to-one onto [0, Size), chaos varying fastest.
func ExampleGrid() {
	g := resist.NewGrid(resist.New(2, 1, 1, 1))

	fmt.Println("size:", g.Size())
	v := resist.New(1, 0, 1, 1)
	i := g.Index(v)
	fmt.Println("index:", i)
	fmt.Println("round-trip:", g.At(i))
	// Output:
	// size: 24
	// index: 11
	// round-trip: (1,0,1,1)
}

// ExampleResistance_Sub shows the saturating subtraction the assignment
// recurrence is built on: components clamp at zero instead of going
// negative.
func ExampleResistance_Sub() {
	need := resist.New(5, 0, 12, 0)
	grant := resist.New(10, 3, 5, 0)

	fmt.Println(need.Sub(grant))
	// Output:
	// (0,0,7,0)
}
