package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// ExampleFromRows builds a grid from row-grouped input and walks it in
// row-major order.
func ExampleFromRows() {
	g, err := grid.FromRows([][]rune{
		[]rune("ab"),
		[]rune("cd"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for p, v := range g.All() {
		i, _ := g.Index(p)
		fmt.Printf("%d %v %c\n", i, p, v)
	}
	// Output:
	// 0 (0,0) a
	// 1 (1,0) b
	// 2 (0,1) c
	// 3 (1,1) d
}

// ExampleGrid_At shows bounds-checked access.
func ExampleGrid_At() {
	g, _ := grid.NewFilled(grid.S(2, 2), 7)
	v, err := g.At(grid.P(1, 1))
	fmt.Println(v, err)
	_, err = g.At(grid.P(2, 0))
	fmt.Println(err)
	// Output:
	// 7 <nil>
	// Grid.At(2,0): grid: position out of bounds
}
