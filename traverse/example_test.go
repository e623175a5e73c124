package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/traverse"
)

// ExampleFlood selects the lake connected to a clicked cell, the way a paint
// bucket tool would. The second lake is left out because land separates it.
func ExampleFlood() {
	g, _ := grid.FromRows([][]rune{
		[]rune("~~#~"),
		[]rune("~##~"),
		[]rune("#~~~"),
	})
	water := func(_ grid.Pos, v rune) bool { return v == '~' }

	lake, _ := traverse.Flood(g, grid.P(0, 0), water)
	cells := make([]grid.Pos, 0, len(lake))
	for _, m := range lake {
		cells = append(cells, m.Pos)
	}
	fmt.Println(cells)

	none, _ := traverse.Flood(g, grid.P(2, 0), water)
	fmt.Println(len(none))
	// Output:
	// [(0,0) (1,0) (0,1)]
	// 0
}

// ExampleFind locates the nearest cell holding a value.
func ExampleFind() {
	g, _ := grid.FromRows([][]int{
		{0, 0, 0, 7},
		{0, 0, 0, 0},
		{7, 0, 0, 0},
	})
	m, ok, _ := traverse.Find(g, grid.P(1, 1), func(_ grid.Pos, v int) bool { return v == 7 })
	fmt.Println(m.Pos, ok)
	// Output:
	// (0,2) true
}
