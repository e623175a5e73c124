package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridkit/astar"
	"github.com/katalvlaran/gridkit/grid"
)

// ExampleSearch routes a unit through the only gap in a wall.
func ExampleSearch() {
	g, _ := grid.FromRows([][]rune{
		[]rune("...."),
		[]rune("##.#"),
		[]rune("...."),
	})
	speed := func(_, _ grid.Pos, v rune) float64 {
		if v == '#' {
			return 0
		}
		return 1
	}

	res, err := astar.Search(g, grid.P(0, 0), grid.P(0, 2), speed)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Cost)
	fmt.Println(res.Path)
	// Output:
	// found 6
	// [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
}

// ExampleSearch_budget shows the difference between a tight budget and a missing path.
func ExampleSearch_budget() {
	g, _ := grid.New[int](grid.S(20, 1))
	flat := func(grid.Pos, grid.Pos, int) float64 { return 1 }

	res, _ := astar.Search(g, grid.P(0, 0), grid.P(19, 0), flat, astar.WithMaxExpansions(5))
	fmt.Println(res.Status, res.Expanded)
	// Output:
	// budget exceeded 6
}
