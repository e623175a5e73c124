package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridkit/astar"
	"github.com/katalvlaran/gridkit/grid"
)

// maze128 is a 128×128 grid with vertical walls every 8 columns, each with a
// single gap alternating between top and bottom.
func maze128(b *testing.B) *grid.Grid[bool] {
	b.Helper()
	g, err := grid.New[bool](grid.S(128, 128))
	if err != nil {
		b.Fatal(err)
	}
	for x := 8; x < 128; x += 8 {
		gap := 0
		if (x/8)%2 == 0 {
			gap = 127
		}
		for y := 0; y < 128; y++ {
			if y != gap {
				_ = g.Set(grid.P(x, y), true)
			}
		}
	}

	return g
}

func wallCost(_, _ grid.Pos, wall bool) float64 {
	if wall {
		return 0
	}

	return 1
}

func BenchmarkSearch_Maze(b *testing.B) {
	g := maze128(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(g, grid.P(0, 0), grid.P(127, 127), wallCost); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_MazeDiagonalTurns(b *testing.B) {
	g := maze128(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := astar.Search(g, grid.P(0, 0), grid.P(127, 127), wallCost,
			astar.WithDiagonal(1), astar.WithTurnPenalty(0.25))
		if err != nil {
			b.Fatal(err)
		}
	}
}
