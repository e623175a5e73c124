package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
)

func sampleInts(t *testing.T) *grid.Grid[int] {
	t.Helper()
	g, err := grid.FromRows([][]int{
		{3, 1, 4},
		{1, 5, 9},
		{2, 6, 5},
	})
	require.NoError(t, err)

	return g
}

func TestMinMaxMean(t *testing.T) {
	g := sampleInts(t)

	lo, err := grid.Min(g)
	require.NoError(t, err)
	require.Equal(t, grid.Cell[int]{Pos: grid.P(1, 0), Value: 1}, lo) // first of the two 1s

	hi, err := grid.Max(g)
	require.NoError(t, err)
	require.Equal(t, grid.Cell[int]{Pos: grid.P(2, 1), Value: 9}, hi)

	mean, err := grid.Mean(g)
	require.NoError(t, err)
	require.Equal(t, 4.0, mean)

	empty, _ := grid.New[int](grid.S(0, 0))
	_, err = grid.Min(empty)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Max(empty)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.Mean(empty)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestMean_SmallIntegers(t *testing.T) {
	wide, err := grid.NewFilled(grid.S(2, 1), uint8(200))
	require.NoError(t, err)
	mean, err := grid.Mean(wide)
	require.NoError(t, err)
	require.Equal(t, 200.0, mean)

	// 256 cells: a count that wraps to zero in uint8.
	ones, err := grid.NewFilled(grid.S(16, 16), uint8(1))
	require.NoError(t, err)
	mean, err = grid.Mean(ones)
	require.NoError(t, err)
	require.Equal(t, 1.0, mean)

	signed, err := grid.FromValues([]int8{-128, -128, 127}, grid.S(3, 1))
	require.NoError(t, err)
	mean, err = grid.Mean(signed)
	require.NoError(t, err)
	require.InDelta(t, -43.0, mean, 1e-9)

	halves, err := grid.FromValues([]int{1, 2}, grid.S(2, 1))
	require.NoError(t, err)
	mean, err = grid.Mean(halves)
	require.NoError(t, err)
	require.Equal(t, 1.5, mean)
}

func TestCountFilter(t *testing.T) {
	g := sampleInts(t)
	odd := func(_ grid.Pos, v int) bool { return v%2 == 1 }

	require.Equal(t, 6, g.Count(odd))
	require.Equal(t,
		[]grid.Pos{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}},
		g.FilterPositions(odd))

	cells := g.Filter(func(p grid.Pos, _ int) bool { return p.X == p.Y })
	require.Equal(t, []grid.Cell[int]{
		{Pos: grid.P(0, 0), Value: 3},
		{Pos: grid.P(1, 1), Value: 5},
		{Pos: grid.P(2, 2), Value: 5},
	}, cells)
}

func TestMap(t *testing.T) {
	g := sampleInts(t)
	f := grid.Map(g, func(_ grid.Pos, v int) float64 { return float64(v) / 2 })

	require.Equal(t, g.Size(), f.Size())
	v, err := f.At(grid.P(2, 1))
	require.NoError(t, err)
	require.Equal(t, 4.5, v)
}

func TestNormalizeApproxEqual(t *testing.T) {
	g, err := grid.FromValues([]float64{1, 2, 4, 8}, grid.S(2, 2))
	require.NoError(t, err)
	require.NoError(t, grid.Normalize(g))

	want, _ := grid.FromValues([]float64{0.125, 0.25, 0.5, 1}, grid.S(2, 2))
	require.True(t, grid.ApproxEqual(g, want, 1e-9))

	other, _ := grid.FromValues([]float64{0.125, 0.25, 0.5, 1.1}, grid.S(2, 2))
	require.False(t, grid.ApproxEqual(g, other, 1e-9))

	wrongSize, _ := grid.FromValues([]float64{0.125, 0.25, 0.5, 1}, grid.S(4, 1))
	require.False(t, grid.ApproxEqual(g, wrongSize, 1))

	zeros, _ := grid.New[float64](grid.S(2, 2))
	require.NoError(t, grid.Normalize(zeros))
	for v := range zeros.Cells() {
		require.Zero(t, v)
	}
}
