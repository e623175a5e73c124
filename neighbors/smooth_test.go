package neighbors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// ramp is
//
//	1 2 3
//	4 5 6
//	7 8 9
func ramp(t *testing.T) *grid.Grid[float64] {
	t.Helper()
	g, err := grid.FromValues([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, grid.S(3, 3))
	require.NoError(t, err)

	return g
}

// TestSmooth_EdgesAndCorners averages only the cells inside the grid.
func TestSmooth_EdgesAndCorners(t *testing.T) {
	g := ramp(t)
	out, err := neighbors.Smooth(g, 1)
	require.NoError(t, err)

	cases := []struct {
		name string
		p    grid.Pos
		want float64
	}{
		{"TopLeftCorner", grid.P(0, 0), 12.0 / 4},
		{"TopEdge", grid.P(1, 0), 21.0 / 6},
		{"LeftEdge", grid.P(0, 1), 27.0 / 6},
		{"Centre", grid.P(1, 1), 45.0 / 9},
		{"BottomRightCorner", grid.P(2, 2), 28.0 / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := out.At(tc.p)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1e-12)
		})
	}

	// input untouched
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, g.Values())
}

// TestSmooth_RadiusCoversGrid averages the whole grid into every cell.
func TestSmooth_RadiusCoversGrid(t *testing.T) {
	out, err := neighbors.Smooth(ramp(t), 5)
	require.NoError(t, err)
	for _, v := range out.Values() {
		require.InDelta(t, 5.0, v, 1e-12)
	}

	f32, err := grid.NewFilled(grid.S(4, 1), float32(2))
	require.NoError(t, err)
	flat, err := neighbors.Smooth(f32, 2)
	require.NoError(t, err)
	require.Equal(t, []float32{2, 2, 2, 2}, flat.Values())
}

func TestSmooth_Errors(t *testing.T) {
	_, err := neighbors.Smooth[float64](nil, 1)
	require.ErrorIs(t, err, neighbors.ErrNilGrid)

	_, err = neighbors.Smooth(ramp(t), 0)
	require.ErrorIs(t, err, neighbors.ErrBadPolicy)
}
