// SPDX-License-Identifier: MIT

package neighbors

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// ErrNilGrid is returned by Smooth for a nil grid.
var ErrNilGrid = errors.New("neighbors: grid is nil")

// Smooth returns a box-filtered copy of g: every cell becomes the mean of
// itself and its SquareRadius(r) neighbors that lie inside the grid. Edge and
// corner cells average over fewer cells. g is not modified.
// Returns ErrNilGrid for a nil grid and ErrBadPolicy if r < 1.
// Complexity: O(W×H×r²).
func Smooth[T ~float32 | ~float64](g *grid.Grid[T], r int) (*grid.Grid[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	e, err := New(SquareRadius(r))
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}

	size := g.Size()
	src := g.Values()
	buf := make([]grid.Pos, 0, e.MaxCount())

	return grid.Map(g, func(p grid.Pos, v T) T {
		sum := float64(v)
		buf = e.Append(buf[:0], p, size)
		for _, q := range buf {
			sum += float64(src[q.Y*size.W+q.X])
		}

		return T(sum / float64(len(buf)+1))
	}), nil
}
