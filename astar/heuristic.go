// SPDX-License-Identifier: MIT

package astar

import (
	"math"

	"github.com/katalvlaran/gridkit/grid"
)

// Octile returns the octile distance between a and b with diagonal steps
// weighted by √2·mult: min(dx,dy)·√2·mult + (max(dx,dy) − min(dx,dy)).
// Complexity: O(1).
func Octile(a, b grid.Pos, mult float64) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	lo, hi := math.Min(dx, dy), math.Max(dx, dy)

	return lo*math.Sqrt2*mult + (hi - lo)
}

// ScaleDiagonal wraps cost so that diagonal moves are factor times dearer.
// Cardinal moves pass through unchanged.
func ScaleDiagonal[T any](cost CostFunc[T], factor float64) CostFunc[T] {
	return func(from, to grid.Pos, v T) float64 {
		speed := cost(from, to, v)
		if from.X != to.X && from.Y != to.Y {
			return speed / factor
		}

		return speed
	}
}
