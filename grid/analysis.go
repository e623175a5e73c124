// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"
	"math"
)

// Number is the set of element types Mean accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Count returns the number of cells for which pred returns true.
// Complexity: O(W×H).
func (g *Grid[T]) Count(pred func(p Pos, v T) bool) int {
	n := 0
	for p, v := range g.All() {
		if pred(p, v) {
			n++
		}
	}

	return n
}

// Filter returns, in index order, every cell for which pred returns true.
// Complexity: O(W×H).
func (g *Grid[T]) Filter(pred func(p Pos, v T) bool) []Cell[T] {
	var out []Cell[T]
	for p, v := range g.All() {
		if pred(p, v) {
			out = append(out, Cell[T]{Pos: p, Value: v})
		}
	}

	return out
}

// FilterPositions is Filter without the values.
// Complexity: O(W×H).
func (g *Grid[T]) FilterPositions(pred func(p Pos, v T) bool) []Pos {
	var out []Pos
	for p, v := range g.All() {
		if pred(p, v) {
			out = append(out, p)
		}
	}

	return out
}

// Map returns a new grid of the same size with fn applied to every cell.
// Complexity: O(W×H).
func Map[T, R any](g *Grid[T], fn func(p Pos, v T) R) *Grid[R] {
	out := &Grid[R]{size: g.size, cells: make([]R, len(g.cells))}
	for p, v := range g.All() {
		out.cells[p.Y*g.size.W+p.X] = fn(p, v)
	}

	return out
}

// MinFunc returns the first cell whose value is minimal under less.
// Returns ErrEmptyGrid if the grid has no cells.
// Complexity: O(W×H).
func (g *Grid[T]) MinFunc(less func(a, b T) bool) (Cell[T], error) {
	if len(g.cells) == 0 {
		return Cell[T]{}, ErrEmptyGrid
	}
	best := 0
	for i := 1; i < len(g.cells); i++ {
		if less(g.cells[i], g.cells[best]) {
			best = i
		}
	}

	return g.cellAt(best), nil
}

// MaxFunc returns the first cell whose value is maximal under less.
// Returns ErrEmptyGrid if the grid has no cells.
// Complexity: O(W×H).
func (g *Grid[T]) MaxFunc(less func(a, b T) bool) (Cell[T], error) {
	if len(g.cells) == 0 {
		return Cell[T]{}, ErrEmptyGrid
	}
	best := 0
	for i := 1; i < len(g.cells); i++ {
		if less(g.cells[best], g.cells[i]) {
			best = i
		}
	}

	return g.cellAt(best), nil
}

// Min returns the first cell holding the smallest value. NaN orders before
// every other float, following cmp.Less.
func Min[T cmp.Ordered](g *Grid[T]) (Cell[T], error) {
	return g.MinFunc(cmp.Less[T])
}

// Max returns the first cell holding the largest value.
func Max[T cmp.Ordered](g *Grid[T]) (Cell[T], error) {
	return g.MaxFunc(cmp.Less[T])
}

// Mean returns the arithmetic mean of all cells. The sum is accumulated in
// float64, so small integer types neither overflow nor truncate.
// Returns ErrEmptyGrid if the grid has no cells.
// Complexity: O(W×H).
func Mean[T Number](g *Grid[T]) (float64, error) {
	if len(g.cells) == 0 {
		return 0, ErrEmptyGrid
	}
	var sum float64
	for _, v := range g.cells {
		sum += float64(v)
	}

	return sum / float64(len(g.cells)), nil
}

// Normalize divides every cell by the grid's maximum value. A zero maximum
// leaves the grid untouched.
// Returns ErrEmptyGrid if the grid has no cells.
// Complexity: O(W×H).
func Normalize[T ~float32 | ~float64](g *Grid[T]) error {
	top, err := Max(g)
	if err != nil {
		return err
	}
	if top.Value == 0 {
		return nil
	}
	for i := range g.cells {
		g.cells[i] /= top.Value
	}

	return nil
}

// ApproxEqual reports whether a and b have the same size and every pair of
// cells differs by at most tol.
// Complexity: O(W×H).
func ApproxEqual[T ~float32 | ~float64](a, b *Grid[T], tol float64) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.cells {
		if math.Abs(float64(a.cells[i]-b.cells[i])) > tol {
			return false
		}
	}

	return true
}

// cellAt builds a Cell for a known-valid index.
func (g *Grid[T]) cellAt(i int) Cell[T] {
	return Cell[T]{Pos: Pos{X: i % g.size.W, Y: i / g.size.W}, Value: g.cells[i]}
}
