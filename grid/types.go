// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction and access.
var (
	// ErrBadSize indicates a negative width or height, or a W*H that
	// overflows int.
	ErrBadSize = errors.New("grid: invalid width or height")

	// ErrSizeMismatch indicates that an explicit value slice does not hold
	// exactly width*height elements.
	ErrSizeMismatch = errors.New("grid: number of values does not match size")

	// ErrEmptyGrid indicates row-grouped input without rows or columns, or an
	// aggregate requested over zero cells.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrNonRectangular indicates row-grouped input with rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfBounds indicates a position or index outside the grid extent.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Pos addresses one cell. Valid positions satisfy 0 <= X < W and 0 <= Y < H.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos { return Pos{X: x, Y: y} }

// Add returns p+o.
func (p Pos) Add(o Pos) Pos { return Pos{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Pos) Sub(o Pos) Pos { return Pos{p.X - o.X, p.Y - o.Y} }

// String renders the position as "(x,y)".
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Manhattan returns |dx| + |dy|.
func (p Pos) Manhattan(o Pos) int {
	return absInt(p.X-o.X) + absInt(p.Y-o.Y)
}

// Chebyshev returns max(|dx|, |dy|).
func (p Pos) Chebyshev(o Pos) int {
	return max(absInt(p.X-o.X), absInt(p.Y-o.Y))
}

// Euclidean returns the straight-line distance between p and o.
func (p Pos) Euclidean(o Pos) float64 {
	return math.Hypot(float64(p.X-o.X), float64(p.Y-o.Y))
}

// Size is the extent of a grid in cells.
type Size struct {
	W, H int
}

// S is shorthand for Size{W: w, H: h}.
func S(w, h int) Size { return Size{W: w, H: h} }

// Count returns the number of cells, W*H. Constructors reject sizes for which
// this overflows.
func (s Size) Count() int { return s.W * s.H }

// Contains reports whether p lies inside the extent.
// Complexity: O(1).
func (s Size) Contains(p Pos) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// String renders the size as "WxH".
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Cell pairs a position with the value stored there.
type Cell[T any] struct {
	Pos   Pos
	Value T
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
