// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// method tags used in error wrappers
const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxPtr   = "Ptr"
	ctxIndex = "Index"
	ctxPosOf = "PosOf"
)

// gridErrorf attaches method context and coordinates to a sentinel error.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}

// Grid is a dense row-major 2D container.
//   - size holds the extent (W columns, H rows).
//   - cells holds W*H values; cell (x,y) lives at cells[y*W+x].
//
// The invariant len(cells) == size.W*size.H holds for the lifetime of the Grid.
type Grid[T any] struct {
	size  Size
	cells []T
}

// checkSize rejects negative dimensions and extents whose cell count
// overflows int.
func checkSize(size Size) error {
	if size.W < 0 || size.H < 0 {
		return fmt.Errorf("%w: %v", ErrBadSize, size)
	}
	if size.H != 0 && size.W > math.MaxInt/size.H {
		return fmt.Errorf("%w: %v has more cells than an int can count", ErrBadSize, size)
	}

	return nil
}

// New returns a grid of the given size with every cell set to T's zero value.
// Returns ErrBadSize for negative dimensions or a cell count that overflows int.
// Complexity: O(W×H) time and memory.
func New[T any](size Size) (*Grid[T], error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	return &Grid[T]{size: size, cells: make([]T, size.Count())}, nil
}

// NewFilled returns a grid of the given size with every cell equal to fill.
// Returns ErrBadSize for negative dimensions or a cell count that overflows int.
// Complexity: O(W×H) time and memory.
func NewFilled[T any](size Size, fill T) (*Grid[T], error) {
	g, err := New[T](size)
	if err != nil {
		return nil, err
	}
	g.Fill(fill)

	return g, nil
}

// FromValues builds a grid from a flat row-major slice. The slice is copied,
// so later changes to values do not affect the grid.
// Returns ErrBadSize for negative or overflowing dimensions and
// ErrSizeMismatch when len(values) != W*H.
// Complexity: O(W×H).
func FromValues[T any](values []T, size Size) (*Grid[T], error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if len(values) != size.Count() {
		return nil, fmt.Errorf("%w: got %d values for size %v (want %d)",
			ErrSizeMismatch, len(values), size, size.Count())
	}
	cells := make([]T, len(values))
	copy(cells, values)

	return &Grid[T]{size: size, cells: cells}, nil
}

// FromRows builds a grid from row-grouped values: rows[y][x]. Width is the
// row length and height is the number of rows.
// Returns ErrEmptyGrid if there are no rows or no columns and
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{size: Size{W: w, H: h}, cells: cells}, nil
}

// Size returns the grid extent.
func (g *Grid[T]) Size() Size { return g.size }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.size.W }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.size.H }

// Len returns the number of cells (W*H).
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Pos) bool {
	return g.size.Contains(p)
}

// Index maps p to its row-major index y*W + x.
// Returns ErrOutOfBounds if p is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Index(p Pos) (int, error) {
	if !g.size.Contains(p) {
		return 0, gridErrorf(ctxIndex, p.X, p.Y, ErrOutOfBounds)
	}

	return p.Y*g.size.W + p.X, nil
}

// PosOf maps a row-major index back to its position (i mod W, i div W).
// Returns ErrOutOfBounds if i is not in [0, Len()).
// Complexity: O(1).
func (g *Grid[T]) PosOf(i int) (Pos, error) {
	if i < 0 || i >= len(g.cells) {
		return Pos{}, fmt.Errorf("Grid.%s(%d): %w", ctxPosOf, i, ErrOutOfBounds)
	}

	return Pos{X: i % g.size.W, Y: i / g.size.W}, nil
}

// At returns the value stored at p.
// Returns ErrOutOfBounds if p is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) At(p Pos) (T, error) {
	if !g.size.Contains(p) {
		var zero T
		return zero, gridErrorf(ctxAt, p.X, p.Y, ErrOutOfBounds)
	}

	return g.cells[p.Y*g.size.W+p.X], nil
}

// Set stores v at p.
// Returns ErrOutOfBounds if p is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Set(p Pos, v T) error {
	if !g.size.Contains(p) {
		return gridErrorf(ctxSet, p.X, p.Y, ErrOutOfBounds)
	}
	g.cells[p.Y*g.size.W+p.X] = v

	return nil
}

// Ptr returns a pointer to the cell at p for in-place mutation. The pointer
// stays valid for the lifetime of the grid.
// Returns ErrOutOfBounds if p is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Ptr(p Pos) (*T, error) {
	if !g.size.Contains(p) {
		return nil, gridErrorf(ctxPtr, p.X, p.Y, ErrOutOfBounds)
	}

	return &g.cells[p.Y*g.size.W+p.X], nil
}

// AtIndex returns the value at a row-major index without the positional
// check. Callers must derive i from a position already validated against this
// grid; an invalid i panics through the slice bounds check.
func (g *Grid[T]) AtIndex(i int) T {
	return g.cells[i]
}

// Fill sets every cell to v.
// Complexity: O(W×H).
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy of the grid's cell slice. Values themselves are
// copied by assignment, so pointer-typed elements are shared.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{size: g.size, cells: cells}
}

// Values returns a copy of the flat row-major cell slice.
// Complexity: O(W×H).
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)

	return out
}

// Rows returns the cells grouped by row: rows[y][x].
// Complexity: O(W×H).
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.size.H)
	for y := range rows {
		row := make([]T, g.size.W)
		copy(row, g.cells[y*g.size.W:(y+1)*g.size.W])
		rows[y] = row
	}

	return rows
}
