// SPDX-License-Identifier: MIT

package grid

import "iter"

// All yields every (position, value) pair in ascending row-major index order.
// The grid must not be written while the sequence is being consumed.
//
//	for p, v := range g.All() { ... }
//
// Complexity: O(W×H).
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		w := g.size.W
		for i, v := range g.cells {
			if !yield(Pos{X: i % w, Y: i / w}, v) {
				return
			}
		}
	}
}

// Cells yields every value in ascending row-major index order.
// Complexity: O(W×H).
func (g *Grid[T]) Cells() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Update calls fn once per cell, in ascending index order, with exclusive
// write access to that cell. fn must not retain v after it returns.
// Complexity: O(W×H).
func (g *Grid[T]) Update(fn func(p Pos, v *T)) {
	w := g.size.W
	for i := range g.cells {
		fn(Pos{X: i % w, Y: i / w}, &g.cells[i])
	}
}

// Positions returns every valid position in ascending index order.
// Complexity: O(W×H).
func (s Size) Positions() []Pos {
	out := make([]Pos, 0, s.Count())
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			out = append(out, Pos{X: x, Y: y})
		}
	}

	return out
}

// Positions returns every valid position of g in ascending index order.
func (g *Grid[T]) Positions() []Pos {
	return g.size.Positions()
}
