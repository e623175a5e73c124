// SPDX-License-Identifier: MIT

package neighbors

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

// Offset tables in contract order.
var (
	cardinalOffsets = []grid.Pos{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	fullOffsets     = []grid.Pos{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	diagonalOffsets = []grid.Pos{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1}}

	// WrapMaxExtent keeps the up, down, left, right order of older tools.
	legacyCardinalOffsets = []grid.Pos{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	legacyFullOffsets     = []grid.Pos{
		{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
	}
)

// Enumerator produces neighbor lists for one validated Policy.
// It is immutable after New and safe for concurrent use.
type Enumerator struct {
	policy  Policy
	offsets []grid.Pos
}

// New validates p and precomputes its offset table.
// Returns ErrBadPolicy if p is invalid.
// Complexity: O(1) for fixed policies, O(r²) for Square/Circle.
func New(p Policy) (*Enumerator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Enumerator{policy: p, offsets: offsetsFor(p)}, nil
}

// MustNew is New that panics on an invalid policy. Use it for policies
// fixed at compile time.
func MustNew(p Policy) *Enumerator {
	e, err := New(p)
	if err != nil {
		panic(err)
	}

	return e
}

// Policy returns the policy the enumerator was built from.
func (e *Enumerator) Policy() Policy { return e.policy }

// MaxCount returns the largest number of positions a single call can yield.
func (e *Enumerator) MaxCount() int { return len(e.offsets) }

// Offsets returns a copy of the candidate offsets in contract order.
func (e *Enumerator) Offsets() []grid.Pos {
	out := make([]grid.Pos, len(e.offsets))
	copy(out, e.offsets)

	return out
}

// Of returns the neighbors of p inside a grid of the given size.
// Panics if p lies outside size.
func (e *Enumerator) Of(p grid.Pos, size grid.Size) []grid.Pos {
	return e.Append(make([]grid.Pos, 0, len(e.offsets)), p, size)
}

// Append appends the neighbors of p to dst and returns the extended slice.
// Reusing dst across calls avoids per-call allocation in search loops.
// Panics if p lies outside size.
func (e *Enumerator) Append(dst []grid.Pos, p grid.Pos, size grid.Size) []grid.Pos {
	if !size.Contains(p) {
		panic(fmt.Sprintf("neighbors: position %v outside grid %v", p, size))
	}

	switch e.policy.Wrap {
	case WrapPerAxis:
		for _, d := range e.offsets {
			dst = append(dst, grid.Pos{X: wrap(p.X+d.X, size.W), Y: wrap(p.Y+d.Y, size.H)})
		}
	case WrapMaxExtent:
		m := max(size.W, size.H)
		for _, d := range e.offsets {
			dst = append(dst, grid.Pos{X: wrap(p.X+d.X, m), Y: wrap(p.Y+d.Y, m)})
		}
	default:
		for _, d := range e.offsets {
			// A diagonal step is in bounds exactly when both of its cardinal
			// steps are, so one Contains check covers every policy.
			if q := p.Add(d); size.Contains(q) {
				dst = append(dst, q)
			}
		}
	}

	return dst
}

// Of returns the neighbors of p under policy in a grid of the given size.
// Panics if policy is invalid or p lies outside size; validate user-supplied
// policies with Policy.Validate first.
func Of(p grid.Pos, size grid.Size, policy Policy) []grid.Pos {
	return MustNew(policy).Of(p, size)
}

// Cardinal4Of returns the N, W, E, S neighbors of p that lie inside size.
func Cardinal4Of(p grid.Pos, size grid.Size) []grid.Pos { return cardinal4.Of(p, size) }

// Full8Of returns the eight surrounding cells of p that lie inside size.
func Full8Of(p grid.Pos, size grid.Size) []grid.Pos { return full8.Of(p, size) }

// Diagonal4Of returns the corner cells of p that lie inside size.
func Diagonal4Of(p grid.Pos, size grid.Size) []grid.Pos { return diagonal4.Of(p, size) }

// SquareOf returns the cells of the (2r+1)² block around p that lie inside size.
func SquareOf(p grid.Pos, size grid.Size, r int) []grid.Pos {
	return Of(p, size, SquareRadius(r))
}

// CircleOf returns the block cells within Euclidean distance r of p that lie inside size.
func CircleOf(p grid.Pos, size grid.Size, r int) []grid.Pos {
	return Of(p, size, CircleRadius(r))
}

var (
	cardinal4 = MustNew(Cardinal4)
	full8     = MustNew(Full8)
	diagonal4 = MustNew(Diagonal4)
)

// offsetsFor builds the candidate offsets of a validated policy.
func offsetsFor(p Policy) []grid.Pos {
	if p.Wrap == WrapMaxExtent {
		switch p.Conn {
		case Cardinal:
			return legacyCardinalOffsets
		case Full:
			return legacyFullOffsets
		}
	}
	switch p.Conn {
	case Full:
		return fullOffsets
	case Diagonal:
		return diagonalOffsets
	case Square, Circle:
		r := p.Radius
		out := make([]grid.Pos, 0, (2*r+1)*(2*r+1)-1)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if p.Conn == Circle && dx*dx+dy*dy > r*r {
					continue
				}
				out = append(out, grid.Pos{X: dx, Y: dy})
			}
		}
		return out
	default:
		return cardinalOffsets
	}
}

// wrap maps v into [0, n).
func wrap(v, n int) int {
	return ((v % n) + n) % n
}
