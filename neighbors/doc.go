// SPDX-License-Identifier: MIT

// Package neighbors enumerates the cells adjacent to a position under a
// selectable connectivity policy.
//
// One Enumerator covers every policy. A Policy is a plain descriptor:
//
//   - Conn:   Cardinal (N,W,E,S), Full (8-way), Diagonal (corners only),
//     Square (every cell of a (2r+1)² block) or Circle (block cells within
//     Euclidean distance r).
//   - Radius: block radius for Square and Circle; must be 0 otherwise.
//   - Wrap:   NoWrap drops candidates outside the grid; WrapPerAxis wraps x
//     modulo W and y modulo H; WrapMaxExtent wraps both axes modulo max(W,H).
//
// Ordering is part of the contract. Results are ordered lists, never sets:
//
//	Cardinal: N, W, E, S
//	Full:     TL, T, TR, L, R, BL, B, BR
//	Diagonal: TL, TR, BL, BR
//	Square/Circle: row-major scan of the block, centre excluded
//
// WrapPerAxis uses the same orders and always returns every direction, so
// small extents (W or H below 3) can produce repeated positions.
//
// WrapMaxExtent reproduces older tools that wrapped both axes by the larger
// extent, including their order:
//
//	Cardinal: up, down, left, right
//	Full:     up, down, left, right, TL, TR, BL, BR
//	Diagonal: TL, TR, BL, BR
//
// On non-square grids it yields positions outside the grid; callers must
// filter with Size.Contains. Prefer WrapPerAxis.
//
// Complexity:
//
//   - Cardinal/Full/Diagonal: O(1) per call.
//   - Square/Circle: O(r²) per call; offsets are computed once in New.
//
// Smooth applies a box filter over each cell and its SquareRadius(r) block,
// averaging only the cells that lie inside the grid.
//
// Errors:
//
//   - ErrBadPolicy: unknown connectivity or wrap mode, radius outside its
//     policy, or wrapping requested for a radius policy.
//   - ErrNilGrid: Smooth called with a nil grid.
//
// Enumerating around a position outside the grid is a contract violation and
// panics.
package neighbors
