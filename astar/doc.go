// SPDX-License-Identifier: MIT

// Package astar implements A* shortest-path search over a grid.Grid with
// per-move speeds, turn penalties and optional diagonal movement.
//
// Cost model:
//
//   - A CostFunc returns the speed of moving from one cell to an adjacent
//     cell given the destination value. speed <= 0 (or NaN) means impassable;
//     otherwise the move costs 1/speed.
//   - Whenever the direction of the move out of a cell differs from the move
//     into it, the turn penalty is added. The first move from start never
//     counts as a turn.
//   - WithDiagonal(m) enables eight-way expansion. m feeds the octile
//     heuristic; diagonal moves are priced by the CostFunc like any other
//     move (wrap it with ScaleDiagonal to make them dearer).
//
// Heuristic:
//
//	h = min(dx,dy)·√2·m + (max(dx,dy) − min(dx,dy)), with m = 1 when diagonals
//	are off. It is applied unconditionally. With speeds above 1 the true cost
//	of a step drops below 1 and h can overestimate, so paths are then not
//	guaranteed to be the cheapest.
//
// Bookkeeping:
//
//	g-cost, predecessor, closed flag and heap slot live in dense slices sized
//	to the grid's element count and indexed by its row-major index. They are
//	allocated per call; nothing is shared between calls. The frontier is a
//	binary heap keyed on f = g + h with in-place decrease-key, so each cell is
//	queued at most once. Float comparisons treat NaN as the largest value.
//
// Outcomes:
//
//	Result.Status distinguishes Found, NoPath (frontier exhausted) and
//	BudgetExceeded (more expansions than WithMaxExpansions allowed). None of
//	these is an error; errors are reserved for invalid input.
//
// Complexity (N = W×H):
//
//   - Time:   O(N·log N) expansions with heap updates.
//   - Memory: O(N) for the dense arrays and the heap.
//
// Errors:
//
//   - ErrNilGrid, ErrNilCost for missing inputs.
//   - ErrOutOfBounds (matches grid.ErrOutOfBounds) for start or target outside the grid.
//   - ErrOptionViolation for invalid options.
//   - ctx.Err() when the context passed with WithContext is done.
package astar
