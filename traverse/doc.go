// SPDX-License-Identifier: MIT

// Package traverse runs unweighted breadth-first searches over a grid.Grid.
//
// What
//
//   - Find: classic BFS from a start cell that stops at the first cell whose
//     predicate matches. Every dequeued cell is tested; non-matching cells
//     still expand to their unvisited neighbors.
//   - Flood: gated BFS that collects the connected region of matching cells
//     seeded at start. A cell expands to its neighbors only if it matched, so
//     if the start itself does not match the result is empty, even when
//     matching cells exist elsewhere.
//   - Flood8: Flood with eight-way connectivity.
//   - Components: repeated Flood seeded at every not-yet-visited matching
//     cell in row-major order, partitioning matches into connected regions.
//
// All searches share one walker: a slice-backed FIFO queue and a dense
// visited []bool indexed by the grid's row-major index. The start is marked
// visited before the loop, so every cell is tested at most once.
//
// Options
//
//   - DefaultOptions(): cardinal connectivity, no depth limit, no hooks.
//   - WithPolicy(p):    any neighbors.Policy (radius and wrapping included).
//   - WithMaxDepth(d):  do not enqueue cells more than d steps from start (d>0);
//     d == 0 means no limit, d < 0 is ErrOptionViolation.
//   - WithOnVisit(fn):  hook called for every tested cell, in test order.
//
// Determinism
//
//	Neighbor order is fixed by the policy (see package neighbors), so the visit
//	order and Flood's result order are reproducible.
//
// Complexity (N = W×H, d = neighbors per cell)
//
//   - Time:   O(N·d) worst case.
//   - Memory: O(N) for the visited flags and the queue.
//
// Errors
//
//   - ErrNilGrid, ErrNilPredicate for missing inputs.
//   - ErrStartOutOfBounds (also matches grid.ErrOutOfBounds) for a bad start.
//   - ErrOptionViolation, or neighbors.ErrBadPolicy, for invalid options.
//
// "No match" is not an error: Find reports it through its boolean result.
package traverse
