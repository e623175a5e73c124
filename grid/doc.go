// SPDX-License-Identifier: MIT

// Package grid provides a dense, row-major 2D container addressed by integer
// positions. It is the storage layer every search package in gridkit builds on.
//
// What:
//
//   - Grid[T] owns a flat slice of W×H values; cell (x,y) lives at index y*W + x.
//   - Constructors: New (zero values), NewFilled (uniform value),
//     FromValues (flat row-major slice), FromRows (row-grouped slices).
//   - Bounds-checked access: At, Set, Ptr return ErrOutOfBounds instead of panicking.
//   - Index/PosOf convert between positions and flat indices; they are exact inverses.
//   - Iteration in ascending index order: All (position+value), Cells (values),
//     Update (exclusive per-cell write access).
//   - Small analysis helpers: Count, Filter, Map, Min/Max/Mean, ApproxEqual, Normalize.
//
// Why:
//
//   - A single flat slice keeps cells contiguous, so scans and the dense
//     bookkeeping arrays used by traverse and astar share one index space.
//
// Concurrency:
//
//	Grid has no internal locking. Concurrent readers are safe only while no
//	writer is active; writes must be serialized by the caller.
//
// Complexity:
//
//   - New/NewFilled/FromValues/FromRows/Clone: O(W×H) time and memory.
//   - At/Set/Ptr/Index/PosOf: O(1).
//   - Iteration and analysis helpers: O(W×H).
//
// Errors:
//
//   - ErrBadSize:        negative width or height, or W×H overflowing int.
//   - ErrSizeMismatch:   FromValues got len(values) != W×H.
//   - ErrEmptyGrid:      FromRows got no rows or no columns; Min/Max/Mean on an empty grid.
//   - ErrNonRectangular: FromRows got rows of differing lengths.
//   - ErrOutOfBounds:    positional access outside the grid extent.
package grid
