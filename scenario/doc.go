// SPDX-License-Identifier: MIT

// Package scenario loads grid search scenarios from HCL files and runs them.
//
// A scenario file holds one map block and any number of search blocks:
//
//	map {
//	  rows   = ["....", ".##.", "...."]
//	  speeds = { "." = 1, "~" = 0.5, "#" = 0 }
//	}
//
//	search "route" {
//	  algorithm      = "astar"
//	  start          = [0, 0]
//	  target         = [3, 2]
//	  turn_penalty   = 0.5
//	  diagonal       = 1.0
//	  max_expansions = 1000
//	}
//
//	search "pond" {
//	  algorithm = "flood"
//	  start     = [0, 0]
//	  match     = "."
//	  wrap      = true
//	}
//
// rows become a grid.Grid[rune], one rune per cell. speeds maps each rune to
// the movement speed used by the astar algorithm; without speeds every rune
// moves at 1 except '#', which is a wall. When speeds is present every rune on
// the map must be listed.
//
// Algorithms:
//
//   - astar:  astar.Search from start to target.
//   - find:   traverse.Find from start for the nearest cell holding match.
//   - flood:  traverse.Flood of the four-connected region of match at start.
//   - flood8: traverse.Flood8, the eight-connected variant.
//   - components: traverse.Components over the whole map; needs no start.
//
// Decoding uses hclparse and gohcl; the speeds object is converted with
// go-cty. Everything is validated before Parse returns, so Run only fails on
// context cancellation.
//
// Errors:
//
//   - ErrSyntax wraps the HCL diagnostics of files that fail to parse or decode.
//   - ErrNoMap, ErrBadMap, ErrUnknownRune for map problems.
//   - ErrBadSearch, ErrUnknownAlgorithm for search blocks.
package scenario
