// Package gridkit is a toolkit for dense 2D grids: storage, neighbor
// enumeration, breadth-first traversal and A* pathfinding.
//
// What is in the box?
//
//	grid/       Grid[T], row-major W×H storage with checked access, iterators
//	            and whole-grid statistics (Min, Max, Mean, Normalize, ...)
//	neighbors/  neighbor policies: cardinal, full, diagonal, square and
//	            circle radius, each optionally wrapping around the edges
//	traverse/   BFS Find (nearest match), Flood / Flood8 (connected region)
//	            and Components (every region of a predicate)
//	astar/      A* with per-move speeds, turn penalties, diagonal movement
//	            and an expansion budget
//	scenario/   HCL scenario files: a map plus search requests
//	render/     tcell drawing of a grid with a path overlay
//
// The command cmd/gridpath runs scenario files from the terminal.
//
// Quick example:
//
//	g, _ := grid.FromRows([][]rune{
//		[]rune("...."),
//		[]rune("##.#"),
//		[]rune("...."),
//	})
//	speed := func(_, _ grid.Pos, v rune) float64 {
//		if v == '#' {
//			return 0
//		}
//		return 1
//	}
//	res, _ := astar.Search(g, grid.P(0, 0), grid.P(0, 2), speed)
//	// res.Path: (0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)
//
// The core packages (grid, neighbors, traverse, astar) have no dependencies
// beyond the standard library, do not log and allocate all search state per
// call, so independent searches may run concurrently on a shared grid as long
// as nobody mutates it.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
