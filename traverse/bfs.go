// SPDX-License-Identifier: MIT

package traverse

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// queueItem pairs a cell with its row-major index and BFS depth.
type queueItem struct {
	pos   grid.Pos
	idx   int
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker[T any] struct {
	g       *grid.Grid[T]
	size    grid.Size
	opts    Options
	enum    *neighbors.Enumerator
	queue   []queueItem
	head    int
	visited []bool
	buf     []grid.Pos
}

// Find runs breadth-first search from start and returns the first cell for
// which pred returns true. The boolean is false when every reachable cell was
// tested without a match.
// Returns ErrNilGrid, ErrNilPredicate, ErrStartOutOfBounds or an option error
// for invalid input.
func Find[T any](g *grid.Grid[T], start grid.Pos, pred Predicate[T], opts ...Option) (Match[T], bool, error) {
	w, err := newWalker(g, pred, opts)
	if err != nil {
		return Match[T]{}, false, err
	}
	if err = w.seedAt(start); err != nil {
		return Match[T]{}, false, err
	}

	for w.head < len(w.queue) {
		item := w.dequeue()
		v := w.g.AtIndex(item.idx)
		if pred(item.pos, v) {
			return Match[T]{Pos: item.pos, Value: v}, true, nil
		}
		w.enqueueNeighbors(item)
	}

	return Match[T]{}, false, nil
}

// Flood collects the connected region of matching cells seeded at start.
// Expansion past a cell happens only if that cell matched, so a non-matching
// start yields an empty result. Matches are returned in visit order.
// Returns ErrNilGrid, ErrNilPredicate, ErrStartOutOfBounds or an option error
// for invalid input.
func Flood[T any](g *grid.Grid[T], start grid.Pos, pred Predicate[T], opts ...Option) ([]Match[T], error) {
	w, err := newWalker(g, pred, opts)
	if err != nil {
		return nil, err
	}
	if err = w.seedAt(start); err != nil {
		return nil, err
	}

	return w.flood(pred), nil
}

// Flood8 is Flood with eight-way connectivity. Options are applied after the
// connectivity is set, so WithPolicy still overrides it.
func Flood8[T any](g *grid.Grid[T], start grid.Pos, pred Predicate[T], opts ...Option) ([]Match[T], error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, WithPolicy(neighbors.Full8))
	all = append(all, opts...)

	return Flood(g, start, pred, all...)
}

// Components partitions all matching cells into connected regions. Seeds
// are taken in row-major order, so regions are ordered by their first cell
// and each region lists its cells in visit order. Options apply per region;
// MaxDepth counts from each region's seed.
// Returns ErrNilGrid, ErrNilPredicate or an option error for invalid input.
func Components[T any](g *grid.Grid[T], pred Predicate[T], opts ...Option) ([][]Match[T], error) {
	w, err := newWalker(g, pred, opts)
	if err != nil {
		return nil, err
	}

	var regions [][]Match[T]
	for i := range w.visited {
		if w.visited[i] || !pred(grid.Pos{X: i % w.size.W, Y: i / w.size.W}, g.AtIndex(i)) {
			continue
		}
		w.seed(i)
		regions = append(regions, w.flood(pred))
	}

	return regions, nil
}

// newWalker validates input and applies options. The queue starts empty.
func newWalker[T any](g *grid.Grid[T], pred Predicate[T], opts []Option) (*walker[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if pred == nil {
		return nil, ErrNilPredicate
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	enum, err := neighbors.New(o.Policy)
	if err != nil {
		return nil, err
	}

	return &walker[T]{
		g:       g,
		size:    g.Size(),
		opts:    o,
		enum:    enum,
		queue:   make([]queueItem, 0, 64),
		visited: make([]bool, g.Len()),
		buf:     make([]grid.Pos, 0, enum.MaxCount()),
	}, nil
}

// seedAt validates start and seeds the queue with it.
func (w *walker[T]) seedAt(start grid.Pos) error {
	idx, err := w.g.Index(start)
	if err != nil {
		return fmt.Errorf("%w: %v in %v grid", ErrStartOutOfBounds, start, w.size)
	}
	w.seed(idx)

	return nil
}

// seed resets the queue to the single cell idx at depth 0. Visited flags
// are kept, so successive seeds never revisit a cell.
func (w *walker[T]) seed(idx int) {
	w.visited[idx] = true
	w.queue = append(w.queue[:0], queueItem{pos: grid.Pos{X: idx % w.size.W, Y: idx / w.size.W}, idx: idx})
	w.head = 0
}

// flood drains the queue, expanding only from matching cells.
func (w *walker[T]) flood(pred Predicate[T]) []Match[T] {
	var found []Match[T]
	for w.head < len(w.queue) {
		item := w.dequeue()
		v := w.g.AtIndex(item.idx)
		if !pred(item.pos, v) {
			continue
		}
		found = append(found, Match[T]{Pos: item.pos, Value: v})
		w.enqueueNeighbors(item)
	}

	return found
}

// dequeue pops the front item and runs the OnVisit hook.
func (w *walker[T]) dequeue() queueItem {
	item := w.queue[w.head]
	w.head++
	w.opts.OnVisit(item.pos, item.depth)

	return item
}

// enqueueNeighbors marks and enqueues every unvisited in-grid neighbor of item,
// honoring MaxDepth.
func (w *walker[T]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.buf = w.enum.Append(w.buf[:0], item.pos, w.size)
	for _, q := range w.buf {
		// legacy wrapping can produce positions outside non-square grids
		if !w.size.Contains(q) {
			continue
		}
		qi := q.Y*w.size.W + q.X
		if w.visited[qi] {
			continue
		}
		w.visited[qi] = true
		w.queue = append(w.queue, queueItem{pos: q, idx: qi, depth: next})
	}
}
