// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// noPrev marks a cell without predecessor.
const noPrev = -1

// runner encapsulates mutable A* state for one call.
type runner[T any] struct {
	g      *grid.Grid[T]
	size   grid.Size
	cost   CostFunc[T]
	opts   Options
	enum   *neighbors.Enumerator
	target grid.Pos

	gCost  []float64
	prev   []int
	closed []bool
	open   *frontier
	buf    []grid.Pos

	expanded int
}

// Search finds a path from start to target with A*.
//
// Moves go to the four cardinal neighbors, or to all eight when WithDiagonal
// is given. Each dequeue from the frontier counts as one expansion; when the
// count exceeds WithMaxExpansions the search stops with BudgetExceeded. A
// start equal to target yields the single-element path [start] with cost 0.
//
// Returns ErrNilGrid, ErrNilCost, ErrOutOfBounds or ErrOptionViolation for
// invalid input and ctx.Err() on cancellation. Unreachable targets are not
// errors: the Result then carries NoPath.
func Search[T any](g *grid.Grid[T], start, target grid.Pos, cost CostFunc[T], opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if cost == nil {
		return Result{}, ErrNilCost
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	startIdx, err := g.Index(start)
	if err != nil {
		return Result{}, fmt.Errorf("%w: start %v in %v grid", ErrOutOfBounds, start, g.Size())
	}
	targetIdx, err := g.Index(target)
	if err != nil {
		return Result{}, fmt.Errorf("%w: target %v in %v grid", ErrOutOfBounds, target, g.Size())
	}

	r := newRunner(g, target, cost, o)
	r.gCost[startIdx] = 0
	r.open.push(startIdx, r.heuristic(start))

	return r.run(targetIdx)
}

// newRunner allocates the dense per-cell arrays.
func newRunner[T any](g *grid.Grid[T], target grid.Pos, cost CostFunc[T], o Options) *runner[T] {
	n := g.Len()
	policy := neighbors.Cardinal4
	if o.Diagonal {
		policy = neighbors.Full8
	}
	enum := neighbors.MustNew(policy)

	r := &runner[T]{
		g:      g,
		size:   g.Size(),
		cost:   cost,
		opts:   o,
		enum:   enum,
		target: target,
		gCost:  make([]float64, n),
		prev:   make([]int, n),
		closed: make([]bool, n),
		open:   newFrontier(n),
		buf:    make([]grid.Pos, 0, enum.MaxCount()),
	}
	for i := range r.gCost {
		r.gCost[i] = math.Inf(1)
		r.prev[i] = noPrev
	}

	return r
}

// run drains the frontier until target is popped, the budget runs out, the
// context is done or nothing is left.
func (r *runner[T]) run(targetIdx int) (Result, error) {
	ctx := r.opts.Ctx
	for r.open.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{Status: NoPath, Expanded: r.expanded}, ctx.Err()
		default:
		}

		cur := r.open.pop()
		r.expanded++
		if r.opts.MaxExpansions > 0 && r.expanded > r.opts.MaxExpansions {
			return Result{Status: BudgetExceeded, Expanded: r.expanded}, nil
		}
		if cur == targetIdx {
			return Result{
				Status:   Found,
				Path:     r.path(cur),
				Cost:     r.gCost[cur],
				Expanded: r.expanded,
			}, nil
		}
		r.closed[cur] = true
		r.relax(cur)
	}

	return Result{Status: NoPath, Expanded: r.expanded}, nil
}

// relax scores every open neighbor of cur and queues the improved ones.
func (r *runner[T]) relax(cur int) {
	w := r.size.W
	cp := grid.Pos{X: cur % w, Y: cur / w}

	var inDir grid.Pos
	hasIn := r.prev[cur] != noPrev
	if hasIn {
		p := r.prev[cur]
		inDir = cp.Sub(grid.Pos{X: p % w, Y: p / w})
	}

	r.buf = r.enum.Append(r.buf[:0], cp, r.size)
	for _, q := range r.buf {
		qi := q.Y*w + q.X
		if r.closed[qi] {
			continue
		}
		speed := r.cost(cp, q, r.g.AtIndex(qi))
		if !(speed > 0) {
			continue
		}
		step := 1 / speed
		if hasIn && q.Sub(cp) != inDir {
			step += r.opts.TurnPenalty
		}
		tentative := r.gCost[cur] + step
		if fLess(tentative, r.gCost[qi]) {
			r.gCost[qi] = tentative
			r.prev[qi] = cur
			r.open.push(qi, tentative+r.heuristic(q))
		}
	}
}

// heuristic is the octile distance from p to the target.
func (r *runner[T]) heuristic(p grid.Pos) float64 {
	return Octile(p, r.target, r.opts.DiagonalCost)
}

// path walks predecessors back from idx and returns start..idx.
func (r *runner[T]) path(idx int) []grid.Pos {
	w := r.size.W
	var rev []grid.Pos
	for i := idx; i != noPrev; i = r.prev[i] {
		rev = append(rev, grid.Pos{X: i % w, Y: i / w})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
