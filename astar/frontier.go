// SPDX-License-Identifier: MIT

package astar

import (
	"container/heap"
	"math"
)

// frontierItem is a queued cell and its f-score.
type frontierItem struct {
	idx int     // row-major cell index
	f   float64 // g + h
}

// frontier is a min-heap of cells ordered by f. slot[idx] holds the heap
// position of a queued cell or -1, which makes decrease-key O(log n) and
// keeps every cell in the heap at most once.
type frontier struct {
	items []frontierItem
	slot  []int
}

// newFrontier returns an empty frontier for n cells.
func newFrontier(n int) *frontier {
	slot := make([]int, n)
	for i := range slot {
		slot[i] = -1
	}

	return &frontier{items: make([]frontierItem, 0, 64), slot: slot}
}

// Len returns the number of queued cells.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by ascending f; see fLess for NaN handling.
func (q *frontier) Less(i, j int) bool { return fLess(q.items[i].f, q.items[j].f) }

// Swap swaps two items and keeps slot in sync.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.slot[q.items[i].idx] = i
	q.slot[q.items[j].idx] = j
}

// Push is called by heap.Push; x must be a frontierItem.
func (q *frontier) Push(x any) {
	it := x.(frontierItem)
	q.slot[it.idx] = len(q.items)
	q.items = append(q.items, it)
}

// Pop is called by heap.Pop and removes the last item.
func (q *frontier) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	q.slot[it.idx] = -1

	return it
}

// push queues idx with score f, or updates its score if already queued.
func (q *frontier) push(idx int, f float64) {
	if s := q.slot[idx]; s >= 0 {
		q.items[s].f = f
		heap.Fix(q, s)
		return
	}
	heap.Push(q, frontierItem{idx: idx, f: f})
}

// pop removes and returns the cell with the smallest f.
func (q *frontier) pop() int {
	return heap.Pop(q).(frontierItem).idx
}

// fLess is a total order on float64 for the heap: NaN compares greater than
// every number and equal to itself, so it never reorders ahead of real scores.
func fLess(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return false
	case math.IsNaN(b):
		return true
	default:
		return a < b
	}
}
