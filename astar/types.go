// SPDX-License-Identifier: MIT

package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilCost indicates that the cost function is nil.
	ErrNilCost = errors.New("astar: cost function is nil")

	// ErrOutOfBounds indicates that start or target lies outside the grid.
	// It wraps grid.ErrOutOfBounds.
	ErrOutOfBounds = fmt.Errorf("astar: %w", grid.ErrOutOfBounds)

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// CostFunc returns the speed of moving from one cell to an adjacent one,
// given the value stored in the destination. Values <= 0 or NaN mark the move
// impassable; larger speeds are cheaper (cost = 1/speed).
type CostFunc[T any] func(from, to grid.Pos, v T) float64

// Status classifies how a search ended.
type Status int

const (
	// NoPath means the frontier emptied before the target was reached.
	NoPath Status = iota
	// Found means Result.Path holds a route from start to target.
	Found
	// BudgetExceeded means the expansion budget ran out first.
	BudgetExceeded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoPath:
		return "no path"
	case BudgetExceeded:
		return "budget exceeded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of a search.
//   - Path: start..target inclusive when Status == Found, nil otherwise.
//   - Cost: accumulated move costs plus turn penalties along Path.
//   - Expanded: number of frontier dequeues performed.
type Result struct {
	Status   Status
	Path     []grid.Pos
	Cost     float64
	Expanded int
}

// OK reports whether a path was found.
func (r Result) OK() bool { return r.Status == Found }

// Options configures a search.
//
// Ctx           – checked once per dequeue; cancellation aborts with ctx.Err().
// TurnPenalty   – added when consecutive moves change direction. >= 0, finite.
// MaxExpansions – dequeue budget; 0 means unlimited.
// Diagonal      – enables eight-way expansion.
// DiagonalCost  – heuristic multiplier for diagonal steps; 1 when Diagonal is off.
type Options struct {
	Ctx           context.Context
	TurnPenalty   float64
	MaxExpansions int
	Diagonal      bool
	DiagonalCost  float64

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns background context, no turn penalty, unlimited
// expansions and cardinal movement only.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		TurnPenalty:   0,
		MaxExpansions: 0,
		Diagonal:      false,
		DiagonalCost:  1,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTurnPenalty sets the cost added on every direction change.
// Negative, NaN or infinite values are ErrOptionViolation.
func WithTurnPenalty(p float64) Option {
	return func(o *Options) {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			o.err = fmt.Errorf("%w: turn penalty must be finite and >= 0 (got %v)", ErrOptionViolation, p)
			return
		}
		o.TurnPenalty = p
	}
}

// WithMaxExpansions caps the number of frontier dequeues.
//
//	n > 0:  budget of n expansions
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithDiagonal enables diagonal movement with heuristic multiplier m.
// m must be finite and > 0.
func WithDiagonal(m float64) Option {
	return func(o *Options) {
		if !(m > 0) || math.IsInf(m, 0) {
			o.err = fmt.Errorf("%w: diagonal multiplier must be finite and > 0 (got %v)", ErrOptionViolation, m)
			return
		}
		o.Diagonal = true
		o.DiagonalCost = m
	}
}
