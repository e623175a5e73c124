// SPDX-License-Identifier: MIT

package traverse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/neighbors"
)

// Sentinel errors for traversal.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("traverse: grid is nil")

	// ErrNilPredicate is returned if the match predicate is nil.
	ErrNilPredicate = errors.New("traverse: predicate is nil")

	// ErrStartOutOfBounds is returned when the start position is outside the grid.
	// It wraps grid.ErrOutOfBounds.
	ErrStartOutOfBounds = fmt.Errorf("traverse: start %w", grid.ErrOutOfBounds)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Predicate decides whether the cell at p holding v matches.
type Predicate[T any] func(p grid.Pos, v T) bool

// Match is a matched cell.
type Match[T any] struct {
	Pos   grid.Pos
	Value T
}

// Option configures a traversal via functional arguments. Invalid options are
// recorded and surfaced as an error when the traversal starts.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Policy selects the neighborhood used for expansion.
	Policy neighbors.Policy

	// MaxDepth, if > 0, stops enqueueing cells beyond this many steps from start.
	MaxDepth int

	// OnVisit is called for every cell tested against the predicate.
	OnVisit func(p grid.Pos, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns cardinal connectivity, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Policy:   neighbors.Cardinal4,
		MaxDepth: 0,
		OnVisit:  func(grid.Pos, int) {},
	}
}

// WithPolicy selects the neighbor policy. An invalid policy is reported as
// neighbors.ErrBadPolicy when the traversal runs.
func WithPolicy(p neighbors.Policy) Option {
	return func(o *Options) {
		if err := p.Validate(); err != nil {
			o.err = err
			return
		}
		o.Policy = p
	}
}

// WithMaxDepth limits how far from start the search expands.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook run for each tested cell.
func WithOnVisit(fn func(p grid.Pos, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
