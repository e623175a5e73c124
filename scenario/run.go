// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridkit/astar"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/ctxlog"
	"github.com/katalvlaran/gridkit/neighbors"
	"github.com/katalvlaran/gridkit/traverse"
)

// ErrNilScenario indicates Run was called without a scenario.
var ErrNilScenario = errors.New("scenario: scenario is nil")

// Run executes every search of sc in file order and returns one Outcome per
// search. It stops at the first error, which is ctx.Err() for a cancelled
// context.
func Run(ctx context.Context, sc *Scenario) ([]Outcome, error) {
	if sc == nil {
		return nil, ErrNilScenario
	}
	logger := ctxlog.FromContext(ctx).With("scenario", sc.Name)
	logger.Info("Running scenario.", "size", sc.grid.Size().String(), "searches", len(sc.Searches))

	out := make([]Outcome, 0, len(sc.Searches))
	for _, s := range sc.Searches {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		l := logger.With("search", s.Name, "algorithm", string(s.Algorithm))
		l.Debug("Search started.", "start", s.Start.String())

		o, err := runOne(ctx, sc, s)
		if err != nil {
			l.Error("Search failed.", "error", err)
			return out, fmt.Errorf("search %q: %w", s.Name, err)
		}
		l.Info("Search finished.", "found", o.Found, "cells", len(o.Path), "cost", o.Cost, "expanded", o.Expanded)
		out = append(out, o)
	}

	return out, nil
}

// runOne dispatches a single search.
func runOne(ctx context.Context, sc *Scenario, s Search) (Outcome, error) {
	if s.Algorithm == AStar {
		return runAStar(ctx, sc, s)
	}

	return runTraverse(sc, s)
}

func runAStar(ctx context.Context, sc *Scenario, s Search) (Outcome, error) {
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithTurnPenalty(s.TurnPenalty),
		astar.WithMaxExpansions(s.MaxExpansions),
	}
	if s.Diagonal > 0 {
		opts = append(opts, astar.WithDiagonal(s.Diagonal))
	}

	res, err := astar.Search(sc.grid, s.Start, s.Target, sc.Cost(), opts...)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{
		Search:   s,
		Found:    res.OK(),
		Status:   res.Status,
		Path:     res.Path,
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}, nil
}

func runTraverse(sc *Scenario, s Search) (Outcome, error) {
	policy := neighbors.Cardinal4
	if s.Algorithm == Flood8 {
		policy = neighbors.Full8
	}
	if s.Wrap {
		policy = policy.Wrapping()
	}

	o := Outcome{Search: s}
	opts := []traverse.Option{
		traverse.WithPolicy(policy),
		traverse.WithMaxDepth(s.MaxDepth),
		traverse.WithOnVisit(func(grid.Pos, int) { o.Expanded++ }),
	}
	match := func(_ grid.Pos, v rune) bool { return v == s.Match }

	switch s.Algorithm {
	case Components:
		regions, err := traverse.Components(sc.grid, match, opts...)
		if err != nil {
			return Outcome{}, err
		}
		for _, r := range regions {
			ps := make([]grid.Pos, len(r))
			for i, m := range r {
				ps[i] = m.Pos
			}
			o.Regions = append(o.Regions, ps)
		}
		slices.SortStableFunc(o.Regions, func(a, b []grid.Pos) int { return len(b) - len(a) })
		o.Found = len(o.Regions) > 0
		if o.Found {
			o.Path = o.Regions[0]
		}
		return o, nil
	case Find:
		m, ok, err := traverse.Find(sc.grid, s.Start, match, opts...)
		if err != nil {
			return Outcome{}, err
		}
		if ok {
			o.Found, o.Path = true, []grid.Pos{m.Pos}
		}
		return o, nil
	}

	region, err := traverse.Flood(sc.grid, s.Start, match, opts...)
	if err != nil {
		return Outcome{}, err
	}
	o.Found = len(region) > 0
	for _, m := range region {
		o.Path = append(o.Path, m.Pos)
	}

	return o, nil
}
