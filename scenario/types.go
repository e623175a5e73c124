// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/astar"
	"github.com/katalvlaran/gridkit/grid"
)

// Sentinel errors returned by Load and Parse.
var (
	// ErrSyntax indicates the file is not valid HCL or does not match the schema.
	ErrSyntax = errors.New("scenario: invalid HCL")

	// ErrNoMap indicates the file has no map block.
	ErrNoMap = errors.New("scenario: map block missing")

	// ErrBadMap indicates empty or ragged rows or a malformed speeds entry.
	ErrBadMap = errors.New("scenario: invalid map")

	// ErrUnknownRune indicates a map rune that speeds does not list.
	ErrUnknownRune = errors.New("scenario: rune has no speed")

	// ErrBadSearch indicates an invalid search block.
	ErrBadSearch = errors.New("scenario: invalid search")

	// ErrUnknownAlgorithm indicates an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("scenario: unknown algorithm")
)

// Algorithm names a search strategy.
type Algorithm string

// Supported algorithms.
const (
	AStar      Algorithm = "astar"
	Find       Algorithm = "find"
	Flood      Algorithm = "flood"
	Flood8     Algorithm = "flood8"
	Components Algorithm = "components"
)

// parseAlgorithm maps a case-insensitive name to an Algorithm.
func parseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AStar, Find, Flood, Flood8, Components:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Search is one validated search block.
type Search struct {
	Name          string
	Algorithm     Algorithm
	Start         grid.Pos // all but components
	Target        grid.Pos // astar only
	TurnPenalty   float64  // astar only
	Diagonal      float64  // astar only; 0 disables diagonal moves
	MaxExpansions int      // astar only; 0 means unlimited
	Match         rune     // all but astar
	MaxDepth      int      // all but astar; 0 means unlimited
	Wrap          bool     // all but astar
}

// Scenario is a decoded and validated scenario file.
type Scenario struct {
	Name     string
	Searches []Search

	grid   *grid.Grid[rune]
	speeds map[rune]float64
}

// Grid returns the scenario map. The grid is shared, not copied.
func (s *Scenario) Grid() *grid.Grid[rune] { return s.grid }

// Speed returns the movement speed for r.
func (s *Scenario) Speed(r rune) float64 {
	if s.speeds == nil {
		if r == '#' {
			return 0
		}
		return 1
	}

	return s.speeds[r]
}

// Cost returns an astar.CostFunc reading speeds of destination cells.
func (s *Scenario) Cost() astar.CostFunc[rune] {
	return func(_, _ grid.Pos, v rune) float64 { return s.Speed(v) }
}

// Outcome is the result of running one search.
//   - Path: the astar route, the found cell for find, or the region for flood.
//   - Regions: every region of Match for components, largest first.
//   - Found: a route, match or non-empty region exists.
//   - Status: astar only.
//   - Expanded: cells dequeued by the underlying search.
type Outcome struct {
	Search   Search
	Found    bool
	Status   astar.Status
	Path     []grid.Pos
	Regions  [][]grid.Pos
	Cost     float64
	Expanded int
}

// String renders the outcome on one line.
func (o Outcome) String() string {
	head := fmt.Sprintf("%s (%s): ", o.Search.Name, o.Search.Algorithm)
	switch o.Search.Algorithm {
	case AStar:
		if o.Status != astar.Found {
			return head + fmt.Sprintf("%s after %d expansions", o.Status, o.Expanded)
		}
		return head + fmt.Sprintf("found %d steps, cost %.4g, %d expansions", len(o.Path)-1, o.Cost, o.Expanded)
	case Find:
		if !o.Found {
			return head + fmt.Sprintf("no %q after %d cells", o.Search.Match, o.Expanded)
		}
		return head + fmt.Sprintf("%q at %v after %d cells", o.Search.Match, o.Path[0], o.Expanded)
	case Components:
		if len(o.Regions) == 0 {
			return head + fmt.Sprintf("no regions of %q", o.Search.Match)
		}
		return head + fmt.Sprintf("%d regions of %q, largest %d cells", len(o.Regions), o.Search.Match, len(o.Regions[0]))
	default:
		return head + fmt.Sprintf("%d cells of %q", len(o.Path), o.Search.Match)
	}
}
