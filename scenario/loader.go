// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/internal/ctxlog"
)

// fileRoot is the top-level schema of a scenario file.
type fileRoot struct {
	Map      *mapBlock      `hcl:"map,block"`
	Searches []*searchBlock `hcl:"search,block"`
}

type mapBlock struct {
	Rows   []string  `hcl:"rows"`
	Speeds cty.Value `hcl:"speeds,optional"`
}

type searchBlock struct {
	Name          string  `hcl:"name,label"`
	Algorithm     string  `hcl:"algorithm"`
	Start         []int   `hcl:"start,optional"`
	Target        []int   `hcl:"target,optional"`
	TurnPenalty   float64 `hcl:"turn_penalty,optional"`
	Diagonal      float64 `hcl:"diagonal,optional"`
	MaxExpansions int     `hcl:"max_expansions,optional"`
	Match         string  `hcl:"match,optional"`
	MaxDepth      int     `hcl:"max_depth,optional"`
	Wrap          bool    `hcl:"wrap,optional"`
}

// Load reads and validates the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrSyntax, path, diags)
	}

	return decode(ctx, file, path)
}

// Parse validates a scenario held in memory. filename is used in diagnostics
// and becomes the scenario name.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrSyntax, filename, diags)
	}

	return decode(ctx, file, filename)
}

// decode maps the HCL body onto fileRoot and validates it.
func decode(ctx context.Context, file *hcl.File, name string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx).With("scenario", name)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrSyntax, name, diags)
	}
	if root.Map == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMap, name)
	}

	g, err := buildGrid(root.Map.Rows)
	if err != nil {
		return nil, err
	}
	speeds, err := decodeSpeeds(root.Map.Speeds)
	if err != nil {
		return nil, err
	}
	if speeds != nil {
		for p, r := range g.All() {
			if _, ok := speeds[r]; !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownRune, r, p)
			}
		}
	}

	sc := &Scenario{Name: name, grid: g, speeds: speeds}
	seen := make(map[string]struct{}, len(root.Searches))
	for _, b := range root.Searches {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate search %q", ErrBadSearch, b.Name)
		}
		seen[b.Name] = struct{}{}

		s, err := buildSearch(b, g.Size())
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", b.Name, err)
		}
		sc.Searches = append(sc.Searches, s)
	}

	logger.Debug("Scenario decoded.", "size", g.Size().String(), "searches", len(sc.Searches), "custom_speeds", speeds != nil)
	return sc, nil
}

// buildGrid turns map rows into a rune grid, one rune per cell.
func buildGrid(rows []string) (*grid.Grid[rune], error) {
	rs := make([][]rune, len(rows))
	for i, row := range rows {
		rs[i] = []rune(row)
	}
	g, err := grid.FromRows(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadMap, err)
	}

	return g, nil
}

// decodeSpeeds converts the speeds object into a rune table. A null value
// yields a nil table, which selects the default speeds.
func decodeSpeeds(val cty.Value) (map[rune]float64, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: speeds must be a constant object", ErrBadMap)
	}
	conv, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("%w: speeds: %w", ErrBadMap, err)
	}
	var raw map[string]float64
	if err := gocty.FromCtyValue(conv, &raw); err != nil {
		return nil, fmt.Errorf("%w: speeds: %w", ErrBadMap, err)
	}

	speeds := make(map[rune]float64, len(raw))
	for k, v := range raw {
		if utf8.RuneCountInString(k) != 1 {
			return nil, fmt.Errorf("%w: speeds key %q must be a single character", ErrBadMap, k)
		}
		r, _ := utf8.DecodeRuneInString(k)
		speeds[r] = v
	}

	return speeds, nil
}

// buildSearch validates one search block against the map size.
func buildSearch(b *searchBlock, size grid.Size) (Search, error) {
	alg, err := parseAlgorithm(b.Algorithm)
	if err != nil {
		return Search{}, err
	}
	s := Search{Name: b.Name, Algorithm: alg}
	if alg != Components {
		if s.Start, err = toPos("start", b.Start, size); err != nil {
			return Search{}, err
		}
	}

	if alg == AStar {
		if b.Target == nil {
			return Search{}, fmt.Errorf("%w: astar needs a target", ErrBadSearch)
		}
		if s.Target, err = toPos("target", b.Target, size); err != nil {
			return Search{}, err
		}
		if b.TurnPenalty < 0 {
			return Search{}, fmt.Errorf("%w: turn_penalty must be >= 0", ErrBadSearch)
		}
		if b.Diagonal < 0 {
			return Search{}, fmt.Errorf("%w: diagonal must be > 0 when set", ErrBadSearch)
		}
		if b.MaxExpansions < 0 {
			return Search{}, fmt.Errorf("%w: max_expansions must be >= 0", ErrBadSearch)
		}
		s.TurnPenalty, s.Diagonal, s.MaxExpansions = b.TurnPenalty, b.Diagonal, b.MaxExpansions

		return s, nil
	}

	if utf8.RuneCountInString(b.Match) != 1 {
		return Search{}, fmt.Errorf("%w: %s needs a single-character match", ErrBadSearch, alg)
	}
	if b.MaxDepth < 0 {
		return Search{}, fmt.Errorf("%w: max_depth must be >= 0", ErrBadSearch)
	}
	s.Match, _ = utf8.DecodeRuneInString(b.Match)
	s.MaxDepth, s.Wrap = b.MaxDepth, b.Wrap

	return s, nil
}

// toPos converts an [x, y] pair and checks it lies on the map.
func toPos(attr string, xy []int, size grid.Size) (grid.Pos, error) {
	if len(xy) != 2 {
		return grid.Pos{}, fmt.Errorf("%w: %s must be [x, y], got %d values", ErrBadSearch, attr, len(xy))
	}
	p := grid.P(xy[0], xy[1])
	if !size.Contains(p) {
		return grid.Pos{}, fmt.Errorf("%w: %s %v: %w", ErrBadSearch, attr, p, grid.ErrOutOfBounds)
	}

	return p, nil
}
