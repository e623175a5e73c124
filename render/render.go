// SPDX-License-Identifier: MIT

// Package render paints rune grids and search results onto a tcell screen.
//
// Draw writes one screen cell per grid cell starting at the configured
// origin, then overlays the path: '*' for intermediate steps, 'S' for the
// first position and 'T' for the last. An optional caption goes on the row
// below the grid. Cells beyond the screen edge are clipped.
//
// Interact draws, shows the screen and blocks until a key is pressed,
// redrawing on resize.
package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridkit/grid"
)

// Glyphs used for path overlays.
const (
	PathGlyph   = '*'
	StartGlyph  = 'S'
	TargetGlyph = 'T'
)

// Sentinel errors returned by Draw and Interact.
var (
	ErrNilScreen = errors.New("render: screen is nil")
	ErrNilGrid   = errors.New("render: grid is nil")
	// ErrPathOutOfBounds wraps grid.ErrOutOfBounds for path positions off the grid.
	ErrPathOutOfBounds = fmt.Errorf("render: path %w", grid.ErrOutOfBounds)
)

// Options controls drawing.
type Options struct {
	OriginX, OriginY int
	Caption          string

	// Palette overrides the style of specific grid runes.
	Palette map[rune]tcell.Style
	Base    tcell.Style
	Path    tcell.Style
	Ends    tcell.Style
}

// Option is a functional option for Draw.
type Option func(*Options)

// DefaultOptions draws at (0,0) with walls in grey and the path in yellow.
func DefaultOptions() Options {
	return Options{
		Palette: map[rune]tcell.Style{
			'#': tcell.StyleDefault.Foreground(tcell.ColorGray),
			'~': tcell.StyleDefault.Foreground(tcell.ColorBlue),
		},
		Base: tcell.StyleDefault,
		Path: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Ends: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// WithOrigin moves the top-left corner of the grid on screen.
func WithOrigin(x, y int) Option {
	return func(o *Options) { o.OriginX, o.OriginY = x, y }
}

// WithCaption sets the line printed below the grid.
func WithCaption(s string) Option {
	return func(o *Options) { o.Caption = s }
}

// WithStyle sets the style of one grid rune.
func WithStyle(r rune, s tcell.Style) Option {
	return func(o *Options) {
		p := make(map[rune]tcell.Style, len(o.Palette)+1)
		for k, v := range o.Palette {
			p[k] = v
		}
		p[r] = s
		o.Palette = p
	}
}

// WithPathStyle sets the styles of path steps and of the two endpoints.
func WithPathStyle(step, ends tcell.Style) Option {
	return func(o *Options) { o.Path, o.Ends = step, ends }
}

// Draw paints g and path onto screen without calling Show.
func Draw(screen tcell.Screen, g *grid.Grid[rune], path []grid.Pos, opts ...Option) error {
	if screen == nil {
		return ErrNilScreen
	}
	if g == nil {
		return ErrNilGrid
	}
	for _, p := range path {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v in %v grid", ErrPathOutOfBounds, p, g.Size())
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sw, sh := screen.Size()
	put := func(x, y int, r rune, st tcell.Style) {
		x, y = x+o.OriginX, y+o.OriginY
		if x < 0 || y < 0 || x >= sw || y >= sh {
			return
		}
		screen.SetContent(x, y, r, nil, st)
	}

	for p, r := range g.All() {
		st, ok := o.Palette[r]
		if !ok {
			st = o.Base
		}
		put(p.X, p.Y, r, st)
	}
	for i, p := range path {
		switch {
		case i == 0:
			put(p.X, p.Y, StartGlyph, o.Ends)
		case i == len(path)-1:
			put(p.X, p.Y, TargetGlyph, o.Ends)
		default:
			put(p.X, p.Y, PathGlyph, o.Path)
		}
	}
	for i, r := range []rune(o.Caption) {
		put(i, g.Height(), r, o.Base)
	}

	return nil
}

// Interact draws g and path, shows the screen and waits for a key press.
// A resize event redraws. It returns nil when a key is pressed or the
// screen is finalized.
func Interact(screen tcell.Screen, g *grid.Grid[rune], path []grid.Pos, opts ...Option) error {
	redraw := func() error {
		if screen == nil {
			return ErrNilScreen
		}
		screen.Clear()
		if err := Draw(screen, g, path, opts...); err != nil {
			return err
		}
		screen.Show()
		return nil
	}
	if err := redraw(); err != nil {
		return err
	}

	for {
		switch screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}
