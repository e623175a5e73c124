// SPDX-License-Identifier: MIT

package neighbors

import (
	"errors"
	"fmt"
)

// ErrBadPolicy is returned when a Policy cannot describe a valid neighborhood.
var ErrBadPolicy = errors.New("neighbors: invalid policy")

// Connectivity selects which offsets around a position are candidates.
type Connectivity int

const (
	// Cardinal uses the four orthogonal steps: N, W, E, S.
	Cardinal Connectivity = iota
	// Full uses all eight surrounding cells.
	Full
	// Diagonal uses the four corner cells only.
	Diagonal
	// Square uses every cell of the (2r+1)×(2r+1) block around the position.
	Square
	// Circle uses block cells whose Euclidean distance is at most r.
	Circle
)

// String returns the connectivity name.
func (c Connectivity) String() string {
	switch c {
	case Cardinal:
		return "cardinal"
	case Full:
		return "full"
	case Diagonal:
		return "diagonal"
	case Square:
		return "square"
	case Circle:
		return "circle"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// WrapMode selects how candidates beyond the grid edge are handled.
type WrapMode int

const (
	// NoWrap drops candidates outside the grid.
	NoWrap WrapMode = iota
	// WrapPerAxis wraps x modulo width and y modulo height.
	WrapPerAxis
	// WrapMaxExtent wraps both axes modulo max(width, height) and lists
	// cardinal steps as up, down, left, right.
	WrapMaxExtent
)

// Policy describes a neighborhood. The zero value is Cardinal without wrapping.
type Policy struct {
	Conn   Connectivity
	Radius int
	Wrap   WrapMode
}

// Preset policies.
var (
	Cardinal4 = Policy{Conn: Cardinal}
	Full8     = Policy{Conn: Full}
	Diagonal4 = Policy{Conn: Diagonal}
)

// SquareRadius returns a Square policy of radius r.
func SquareRadius(r int) Policy { return Policy{Conn: Square, Radius: r} }

// CircleRadius returns a Circle policy of radius r.
func CircleRadius(r int) Policy { return Policy{Conn: Circle, Radius: r} }

// Wrapping returns a copy of p that wraps per axis.
func (p Policy) Wrapping() Policy {
	p.Wrap = WrapPerAxis
	return p
}

// WrappingLegacy returns a copy of p that wraps both axes by the larger
// extent, in the legacy up, down, left, right order.
func (p Policy) WrappingLegacy() Policy {
	p.Wrap = WrapMaxExtent
	return p
}

// Validate reports whether p describes a usable neighborhood.
// Returns ErrBadPolicy wrapped with the offending field.
func (p Policy) Validate() error {
	switch p.Conn {
	case Cardinal, Full, Diagonal:
		if p.Radius != 0 {
			return fmt.Errorf("%w: %v connectivity takes no radius (got %d)", ErrBadPolicy, p.Conn, p.Radius)
		}
	case Square, Circle:
		if p.Radius < 1 {
			return fmt.Errorf("%w: %v radius must be >= 1 (got %d)", ErrBadPolicy, p.Conn, p.Radius)
		}
		if p.Wrap != NoWrap {
			return fmt.Errorf("%w: %v connectivity does not wrap", ErrBadPolicy, p.Conn)
		}
	default:
		return fmt.Errorf("%w: unknown connectivity %d", ErrBadPolicy, int(p.Conn))
	}
	switch p.Wrap {
	case NoWrap, WrapPerAxis, WrapMaxExtent:
	default:
		return fmt.Errorf("%w: unknown wrap mode %d", ErrBadPolicy, int(p.Wrap))
	}

	return nil
}

// String renders the policy, e.g. "cardinal", "square(r=2)", "full+wrap".
func (p Policy) String() string {
	s := p.Conn.String()
	if p.Conn == Square || p.Conn == Circle {
		s = fmt.Sprintf("%s(r=%d)", s, p.Radius)
	}
	switch p.Wrap {
	case WrapPerAxis:
		s += "+wrap"
	case WrapMaxExtent:
		s += "+wrap-legacy"
	}

	return s
}
