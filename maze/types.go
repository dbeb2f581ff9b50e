package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrBadCell indicates a character other than '#', '.', 'S' or 'G'.
	ErrBadCell = errors.New("maze: unknown cell character")
	// ErrNoStart indicates the grid has no 'S' or more than one.
	ErrNoStart = errors.New("maze: grid needs exactly one start 'S'")
	// ErrNoGoal indicates the grid has no 'G' or more than one.
	ErrNoGoal = errors.New("maze: grid needs exactly one goal 'G'")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Cell characters.
const (
	Wall  = '#'
	Open  = '.'
	Start = 'S'
	Goal  = 'G'
	Route = '*'
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	// A diagonal step costs √2 and may not cut a wall corner.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Cell is a grid coordinate; X grows to the right, Y grows downwards.
type Cell struct {
	X, Y int
}

// String renders the cell as "x:y".
func (c Cell) String() string { return fmt.Sprintf("%d:%d", c.X, c.Y) }

// Option configures a Maze.
type Option func(*Options)

// Options holds maze tunables.
type Options struct {
	Conn Connectivity
	err  error
}

// DefaultOptions returns Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity chooses Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}
