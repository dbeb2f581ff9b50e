package pitcher

import (
	"errors"
	"fmt"
)

// Sentinel errors for puzzle construction and action application.
var (
	// ErrBadCapacity is returned when a capacity is not positive.
	ErrBadCapacity = errors.New("pitcher: capacity must be positive")

	// ErrBadTarget is returned when the target volume is negative.
	ErrBadTarget = errors.New("pitcher: target must be non-negative")

	// ErrUnknownAction is returned when an Action outside 1..5 is applied.
	ErrUnknownAction = errors.New("pitcher: unknown action")

	// ErrBadState is returned when a state holds more than a pitcher's
	// capacity or a negative volume.
	ErrBadState = errors.New("pitcher: state out of range")

	// ErrNoAction is returned by Actions when two consecutive states are not
	// linked by any action.
	ErrNoAction = errors.New("pitcher: states not linked by an action")
)

// State holds the current volume of both pitchers.
type State struct {
	Small int // p3 in the classic puzzle
	Large int // p5 in the classic puzzle
}

// String renders the state as (small,large).
func (s State) String() string { return fmt.Sprintf("(%d,%d)", s.Small, s.Large) }

// Capacities are the pitcher sizes.
type Capacities struct {
	Small int
	Large int
}

// Action is one of the five moves of the puzzle. The numeric values match
// the classic numbering 1..5.
type Action int

const (
	// FillSmall fills the small pitcher from the tap.
	FillSmall Action = iota + 1
	// PourSmallToLarge pours until the small one is empty or the large one full.
	PourSmallToLarge
	// PourLargeToSmall pours until the large one is empty or the small one full.
	PourLargeToSmall
	// EmptySmall drains the small pitcher.
	EmptySmall
	// EmptyLarge drains the large pitcher.
	EmptyLarge
)

// AllActions returns the five actions in their classic order.
func AllActions() []Action {
	return []Action{FillSmall, PourSmallToLarge, PourLargeToSmall, EmptySmall, EmptyLarge}
}

// String returns a short human-readable action name.
func (a Action) String() string {
	switch a {
	case FillSmall:
		return "fill-small"
	case PourSmallToLarge:
		return "pour-small-large"
	case PourLargeToSmall:
		return "pour-large-small"
	case EmptySmall:
		return "empty-small"
	case EmptyLarge:
		return "empty-large"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Option configures a Puzzle.
type Option func(*Options)

// Options holds the puzzle parameters.
type Options struct {
	// Caps are the pitcher sizes. Default {3, 5}.
	Caps Capacities

	// Target is the goal volume of the large pitcher. Default 4.
	Target int

	// Start is the initial state. Default (0,0).
	Start State

	// Order is the sequence in which actions are tried during expansion.
	// Default AllActions().
	Order []Action

	err error
}

// DefaultOptions returns the classic 3/5 puzzle with target 4 from (0,0).
func DefaultOptions() Options {
	return Options{
		Caps:   Capacities{Small: 3, Large: 5},
		Target: 4,
		Order:  AllActions(),
	}
}

// WithCapacities sets both pitcher sizes; each must be > 0.
func WithCapacities(small, large int) Option {
	return func(o *Options) {
		if small <= 0 || large <= 0 {
			o.err = fmt.Errorf("%w: small=%d large=%d", ErrBadCapacity, small, large)
			return
		}
		o.Caps = Capacities{Small: small, Large: large}
	}
}

// WithTarget sets the goal volume of the large pitcher. A target larger
// than the capacity is allowed and makes the puzzle unsolvable.
func WithTarget(v int) Option {
	return func(o *Options) {
		if v < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadTarget, v)
			return
		}
		o.Target = v
	}
}

// WithStart sets the initial state. It is validated against the
// capacities when the puzzle is built.
func WithStart(s State) Option {
	return func(o *Options) { o.Start = s }
}

// WithActionOrder sets the order in which actions are tried. Every action
// must be one of AllActions.
func WithActionOrder(order ...Action) Option {
	return func(o *Options) {
		for _, a := range order {
			if a < FillSmall || a > EmptyLarge {
				o.err = fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
				return
			}
		}
		if len(order) > 0 {
			o.Order = append([]Action(nil), order...)
		}
	}
}
