package pitcher

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// Puzzle is an immutable two-pitcher puzzle instance.
type Puzzle struct {
	caps   Capacities
	target int
	start  State
	order  []Action
}

// New builds a Puzzle. Returns ErrBadCapacity, ErrBadTarget,
// ErrUnknownAction or ErrBadState for invalid options.
func New(opts ...Option) (*Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	p := &Puzzle{caps: o.Caps, target: o.Target, start: o.Start, order: o.Order}
	if err := p.check(o.Start); err != nil {
		return nil, err
	}

	return p, nil
}

// Capacities returns the pitcher sizes.
func (p *Puzzle) Capacities() Capacities { return p.caps }

// Target returns the goal volume of the large pitcher.
func (p *Puzzle) Target() int { return p.target }

// Start returns the initial state.
func (p *Puzzle) Start() State { return p.start }

func (p *Puzzle) check(s State) error {
	if s.Small < 0 || s.Large < 0 || s.Small > p.caps.Small || s.Large > p.caps.Large {
		return fmt.Errorf("%w: %v with capacities %d/%d", ErrBadState, s, p.caps.Small, p.caps.Large)
	}

	return nil
}

// Apply returns the state reached from s by a. Pouring stops when the
// source is empty or the destination is full.
func (p *Puzzle) Apply(s State, a Action) (State, error) {
	switch a {
	case FillSmall:
		return State{Small: p.caps.Small, Large: s.Large}, nil
	case PourSmallToLarge:
		moved := min(s.Small, p.caps.Large-s.Large)
		return State{Small: s.Small - moved, Large: s.Large + moved}, nil
	case PourLargeToSmall:
		moved := min(s.Large, p.caps.Small-s.Small)
		return State{Small: s.Small + moved, Large: s.Large - moved}, nil
	case EmptySmall:
		return State{Small: 0, Large: s.Large}, nil
	case EmptyLarge:
		return State{Small: s.Small, Large: 0}, nil
	default:
		return s, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
}

// Run applies actions in sequence starting from s.
func (p *Puzzle) Run(s State, actions ...Action) (State, error) {
	if err := p.check(s); err != nil {
		return s, err
	}
	var err error
	for i, a := range actions {
		if s, err = p.Apply(s, a); err != nil {
			return s, fmt.Errorf("pitcher: step %d: %w", i, err)
		}
	}

	return s, nil
}

// IsGoal reports whether the large pitcher holds the target volume.
func (p *Puzzle) IsGoal(s State) bool { return s.Large == p.target }

// Heuristic is the distance of the large pitcher's volume from the target.
func (p *Puzzle) Heuristic(s State) float64 {
	return math.Abs(float64(s.Large - p.target))
}

// Expand returns the unvisited successors of n, one per action in the
// configured order. Every action costs 1.
func (p *Puzzle) Expand(n *search.Node[State], visited search.Visited[State]) []*search.Node[State] {
	out := make([]*search.Node[State], 0, len(p.order))
	for _, a := range p.order {
		next, err := p.Apply(n.State, a)
		if err != nil || visited.Contains(next) {
			continue
		}
		out = append(out, n.Extend(next, 1))
	}

	return out
}

// Actions recovers the action history of a state path. When several
// actions lead to the same state, the first in the configured order wins.
func (p *Puzzle) Actions(path []State) ([]Action, error) {
	if len(path) < 2 {
		return nil, nil
	}
	out := make([]Action, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		a, ok := p.link(path[i-1], path[i])
		if !ok {
			return out, fmt.Errorf("%w: %v→%v", ErrNoAction, path[i-1], path[i])
		}
		out = append(out, a)
	}

	return out, nil
}

func (p *Puzzle) link(from, to State) (Action, bool) {
	for _, a := range p.order {
		if next, err := p.Apply(from, a); err == nil && next == to {
			return a, true
		}
	}

	return 0, false
}

// Solve searches from the start state with the named strategy. The
// heuristic for greedy and A* is Heuristic.
func (p *Puzzle) Solve(strategy search.Strategy, opts ...search.Option) (*search.Result[State], error) {
	priority, err := search.PriorityFor[State](strategy, p.Heuristic)
	if err != nil {
		return nil, err
	}

	return search.Search(p.start, p.IsGoal, p.Expand, priority, opts...)
}
