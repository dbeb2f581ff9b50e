package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/logging"
)

// Sentinel errors for search execution.
var (
	// ErrNilGoal is returned when no goal predicate is supplied.
	ErrNilGoal = errors.New("search: goal function is nil")

	// ErrNilExpand is returned when no expansion function is supplied.
	ErrNilExpand = errors.New("search: expand function is nil")

	// ErrNilPriority is returned when no priority function is supplied.
	ErrNilPriority = errors.New("search: priority function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned together with a partial result when
	// MaxExpansions is reached before the search ends.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadNode is returned when expand yields a nil node or a node whose
	// path does not end in its own state.
	ErrBadNode = errors.New("search: malformed node from expand")

	// ErrNegativeCost is returned when a child's accumulated cost is lower
	// than its parent's.
	ErrNegativeCost = errors.New("search: negative edge cost")

	// ErrUnknownStrategy is returned by PriorityFor and ParseStrategy for
	// names that do not map to a priority function.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Node is a discovered search state plus the route that reached it.
//
// Path always ends with State and is never shared with another Node.
type Node[S comparable] struct {
	// State is the opaque application state.
	State S

	// Path lists every state from the root to State, inclusive.
	Path []S

	// Cost is the sum of edge costs along Path.
	Cost float64

	// Seq is the discovery counter assigned by the engine when the node
	// enters the frontier. The root has Seq 0.
	Seq int
}

// Root returns the node for a start state: one-element path, zero cost.
func Root[S comparable](s S) *Node[S] {
	return &Node[S]{State: s, Path: []S{s}}
}

// Extend returns a child of n reached through an edge of the given cost.
// The child owns a freshly allocated path.
func (n *Node[S]) Extend(s S, edgeCost float64) *Node[S] {
	path := make([]S, len(n.Path), len(n.Path)+1)
	copy(path, n.Path)
	path = append(path, s)

	return &Node[S]{State: s, Path: path, Cost: n.Cost + edgeCost}
}

// Actions returns the number of edges taken from the root.
func (n *Node[S]) Actions() int { return len(n.Path) - 1 }

// Visited is the read-only view of discovered states handed to ExpandFunc.
type Visited[S comparable] interface {
	Contains(s S) bool
	Len() int
}

// GoalFunc reports whether s is a terminal state.
type GoalFunc[S comparable] func(s S) bool

// ExpandFunc returns the neighbors of n that are not in visited. Each
// returned node must be built with n.Extend.
type ExpandFunc[S comparable] func(n *Node[S], visited Visited[S]) []*Node[S]

// Priority ranks frontier nodes; lower values are selected first.
type Priority[S comparable] func(n *Node[S]) float64

// Heuristic estimates the remaining cost from s to the goal it was built for.
type Heuristic[S comparable] func(s S) float64

// Outcome is the terminal status of a search.
type Outcome int

const (
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted Outcome = iota
	// Found means a goal state was reached.
	Found
)

// String returns "exhausted" or "found".
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result holds the outcome of a search:
//   - Node: the goal node when Outcome == Found, nil otherwise.
//   - Expanded: nodes removed from the frontier and processed.
//   - Discovered: distinct states added to the visited set, start included.
//   - MaxFrontier: largest frontier size observed.
//   - Order: states in selection order, recorded only with WithTrace.
type Result[S comparable] struct {
	Outcome     Outcome
	Node        *Node[S]
	Expanded    int
	Discovered  int
	MaxFrontier int
	Order       []S
}

// Found reports whether a goal was reached.
func (r *Result[S]) Found() bool { return r != nil && r.Outcome == Found && r.Node != nil }

// Path returns the goal path or nil when nothing was found.
func (r *Result[S]) Path() []S {
	if !r.Found() {
		return nil
	}

	return r.Node.Path
}

// Cost returns the goal's accumulated cost, or 0 when nothing was found.
func (r *Result[S]) Cost() float64 {
	if !r.Found() {
		return 0
	}

	return r.Node.Cost
}

// DuplicatePolicy decides what happens when a state is reached again.
type DuplicatePolicy int

const (
	// KeepFirst marks states visited on discovery; later copies are dropped
	// even when cheaper.
	KeepFirst DuplicatePolicy = iota

	// Reopen queues a state again whenever it is reached at a strictly lower
	// cost than any earlier copy, even after it was expanded. Superseded
	// entries are skipped when popped, and expand sees no state as visited.
	Reopen
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case KeepFirst:
		return "keep-first"
	case Reopen:
		return "reopen"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy maps "keep-first" or "reopen" to a DuplicatePolicy.
func ParseDuplicatePolicy(name string) (DuplicatePolicy, error) {
	for _, p := range []DuplicatePolicy{KeepFirst, Reopen} {
		if p.String() == name {
			return p, nil
		}
	}

	return KeepFirst, fmt.Errorf("%w: unknown duplicate policy %q", ErrOptionViolation, name)
}

// Option configures Search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds the tunables for one Search call.
type Options struct {
	// Policy selects duplicate handling. Default KeepFirst.
	Policy DuplicatePolicy

	// EarlyGoal tests the goal when a node is discovered instead of when it
	// is selected from the frontier.
	EarlyGoal bool

	// MaxExpansions, if > 0, caps the number of expansions.
	MaxExpansions int

	// Trace records the selection order in Result.Order.
	Trace bool

	// Logger receives debug events. Default discards everything.
	Logger *logging.Logger

	err error
}

// DefaultOptions returns Options with KeepFirst, selection-time goal test,
// no expansion cap, no trace and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Policy: KeepFirst,
		Logger: logging.NoopLogger(),
	}
}

// WithDuplicatePolicy selects KeepFirst or Reopen.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) {
		switch p {
		case KeepFirst, Reopen:
			o.Policy = p
		default:
			o.err = fmt.Errorf("%w: unknown duplicate policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithEarlyGoalTest checks the goal as soon as a node is discovered.
func WithEarlyGoalTest() Option {
	return func(o *Options) { o.EarlyGoal = true }
}

// WithMaxExpansions stops the search after n expansions.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithTrace records the selection order in Result.Order.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithLogger routes per-expansion debug events to l.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
