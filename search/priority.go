package search

import (
	"fmt"
	"strings"
)

// Strategy names a priority function for configuration surfaces such as
// command-line flags.
type Strategy string

// Known strategies.
const (
	StrategyGreedy      Strategy = "greedy"
	StrategyUniformCost Strategy = "uniform"
	StrategyActionCount Strategy = "actions"
	StrategyAStar       Strategy = "astar"
	StrategyBreadth     Strategy = "breadth"
	StrategyDepth       Strategy = "depth"
)

// Strategies lists every known strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyGreedy,
		StrategyUniformCost,
		StrategyActionCount,
		StrategyAStar,
		StrategyBreadth,
		StrategyDepth,
	}
}

// aliases accepts the mode names used by older scripts.
var aliases = map[string]Strategy{
	"branchandbound_distance": StrategyUniformCost,
	"branchandbound_actions":  StrategyActionCount,
	"depth-first":             StrategyDepth,
	"breadth-first":           StrategyBreadth,
	"a*":                      StrategyAStar,
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if string(s) == key {
			return s, nil
		}
	}
	if s, ok := aliases[key]; ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NeedsHeuristic reports whether the strategy reads a Heuristic.
func (s Strategy) NeedsHeuristic() bool {
	return s == StrategyGreedy || s == StrategyAStar
}

// PriorityFor returns the priority function for s. h is required for
// greedy and A*, ignored otherwise.
func PriorityFor[S comparable](s Strategy, h Heuristic[S]) (Priority[S], error) {
	if s.NeedsHeuristic() && h == nil {
		return nil, fmt.Errorf("%w: %s needs a heuristic", ErrOptionViolation, s)
	}
	switch s {
	case StrategyGreedy:
		return Greedy(h), nil
	case StrategyUniformCost:
		return UniformCost[S](), nil
	case StrategyActionCount:
		return ActionCount[S](), nil
	case StrategyAStar:
		return AStar(h), nil
	case StrategyBreadth:
		return BreadthFirst[S](), nil
	case StrategyDepth:
		return DepthFirst[S](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}

// Greedy ranks nodes by the heuristic alone.
func Greedy[S comparable](h Heuristic[S]) Priority[S] {
	return func(n *Node[S]) float64 { return h(n.State) }
}

// UniformCost ranks nodes by accumulated cost (branch-and-bound by distance).
func UniformCost[S comparable]() Priority[S] {
	return func(n *Node[S]) float64 { return n.Cost }
}

// ActionCount ranks nodes by path length (branch-and-bound by actions).
func ActionCount[S comparable]() Priority[S] {
	return func(n *Node[S]) float64 { return float64(len(n.Path)) }
}

// AStar ranks nodes by accumulated cost plus the heuristic.
func AStar[S comparable](h Heuristic[S]) Priority[S] {
	return func(n *Node[S]) float64 { return n.Cost + h(n.State) }
}

// BreadthFirst selects the oldest discovered node first.
func BreadthFirst[S comparable]() Priority[S] {
	return func(n *Node[S]) float64 { return float64(n.Seq) }
}

// DepthFirst selects the newest discovered node first.
func DepthFirst[S comparable]() Priority[S] {
	return func(n *Node[S]) float64 { return -float64(n.Seq) }
}
