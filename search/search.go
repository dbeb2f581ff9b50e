package search

import (
	"context"
	"errors"
	"fmt"
)

// walker encapsulates the mutable state of one Search call.
type walker[S comparable] struct {
	isGoal   GoalFunc[S]
	expand   ExpandFunc[S]
	priority Priority[S]
	opts     Options

	front      frontier[S]
	discovered stateSet[S]
	best       map[S]float64 // Reopen only: cheapest cost seen per state
	seq        int
	res        *Result[S]
}

// Search runs best-first search from start until isGoal holds for a selected
// node or the frontier is empty. Nodes are selected by minimal priority,
// ties broken by discovery order.
//
// An empty frontier is a normal negative result: Outcome == Exhausted and a
// nil error. Returns ErrNilGoal, ErrNilExpand or ErrNilPriority for missing
// collaborators, ErrOptionViolation for bad options, ErrBadNode or
// ErrNegativeCost for malformed nodes from expand, and ErrExpansionLimit
// (with the partial result) when MaxExpansions is hit.
func Search[S comparable](
	start S,
	isGoal GoalFunc[S],
	expand ExpandFunc[S],
	priority Priority[S],
	opts ...Option,
) (*Result[S], error) {
	if isGoal == nil {
		return nil, ErrNilGoal
	}
	if expand == nil {
		return nil, ErrNilExpand
	}
	if priority == nil {
		return nil, ErrNilPriority
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		isGoal:     isGoal,
		expand:     expand,
		priority:   priority,
		opts:       o,
		discovered: make(stateSet[S]),
		res:        &Result[S]{Outcome: Exhausted},
	}
	if o.Policy == Reopen {
		w.best = make(map[S]float64)
	}

	ctx := context.Background()
	res, err := w.run(ctx, Root(start))
	if errors.Is(err, ErrExpansionLimit) {
		o.Logger.LogStopped(ctx, err.Error(), res.Expanded, res.Discovered)
	} else {
		o.Logger.LogSearch(ctx, res.Outcome.String(), res.Expanded, res.Discovered, err)
	}

	return res, err
}

func (w *walker[S]) run(ctx context.Context, root *Node[S]) (*Result[S], error) {
	w.admit(root)
	if w.opts.EarlyGoal && w.isGoal(root.State) {
		return w.found(root), nil
	}

	for w.front.Len() > 0 {
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			w.res.Discovered = w.discovered.Len()
			return w.res, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.res.Expanded)
		}

		e := w.front.pop()
		n := e.node
		if w.stale(n) {
			continue
		}
		w.res.Expanded++
		if w.opts.Trace {
			w.res.Order = append(w.res.Order, n.State)
		}

		if !w.opts.EarlyGoal && w.isGoal(n.State) {
			return w.found(n), nil
		}

		children := w.expand(n, w.view())
		for _, c := range children {
			if err := validate(n, c); err != nil {
				w.res.Discovered = w.discovered.Len()
				return w.res, err
			}
			if !w.admit(c) {
				continue
			}
			if w.opts.EarlyGoal && w.isGoal(c.State) {
				return w.found(c), nil
			}
		}
		w.opts.Logger.LogExpand(ctx, n.State, e.priority, n.Cost, len(children), w.front.Len())
	}

	w.res.Discovered = w.discovered.Len()

	return w.res, nil
}

// view returns the visited set expand filters against. Under Reopen nothing
// is hidden, since any state may come back at a lower cost.
func (w *walker[S]) view() Visited[S] {
	if w.opts.Policy == Reopen {
		return unfiltered[S]{w.discovered}
	}

	return w.discovered
}

// stale reports whether a popped node was superseded by a cheaper copy of
// its state. Only Reopen leaves such entries behind.
func (w *walker[S]) stale(n *Node[S]) bool {
	return w.opts.Policy == Reopen && n.Cost > w.best[n.State]
}

// admit records n as discovered, assigns its Seq and pushes it onto the
// frontier. Returns false when the duplicate policy rejects n.
func (w *walker[S]) admit(n *Node[S]) bool {
	switch w.opts.Policy {
	case Reopen:
		if prev, ok := w.best[n.State]; ok && n.Cost >= prev {
			return false
		}
		w.best[n.State] = n.Cost
	default:
		if w.discovered.Contains(n.State) {
			return false
		}
	}
	w.discovered.add(n.State)

	n.Seq = w.seq
	w.seq++
	w.front.push(n, w.priority(n))
	if w.front.Len() > w.res.MaxFrontier {
		w.res.MaxFrontier = w.front.Len()
	}

	return true
}

func (w *walker[S]) found(n *Node[S]) *Result[S] {
	w.res.Outcome = Found
	w.res.Node = n
	w.res.Discovered = w.discovered.Len()

	return w.res
}

// validate checks the invariants every child from expand must satisfy.
func validate[S comparable](parent, child *Node[S]) error {
	if child == nil || len(child.Path) == 0 {
		return fmt.Errorf("%w: empty node expanding %v", ErrBadNode, parent.State)
	}
	if last := child.Path[len(child.Path)-1]; last != child.State {
		return fmt.Errorf("%w: path ends in %v, state is %v", ErrBadNode, last, child.State)
	}
	if child.Cost < parent.Cost {
		return fmt.Errorf("%w: %v→%v cost %g < %g", ErrNegativeCost, parent.State, child.State, child.Cost, parent.Cost)
	}

	return nil
}
