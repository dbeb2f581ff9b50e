// Package search provides a generic best-first graph search: one engine,
// many strategies, selected by the priority function alone.
//
// What
//
//   - Search(start, isGoal, expand, priority, opts...) explores states of any
//     comparable type S, always expanding the frontier node with the lowest
//     priority. Ties go to the node discovered first.
//   - Returns a Result with the goal Node (Path, Cost), or Outcome Exhausted
//     when the reachable space holds no goal.
//   - Node.Extend copies the parent path, so sibling nodes never alias.
//
// Strategies
//
//	Greedy(h)       h(state)
//	UniformCost()   accumulated cost          (branch-and-bound by distance)
//	ActionCount()   len(path)                 (branch-and-bound by actions)
//	AStar(h)        cost + h(state)
//	BreadthFirst()  discovery counter          (FIFO)
//	DepthFirst()    negated discovery counter  (LIFO)
//
// PriorityFor maps a Strategy name to one of these and rejects unknown names
// with ErrUnknownStrategy.
//
// Duplicates
//
//	KeepFirst (default) marks a state visited when it is first discovered;
//	cheaper copies found later are dropped. Fine for BFS/DFS and greedy, can
//	be sub-optimal for uniform-cost and A*.
//	Reopen re-queues any state reached more cheaply, expanded or not, so
//	uniform-cost and A* with an admissible heuristic return the cheapest
//	path. expand sees no state as visited under Reopen.
//
// Usage
//
//	res, err := search.Search(start, isGoal, expand, search.AStar(h),
//	    search.WithMaxExpansions(10_000),
//	    search.WithDuplicatePolicy(search.Reopen),
//	)
//	if err != nil {
//	    // ErrNilGoal, ErrNilExpand, ErrNilPriority, ErrOptionViolation,
//	    // ErrBadNode, ErrNegativeCost or ErrExpansionLimit
//	}
//	if res.Found() {
//	    fmt.Println(res.Path(), res.Cost())
//	}
//
// Complexity (V = reachable states, E = edges examined)
//
//   - Time:   O((V + E) log V) heap operations plus the cost of expand.
//   - Memory: O(V) for the frontier and the visited set.
//
// Search is synchronous and owns all of its state; concurrent calls are safe
// as long as the collaborators they share are.
package search
