// Package pitcher models the two-pitcher puzzle as a search problem.
//
// Two pitchers of capacity 3 and 5 (configurable) start empty. Five actions
// are available: fill the small one from the tap, pour small→large, pour
// large→small, empty small, empty large. The goal is a given volume (4 by
// default) in the large pitcher.
//
// Puzzle plugs into search.Search directly:
//
//	p, _ := pitcher.New()
//	res, _ := search.Search(p.Start(), p.IsGoal, p.Expand, search.BreadthFirst[pitcher.State]())
//	actions, _ := p.Actions(res.Path())
//
// or through Solve with a strategy name. Every action costs 1, so
// breadth-first and uniform-cost return a shortest action sequence.
package pitcher
