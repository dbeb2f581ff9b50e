// Package lvsearch is a small toolkit for best-first search over any state
// space you can describe with a goal test and an expand function.
//
// 🚀 What is lvsearch?
//
//	One generic engine, six ways to rank the frontier:
//		• Greedy best-first (heuristic only)
//		• Uniform cost (branch & bound on distance)
//		• Fewest actions (branch & bound on path length)
//		• A* (cost + heuristic)
//		• Breadth-first and depth-first, as priorities over discovery order
//
// ✨ Why choose lvsearch?
//
//   - Deterministic: ties always break by discovery order
//   - Honest accounting: expanded, discovered and peak frontier on every result
//   - Pure functions: no global state, every run is independent and reproducible
//   - Pluggable: duplicate policy, early goal test, expansion cap, trace, slog logging
//
// Under the hood, everything is organized under these subpackages:
//
//	search/     the engine: Node, Result, Search, strategies and options
//	waypoint/   points from CSV linked within a distance threshold (roaring adjacency)
//	pitcher/    the classic 3- and 5-unit pitcher puzzle
//	maze/       character mazes with 4- or 8-connectivity
//	report/     console summaries and SVG plots
//	logging/    slog wrapper with search-specific fields
//	app/        lvsearch subcommands
//
// Quick ASCII example:
//
//	    S . # .
//	    * # # .
//	    * * * G
//
//	is the breadth-first route through a 4×3 maze.
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
