// Package maze treats a character grid as a search space for the generic
// engine in package search.
//
// What:
//
//   - '#' is a wall, '.' open floor, 'S' the single start and 'G' the single goal.
//   - States are Cell coordinates; Expand yields open neighbors clockwise from north.
//   - Conn4 moves cost 1. Conn8 adds diagonal moves costing √2 that may not cut a wall corner.
//   - Heuristic is Manhattan (Conn4) or octile (Conn8) distance, both admissible.
//   - Components groups open cells into regions; Connected tells whether the goal can be reached at all.
//
// Complexity:
//
//   - New/Parse:  O(W×H) time and memory.
//   - Components: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: unknown cell character.
//   - ErrNoStart, ErrNoGoal: start or goal missing or duplicated.
//   - ErrOptionViolation: invalid connectivity.
package maze
