// Package waypoint turns a list of 2D coordinates into a search problem:
// two waypoints are adjacent when they lie strictly closer than a threshold
// (1.3 units by default), and moving between them costs their Euclidean
// distance.
//
// Datasets are comma-delimited x,y records (Read, Load). By convention the
// first record is the start and the last record is the goal.
//
//	pts, err := waypoint.Load("HW1data.csv")
//	nw, err := waypoint.NewNetwork(pts, waypoint.WithThreshold(1.3))
//	res, err := nw.Solve(search.StrategyGreedy)
//
// Adjacency is precomputed once per Network as one roaring bitmap per
// waypoint, so Expand and Edges iterate neighbors in ascending index order
// and a Network can be shared by concurrent searches.
//
// Generate builds synthetic jittered lattices for demos and benchmarks.
package waypoint
