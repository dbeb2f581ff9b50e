package waypoint

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lvsearch/search"
)

// Network is an immutable set of waypoints with proximity adjacency.
// Search states are waypoint indices. A Network is safe for concurrent
// readers.
type Network struct {
	points    []Point
	threshold float64
	adj       []*roaring.Bitmap
}

// NewNetwork builds the adjacency of points: i and j are linked when
// Dist(points[i], points[j]) < threshold and i != j.
// Returns ErrEmptyDataset for no points or ErrBadThreshold.
// Complexity: O(n²) time, O(n + E) memory.
func NewNetwork(points []Point, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(points) == 0 {
		return nil, ErrEmptyDataset
	}

	nw := &Network{
		points:    append([]Point(nil), points...),
		threshold: o.Threshold,
		adj:       make([]*roaring.Bitmap, len(points)),
	}
	for i := range nw.adj {
		nw.adj[i] = roaring.New()
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if Dist(points[i], points[j]) < o.Threshold {
				nw.adj[i].Add(uint32(j))
				nw.adj[j].Add(uint32(i))
			}
		}
	}
	for _, bm := range nw.adj {
		bm.RunOptimize()
	}

	return nw, nil
}

// Len returns the number of waypoints.
func (nw *Network) Len() int { return len(nw.points) }

// Threshold returns the adjacency radius.
func (nw *Network) Threshold() float64 { return nw.threshold }

// Point returns the coordinate of waypoint i.
func (nw *Network) Point(i int) Point { return nw.points[i] }

// Points returns a copy of all coordinates in dataset order.
func (nw *Network) Points() []Point { return append([]Point(nil), nw.points...) }

// Start is the first waypoint of the dataset.
func (nw *Network) Start() int { return 0 }

// Goal is the last waypoint of the dataset.
func (nw *Network) Goal() int { return len(nw.points) - 1 }

// Neighbors returns the indices adjacent to i in ascending order.
func (nw *Network) Neighbors(i int) []int {
	if i < 0 || i >= len(nw.adj) {
		return nil
	}
	ids := nw.adj[i].ToArray()
	out := make([]int, len(ids))
	for k, id := range ids {
		out[k] = int(id)
	}

	return out
}

// Degree returns the number of waypoints adjacent to i.
func (nw *Network) Degree(i int) int {
	if i < 0 || i >= len(nw.adj) {
		return 0
	}

	return int(nw.adj[i].GetCardinality())
}

// Edges lists every adjacent pair once, ordered by From then To.
func (nw *Network) Edges() []Edge {
	var out []Edge
	for i, bm := range nw.adj {
		it := bm.Iterator()
		for it.HasNext() {
			if j := int(it.Next()); j > i {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}

// Expand returns the unvisited waypoints adjacent to n in dataset order.
// The edge cost is the Euclidean distance.
func (nw *Network) Expand(n *search.Node[int], visited search.Visited[int]) []*search.Node[int] {
	from := nw.points[n.State]
	var out []*search.Node[int]
	it := nw.adj[n.State].Iterator()
	for it.HasNext() {
		j := int(it.Next())
		if visited.Contains(j) {
			continue
		}
		out = append(out, n.Extend(j, Dist(from, nw.points[j])))
	}

	return out
}

// IsAt returns a goal test matching any waypoint at the same coordinate as
// waypoint goal.
func (nw *Network) IsAt(goal int) search.GoalFunc[int] {
	target := nw.points[goal]
	return func(i int) bool { return nw.points[i] == target }
}

// DistanceTo returns the straight-line heuristic towards waypoint goal.
// It never overestimates, so A* with it is admissible.
func (nw *Network) DistanceTo(goal int) search.Heuristic[int] {
	target := nw.points[goal]
	return func(i int) float64 { return Dist(nw.points[i], target) }
}

// Coordinates maps a path of indices to coordinates.
func (nw *Network) Coordinates(path []int) []Point {
	out := make([]Point, len(path))
	for k, i := range path {
		out[k] = nw.points[i]
	}

	return out
}

// Solve searches from Start to Goal with the named strategy.
func (nw *Network) Solve(strategy search.Strategy, opts ...search.Option) (*search.Result[int], error) {
	return nw.SolveBetween(nw.Start(), nw.Goal(), strategy, opts...)
}

// SolveBetween searches from waypoint from to waypoint to.
func (nw *Network) SolveBetween(from, to int, strategy search.Strategy, opts ...search.Option) (*search.Result[int], error) {
	for _, i := range []int{from, to} {
		if i < 0 || i >= len(nw.points) {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(nw.points))
		}
	}
	priority, err := search.PriorityFor[int](strategy, nw.DistanceTo(to))
	if err != nil {
		return nil, err
	}

	return search.Search(from, nw.IsAt(to), nw.Expand, priority, opts...)
}
