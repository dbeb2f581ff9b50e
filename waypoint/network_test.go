package waypoint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/waypoint"
)

// diagonal is the four-point scenario (0,0) (1,0) (1,1) (2,2).
func diagonal() []waypoint.Point {
	return []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
}

// NetworkSuite groups waypoint search tests.
type NetworkSuite struct {
	suite.Suite
}

func (s *NetworkSuite) TestAdjacencyIsStrict() {
	nw, err := waypoint.NewNetwork([]waypoint.Point{{X: 0, Y: 0}, {X: 1.3, Y: 0}, {X: 2.3, Y: 0}})
	require.NoError(s.T(), err)
	// exactly 1.3 apart is not adjacent under a 1.3 threshold
	require.Equal(s.T(), 1.3, waypoint.Dist(nw.Point(0), nw.Point(1)))
	require.Empty(s.T(), nw.Neighbors(0))
	require.Equal(s.T(), []int{2}, nw.Neighbors(1))
	require.Equal(s.T(), []int{1}, nw.Neighbors(2))
	require.Equal(s.T(), 0, nw.Degree(0))
	require.Equal(s.T(), 1, nw.Degree(1))
	require.Nil(s.T(), nw.Neighbors(7))
}

// TestDiagonal_DefaultThreshold: diagonals are √2 > 1.3, so (2,2) is isolated.
func (s *NetworkSuite) TestDiagonal_DefaultThreshold() {
	nw, err := waypoint.NewNetwork(diagonal())
	require.NoError(s.T(), err)
	require.Equal(s.T(), []waypoint.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, nw.Edges())

	res, err := nw.Solve(search.StrategyGreedy)
	require.NoError(s.T(), err)
	require.Equal(s.T(), search.Exhausted, res.Outcome)
	require.Equal(s.T(), 3, res.Expanded)
}

// TestDiagonal_GreedyThroughMiddle: with diagonals adjacent, greedy goes via (1,1).
func (s *NetworkSuite) TestDiagonal_GreedyThroughMiddle() {
	nw, err := waypoint.NewNetwork(diagonal(), waypoint.WithThreshold(1.5))
	require.NoError(s.T(), err)

	res, err := nw.Solve(search.StrategyGreedy)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found())
	require.Equal(s.T(), []int{0, 2, 3}, res.Path())
	pts := diagonal()
	want := waypoint.Dist(pts[0], pts[2]) + waypoint.Dist(pts[2], pts[3])
	require.InDelta(s.T(), want, res.Cost(), 1e-12)
	require.InDelta(s.T(), 2*math.Sqrt2, res.Cost(), 1e-12)
	require.Equal(s.T(), []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, nw.Coordinates(res.Path()))
}

func (s *NetworkSuite) TestActionCountPrefersFewerHops() {
	// Two routes to the goal: three short hops along the bottom or two longer
	// hops over the top.
	pts := []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1.45, Y: 0.9}, {X: 2.9, Y: 0}}
	nw, err := waypoint.NewNetwork(pts, waypoint.WithThreshold(1.75))
	require.NoError(s.T(), err)

	byActions, err := nw.Solve(search.StrategyActionCount)
	require.NoError(s.T(), err)
	byDistance, err := nw.Solve(search.StrategyUniformCost, search.WithDuplicatePolicy(search.Reopen))
	require.NoError(s.T(), err)

	require.True(s.T(), byActions.Found())
	require.True(s.T(), byDistance.Found())
	require.LessOrEqual(s.T(), byActions.Node.Actions(), byDistance.Node.Actions())
	require.LessOrEqual(s.T(), byDistance.Cost(), byActions.Cost()+1e-12)
}

// TestAStarNotWorseThanGreedy on jittered lattices with an admissible heuristic.
func (s *NetworkSuite) TestAStarNotWorseThanGreedy() {
	for seed := int64(1); seed <= 8; seed++ {
		pts, err := waypoint.Generate(waypoint.GenerateOptions{Rows: 8, Cols: 8, Spacing: 1, Jitter: 0.3, Seed: seed})
		require.NoError(s.T(), err)
		nw, err := waypoint.NewNetwork(pts)
		require.NoError(s.T(), err)

		greedy, err := nw.Solve(search.StrategyGreedy)
		require.NoError(s.T(), err)
		astar, err := nw.Solve(search.StrategyAStar, search.WithDuplicatePolicy(search.Reopen))
		require.NoError(s.T(), err)
		uniform, err := nw.Solve(search.StrategyUniformCost, search.WithDuplicatePolicy(search.Reopen))
		require.NoError(s.T(), err)

		require.Equal(s.T(), greedy.Found(), astar.Found(), "seed %d", seed)
		if !greedy.Found() {
			continue
		}
		require.LessOrEqual(s.T(), astar.Cost(), greedy.Cost()+1e-9, "seed %d", seed)
		require.InDelta(s.T(), uniform.Cost(), astar.Cost(), 1e-9, "seed %d", seed)
	}
}

func (s *NetworkSuite) TestSolveBetween() {
	nw, err := waypoint.NewNetwork(diagonal())
	require.NoError(s.T(), err)

	res, err := nw.SolveBetween(2, 0, search.StrategyBreadth)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{2, 1, 0}, res.Path())

	_, err = nw.SolveBetween(0, 9, search.StrategyBreadth)
	require.ErrorIs(s.T(), err, waypoint.ErrIndexOutOfRange)

	_, err = nw.Solve(search.Strategy("bogus"))
	require.ErrorIs(s.T(), err, search.ErrUnknownStrategy)
}

// TestGoalByCoordinate: a duplicate of the goal coordinate also terminates.
func (s *NetworkSuite) TestGoalByCoordinate() {
	pts := []waypoint.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 5}, {X: 1, Y: 0}}
	nw, err := waypoint.NewNetwork(pts)
	require.NoError(s.T(), err)

	res, err := nw.Solve(search.StrategyBreadth)
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found())
	require.Equal(s.T(), []int{0, 1}, res.Path())
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestNewNetwork_Errors(t *testing.T) {
	_, err := waypoint.NewNetwork(nil)
	require.ErrorIs(t, err, waypoint.ErrEmptyDataset)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = waypoint.NewNetwork(diagonal(), waypoint.WithThreshold(bad))
		require.ErrorIs(t, err, waypoint.ErrBadThreshold, "threshold %v", bad)
	}
}

func TestNetwork_CopiesInput(t *testing.T) {
	pts := diagonal()
	nw, err := waypoint.NewNetwork(pts)
	require.NoError(t, err)
	pts[0] = waypoint.Point{X: 9, Y: 9}
	assert.Equal(t, waypoint.Point{}, nw.Point(0))

	out := nw.Points()
	out[1] = waypoint.Point{X: 7}
	assert.Equal(t, waypoint.Point{X: 1}, nw.Point(1))
	assert.Equal(t, 4, nw.Len())
	assert.Equal(t, 0, nw.Start())
	assert.Equal(t, 3, nw.Goal())
	assert.Equal(t, waypoint.DefaultThreshold, nw.Threshold())
}
