package pitcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/pitcher"
	"github.com/katalvlaran/lvsearch/search"
)

func classic(t *testing.T, opts ...pitcher.Option) *pitcher.Puzzle {
	t.Helper()
	p, err := pitcher.New(opts...)
	require.NoError(t, err)
	return p
}

func TestApply(t *testing.T) {
	p := classic(t)
	cases := []struct {
		name string
		from pitcher.State
		act  pitcher.Action
		want pitcher.State
	}{
		{"fill", pitcher.State{0, 2}, pitcher.FillSmall, pitcher.State{3, 2}},
		{"pour small fits", pitcher.State{3, 1}, pitcher.PourSmallToLarge, pitcher.State{0, 4}},
		{"pour small overflows", pitcher.State{3, 3}, pitcher.PourSmallToLarge, pitcher.State{1, 5}},
		{"pour large fits", pitcher.State{0, 2}, pitcher.PourLargeToSmall, pitcher.State{2, 0}},
		{"pour large overflows", pitcher.State{1, 5}, pitcher.PourLargeToSmall, pitcher.State{3, 3}},
		{"empty small", pitcher.State{2, 5}, pitcher.EmptySmall, pitcher.State{0, 5}},
		{"empty large", pitcher.State{2, 5}, pitcher.EmptyLarge, pitcher.State{2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Apply(tc.from, tc.act)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := p.Apply(pitcher.State{}, pitcher.Action(9))
	require.ErrorIs(t, err, pitcher.ErrUnknownAction)
}

// TestRun_FillPourTwice checks pour-with-overflow arithmetic across two fills.
func TestRun_FillPourTwice(t *testing.T) {
	p := classic(t)
	got, err := p.Run(pitcher.State{},
		pitcher.FillSmall, pitcher.PourSmallToLarge, pitcher.FillSmall, pitcher.PourSmallToLarge)
	require.NoError(t, err)
	assert.Equal(t, pitcher.State{Small: 1, Large: 5}, got)

	_, err = p.Run(pitcher.State{Small: 4}, pitcher.FillSmall)
	require.ErrorIs(t, err, pitcher.ErrBadState)
}

func TestNew_Options(t *testing.T) {
	_, err := pitcher.New(pitcher.WithCapacities(0, 5))
	require.ErrorIs(t, err, pitcher.ErrBadCapacity)

	_, err = pitcher.New(pitcher.WithTarget(-1))
	require.ErrorIs(t, err, pitcher.ErrBadTarget)

	_, err = pitcher.New(pitcher.WithActionOrder(pitcher.FillSmall, pitcher.Action(0)))
	require.ErrorIs(t, err, pitcher.ErrUnknownAction)

	_, err = pitcher.New(pitcher.WithStart(pitcher.State{Small: 0, Large: 6}))
	require.ErrorIs(t, err, pitcher.ErrBadState)

	p := classic(t, pitcher.WithCapacities(4, 9), pitcher.WithTarget(6))
	assert.Equal(t, pitcher.Capacities{Small: 4, Large: 9}, p.Capacities())
	assert.Equal(t, 6, p.Target())
}

// TestBreadthFirst_Minimal: the classic puzzle needs eight actions.
func TestBreadthFirst_Minimal(t *testing.T) {
	p := classic(t)
	res, err := p.Solve(search.StrategyBreadth)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, 8, res.Node.Actions())
	assert.Equal(t, 4, res.Node.State.Large)

	actions, err := p.Actions(res.Path())
	require.NoError(t, err)
	require.Len(t, actions, 8)
	end, err := p.Run(p.Start(), actions...)
	require.NoError(t, err)
	assert.Equal(t, res.Node.State, end)
}

// TestDepthFirst_NotShorter: depth-first never beats breadth-first.
func TestDepthFirst_NotShorter(t *testing.T) {
	p := classic(t)
	bfs, err := p.Solve(search.StrategyBreadth)
	require.NoError(t, err)
	dfs, err := p.Solve(search.StrategyDepth)
	require.NoError(t, err)
	require.True(t, dfs.Found())
	assert.GreaterOrEqual(t, dfs.Node.Actions(), bfs.Node.Actions())
	assert.True(t, p.IsGoal(dfs.Node.State))
}

// TestEarlyGoal_ReversedOrder reproduces the classic script: actions tried
// 5..1 and the goal accepted as soon as it is generated.
func TestEarlyGoal_ReversedOrder(t *testing.T) {
	p := classic(t, pitcher.WithActionOrder(
		pitcher.EmptyLarge, pitcher.EmptySmall, pitcher.PourLargeToSmall, pitcher.PourSmallToLarge, pitcher.FillSmall))
	res, err := p.Solve(search.StrategyBreadth, search.WithEarlyGoalTest())
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 8, res.Node.Actions())
}

// TestUnsolvable_VisitsEveryStateOnce: target 6 cannot fit in a 5 pitcher.
func TestUnsolvable_VisitsEveryStateOnce(t *testing.T) {
	p := classic(t, pitcher.WithTarget(6))
	for _, s := range search.Strategies() {
		t.Run(string(s), func(t *testing.T) {
			res, err := p.Solve(s, search.WithTrace())
			require.NoError(t, err)
			assert.Equal(t, search.Exhausted, res.Outcome)
			assert.Equal(t, 16, res.Discovered)
			assert.Equal(t, 16, res.Expanded)

			seen := make(map[pitcher.State]bool, len(res.Order))
			for _, st := range res.Order {
				require.False(t, seen[st], "state %v expanded twice", st)
				seen[st] = true
			}
		})
	}
}

func TestAStar_FindsGoal(t *testing.T) {
	p := classic(t)
	res, err := p.Solve(search.StrategyAStar)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.GreaterOrEqual(t, res.Node.Actions(), 8)
	assert.Equal(t, 1.0, p.Heuristic(pitcher.State{Large: 5}))
}

func TestActions_Unlinked(t *testing.T) {
	p := classic(t)
	_, err := p.Actions([]pitcher.State{{0, 0}, {2, 2}})
	require.ErrorIs(t, err, pitcher.ErrNoAction)

	acts, err := p.Actions([]pitcher.State{{0, 0}})
	require.NoError(t, err)
	assert.Empty(t, acts)
}

func TestSolve_UnknownStrategy(t *testing.T) {
	_, err := classic(t).Solve(search.Strategy("hill-climb"))
	require.ErrorIs(t, err, search.ErrUnknownStrategy)
}
