package waypoint_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/waypoint"
)

// ExampleNetwork_Solve loads a small evacuation map and compares greedy with
// branch-and-bound by distance.
func ExampleNetwork_Solve() {
	const data = `0,0
1,0
2,0
2,1
1,1
0,2
1,2
2,2
`
	pts, err := waypoint.Read(strings.NewReader(data))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nw, err := waypoint.NewNetwork(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range []search.Strategy{search.StrategyGreedy, search.StrategyUniformCost} {
		res, err := nw.Solve(s)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %v cost=%.0f\n", s, nw.Coordinates(res.Path()), res.Cost())
	}
	// Output:
	// greedy: [0, 0 1, 0 1, 1 2, 1 2, 2] cost=4
	// uniform: [0, 0 1, 0 2, 0 2, 1 2, 2] cost=4
}
