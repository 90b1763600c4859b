// Package dijkstra_test provides runnable examples for the shortest-path
// searches, in the spirit of "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dijkstra"
)

// ExampleBetween demonstrates a targeted shortest-path search with path
// reconstruction on the reference square graph.
func ExampleBetween() {
	// A(0)→B(1) w=1, B→C w=2, A→C w=5, C→D(3) w=1.
	g := core.FromLabels[string, string]([]string{"A", "B", "C", "D"})
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(0, 2, 5)
	_ = g.AddEdge(2, 3, 1)

	res, err := dijkstra.Between(g, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.Path()
	fmt.Printf("distance=%d path=%v\n", res.Distance(), path)
	// Output: distance=4 path=[0 1 2 3]
}

// ExampleClosest demonstrates finding the nearest vertex carrying a given
// label, here the nearest "fuel" station from a start intersection.
func ExampleClosest() {
	g := core.FromLabels[string, string]([]string{"home", "shop", "fuel", "fuel"})
	_ = g.AddEdge(0, 1, 2) // home→shop
	_ = g.AddEdge(1, 3, 4) // shop→far fuel
	_ = g.AddEdge(0, 2, 3) // home→near fuel

	idx, _ := dijkstra.Closest(g, 0, "fuel")
	fmt.Println(idx)
	// Output: 2
}
