package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphscope/core"
	"github.com/katalvlaran/graphscope/dijkstra"
)

// ExampleDijkstra routes across a small delivery network where the
// direct road is slower than the two-hop detour.
func ExampleDijkstra() {
	g := core.NewGraph()
	_ = g.AddEdge("depot", "hub", 2)
	_ = g.AddEdge("hub", "shop", 3)
	_ = g.AddEdge("depot", "shop", 9)

	res, err := dijkstra.Dijkstra(g, "depot")
	if err != nil {
		fmt.Println("route:", err)

		return
	}

	fmt.Println("distance:", res["shop"].Dist)
	fmt.Println("path:", res["shop"].Path)

	// Output:
	// distance: 5
	// path: [depot hub shop]
}

// ExampleShortestPath shows the one-pair convenience wrapper, including
// the empty result for an unreachable destination.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddVertex("island")

	path, _ := dijkstra.ShortestPath(g, "a", "b")
	fmt.Println("a→b:", path)

	path, _ = dijkstra.ShortestPath(g, "a", "island")
	fmt.Println("a→island length:", len(path))

	// Output:
	// a→b: [a b]
	// a→island length: 0
}
