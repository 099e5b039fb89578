package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphscope/builder"
	"github.com/katalvlaran/graphscope/core"
	"github.com/katalvlaran/graphscope/dijkstra"
)

// BenchmarkDijkstra_Chain measures a full run on a linear chain: worst
// case for path storage (the last path holds every vertex).
func BenchmarkDijkstra_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, "v0")
	}
}

// BenchmarkDijkstra_RandomSparse measures a full run on a seeded random
// digraph with an average out-degree of 4.
func BenchmarkDijkstra_RandomSparse(b *testing.B) {
	const (
		V = 2000
		E = 8000
	)
	g, err := builder.MakeGraph(V, E, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, "0")
	}
}

// BenchmarkDijkstra_EarlyExit contrasts the targeted run against the
// full one on the same graph.
func BenchmarkDijkstra_EarlyExit(b *testing.B) {
	const (
		V = 2000
		E = 8000
	)
	g, err := builder.MakeGraph(V, E, builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, "0", dijkstra.WithTarget("42"))
	}
}
