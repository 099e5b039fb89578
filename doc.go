// Package graphscope is an in-memory toolkit for generating random
// weighted digraphs and measuring them — shortest paths, eccentricity,
// radius and diameter.
//
// 🚀 What is graphscope?
//
//	A small, deterministic library that brings together:
//		• Core primitives: a directed, integer-weighted adjacency model
//		• Generation: random connected digraphs via spanning-tree walks
//		• Shortest paths: Dijkstra with realized paths and early exit
//		• Metrics: eccentricity / radius / diameter with LRU memoization
//		• Export: DOT hand-off for external graph renderers
//
// ✨ Why choose graphscope?
//
//   - Deterministic by contract – every stochastic path takes an explicit,
//     seedable random source; the same seed always yields the same graph
//   - Rock-solid guarantees – R/W locks on the model, sentinel errors,
//     no panics in algorithms
//   - Minimal API – functional options, clear naming, no globals
//
// Everything is organized under five subpackages:
//
//	core/     — fundamental Graph type & thread-safe primitives
//	builder/  — random digraph generation (spanning tree + fill edges)
//	dijkstra/ — single-source shortest paths with per-vertex paths
//	metrics/  — eccentricity, radius, diameter + bounded memoization
//	viz/      — DOT export for external graph-drawing collaborators
//
// Quick example:
//
//	g, _ := builder.MakeGraph(10, 20, builder.WithSeed(42))
//	res, _ := dijkstra.Dijkstra(g, "0")
//	fmt.Println(res["7"].Dist, res["7"].Path)
//
// See each subpackage's doc.go for contracts, complexity and errors.
package graphscope
