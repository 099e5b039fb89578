// Package core defines the central Graph type for directed,
// integer-weighted graphs, and provides thread-safe primitives for
// building, querying, and cloning them.
//
// Model:
//
//   - A Graph is an adjacency mapping from vertex ID to its outgoing
//     edges (neighbor ID → weight). Vertex IDs are opaque, non-empty
//     strings.
//   - Every edge is directed: AddEdge(a, b, w) never implies b→a.
//   - Weights are non-negative int64 values; negative weights are
//     rejected at insertion (ErrNegativeWeight).
//   - Self-loops are rejected (ErrSelfLoop). Parallel edges do not
//     exist: re-adding an existing pair overwrites its weight.
//   - A vertex with no outgoing edges keeps an empty (non-nil)
//     adjacency row; "present with no edges" and "absent" are distinct
//     states.
//
// Concurrency:
//
//	All methods take an internal sync.RWMutex, so a Graph may be built
//	and read across goroutines. The intended lifecycle, however, is
//	build-then-freeze: the algorithm packages (dijkstra, metrics) treat
//	graphs as immutable value objects and never mutate them.
//
// Determinism:
//
//	Read accessors return vertices and neighbor sets in sorted ID
//	order (or as fresh copies), so downstream algorithms are
//	reproducible across runs.
//
// Errors (sentinel):
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrSelfLoop       - edge endpoints are the same vertex.
//	ErrNegativeWeight - edge weight is negative.
package core
