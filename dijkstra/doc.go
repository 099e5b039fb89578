// Package dijkstra implements single-source shortest paths with
// realized per-vertex paths on directed, non-negative-weight graphs.
//
// Overview:
//
//   - Dijkstra(g, source) finalizes every vertex reachable from source
//     in increasing distance order and returns, per finalized vertex,
//     both the minimum distance and the path that realizes it
//     (source..vertex inclusive).
//   - Vertices never reached are simply absent from the Result — the
//     absence is the representation of infinite distance.
//   - WithTarget(dest) enables early exit: the loop stops as soon as
//     dest is finalized, returning the partial Result accumulated so
//     far. An unset target means a full single-source run.
//   - ShortestPath(g, source, dest) is the one-pair convenience: just
//     the path, empty when dest is unreachable.
//
// Engine:
//
//	A binary min-heap frontier (container/heap) with a best-distance
//	map and lazy deletion: improving a frontier vertex pushes a fresh
//	heap entry, and stale entries are skipped on pop because the vertex
//	is already finalized. This emulates decrease-key at O(log N) per
//	push with no indexed heap.
//
// Determinism:
//
//	Outgoing edges are relaxed in sorted neighbor order, so runs are
//	reproducible across processes, including tie-breaks between
//	equal-distance frontier entries.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex finalized once, each edge
//     relaxation pushes at most one heap entry.
//   - Space: O(V + E) — result/best/prev maps plus worst-case heap
//     occupancy under lazy deletion. Stored paths add O(V·L) where L is
//     the mean path length.
//
// Errors (sentinel):
//
//	ErrEmptySource    - the source vertex ID is empty.
//	ErrNilGraph       - the graph pointer is nil.
//	ErrVertexNotFound - the source vertex does not exist in the graph.
//	ErrEmptyTarget    - ShortestPath was called with an empty target ID.
//
// Negative weights never occur here: core.AddEdge rejects them at
// construction, so the engine's non-negativity precondition holds for
// every core.Graph by construction.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, "0", dijkstra.WithTarget("5"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res["5"].Dist, res["5"].Path)
package dijkstra
