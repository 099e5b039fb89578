// Package dijkstra - the engine: heap frontier, relaxation loop, and
// path materialization.
//
// Notes on implementation choices:
//
//   - "Lazy decrease-key": improving a frontier vertex pushes a duplicate
//     heap entry; stale entries are ignored on pop (vertex already
//     finalized). The best map keeps the current frontier optimum.
//   - Paths are materialized at finalization time from the predecessor
//     chain. A vertex's predecessor is always finalized before the vertex
//     itself (relaxation only runs from finalized vertices), so the
//     parent's path already exists when the child is popped.
//   - The early-exit membership check sits at the top of the loop, so an
//     unset target (empty string, never a valid vertex) simply lets the
//     loop run to exhaustion.
package dijkstra

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphscope/core"
)

// Dijkstra computes shortest distances and realized paths from source
// to every reachable vertex of g, stopping early when the optional
// target (WithTarget) is finalized.
//
// Returns:
//
//   - Result: finalized vertices only; res[source] == {0, [source]}.
//   - err:    validation failure (see sentinels) or a neighbor lookup
//     failure, which cannot occur on a well-formed core.Graph.
//
// Preconditions and validation (in order):
//  1. source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) plus stored paths.
func Dijkstra(g *core.Graph, source string, opts ...Option) (Result, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in the documented order.
	if source == "" {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	// 3) Prepare per-run state. V is a capacity hint only.
	V := g.VertexCount()
	r := &runner{
		g:      g,
		source: source,
		result: make(Result, V),
		best:   make(map[string]int64, V),
		prev:   make(map[string]string, V),
		pq:     make(nodePQ, 0, V),
	}

	// 4) Seed the frontier with the source at distance zero and run.
	r.init()
	if err := r.process(cfg.Target); err != nil {
		return nil, err
	}

	return r.result, nil
}

// ShortestPath returns the shortest path from source to dest, inclusive
// of both endpoints, using target-driven early exit. The returned slice
// is empty (nil) exactly when dest is unreachable from source — which
// includes a dest that does not exist in the graph at all.
//
// Complexity: same as Dijkstra, typically less due to early exit.
func ShortestPath(g *core.Graph, source, dest string) ([]string, error) {
	if dest == "" {
		return nil, ErrEmptyTarget
	}

	res, err := Dijkstra(g, source, WithTarget(dest))
	if err != nil {
		return nil, err
	}

	// Absent entry ⇒ unreachable ⇒ empty path, not an error.
	pr, ok := res[dest]
	if !ok {
		return nil, nil
	}

	return pr.Path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g      *core.Graph       // input graph; read-only here
	source string            // start vertex
	result Result            // finalized vertices → (dist, path)
	best   map[string]int64  // frontier: best known distance per vertex
	prev   map[string]string // predecessor on the current best path
	pq     nodePQ            // min-heap of (vertex, dist), lazy deletion
}

// init pushes the source at distance zero onto the frontier.
func (r *runner) init() {
	r.best[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process is the core loop: pop the minimum-distance frontier entry,
// finalize it, and relax its outgoing edges, until the frontier empties
// or the target is finalized.
func (r *runner) process(target string) error {
	for r.pq.Len() > 0 {
		// 1) Early exit: once the target is finalized, the partial
		//    result already contains its optimal entry.
		if target != "" {
			if _, done := r.result[target]; done {
				break
			}
		}

		// 2) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 3) Skip stale entries for vertices already finalized
		//    (lazy-decrease-key leftovers).
		if _, done := r.result[item.id]; done {
			continue
		}

		// 4) Finalize: materialize the path and record the result.
		r.finalize(item.id, item.dist)

		// 5) Relax all outgoing edges of the finalized vertex.
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// finalize records the PathResult for u at distance d. The path is the
// predecessor's finalized path plus u itself; the source gets [source].
func (r *runner) finalize(u string, d int64) {
	var path []string
	if u == r.source {
		path = []string{r.source}
	} else {
		parent := r.result[r.prev[u]].Path
		// Fresh slice: parent paths are shared by multiple children and
		// must never be extended in place.
		path = make([]string, 0, len(parent)+1)
		path = append(path, parent...)
		path = append(path, u)
	}

	r.result[u] = PathResult{Dist: d, Path: path}
}

// relax examines each outgoing edge u→v and improves the frontier entry
// for every non-finalized v whose candidate distance d+w beats the best
// known one. Neighbors are visited in sorted ID order for reproducible
// tie-breaking.
func (r *runner) relax(u string, d int64) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		// Unreachable for vertices the engine itself finalized; kept as
		// a guard against concurrent mutation of the graph.
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	// Deterministic relaxation order.
	order := make([]string, 0, len(nbrs))
	for v := range nbrs {
		order = append(order, v)
	}
	sort.Strings(order)

	for _, v := range order {
		// Finalized vertices cannot improve: their distance is optimal.
		if _, done := r.result[v]; done {
			continue
		}

		cand := d + nbrs[v]

		// Strictly-better candidates only; equal distances keep the
		// incumbent entry (and its path) stable.
		if cur, seen := r.best[v]; seen && cand >= cur {
			continue
		}

		r.best[v] = cand
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
	}

	return nil
}

// nodeItem is one frontier entry: a vertex and its candidate distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used
// with lazy deletion: superseded entries remain in the heap and are
// skipped on pop once their vertex is finalized.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
