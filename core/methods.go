// Package core - mutators and read accessors for Graph.
//
// Locking model: mutators take the write lock; accessors take the read
// lock and return fresh copies, never views into internal maps.
package core

import "sort"

// AddVertex inserts a vertex with the given ID. Adding an existing
// vertex is a no-op (idempotent). An empty ID is rejected with
// ErrEmptyVertexID.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Create the adjacency row only on first sight; an existing row
	// (and its edges) must survive repeated AddVertex calls.
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]int64)
	}

	return nil
}

// AddEdge inserts the directed edge from→to with the given weight,
// creating missing endpoints on the fly. Re-adding an existing pair
// overwrites the stored weight (no parallel edges).
//
// Errors:
//   - ErrEmptyVertexID  if either endpoint ID is empty.
//   - ErrSelfLoop       if from == to.
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Validate endpoints and weight before touching any state.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure both endpoints have adjacency rows.
	if _, ok := g.adj[from]; !ok {
		g.adj[from] = make(map[string]int64)
	}
	if _, ok := g.adj[to]; !ok {
		g.adj[to] = make(map[string]int64)
	}

	// 3) Insert or overwrite; only a brand-new pair bumps the counter.
	if _, exists := g.adj[from][to]; !exists {
		g.edgeCount++
	}
	g.adj[from][to] = weight

	return nil
}

// HasVertex reports whether the vertex exists in the graph.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
//
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[from]
	if !ok {
		return false
	}
	_, ok = row[to]

	return ok
}

// Weight returns the weight of the directed edge from→to and whether
// that edge exists.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[from]
	if !ok {
		return 0, false
	}
	w, ok := row[to]

	return w, ok
}

// Vertices returns all vertex IDs in ascending sort order.
// The sorted order makes downstream iteration reproducible.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns a copy of the outgoing adjacency row of the given
// vertex (neighbor ID → weight). The copy is empty, not nil, for a
// vertex with no outgoing edges. Returns ErrVertexNotFound for an
// unknown vertex.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) (map[string]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make(map[string]int64, len(row))
	for to, w := range row {
		out[to] = w
	}

	return out, nil
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of distinct directed edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph: new adjacency rows, same
// vertex IDs and weights. Mutating the clone never affects the
// original.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cp := &Graph{
		adj:       make(map[string]map[string]int64, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for from, row := range g.adj {
		newRow := make(map[string]int64, len(row))
		for to, w := range row {
			newRow[to] = w
		}
		cp.adj[from] = newRow
	}

	return cp
}
