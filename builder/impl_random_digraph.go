// Package builder - implementation of MakeGraph(v, e).
//
// Canonical model:
//   - Complete case (e == v*(v-1)): assign every ordered pair a random weight.
//   - Sparse case: random-walk spanning tree (v-1 edges) + shuffled fill
//     of the remaining ordered pairs up to e edges.
//
// Contract:
//   - v ≥ 1 (else ErrTooFewVertices).
//   - v-1 ≤ e ≤ v*(v-1) (else ErrEdgeCountOutOfRange).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Vertices are added via cfg.idFn in ascending index order (0..v-1).
//   - Weights come from cfg.weightFn (uniform [0, maxWeight) by default).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time:  O(v²) — pair enumeration and shuffle dominate.
//   - Space: O(v²) for the candidate pair list in the sparse case.
//
// Determinism:
//   - Stable vertex order (index ascending), walk and shuffle driven
//     solely by the injected RNG ⇒ identical output per seed.
package builder

import (
	"fmt"

	"github.com/katalvlaran/graphscope/core"
)

// File-local constants (no magic literals; stable method tag and domain).
const (
	methodMakeGraph      = "MakeGraph"
	minMakeGraphVertices = 1
)

// pair is one ordered candidate edge (i→j) by vertex index.
type pair struct{ i, j int }

// MakeGraph builds a random digraph with exactly v vertices and exactly
// e directed edges. Unless the complete digraph is requested, the first
// v-1 edges form a random-walk spanning tree, so every vertex is
// touched by the walk; the rest are drawn uniformly from the absent
// ordered pairs.
func MakeGraph(v, e int, opts ...BuilderOption) (*core.Graph, error) {
	// Resolve deterministic configuration from functional options.
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if v < minMakeGraphVertices {
		return nil, fmt.Errorf("%s: v=%d < min=%d: %w",
			methodMakeGraph, v, minMakeGraphVertices, ErrTooFewVertices)
	}

	// Feasible edge domain: at least v-1 (spanning walk), at most
	// v*(v-1) (all ordered pairs, loops excluded).
	maxEdges := v * (v - 1)
	if e < v-1 || e > maxEdges {
		return nil, fmt.Errorf("%s: e=%d not in [%d,%d]: %w",
			methodMakeGraph, e, v-1, maxEdges, ErrEdgeCountOutOfRange)
	}

	// Stochastic constructor: an explicit RNG is part of the contract.
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodMakeGraph, ErrNeedRandSource)
	}

	// 2) Add all vertices deterministically via cfg.idFn (indices 0..v-1).
	g := core.NewGraph()
	ids := make([]string, v)
	for i := 0; i < v; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodMakeGraph, ids[i], err)
		}
	}

	// 3) Complete digraph fast path: every ordered pair gets a weight.
	if e == maxEdges {
		for i := 0; i < v; i++ {
			for j := 0; j < v; j++ {
				if i == j {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
						methodMakeGraph, ids[i], ids[j], err)
				}
			}
		}

		return g, nil
	}

	// 4) Grow a random-walk spanning tree: start at a random vertex and
	//    keep drawing uniform vertices. An unvisited draw gains an edge
	//    from the walk's current position and becomes the new position;
	//    a visited draw just moves the position. Exactly v-1 edges are
	//    added before every vertex has been visited.
	visited := make([]bool, v)
	curr := cfg.rng.Intn(v)
	visited[curr] = true
	for remaining := v - 1; remaining > 0; {
		next := cfg.rng.Intn(v)
		if !visited[next] {
			if err := g.AddEdge(ids[curr], ids[next], cfg.weightFn(cfg.rng)); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
					methodMakeGraph, ids[curr], ids[next], err)
			}
			visited[next] = true
			remaining--
		}
		curr = next
	}

	// 5) Fill the remaining budget e-(v-1) from the shuffled set of all
	//    ordered pairs, skipping pairs the tree already occupies.
	pairs := make([]pair, 0, maxEdges)
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			if i != j {
				pairs = append(pairs, pair{i, j})
			}
		}
	}
	cfg.rng.Shuffle(len(pairs), func(a, b int) {
		pairs[a], pairs[b] = pairs[b], pairs[a]
	})

	need := e - (v - 1)
	for _, p := range pairs {
		if need == 0 {
			break
		}
		if g.HasEdge(ids[p.i], ids[p.j]) {
			continue
		}
		if err := g.AddEdge(ids[p.i], ids[p.j], cfg.weightFn(cfg.rng)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w",
				methodMakeGraph, ids[p.i], ids[p.j], err)
		}
		need--
	}

	// 6) Success: exactly e edges for a fixed seed and option set.
	return g, nil
}
