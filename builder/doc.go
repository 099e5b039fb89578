// Package builder generates random connected weighted digraphs.
//
// MakeGraph(v, e, opts...) produces a digraph with exactly v vertices
// and exactly e directed edges:
//
//   - e == v*(v-1): the complete digraph — every ordered pair receives
//     a uniformly random integer weight in [0, maxWeight).
//   - otherwise: a random spanning tree is grown first by a random
//     walk (v-1 edges, guaranteeing every vertex is touched by the
//     walk), then the remaining e-(v-1) edges are drawn from the
//     shuffled set of absent ordered pairs.
//
// Invariants of every generated graph:
//
//   - exactly v vertices, labeled by the ID scheme ("0".."v-1" by default)
//   - exactly e directed edges, no self-loops, no parallel edges
//   - all weights are integers in [0, maxWeight)
//
// Determinism:
//
//	Stochastic construction requires an explicit RNG supplied via
//	WithSeed or WithRand; there is no hidden time-based seeding. The
//	same seed and options always yield the identical graph.
//
// Errors (sentinel):
//
//	ErrTooFewVertices      - v < 1.
//	ErrEdgeCountOutOfRange - e outside [v-1, v*(v-1)].
//	ErrNeedRandSource      - no RNG was supplied.
//
// Example:
//
//	g, err := builder.MakeGraph(8, 15,
//	    builder.WithSeed(42),
//	    builder.WithMaxWeight(50),
//	)
package builder
