// Package builder - sentinel errors.
//
// Error policy (strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX); messages are not a contract.
//   - Implementations attach context via %w wrapping; sentinels are never
//     pre-formatted at definition site.
//   - Algorithms never panic at runtime; validation panics are confined to
//     option constructors (WithX...).
package builder

import "errors"

// ErrTooFewVertices indicates that the requested vertex count is below
// the minimum (v ≥ 1).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* fix v */ }.
var ErrTooFewVertices = errors.New("builder: vertex count too small")

// ErrEdgeCountOutOfRange indicates that the requested edge count lies
// outside the feasible domain [v-1, v*(v-1)] for the given vertex
// count: fewer than v-1 edges cannot keep the spanning walk connected,
// and more than v*(v-1) would require parallel edges or self-loops.
// Usage: if errors.Is(err, ErrEdgeCountOutOfRange) { /* fix e */ }.
var ErrEdgeCountOutOfRange = errors.New("builder: edge count out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without an RNG (supply WithSeed or WithRand).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* seed the builder */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
