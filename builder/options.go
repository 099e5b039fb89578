// Package builder - functional options.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     algorithms themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.
package builder

import "math/rand"

// BuilderOption customizes generator behavior by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx → string.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic construction.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxWeight sets the exclusive upper bound for the default uniform
// weight draw: weights are integers in [0, max). Panics if max < 1,
// which would leave no valid weight.
// Complexity: O(1).
func WithMaxWeight(max int64) BuilderOption {
	if max < 1 {
		panic("builder: WithMaxWeight(max<1)")
	}
	return func(c *builderConfig) {
		c.maxWeight = max
	}
}

// WithWeightFn overrides the per-edge weight generator entirely,
// bypassing the maxWeight policy. The function receives the shared RNG
// and must be pure with respect to its state to preserve determinism.
// Panics on nil.
// Complexity: O(1).
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
