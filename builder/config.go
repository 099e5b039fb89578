// Package builder - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - idFn      = decimalID ("0","1","2",...)
//   - rng       = nil (stochastic constructors reject this explicitly)
//   - maxWeight = 100 (weights drawn uniformly from [0,100))
//   - weightFn  = uniform draw from [0, maxWeight)
package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to implementations (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index → ID (deterministic).
	idFn func(int) string

	// RNG for stochastic choices; nil means "none supplied".
	rng *rand.Rand

	// Weight generator for edges; nil resolves to the uniform default.
	weightFn func(*rand.Rand) int64

	// Exclusive upper bound for the default uniform weight draw.
	maxWeight int64
}

// defaultMaxWeight is the exclusive upper bound for edge weights when
// WithMaxWeight is not supplied.
const defaultMaxWeight = int64(100)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins). The weight generator is
// resolved after option application so WithMaxWeight is observed even
// when it appears after other options.
//
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      decimalID,
		rng:       nil,
		weightFn:  nil,
		maxWeight: defaultMaxWeight,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the default weight policy unless explicitly overridden.
	if cfg.weightFn == nil {
		cfg.weightFn = uniformWeightFn(cfg.maxWeight)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
// Deterministic and allocation-light; suitable for golden tests.
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// uniformWeightFn returns a weight generator sampling uniformly from
// the half-open interval [0, max). max ≥ 1 is guaranteed by the
// WithMaxWeight option validation.
func uniformWeightFn(max int64) func(*rand.Rand) int64 {
	return func(rng *rand.Rand) int64 {
		return rng.Int63n(max)
	}
}
