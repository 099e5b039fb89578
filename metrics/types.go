// Package metrics - weight functions, sentinel errors, and Engine
// configuration options.
package metrics

import (
	"errors"

	"github.com/katalvlaran/graphscope/dijkstra"
)

// Sentinel errors for metric computations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("metrics: graph is nil")

	// ErrEmptyGraph indicates a radius/diameter request on a graph
	// with no vertices, for which no eccentricity exists.
	ErrEmptyGraph = errors.New("metrics: graph has no vertices")
)

// WeightFunc maps one finalized shortest-path result to the scalar
// aggregated by eccentricity. Implementations must be pure: the memo
// cache assumes a given function always scores a result identically.
type WeightFunc func(dijkstra.PathResult) float64

// EdgeCountWeight scores a result by its hop count (len(path)-1).
// This is the default weight function when nil is supplied.
func EdgeCountWeight(pr dijkstra.PathResult) float64 {
	return float64(len(pr.Path) - 1)
}

// DistanceWeight scores a result by its raw summed edge weight.
func DistanceWeight(pr dijkstra.PathResult) float64 {
	return float64(pr.Dist)
}

// DefaultCacheSize is the Engine's memoization capacity (entries)
// unless overridden via WithCacheSize.
const DefaultCacheSize = 512

// engineConfig aggregates Engine construction knobs.
type engineConfig struct {
	cacheSize int
}

// EngineOption is a functional option for NewEngine.
type EngineOption func(*engineConfig)

// WithCacheSize sets the memoization capacity in entries. Panics if
// n < 1, which would leave no room for even a single result.
// Complexity: O(1).
func WithCacheSize(n int) EngineOption {
	if n < 1 {
		panic("metrics: WithCacheSize(n<1)")
	}
	return func(c *engineConfig) {
		c.cacheSize = n
	}
}

// newEngineConfig resolves defaults and applies options in order.
// Complexity: O(len(opts)).
func newEngineConfig(opts ...EngineOption) engineConfig {
	cfg := engineConfig{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
