// Package metrics - eccentricity and the memoizing Engine behind
// radius/diameter.
package metrics

import (
	"fmt"
	"math"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/graphscope/core"
	"github.com/katalvlaran/graphscope/dijkstra"
)

// Eccentricity computes the uncached eccentricity of v in g under fn
// (EdgeCountWeight when fn is nil): a full single-source run from v,
// the source's own entry removed, and the maximum fn score over the
// remaining entries. A vertex that reaches nothing but itself has
// eccentricity +Inf.
//
// Errors propagate from the engine: ErrNilGraph for a nil graph (the
// package sentinel), dijkstra.ErrEmptySource / ErrVertexNotFound for a
// bad vertex.
//
// Complexity: one Dijkstra run, O((V + E) log V).
func Eccentricity(g *core.Graph, v string, fn WeightFunc) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if fn == nil {
		fn = EdgeCountWeight
	}

	// Full run: no target, every vertex reachable from v is finalized.
	res, err := dijkstra.Dijkstra(g, v)
	if err != nil {
		return 0, fmt.Errorf("metrics: eccentricity of %q: %w", v, err)
	}

	// The vertex's trivial self-result never counts toward its own
	// eccentricity.
	delete(res, v)

	// No other vertex reached ⇒ infinite eccentricity.
	if len(res) == 0 {
		return math.Inf(1), nil
	}

	ecc := math.Inf(-1)
	for _, pr := range res {
		if score := fn(pr); score > ecc {
			ecc = score
		}
	}

	return ecc, nil
}

// cacheKey identifies one memoized eccentricity: graph identity (graphs
// are immutable after construction), vertex, and the registered weight
// function.
type cacheKey struct {
	graph  *core.Graph
	vertex string
	weight weightClass
}

// weightClass names the weight functions the cache may key on. Func
// values are not comparable in Go, and a code pointer is not enough to
// tell two closures of one literal apart (they share code, not
// captured state), so only the package-registered functions — which
// carry no state — are ever memoized.
type weightClass uint8

const (
	// weightCustom marks a caller-supplied function of unknown
	// identity; results for it are never cached.
	weightCustom weightClass = iota

	// weightEdgeCount and weightDistance identify the two registered
	// package functions.
	weightEdgeCount
	weightDistance
)

// Code pointers of the registered top-level functions. A top-level
// function captures nothing, so its code pointer does identify it; the
// ambiguity exists only between closures, which all classify as
// weightCustom.
var (
	edgeCountPtr = reflect.ValueOf(EdgeCountWeight).Pointer()
	distancePtr  = reflect.ValueOf(DistanceWeight).Pointer()
)

// classify maps a weight function to its cache class.
func classify(fn WeightFunc) weightClass {
	switch reflect.ValueOf(fn).Pointer() {
	case edgeCountPtr:
		return weightEdgeCount
	case distancePtr:
		return weightDistance
	default:
		return weightCustom
	}
}

// Engine computes radius and diameter over a bounded LRU memo of
// eccentricity results. Construct with NewEngine; the zero value is
// not usable.
//
// Cache keys hold graph pointers, so a cached graph stays reachable
// until its entries age out of the LRU. When a batch of graphs is
// done, call Purge (or drop the Engine) to release them.
type Engine struct {
	cache *lru.Cache[cacheKey, float64]
}

// NewEngine builds an Engine with the given options. The default cache
// holds DefaultCacheSize eccentricities; least-recently-used entries
// are evicted once the capacity is exceeded.
//
// Complexity: O(1) plus cache allocation.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	cfg := newEngineConfig(opts...)

	cache, err := lru.New[cacheKey, float64](cfg.cacheSize)
	if err != nil {
		// Unreachable for validated sizes; surfaced for completeness.
		return nil, fmt.Errorf("metrics: cache init: %w", err)
	}

	return &Engine{cache: cache}, nil
}

// Eccentricity is the memoized variant of the package-level function:
// identical results, with cache hits skipping recomputation entirely.
// Only the registered weight functions (EdgeCountWeight, DistanceWeight,
// and nil resolving to the former) are memoized; a custom WeightFunc
// has no reliable identity, so it always computes fresh rather than
// risk serving another function's result.
//
// Complexity: O(1) on a hit; one Dijkstra run on a miss.
func (e *Engine) Eccentricity(g *core.Graph, v string, fn WeightFunc) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	// Resolve the default before keying, so nil and EdgeCountWeight
	// share cache entries.
	if fn == nil {
		fn = EdgeCountWeight
	}

	class := classify(fn)
	if class == weightCustom {
		return Eccentricity(g, v, fn)
	}

	key := cacheKey{graph: g, vertex: v, weight: class}
	if ecc, ok := e.cache.Get(key); ok {
		return ecc, nil
	}

	ecc, err := Eccentricity(g, v, fn)
	if err != nil {
		return 0, err
	}
	e.cache.Add(key, ecc)

	return ecc, nil
}

// Purge empties the memo cache, releasing every graph its keys were
// keeping reachable. Subsequent queries recompute and repopulate.
//
// Complexity: O(cache size).
func (e *Engine) Purge() {
	e.cache.Purge()
}

// Radius returns the minimum eccentricity over all vertices of g.
//
// Complexity: V memoized eccentricities, so at most V Dijkstra runs.
func (e *Engine) Radius(g *core.Graph, fn WeightFunc) (float64, error) {
	return e.fold(g, fn, false)
}

// Diameter returns the maximum eccentricity over all vertices of g.
//
// Complexity: V memoized eccentricities, so at most V Dijkstra runs.
func (e *Engine) Diameter(g *core.Graph, fn WeightFunc) (float64, error) {
	return e.fold(g, fn, true)
}

// fold reduces memoized eccentricity over every vertex, keeping the
// maximum (diameter) or minimum (radius).
func (e *Engine) fold(g *core.Graph, fn WeightFunc, keepMax bool) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return 0, ErrEmptyGraph
	}

	extremum := math.Inf(1)
	if keepMax {
		extremum = math.Inf(-1)
	}
	for _, v := range vertices {
		ecc, err := e.Eccentricity(g, v, fn)
		if err != nil {
			return 0, err
		}
		if keepMax {
			if ecc > extremum {
				extremum = ecc
			}
		} else if ecc < extremum {
			extremum = ecc
		}
	}

	return extremum, nil
}

// Radius is the one-shot convenience: a throwaway Engine sized to the
// graph folds the minimum eccentricity. Prefer an owned Engine when
// computing several metrics over the same graphs.
func Radius(g *core.Graph, fn WeightFunc) (float64, error) {
	return oneShot(g, fn, false)
}

// Diameter is the one-shot convenience mirroring Radius.
func Diameter(g *core.Graph, fn WeightFunc) (float64, error) {
	return oneShot(g, fn, true)
}

// oneShot builds a transient Engine for a single fold. The cache still
// matters inside the call: radius and diameter folds share per-vertex
// eccentricities when callers run both through the same Engine, and a
// transient one at least bounds memory to the vertex count.
func oneShot(g *core.Graph, fn WeightFunc, keepMax bool) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	size := g.VertexCount()
	if size < 1 {
		return 0, ErrEmptyGraph
	}

	eng, err := NewEngine(WithCacheSize(size))
	if err != nil {
		return 0, err
	}

	return eng.fold(g, fn, keepMax)
}
