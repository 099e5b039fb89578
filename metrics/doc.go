// Package metrics computes graph-theoretic distance metrics —
// eccentricity, radius, and diameter — by repeated invocation of the
// shortest-path engine.
//
// Definitions:
//
//   - Eccentricity of v: the maximum, under a chosen weight function,
//     of the shortest-path results from v to every other reachable
//     vertex; +Inf when v reaches nothing but itself.
//   - Radius:   the minimum eccentricity over all vertices.
//   - Diameter: the maximum eccentricity over all vertices.
//
// Weight functions:
//
//	A WeightFunc maps a finalized (distance, path) pair to the scalar
//	the metric aggregates. Two standard ones ship with the package:
//	EdgeCountWeight (hop count, the default) and DistanceWeight (raw
//	summed edge weight).
//
// Memoization:
//
//	Radius and diameter fold eccentricity over every vertex, and
//	callers often interleave such folds over the same graphs, so the
//	Engine memoizes eccentricity results in a bounded LRU cache
//	(default 512 entries, WithCacheSize to tune). Keys combine graph
//	identity, vertex, and the registered weight function; graphs are
//	treated as immutable after construction, which is what makes
//	caching by identity sound. Only EdgeCountWeight, DistanceWeight,
//	and nil (the former's alias) are memoized — a custom WeightFunc
//	has no comparable identity in Go, so it always computes fresh.
//	The cache is purely an optimization — memoized results are
//	identical to uncached ones. Keys pin their graphs until eviction;
//	Purge releases them early.
//
// Concurrency:
//
//	An Engine owns its cache; nothing is package-global. The underlying
//	LRU is internally synchronized, so one Engine may serve concurrent
//	callers.
//
// Errors (sentinel):
//
//	ErrNilGraph   - the graph pointer is nil.
//	ErrEmptyGraph - radius/diameter of a graph with no vertices.
//
// Example:
//
//	eng, _ := metrics.NewEngine()
//	r, _ := eng.Radius(g, metrics.DistanceWeight)
//	d, _ := eng.Diameter(g, metrics.DistanceWeight)
//	fmt.Println(r <= d) // true whenever any eccentricity is finite
package metrics
