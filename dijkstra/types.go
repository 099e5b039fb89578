// Package dijkstra - result types, sentinel errors, and configuration
// options for the shortest-path engine.
package dijkstra

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrEmptyTarget indicates that ShortestPath was called with an
	// empty target vertex ID.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")
)

// PathResult is the finalized outcome for a single vertex: the minimum
// distance from the source and the vertex sequence realizing it.
//
// Path always starts at the source and ends at the vertex itself; the
// source's own result is {Dist: 0, Path: [source]}. The distance equals
// the sum of edge weights along Path.
type PathResult struct {
	// Dist is the total weight of the shortest path from the source.
	Dist int64

	// Path lists the vertices of the shortest path, source..vertex
	// inclusive. Never empty for a finalized vertex.
	Path []string
}

// Result maps each finalized vertex to its PathResult. Only vertices
// whose distance was finalized before the engine stopped appear here;
// unreachable vertices are absent (implicitly infinite distance).
type Result map[string]PathResult

// Options configures a single Dijkstra run.
//
// Target - optional destination vertex. When non-empty, the engine
// stops as soon as Target is finalized (early exit); when empty, the
// run continues until the frontier is exhausted.
type Options struct {
	Target string
}

// Option is a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget sets the early-exit destination. Passing an empty string
// is equivalent to not setting a target at all: the run goes to
// exhaustion by design, computing the full single-source result.
// Complexity: O(1).
func WithTarget(dest string) Option {
	return func(o *Options) {
		o.Target = dest
	}
}

// DefaultOptions returns the engine defaults: no target, full run.
func DefaultOptions() Options {
	return Options{Target: ""}
}
