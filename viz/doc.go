// Package viz converts graphs into DOT documents for external
// graph-drawing collaborators.
//
// The export is a pure hand-off: one node per vertex, one directed
// edge per adjacency entry, each edge carrying its weight both as the
// visible label and as a numeric "weight" attribute. No rendering
// happens here — feed the output to Graphviz or any DOT consumer.
//
// Determinism:
//
//	Vertices and their outgoing edges are emitted in sorted ID order,
//	so the same graph always produces the same document (golden-test
//	friendly).
//
// Errors (sentinel):
//
//	ErrNilGraph - the graph pointer is nil.
package viz
