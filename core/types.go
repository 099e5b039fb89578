// Package core - Graph type, sentinel errors, and the NewGraph
// constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Graph is a directed, integer-weighted graph backed by an adjacency
// mapping: adj[from][to] = weight.
//
// The zero value is not usable; construct with NewGraph. All methods
// are safe for concurrent use via the internal RWMutex, but the
// algorithm packages assume a Graph is frozen after construction.
type Graph struct {
	mu sync.RWMutex

	// adj maps each vertex ID to its outgoing edges (to → weight).
	// Every known vertex has a row here, possibly empty.
	adj map[string]map[string]int64

	// edgeCount tracks the number of distinct directed edges, so
	// EdgeCount() is O(1) rather than a row scan.
	edgeCount int
}

// NewGraph returns an empty directed weighted graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adj: make(map[string]map[string]int64),
	}
}
