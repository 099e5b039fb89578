// Package viz - DOT document construction.
package viz

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emicklei/dot"

	"github.com/katalvlaran/graphscope/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to DOT.
var ErrNilGraph = errors.New("viz: graph is nil")

// DOT renders g as a directed DOT document. Every vertex becomes a
// node; every adjacency entry becomes a labeled edge with a "weight"
// attribute. Emission order is sorted, so output is stable per graph.
//
// Complexity: O(V log V + E log E) for sorting plus linear emission.
func DOT(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}

	doc := dot.NewGraph(dot.Directed)

	// 1) Emit nodes first so isolated vertices appear in the document.
	vertices := g.Vertices()
	nodes := make(map[string]dot.Node, len(vertices))
	for _, id := range vertices {
		nodes[id] = doc.Node(id)
	}

	// 2) Emit edges in sorted (from, to) order.
	for _, from := range vertices {
		nbrs, err := g.Neighbors(from)
		if err != nil {
			return "", fmt.Errorf("viz: neighbors of %q: %w", from, err)
		}

		order := make([]string, 0, len(nbrs))
		for to := range nbrs {
			order = append(order, to)
		}
		sort.Strings(order)

		for _, to := range order {
			label := fmt.Sprintf("%d", nbrs[to])
			doc.Edge(nodes[from], nodes[to]).
				Attr("label", label).
				Attr("weight", label)
		}
	}

	return doc.String(), nil
}
