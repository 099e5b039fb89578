package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/graphscope/core"
)

// ------------------------------------------------------------------------
// 1. Vertex operations.
// ------------------------------------------------------------------------

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\") = %v; want ErrEmptyVertexID", err)
	}
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatal(err)
	}
	// Adding the same vertex again must not error or disturb edges.
	if err := g.AddEdge("A", "B", 3); err != nil {
		t.Fatal(err)
	}
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("repeated AddVertex(A) = %v; want nil", err)
	}
	if !g.HasEdge("A", "B") {
		t.Fatal("repeated AddVertex(A) dropped edge A→B")
	}
	if got := g.VertexCount(); got != 2 {
		t.Errorf("VertexCount() = %d; want 2", got)
	}
}

func TestAddVertex_NoOutgoingEdgesIsEmptyRow(t *testing.T) {
	// A vertex with no outgoing edges must be present with an empty
	// neighbor set, not absent.
	g := core.NewGraph()
	_ = g.AddVertex("lonely")

	nbrs, err := g.Neighbors("lonely")
	if err != nil {
		t.Fatalf("Neighbors(lonely) = %v; want nil error", err)
	}
	if nbrs == nil || len(nbrs) != 0 {
		t.Errorf("Neighbors(lonely) = %v; want empty non-nil map", nbrs)
	}
}

// ------------------------------------------------------------------------
// 2. Edge operations and invariants.
// ------------------------------------------------------------------------

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	tests := []struct {
		name     string
		from, to string
		weight   int64
		want     error
	}{
		{"empty from", "", "B", 1, core.ErrEmptyVertexID},
		{"empty to", "A", "", 1, core.ErrEmptyVertexID},
		{"self-loop", "A", "A", 1, core.ErrSelfLoop},
		{"negative weight", "A", "B", -7, core.ErrNegativeWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.AddEdge(tc.from, tc.to, tc.weight); !errors.Is(err, tc.want) {
				t.Fatalf("AddEdge(%q,%q,%d) = %v; want %v", tc.from, tc.to, tc.weight, err, tc.want)
			}
		})
	}

	// None of the rejected operations may have left partial state.
	if got := g.VertexCount(); got != 0 {
		t.Errorf("VertexCount() after rejected edges = %d; want 0", got)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount() after rejected edges = %d; want 0", got)
	}
}

func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 5); err != nil {
		t.Fatal(err)
	}
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Fatal("AddEdge did not create missing endpoints")
	}
	if w, ok := g.Weight("A", "B"); !ok || w != 5 {
		t.Errorf("Weight(A,B) = (%d,%v); want (5,true)", w, ok)
	}
	// Direction matters: B→A must not exist.
	if g.HasEdge("B", "A") {
		t.Error("AddEdge(A,B) must not imply edge B→A")
	}
}

func TestAddEdge_OverwriteKeepsSingleEdge(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("A", "B", 9)

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d; want 1 (no parallel edges)", got)
	}
	if w, _ := g.Weight("A", "B"); w != 9 {
		t.Errorf("Weight(A,B) = %d; want 9 (last write wins)", w)
	}
}

func TestAddEdge_ZeroWeightAllowed(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("AddEdge(A,B,0) = %v; want nil (zero weight is valid)", err)
	}
}

// ------------------------------------------------------------------------
// 3. Accessors.
// ------------------------------------------------------------------------

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"9", "3", "1", "7", "5"} {
		_ = g.AddVertex(id)
	}

	got := g.Vertices()
	want := []string{"1", "3", "5", "7", "9"}
	if len(got) != len(want) {
		t.Fatalf("Vertices() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vertices() = %v; want %v", got, want)
		}
	}
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.Neighbors("ghost"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Neighbors(ghost) = %v; want ErrVertexNotFound", err)
	}
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 2)

	nbrs, err := g.Neighbors("A")
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the returned map must not leak into the graph.
	nbrs["B"] = 999
	nbrs["C"] = 1

	if w, _ := g.Weight("A", "B"); w != 2 {
		t.Errorf("Weight(A,B) = %d after mutating Neighbors copy; want 2", w)
	}
	if g.HasEdge("A", "C") {
		t.Error("mutating Neighbors copy created edge A→C in the graph")
	}
}

// ------------------------------------------------------------------------
// 4. Clone.
// ------------------------------------------------------------------------

func TestClone_DeepCopy(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddVertex("D")

	cp := g.Clone()

	if cp.VertexCount() != g.VertexCount() || cp.EdgeCount() != g.EdgeCount() {
		t.Fatalf("Clone() counts = (%d,%d); want (%d,%d)",
			cp.VertexCount(), cp.EdgeCount(), g.VertexCount(), g.EdgeCount())
	}

	// Mutating the clone must not affect the original.
	_ = cp.AddEdge("C", "A", 7)
	if g.HasEdge("C", "A") {
		t.Error("mutating clone leaked edge C→A into the original")
	}
	if w, _ := cp.Weight("A", "B"); w != 1 {
		t.Errorf("clone Weight(A,B) = %d; want 1", w)
	}
}
