package datastructure

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHierarchyRoundtrip(t *testing.T) {
	graph := NewStaticGraph(3, []QueryEdge{
		NewQueryEdge(0, 1, 1.5, false, 0, 0),
		NewQueryEdge(1, 2, 2, false, 0, 0),
		NewQueryEdge(0, 2, 3.5, true, 0, 1),
	})
	levels := []float64{0, 2, 1}
	isCore := []bool{false, false, true}

	filename := filepath.Join(t.TempDir(), "hierarchy.graph")
	if err := WriteHierarchy(filename, graph, levels, isCore); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, gotLevels, gotCore, err := ReadHierarchy(filename)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if got.NumberOfVertices() != 3 || got.NumberOfEdges() != 3 {
		t.Fatalf("reloaded graph has wrong shape: %d vertices, %d edges",
			got.NumberOfVertices(), got.NumberOfEdges())
	}

	e, ok := got.FindEdge(0, 2)
	if !ok {
		t.Fatal("shortcut 0->2 missing after roundtrip")
	}
	edge := got.GetEdgeData(e)
	if !edge.IsShortcut() || edge.GetWeight() != 3.5 {
		t.Error("shortcut flag or weight lost in roundtrip")
	}
	if first, second := edge.GetUnpackInfo(); first != 0 || second != 1 {
		t.Errorf("unpack info lost: got (%d, %d)", first, second)
	}
	if e, ok = got.FindEdge(0, 1); !ok || got.GetEdgeData(e).GetWeight() != 1.5 {
		t.Error("edge 0->1 lost in roundtrip")
	}

	for v := 0; v < 3; v++ {
		if gotLevels[v] != levels[v] {
			t.Errorf("level of %d: want %v, got %v", v, levels[v], gotLevels[v])
		}
		if gotCore[v] != isCore[v] {
			t.Errorf("core flag of %d: want %v, got %v", v, isCore[v], gotCore[v])
		}
	}
}

func TestReadWeightedEdgeList(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "graph.txt")
	content := "3 3\n0 1 1.5\n1 2 2\n2 0 0.5\n"
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatalf("could not write test file: %v", err)
	}

	g, err := ReadWeightedEdgeList(filename)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if g.NumberOfVertices() != 3 || g.NumberOfEdges() != 3 {
		t.Fatalf("loaded graph has wrong shape: %d vertices, %d edges",
			g.NumberOfVertices(), g.NumberOfEdges())
	}
	if e, ok := g.FindEdge(0, 1); !ok || g.GetEdgeData(e).GetWeight() != 1.5 {
		t.Error("edge 0->1 with weight 1.5 missing")
	}
	if e, ok := g.FindEdge(2, 0); !ok || g.GetEdgeData(e).GetWeight() != 0.5 {
		t.Error("edge 2->0 with weight 0.5 missing")
	}
}

func TestReadWeightedEdgeListRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "bad header", content: "3\n"},
		{name: "truncated", content: "2 2\n0 1 1\n"},
		{name: "endpoint out of range", content: "2 1\n0 5 1\n"},
		{name: "negative weight", content: "2 1\n0 1 -2\n"},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "graph.txt")
			if err := os.WriteFile(filename, []byte(tt.content), 0644); err != nil {
				t.Fatalf("could not write test file: %v", err)
			}
			if _, err := ReadWeightedEdgeList(filename); err == nil {
				t.Error("malformed input must be rejected")
			}
		})
	}
}
