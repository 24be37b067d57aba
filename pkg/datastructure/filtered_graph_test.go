package datastructure

import "testing"

func collectTargets(fg *FilteredStaticGraph, v Index) []Index {
	targets := make([]Index, 0)
	fg.ForOutEdgesOf(v, func(e Index) {
		targets = append(targets, fg.GetTarget(e))
	})
	return targets
}

func TestFilteredStaticGraphMasking(t *testing.T) {
	g := buildStaticTestGraph()

	mask := NewBitVector(g.NumberOfEdges(), true)
	e02, _ := g.FindEdge(0, 2)
	mask.Set(e02, false)
	fg := NewFilteredStaticGraph(g, mask)

	if fg.NumberOfVertices() != g.NumberOfVertices() || fg.NumberOfEdges() != g.NumberOfEdges() {
		t.Fatal("the view must report the shape of the underlying store")
	}
	if got := fg.GetOutDegree(0); got != 1 {
		t.Errorf("out degree of 0 with 0->2 masked: want 1, got %d", got)
	}
	if _, ok := fg.FindEdge(0, 2); ok {
		t.Error("masked edge must behave as nonexistent")
	}
	if _, ok := g.FindEdge(0, 2); !ok {
		t.Error("the underlying store must be untouched by the mask")
	}
	if _, ok := fg.FindEdge(0, 1); !ok {
		t.Error("unmasked edge must stay visible")
	}

	if _, ok := fg.FindEdgeEitherDirection(2, 0); !ok {
		t.Error("either-direction lookup over the view must see 2->0")
	}
	if _, reversed, ok := fg.FindEdgeIndicateDirection(0, 1); !ok || reversed {
		t.Error("stored-direction lookup must not report reversed")
	}
}

// building a view from a predicate and from the equivalent materialized
// vector must yield identical adjacency, and re-traversing never changes it.
func TestFilteredStaticGraphPredicateMatchesExplicitMask(t *testing.T) {
	g := buildStaticTestGraph()
	pred := func(e Index) bool { return g.GetEdgeData(e).GetWeight() < 3 }

	fromPred := NewFilteredStaticGraphFromPredicate(g, pred)

	explicit := NewBitVector(g.NumberOfEdges(), false)
	for e := Index(0); e < Index(g.NumberOfEdges()); e++ {
		explicit.Set(e, pred(e))
	}
	fromVector := NewFilteredStaticGraph(g, explicit)

	for round := 0; round < 2; round++ {
		for v := Index(0); v < Index(g.NumberOfVertices()); v++ {
			if fromPred.GetOutDegree(v) != fromVector.GetOutDegree(v) {
				t.Errorf("round %d: degree mismatch at vertex %d", round, v)
			}
			a, b := collectTargets(fromPred, v), collectTargets(fromVector, v)
			if len(a) != len(b) {
				t.Fatalf("round %d: adjacency mismatch at vertex %d: %v vs %v", round, v, a, b)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Errorf("round %d: adjacency mismatch at vertex %d: %v vs %v", round, v, a, b)
				}
			}
		}
	}
}

func TestFilteredStaticGraphFindSmallestEdge(t *testing.T) {
	g := NewStaticGraph(2, []QueryEdge{
		NewQueryEdge(0, 1, 7, false, 0, 0),
		NewQueryEdge(0, 1, 3, false, 0, 0),
		NewQueryEdge(0, 1, 5, false, 0, 0),
	})

	mask := NewBitVector(g.NumberOfEdges(), true)
	fg := NewFilteredStaticGraph(g, mask)

	e, ok := fg.FindSmallestEdge(0, 1, func(*StaticGraphEdge) bool { return true })
	if !ok || fg.GetEdgeData(e).GetWeight() != 3 {
		t.Fatal("smallest parallel edge should have weight 3")
	}

	mask.Set(e, false)
	e, ok = fg.FindSmallestEdge(0, 1, func(*StaticGraphEdge) bool { return true })
	if !ok || fg.GetEdgeData(e).GetWeight() != 5 {
		t.Fatal("after masking the cheapest edge, weight 5 should win")
	}
}

func TestFilteredStaticGraphSwapFilter(t *testing.T) {
	g := buildStaticTestGraph()

	all := NewBitVector(g.NumberOfEdges(), true)
	none := NewBitVector(g.NumberOfEdges(), false)
	fg := NewFilteredStaticGraph(g, all)

	old := fg.SwapFilter(none)
	if old != all {
		t.Fatal("swap must hand back the previous mask")
	}
	for v := Index(0); v < Index(g.NumberOfVertices()); v++ {
		if got := fg.GetOutDegree(v); got != 0 {
			t.Errorf("all-masked view must be empty, vertex %d has degree %d", v, got)
		}
	}

	fg.SwapFilter(old)
	if got := fg.GetOutDegree(0); got != 2 {
		t.Errorf("restored mask must restore the adjacency, got degree %d", got)
	}
}

func TestFilteredStaticGraphRenumber(t *testing.T) {
	g := NewStaticGraph(3, []QueryEdge{
		NewQueryEdge(0, 1, 1, false, 0, 0),
		NewQueryEdge(0, 2, 99, false, 0, 0),
		NewQueryEdge(1, 2, 2, false, 0, 0),
		NewQueryEdge(2, 0, 3, false, 0, 0),
	})

	mask := NewBitVector(g.NumberOfEdges(), true)
	e, _ := g.FindEdge(0, 2)
	mask.Set(e, false)
	fg := NewFilteredStaticGraph(g, mask)

	// old 0,1,2 -> new 2,0,1
	fg.Renumber([]Index{2, 0, 1})

	wantVisible := []struct {
		tail   Index
		head   Index
		weight float64
	}{
		{tail: 2, head: 0, weight: 1},
		{tail: 0, head: 1, weight: 2},
		{tail: 1, head: 2, weight: 3},
	}
	for _, want := range wantVisible {
		e, ok := fg.FindEdge(want.tail, want.head)
		if !ok {
			t.Fatalf("edge %d->%d must stay visible after renumbering", want.tail, want.head)
		}
		if got := fg.GetEdgeData(e).GetWeight(); got != want.weight {
			t.Errorf("edge %d->%d: want weight %v, got %v", want.tail, want.head, want.weight, got)
		}
	}

	// the masked edge follows the permutation: old 0->2 is now 2->1
	if _, ok := fg.FindEdge(2, 1); ok {
		t.Error("the masked edge must stay masked after renumbering")
	}
	if _, ok := g.FindEdge(2, 1); !ok {
		t.Error("the underlying store must still hold the masked edge")
	}
}
