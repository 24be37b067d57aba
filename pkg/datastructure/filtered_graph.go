package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/Contractorx/pkg"
	"github.com/lintang-b-s/Contractorx/pkg/util"
)

// FilteredStaticGraph exposes a restricted adjacency over a StaticGraph
// without copying or restructuring it. the structure of a static graph
// never changes, so the mask lives in a detachable bit vector: swapping it
// yields a different filtered view of the same data, and the vector itself
// may be owned or a view over externally mapped memory.
type FilteredStaticGraph struct {
	graph      *StaticGraph
	edgeFilter *BitVector
}

// NewFilteredStaticGraph wraps graph with an explicit per-edge mask. the
// view borrows both; it never owns the underlying store.
func NewFilteredStaticGraph(graph *StaticGraph, edgeFilter *BitVector) *FilteredStaticGraph {
	util.AssertPanic(edgeFilter.Size() == graph.NumberOfEdges(), "edge filter size must equal edge count")
	return &FilteredStaticGraph{graph: graph, edgeFilter: edgeFilter}
}

// NewFilteredStaticGraphFromPredicate materializes pred into a mask once at
// construction time.
func NewFilteredStaticGraphFromPredicate(graph *StaticGraph, pred func(e Index) bool) *FilteredStaticGraph {
	edgeFilter := NewBitVector(graph.NumberOfEdges(), false)
	for e := Index(0); e < Index(graph.NumberOfEdges()); e++ {
		edgeFilter.Set(e, pred(e))
	}
	return &FilteredStaticGraph{graph: graph, edgeFilter: edgeFilter}
}

func (fg *FilteredStaticGraph) NumberOfVertices() int {
	return fg.graph.NumberOfVertices()
}

func (fg *FilteredStaticGraph) NumberOfEdges() int {
	return fg.graph.NumberOfEdges()
}

func (fg *FilteredStaticGraph) GetOutDegree(v Index) int {
	degree := 0
	fg.graph.ForOutEdgesOf(v, func(e Index) {
		if fg.edgeFilter.Get(e) {
			degree++
		}
	})
	return degree
}

// ForOutEdgesOf visits only unmasked edges. the mask is consulted on every
// traversal, so the view always reflects the current filter state.
func (fg *FilteredStaticGraph) ForOutEdgesOf(v Index, handle func(e Index)) {
	fg.graph.ForOutEdgesOf(v, func(e Index) {
		if fg.edgeFilter.Get(e) {
			handle(e)
		}
	})
}

// GetTarget must only be called with ids obtained from ForOutEdgesOf; a
// masked edge behaves as if it does not exist.
func (fg *FilteredStaticGraph) GetTarget(e Index) Index {
	if pkg.DEBUG {
		util.AssertPanic(fg.edgeFilter.Get(e), fmt.Sprintf("GetTarget on masked edge %d", e))
	}
	return fg.graph.GetTarget(e)
}

func (fg *FilteredStaticGraph) GetEdgeData(e Index) *StaticGraphEdge {
	if pkg.DEBUG {
		util.AssertPanic(fg.edgeFilter.Get(e), fmt.Sprintf("GetEdgeData on masked edge %d", e))
	}
	return fg.graph.GetEdgeData(e)
}

func (fg *FilteredStaticGraph) FindEdge(from, to Index) (Index, bool) {
	var (
		result Index
		found  bool
	)
	fg.ForOutEdgesOf(from, func(e Index) {
		if !found && fg.graph.GetTarget(e) == to {
			result = e
			found = true
		}
	})
	return result, found
}

func (fg *FilteredStaticGraph) FindSmallestEdge(from, to Index, pred func(*StaticGraphEdge) bool) (Index, bool) {
	var (
		smallestEdge   Index
		smallestWeight = pkg.INF_WEIGHT
		found          bool
	)
	fg.ForOutEdgesOf(from, func(e Index) {
		edge := fg.graph.GetEdgeData(e)
		if edge.head == to && edge.weight < smallestWeight && pred(edge) {
			smallestEdge = e
			smallestWeight = edge.weight
			found = true
		}
	})
	return smallestEdge, found
}

func (fg *FilteredStaticGraph) FindEdgeEitherDirection(a, b Index) (Index, bool) {
	if e, ok := fg.FindEdge(a, b); ok {
		return e, true
	}
	return fg.FindEdge(b, a)
}

func (fg *FilteredStaticGraph) FindEdgeIndicateDirection(a, b Index) (e Index, reversed bool, ok bool) {
	if e, ok = fg.FindEdge(a, b); ok {
		return e, false, true
	}
	e, ok = fg.FindEdge(b, a)
	return e, ok, ok
}

// SwapFilter replaces the mask without touching the graph data and returns
// the previous one.
func (fg *FilteredStaticGraph) SwapFilter(edgeFilter *BitVector) *BitVector {
	util.AssertPanic(edgeFilter.Size() == fg.graph.NumberOfEdges(), "edge filter size must equal edge count")
	old := fg.edgeFilter
	fg.edgeFilter = edgeFilter
	return old
}

// Renumber delegates to the store and permutes the attached mask with the
// edge permutation the rebuild reports, so the view stays consistent across
// a renumbering. the permuted mask is always a fresh owned vector: the old
// one may be a read-only view whose backing memory cannot be rewritten.
func (fg *FilteredStaticGraph) Renumber(oldToNew []Index) {
	edgePerm := fg.graph.Renumber(oldToNew)

	old := fg.edgeFilter
	permuted := NewBitVector(old.Size(), false)
	for e := Index(0); e < Index(old.Size()); e++ {
		permuted.Set(edgePerm[e], old.Get(e))
	}
	fg.edgeFilter = permuted
}
