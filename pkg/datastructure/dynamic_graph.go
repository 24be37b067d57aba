package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/Contractorx/pkg"
	"github.com/lintang-b-s/Contractorx/pkg/util"
)

// DynamicGraph is the mutable adjacency store the contraction engine works
// on. edge records live in one arena slice, per-vertex out/in lists hold ids
// into the arena. contracted vertices are never removed: their incident
// edges are masked out via the embedded filter bit, which keeps edge ids
// stable and avoids racy physical deletion during parallel contraction.
type DynamicGraph struct {
	edges    []CHEdge
	outEdges [][]Index
	inEdges  [][]Index
}

func NewDynamicGraph(numVertices int) *DynamicGraph {
	return &DynamicGraph{
		edges:    make([]CHEdge, 0),
		outEdges: make([][]Index, numVertices),
		inEdges:  make([][]Index, numVertices),
	}
}

func (g *DynamicGraph) NumberOfVertices() int {
	return len(g.outEdges)
}

// NumberOfEdges counts every edge record in the arena, masked ones included.
func (g *DynamicGraph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *DynamicGraph) GetOutDegree(v Index) int {
	degree := 0
	for _, e := range g.outEdges[v] {
		if g.edges[e].filter {
			degree++
		}
	}
	return degree
}

func (g *DynamicGraph) GetInDegree(v Index) int {
	degree := 0
	for _, e := range g.inEdges[v] {
		if g.edges[e].filter {
			degree++
		}
	}
	return degree
}

// ForOutEdgesOf visits the unmasked outgoing edges of v in insertion order.
// the mask is consulted on every traversal, never cached.
func (g *DynamicGraph) ForOutEdgesOf(v Index, handle func(e Index)) {
	for _, e := range g.outEdges[v] {
		if g.edges[e].filter {
			handle(e)
		}
	}
}

func (g *DynamicGraph) ForInEdgesOf(v Index, handle func(e Index)) {
	for _, e := range g.inEdges[v] {
		if g.edges[e].filter {
			handle(e)
		}
	}
}

// ForAllEdges visits every edge record in the arena, masked ones included.
// meant for exporting the finished hierarchy, not for traversal.
func (g *DynamicGraph) ForAllEdges(handle func(e Index, edge *CHEdge)) {
	for i := range g.edges {
		handle(Index(i), &g.edges[i])
	}
}

func (g *DynamicGraph) GetTarget(e Index) Index {
	if pkg.DEBUG {
		util.AssertPanic(g.edges[e].filter, fmt.Sprintf("GetTarget on masked edge %d", e))
	}
	return g.edges[e].head
}

func (g *DynamicGraph) GetSource(e Index) Index {
	if pkg.DEBUG {
		util.AssertPanic(g.edges[e].filter, fmt.Sprintf("GetSource on masked edge %d", e))
	}
	return g.edges[e].tail
}

func (g *DynamicGraph) GetEdgeData(e Index) *CHEdge {
	if pkg.DEBUG {
		util.AssertPanic(g.edges[e].filter, fmt.Sprintf("GetEdgeData on masked edge %d", e))
	}
	return &g.edges[e]
}

// InsertEdge appends a new unmasked edge and returns its id. not safe for
// concurrent use: during parallel contraction the engine serializes calls
// touching the same endpoint lists.
func (g *DynamicGraph) InsertEdge(edge CHEdge) Index {
	edge.filter = true
	e := Index(len(g.edges))
	g.edges = append(g.edges, edge)
	g.outEdges[edge.tail] = append(g.outEdges[edge.tail], e)
	g.inEdges[edge.head] = append(g.inEdges[edge.head], e)
	return e
}

func (g *DynamicGraph) DisableEdge(e Index) {
	g.edges[e].filter = false
}

// DisableEdgesOf masks out every incident edge of v, the logical removal of
// a just-contracted vertex.
func (g *DynamicGraph) DisableEdgesOf(v Index) {
	for _, e := range g.outEdges[v] {
		g.edges[e].filter = false
	}
	for _, e := range g.inEdges[v] {
		g.edges[e].filter = false
	}
}

// FindEdge scans the unmasked out-edges of from. O(degree), fine for road
// networks where degrees are small and bounded.
func (g *DynamicGraph) FindEdge(from, to Index) (Index, bool) {
	for _, e := range g.outEdges[from] {
		if g.edges[e].filter && g.edges[e].head == to {
			return e, true
		}
	}
	return 0, false
}

// FindSmallestEdge returns the minimum-weight unmasked edge from->to among
// those satisfying pred.
func (g *DynamicGraph) FindSmallestEdge(from, to Index, pred func(*CHEdge) bool) (Index, bool) {
	var (
		smallestEdge   Index
		smallestWeight = pkg.INF_WEIGHT
		found          bool
	)
	for _, e := range g.outEdges[from] {
		edge := &g.edges[e]
		if edge.filter && edge.head == to && edge.weight < smallestWeight && pred(edge) {
			smallestEdge = e
			smallestWeight = edge.weight
			found = true
		}
	}
	return smallestEdge, found
}

func (g *DynamicGraph) FindEdgeEitherDirection(a, b Index) (Index, bool) {
	if e, ok := g.FindEdge(a, b); ok {
		return e, true
	}
	return g.FindEdge(b, a)
}

// FindEdgeIndicateDirection additionally reports whether the match required
// reversing the endpoints.
func (g *DynamicGraph) FindEdgeIndicateDirection(a, b Index) (e Index, reversed bool, ok bool) {
	if e, ok = g.FindEdge(a, b); ok {
		return e, false, true
	}
	e, ok = g.FindEdge(b, a)
	return e, ok, ok
}

// Renumber relabels every stored endpoint with the oldToNew permutation.
// must only be called between contraction phases, never concurrently with
// traversal.
func (g *DynamicGraph) Renumber(oldToNew []Index) {
	util.AssertPanic(len(oldToNew) == g.NumberOfVertices(), "renumber permutation size mismatch")

	for i := range g.edges {
		g.edges[i].tail = oldToNew[g.edges[i].tail]
		g.edges[i].head = oldToNew[g.edges[i].head]
	}

	newOut := make([][]Index, len(g.outEdges))
	newIn := make([][]Index, len(g.inEdges))
	for old := range g.outEdges {
		newOut[oldToNew[old]] = g.outEdges[old]
		newIn[oldToNew[old]] = g.inEdges[old]
	}
	g.outEdges = newOut
	g.inEdges = newIn
}

// Filter rebuilds the embedded mask from a vertex validity predicate: an
// edge stays visible only if both endpoints are valid. this is how "view of
// only core vertices" is expressed for the mutable graph.
func (g *DynamicGraph) Filter(vertexPred func(v Index) bool) *DynamicGraph {
	for i := range g.edges {
		g.edges[i].filter = vertexPred(g.edges[i].tail) && vertexPred(g.edges[i].head)
	}
	return g
}

// FilterEdges rebuilds the mask from a per-edge predicate combined with the
// endpoint validity of both endpoints.
func (g *DynamicGraph) FilterEdges(edgePred func(e Index) bool, vertexPred func(v Index) bool) *DynamicGraph {
	for i := range g.edges {
		g.edges[i].filter = edgePred(Index(i)) &&
			vertexPred(g.edges[i].tail) && vertexPred(g.edges[i].head)
	}
	return g
}
