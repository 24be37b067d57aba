package datastructure

import (
	"sort"

	"github.com/lintang-b-s/Contractorx/pkg"
	"github.com/lintang-b-s/Contractorx/pkg/util"
)

// StaticGraphEdge is one CSR edge entry of the read-only graph. the tail is
// implicit in the firstOut offsets.
type StaticGraphEdge struct {
	weight     float64
	head       Index
	firstPart  Index
	secondPart Index
	shortcut   bool
}

func NewStaticGraphEdge(head Index, weight float64) StaticGraphEdge {
	return StaticGraphEdge{head: head, weight: weight}
}

func NewStaticShortcutEdge(head Index, weight float64, firstPart, secondPart Index) StaticGraphEdge {
	return StaticGraphEdge{
		head:       head,
		weight:     weight,
		shortcut:   true,
		firstPart:  firstPart,
		secondPart: secondPart,
	}
}

func (e *StaticGraphEdge) GetHead() Index {
	return e.head
}

func (e *StaticGraphEdge) GetWeight() float64 {
	return e.weight
}

func (e *StaticGraphEdge) IsShortcut() bool {
	return e.shortcut
}

func (e *StaticGraphEdge) GetUnpackInfo() (Index, Index) {
	return e.firstPart, e.secondPart
}

// QueryEdge is an (tail, head, data) triple used to build a StaticGraph and
// to move edges between representations.
type QueryEdge struct {
	tail Index
	data StaticGraphEdge
}

func NewQueryEdge(tail, head Index, weight float64, shortcut bool, firstPart, secondPart Index) QueryEdge {
	return QueryEdge{
		tail: tail,
		data: StaticGraphEdge{
			head:       head,
			weight:     weight,
			shortcut:   shortcut,
			firstPart:  firstPart,
			secondPart: secondPart,
		},
	}
}

func (qe *QueryEdge) GetTail() Index {
	return qe.tail
}

func (qe *QueryEdge) GetHead() Index {
	return qe.data.head
}

func (qe *QueryEdge) GetWeight() float64 {
	return qe.data.weight
}

func (qe *QueryEdge) IsShortcut() bool {
	return qe.data.shortcut
}

func (qe *QueryEdge) GetUnpackInfo() (Index, Index) {
	return qe.data.firstPart, qe.data.secondPart
}

// StaticGraph is the fixed-edge-array adjacency store backing read-only
// masked views. it either owns its arrays or borrows externally supplied
// ones; the read interface is identical for both.
type StaticGraph struct {
	firstOut []Index // len numVertices+1
	edges    []StaticGraphEdge
	owned    bool
}

// NewStaticGraph builds an owned CSR from an edge list. the input order is
// preserved within a vertex (stable sort by tail).
func NewStaticGraph(numVertices int, queryEdges []QueryEdge) *StaticGraph {
	sorted := make([]QueryEdge, len(queryEdges))
	copy(sorted, queryEdges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].tail < sorted[j].tail
	})

	firstOut := make([]Index, numVertices+1)
	edges := make([]StaticGraphEdge, len(sorted))
	for i, qe := range sorted {
		firstOut[qe.tail+1]++
		edges[i] = qe.data
	}
	for v := 1; v <= numVertices; v++ {
		firstOut[v] += firstOut[v-1]
	}

	return &StaticGraph{firstOut: firstOut, edges: edges, owned: true}
}

// StaticGraphFromArrays adopts caller-owned CSR arrays without copying,
// e.g. slices over a memory-mapped hierarchy file. the caller must not
// mutate them for the lifetime of the graph.
func StaticGraphFromArrays(firstOut []Index, edges []StaticGraphEdge) *StaticGraph {
	util.AssertPanic(len(firstOut) >= 1, "firstOut must have numVertices+1 entries")
	util.AssertPanic(int(firstOut[len(firstOut)-1]) == len(edges), "firstOut and edge array disagree")
	return &StaticGraph{firstOut: firstOut, edges: edges, owned: false}
}

func (g *StaticGraph) NumberOfVertices() int {
	return len(g.firstOut) - 1
}

func (g *StaticGraph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *StaticGraph) GetOutDegree(v Index) int {
	return int(g.firstOut[v+1] - g.firstOut[v])
}

func (g *StaticGraph) ForOutEdgesOf(v Index, handle func(e Index)) {
	for e := g.firstOut[v]; e < g.firstOut[v+1]; e++ {
		handle(e)
	}
}

func (g *StaticGraph) GetTarget(e Index) Index {
	return g.edges[e].head
}

func (g *StaticGraph) GetEdgeData(e Index) *StaticGraphEdge {
	return &g.edges[e]
}

func (g *StaticGraph) FindEdge(from, to Index) (Index, bool) {
	for e := g.firstOut[from]; e < g.firstOut[from+1]; e++ {
		if g.edges[e].head == to {
			return e, true
		}
	}
	return 0, false
}

func (g *StaticGraph) FindSmallestEdge(from, to Index, pred func(*StaticGraphEdge) bool) (Index, bool) {
	var (
		smallestEdge   Index
		smallestWeight = pkg.INF_WEIGHT
		found          bool
	)
	for e := g.firstOut[from]; e < g.firstOut[from+1]; e++ {
		edge := &g.edges[e]
		if edge.head == to && edge.weight < smallestWeight && pred(edge) {
			smallestEdge = e
			smallestWeight = edge.weight
			found = true
		}
	}
	return smallestEdge, found
}

func (g *StaticGraph) FindEdgeEitherDirection(a, b Index) (Index, bool) {
	if e, ok := g.FindEdge(a, b); ok {
		return e, true
	}
	return g.FindEdge(b, a)
}

func (g *StaticGraph) FindEdgeIndicateDirection(a, b Index) (e Index, reversed bool, ok bool) {
	if e, ok = g.FindEdge(a, b); ok {
		return e, false, true
	}
	e, ok = g.FindEdge(b, a)
	return e, ok, ok
}

// Renumber rebuilds the CSR under the oldToNew vertex permutation and
// returns the induced edge permutation (old edge id -> new edge id), so
// that attached per-edge data like a mask vector can follow. rebuilding
// allocates, so the graph becomes owned afterwards.
func (g *StaticGraph) Renumber(oldToNew []Index) []Index {
	numVertices := g.NumberOfVertices()
	util.AssertPanic(len(oldToNew) == numVertices, "renumber permutation size mismatch")

	type relabeledEdge struct {
		tail  Index
		oldId Index
	}
	relabeled := make([]relabeledEdge, len(g.edges))
	for oldV := Index(0); oldV < Index(numVertices); oldV++ {
		for e := g.firstOut[oldV]; e < g.firstOut[oldV+1]; e++ {
			relabeled[e] = relabeledEdge{tail: oldToNew[oldV], oldId: e}
		}
	}
	sort.SliceStable(relabeled, func(i, j int) bool {
		return relabeled[i].tail < relabeled[j].tail
	})

	edgePerm := make([]Index, len(g.edges))
	newEdges := make([]StaticGraphEdge, len(g.edges))
	newFirstOut := make([]Index, numVertices+1)
	for newId, re := range relabeled {
		edge := g.edges[re.oldId]
		edge.head = oldToNew[edge.head]
		newEdges[newId] = edge
		newFirstOut[re.tail+1]++
		edgePerm[re.oldId] = Index(newId)
	}
	for v := 1; v <= numVertices; v++ {
		newFirstOut[v] += newFirstOut[v-1]
	}

	g.firstOut = newFirstOut
	g.edges = newEdges
	g.owned = true
	return edgePerm
}
