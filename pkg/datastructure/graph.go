package datastructure

type Index uint32

// CHEdge is one directed edge record of the contraction working graph.
// weight must be finite and non-negative. a shortcut edge additionally
// records the ids of the two edges it replaces, so the query stage can
// unpack the represented path. the filter bit is embedded in the record:
// the working graph gains and loses edges during contraction, so an
// external mask vector would desynchronize.
type CHEdge struct {
	weight     float64
	tail       Index
	head       Index
	firstPart  Index
	secondPart Index
	shortcut   bool
	filter     bool
}

func NewCHEdge(tail, head Index, weight float64) CHEdge {
	return CHEdge{
		tail:   tail,
		head:   head,
		weight: weight,
		filter: true,
	}
}

func NewCHShortcutEdge(tail, head Index, weight float64, firstPart, secondPart Index) CHEdge {
	return CHEdge{
		tail:       tail,
		head:       head,
		weight:     weight,
		shortcut:   true,
		firstPart:  firstPart,
		secondPart: secondPart,
		filter:     true,
	}
}

func (e *CHEdge) GetTail() Index {
	return e.tail
}

func (e *CHEdge) GetHead() Index {
	return e.head
}

func (e *CHEdge) GetWeight() float64 {
	return e.weight
}

func (e *CHEdge) SetWeight(weight float64) {
	e.weight = weight
}

func (e *CHEdge) IsShortcut() bool {
	return e.shortcut
}

// GetUnpackInfo returns the ids of the two edges a shortcut replaces.
// only meaningful when IsShortcut() is true.
func (e *CHEdge) GetUnpackInfo() (Index, Index) {
	return e.firstPart, e.secondPart
}

func (e *CHEdge) SetUnpackInfo(firstPart, secondPart Index) {
	e.firstPart = firstPart
	e.secondPart = secondPart
}

func (e *CHEdge) SetShortcut(shortcut bool) {
	e.shortcut = shortcut
}

func (e *CHEdge) IsEnabled() bool {
	return e.filter
}

// ContractionGraph is the capability set the contraction engine needs from
// a graph. it is satisfied both by the plain mutable working graph and by a
// node-filtered view over one, so the engine can contract a full graph or
// only the residual core of a previous pass.
type ContractionGraph interface {
	NumberOfVertices() int
	NumberOfEdges() int

	GetOutDegree(v Index) int
	GetInDegree(v Index) int
	ForOutEdgesOf(v Index, handle func(e Index))
	ForInEdgesOf(v Index, handle func(e Index))

	GetTarget(e Index) Index
	GetSource(e Index) Index
	GetEdgeData(e Index) *CHEdge

	InsertEdge(edge CHEdge) Index
	DisableEdgesOf(v Index)

	FindEdge(from, to Index) (Index, bool)
	FindSmallestEdge(from, to Index, pred func(*CHEdge) bool) (Index, bool)
}
