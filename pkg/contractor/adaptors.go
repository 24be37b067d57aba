package contractor

import (
	"sort"

	da "github.com/lintang-b-s/Contractorx/pkg/datastructure"
)

// BuildQueryGraph exports the mutated working graph, original and shortcut
// edges alike, into the static CSR form the downstream query engine reads.
// edge ids change in the process, so the unpack info of every shortcut is
// rewritten to the new ids.
func BuildQueryGraph(graph *da.DynamicGraph) *da.StaticGraph {
	numEdges := graph.NumberOfEdges()

	tails := make([]da.Index, numEdges)
	graph.ForAllEdges(func(e da.Index, edge *da.CHEdge) {
		tails[e] = edge.GetTail()
	})

	order := make([]int, numEdges)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return tails[order[i]] < tails[order[j]]
	})
	newId := make([]da.Index, numEdges)
	for pos, old := range order {
		newId[old] = da.Index(pos)
	}

	queryEdges := make([]da.QueryEdge, 0, numEdges)
	graph.ForAllEdges(func(e da.Index, edge *da.CHEdge) {
		firstPart, secondPart := edge.GetUnpackInfo()
		if edge.IsShortcut() {
			firstPart = newId[firstPart]
			secondPart = newId[secondPart]
		}
		queryEdges = append(queryEdges, da.NewQueryEdge(edge.GetTail(), edge.GetHead(),
			edge.GetWeight(), edge.IsShortcut(), firstPart, secondPart))
	})

	return da.NewStaticGraph(graph.NumberOfVertices(), queryEdges)
}

// ExtractCoreGraph narrows the working graph to the residual core: only
// edges between two core nodes stay visible. the returned graph is the same
// underlying store with its embedded mask rebuilt, ready for a coarser
// second contraction pass.
func ExtractCoreGraph(graph *da.DynamicGraph, isCore []bool) *da.DynamicGraph {
	return graph.Filter(func(v da.Index) bool { return isCore[v] })
}
