package contractor

import (
	"sort"

	"github.com/lintang-b-s/Contractorx/pkg"
	da "github.com/lintang-b-s/Contractorx/pkg/datastructure"
)

// selectIndependentSet picks the contraction frontier (remaining nodes
// whose priority is within a small margin of the global minimum) and thins
// it greedily, in ascending (priority, id) order, to a maximal subset in
// which no two members are directly connected or share a neighbor. members
// of the set never touch each other's incident edges or edge lists, so the
// next phase can contract them concurrently; nodes left out stay in the
// frontier for the next round.
func (c *GraphContractor) selectIndependentSet(remaining []da.Index) []da.Index {
	minPriority := 2 * pkg.INF_WEIGHT
	for _, v := range remaining {
		if c.priorities[v] < minPriority {
			minPriority = c.priorities[v]
		}
	}

	frontier := make([]da.Index, 0)
	for _, v := range remaining {
		if c.priorities[v] <= minPriority+pkg.FRONTIER_PRIORITY_MARGIN {
			frontier = append(frontier, v)
		}
	}

	sort.Slice(frontier, func(i, j int) bool {
		if c.priorities[frontier[i]] != c.priorities[frontier[j]] {
			return c.priorities[frontier[i]] < c.priorities[frontier[j]]
		}
		return frontier[i] < frontier[j]
	})

	// blocked marks every node within two unmasked hops of a picked node,
	// in either edge direction.
	blocked := make(map[da.Index]bool, len(frontier))
	independentSet := make([]da.Index, 0, len(frontier))
	for _, v := range frontier {
		if blocked[v] {
			continue
		}
		independentSet = append(independentSet, v)

		blocked[v] = true
		c.forNeighborsOf(v, func(u da.Index) {
			blocked[u] = true
			c.forNeighborsOf(u, func(w da.Index) {
				blocked[w] = true
			})
		})
	}

	return independentSet
}

func (c *GraphContractor) forNeighborsOf(v da.Index, handle func(u da.Index)) {
	c.graph.ForOutEdgesOf(v, func(e da.Index) {
		handle(c.graph.GetTarget(e))
	})
	c.graph.ForInEdgesOf(v, func(e da.Index) {
		handle(c.graph.GetSource(e))
	})
}
