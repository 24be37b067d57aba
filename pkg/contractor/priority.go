package contractor

import (
	"github.com/lintang-b-s/Contractorx/pkg"
	da "github.com/lintang-b-s/Contractorx/pkg/datastructure"
)

// evaluatePriority computes the contraction priority of v: lower means
// contract sooner. edge difference (shortcuts a contraction would insert
// minus edges it removes) dominates; the deleted-neighbor count and the
// hierarchy depth of the neighborhood keep the contracted region and the
// level assignment balanced; the caller-supplied node weight and cached
// level act as external hints.
func (c *GraphContractor) evaluatePriority(v da.Index) float64 {
	shortcuts, removed := c.simulateContraction(v)
	edgeDifference := float64(shortcuts - removed)

	priority := pkg.EDGE_DIFFERENCE_FACTOR*edgeDifference +
		pkg.DELETED_NEIGHBORS_FACTOR*float64(c.deletedNeighbors[v]) +
		pkg.DEPTH_FACTOR*c.depths[v]

	if len(c.nodeWeights) > 0 {
		priority += pkg.NODE_WEIGHT_FACTOR * c.nodeWeights[v]
	}
	if len(c.cachedLevels) > 0 {
		priority += pkg.CACHED_LEVEL_FACTOR * c.cachedLevels[v]
	}
	return priority
}

// simulateContraction runs the witness searches of a contraction of v
// without mutating the graph and reports how many shortcuts it would
// insert and how many incident edges it would mask out.
func (c *GraphContractor) simulateContraction(v da.Index) (shortcuts, removed int) {
	needed, removed := c.findRequiredShortcuts(v)
	return len(needed), removed
}
