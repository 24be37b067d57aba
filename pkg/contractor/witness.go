package contractor

import (
	"github.com/lintang-b-s/Contractorx/pkg"
	da "github.com/lintang-b-s/Contractorx/pkg/datastructure"
)

// runWitnessSearch runs a weight-bounded forward dijkstra from source over
// the not-yet-contracted graph, skipping the node being contracted, and
// returns the settled distances. the search stops as soon as every target
// is settled, the frontier minimum exceeds weightBound, or the settled-node
// budget is exhausted. an exhausted budget just means "no witness found"
// for the unsettled targets, which biases toward inserting the shortcut.
func (c *GraphContractor) runWitnessSearch(source, skip da.Index,
	targets map[da.Index]float64, weightBound float64) map[da.Index]float64 {

	settledDist := make(map[da.Index]float64)
	queueNodes := make(map[da.Index]*da.PriorityQueueNode[da.Index])

	pq := da.NewFourAryHeap[da.Index]()
	sourceNode := da.NewPriorityQueueNode(0, source)
	queueNodes[source] = sourceNode
	pq.Insert(sourceNode)

	settled := 0
	settledTargets := 0

	for !pq.IsEmpty() {
		if pq.GetMinrank() > weightBound {
			break
		}

		pqNode, _ := pq.ExtractMin()
		u := pqNode.GetItem()
		uDist := pqNode.GetRank()

		if _, done := settledDist[u]; done {
			continue
		}
		settledDist[u] = uDist
		settled++

		if _, isTarget := targets[u]; isTarget {
			settledTargets++
			if settledTargets == len(targets) {
				break
			}
		}
		if settled >= pkg.WITNESS_SEARCH_MAX_SETTLED {
			break
		}

		c.graph.ForOutEdgesOf(u, func(e da.Index) {
			w := c.graph.GetTarget(e)
			if w == skip {
				return
			}
			if _, done := settledDist[w]; done {
				return
			}

			newDist := uDist + c.graph.GetEdgeData(e).GetWeight()
			if newDist > weightBound {
				return
			}

			if wNode, seen := queueNodes[w]; seen {
				if newDist < wNode.GetRank() {
					pq.DecreaseKey(wNode, newDist)
				}
			} else {
				wNode = da.NewPriorityQueueNode(newDist, w)
				queueNodes[w] = wNode
				pq.Insert(wNode)
			}
		})
	}

	return settledDist
}
