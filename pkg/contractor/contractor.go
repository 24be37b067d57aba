package contractor

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/lintang-b-s/Contractorx/pkg"
	"github.com/lintang-b-s/Contractorx/pkg/concurrent"
	da "github.com/lintang-b-s/Contractorx/pkg/datastructure"
	"github.com/lintang-b-s/Contractorx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GraphContractor turns a weighted working graph into a contraction
// hierarchy: it repeatedly masks out the least important remaining node,
// inserting shortcut edges only where no witness path makes them
// redundant, and assigns every node a level plus a core flag. the graph is
// mutated in place; the caller keeps ownership.
type GraphContractor struct {
	graph  da.ContractionGraph
	logger *zap.Logger

	contractable []bool
	cachedLevels []float64
	nodeWeights  []float64
	coreFactor   float64
	numWorkers   int

	levels           []float64
	isCore           []bool
	contracted       []bool
	priorities       []float64
	deletedNeighbors []int32
	depths           []float64

	orderCounter float64
}

type shortcut struct {
	tail       da.Index
	head       da.Index
	weight     float64
	firstPart  da.Index
	secondPart da.Index
}

type contractionResult struct {
	node      da.Index
	neighbors []da.Index
	shortcuts []shortcut
}

func NewGraphContractor(graph da.ContractionGraph, nodeIsContractable []bool,
	cachedNodeLevels []float64, nodeWeights []float64, coreFactor float64,
	logger *zap.Logger) *GraphContractor {

	return &GraphContractor{
		graph:        graph,
		logger:       logger,
		contractable: nodeIsContractable,
		cachedLevels: cachedNodeLevels,
		nodeWeights:  nodeWeights,
		coreFactor:   coreFactor,
		numWorkers:   runtime.GOMAXPROCS(0),
	}
}

func (c *GraphContractor) SetNumWorkers(numWorkers int) {
	c.numWorkers = util.Max(1, numWorkers)
}

// ContractGraph contracts up to coreFactor of the contractable nodes of
// graph (coreFactor 1.0 = full contraction) and returns per-node levels and
// core flags, indexed by the input node ids. nodes marked non-contractable
// are permanently excluded and end up in the core; cachedNodeLevels from a
// previous run warm-start the priorities; nodeWeights are external
// importance hints. empty slices mean "no cache" / "no hints".
func ContractGraph(graph da.ContractionGraph, nodeIsContractable []bool,
	cachedNodeLevels []float64, nodeWeights []float64, coreFactor float64,
	logger *zap.Logger) ([]float64, []bool, error) {

	return NewGraphContractor(graph, nodeIsContractable, cachedNodeLevels,
		nodeWeights, coreFactor, logger).Run()
}

// ContractGraphAllNodes contracts with every node contractable.
func ContractGraphAllNodes(graph da.ContractionGraph, cachedNodeLevels []float64,
	nodeWeights []float64, coreFactor float64, logger *zap.Logger) ([]float64, []bool, error) {

	return ContractGraph(graph, nil, cachedNodeLevels, nodeWeights, coreFactor, logger)
}

// ContractGraphWithoutCache contracts with every node contractable and no
// warm-start levels.
func ContractGraphWithoutCache(graph da.ContractionGraph, nodeWeights []float64,
	coreFactor float64, logger *zap.Logger) ([]float64, []bool, error) {

	return ContractGraph(graph, nil, nil, nodeWeights, coreFactor, logger)
}

func (c *GraphContractor) Run() ([]float64, []bool, error) {
	if c.coreFactor <= 0 || c.coreFactor > 1.0 {
		return nil, nil, fmt.Errorf("core factor must be in (0.0, 1.0], got %v", c.coreFactor)
	}

	numVertices := c.graph.NumberOfVertices()
	util.AssertPanic(c.contractable == nil || len(c.contractable) == numVertices,
		"contractable vector size must equal vertex count")
	util.AssertPanic(len(c.cachedLevels) == 0 || len(c.cachedLevels) == numVertices,
		"cached level vector size must equal vertex count")
	util.AssertPanic(len(c.nodeWeights) == 0 || len(c.nodeWeights) == numVertices,
		"node weight vector size must equal vertex count")

	start := time.Now()

	c.levels = make([]float64, numVertices)
	if len(c.cachedLevels) > 0 {
		copy(c.levels, c.cachedLevels)
	} else {
		for v := range c.levels {
			c.levels[v] = pkg.CORE_NODE_LEVEL
		}
	}
	c.isCore = make([]bool, numVertices)
	c.contracted = make([]bool, numVertices)
	c.priorities = make([]float64, numVertices)
	c.deletedNeighbors = make([]int32, numVertices)
	c.depths = make([]float64, numVertices)

	remaining := make([]da.Index, 0, numVertices)
	for v := da.Index(0); v < da.Index(numVertices); v++ {
		if c.contractable == nil || c.contractable[v] {
			remaining = append(remaining, v)
		} else {
			c.isCore[v] = true
		}
	}

	// Initializing: evaluate every contractable node once; afterwards only
	// neighbors of contracted nodes are re-evaluated.
	c.updatePriorities(remaining)
	c.logger.Sugar().Infof("initial priorities for %d of %d nodes computed in %v",
		len(remaining), numVertices, time.Since(start))

	targetContracted := int(math.Ceil(c.coreFactor * float64(len(remaining))))
	contractedCount := 0
	rounds := 0
	numShortcuts := 0

	for len(remaining) > 0 && contractedCount < targetContracted {
		// SelectingFrontier
		independentSet := c.selectIndependentSet(remaining)
		if contractedCount+len(independentSet) > targetContracted {
			independentSet = independentSet[:targetContracted-contractedCount]
		}

		// levels are strictly increasing in contraction order; within one
		// simultaneous round the tie is broken by ascending node id so
		// reruns reproduce the same hierarchy.
		sort.Slice(independentSet, func(i, j int) bool {
			return independentSet[i] < independentSet[j]
		})
		for _, v := range independentSet {
			c.levels[v] = c.orderCounter
			c.orderCounter++
		}

		// ParallelContracting: witness searches for the whole set run
		// concurrently and read-only; the pool join below is the phase
		// barrier, and all mutation happens after it.
		workers := concurrent.NewWorkerPool[da.Index, contractionResult](c.numWorkers, len(independentSet))
		for _, v := range independentSet {
			workers.AddJob(v)
		}
		workers.Close()
		workers.Start(c.contractJob)
		workers.Wait()

		// merge phase: insert the collected shortcuts (two set members may
		// both shortcut through the same surviving neighbor, so insertion
		// with deduplication is serialized here) and mask the contracted
		// nodes out.
		results := make([]contractionResult, 0, len(independentSet))
		for res := range workers.CollectResults() {
			results = append(results, res)
		}
		for _, res := range results {
			for _, sc := range res.shortcuts {
				if c.insertShortcut(sc) {
					numShortcuts++
				}
			}
		}
		for _, res := range results {
			c.graph.DisableEdgesOf(res.node)
			c.contracted[res.node] = true
		}

		// UpdatingPriorities: only surviving neighbors of just-contracted
		// nodes are re-evaluated.
		affectedSet := make(map[da.Index]struct{})
		for _, res := range results {
			for _, u := range res.neighbors {
				if c.contracted[u] {
					continue
				}
				c.deletedNeighbors[u]++
				c.depths[u] = util.Max(c.depths[u], c.depths[res.node]+1)
				affectedSet[u] = struct{}{}
			}
		}
		affected := make([]da.Index, 0, len(affectedSet))
		for u := range affectedSet {
			affected = append(affected, u)
		}
		c.updatePriorities(affected)

		survivors := remaining[:0]
		for _, v := range remaining {
			if !c.contracted[v] {
				survivors = append(survivors, v)
			}
		}
		remaining = survivors
		contractedCount += len(independentSet)
		rounds++
	}

	// Finalizing: whatever survived is the residual core.
	for _, v := range remaining {
		c.isCore[v] = true
	}

	c.logger.Info("graph contraction finished",
		zap.Int("contractedNodes", contractedCount),
		zap.Int("coreNodes", numVertices-contractedCount),
		zap.Int("shortcuts", numShortcuts),
		zap.Int("rounds", rounds),
		zap.Duration("elapsed", time.Since(start)),
	)

	return c.levels, c.isCore, nil
}

// contractJob contracts one independent-set member: it only computes the
// required shortcuts and the surviving neighborhood, without touching the
// graph. mutation is deferred to the merge phase after the round barrier.
func (c *GraphContractor) contractJob(v da.Index) contractionResult {
	shortcuts, _ := c.findRequiredShortcuts(v)
	return contractionResult{
		node:      v,
		neighbors: c.collectNeighbors(v),
		shortcuts: shortcuts,
	}
}

// findRequiredShortcuts determines, for every (incoming u, outgoing w)
// neighbor pair of v, whether the path u->v->w must be preserved by a
// shortcut: a witness search from u bounded by the candidate weight either
// reaches w at most as cheaply (witness found, shortcut redundant) or
// proves the shortcut necessary. O(degree^2) witness searches per node;
// this dominates the total running time. removed reports the number of
// incident edges a contraction of v masks out.
func (c *GraphContractor) findRequiredShortcuts(v da.Index) (shortcuts []shortcut, removed int) {
	removed = c.graph.GetOutDegree(v) + c.graph.GetInDegree(v)

	type outTarget struct {
		edge   da.Index
		head   da.Index
		weight float64
	}
	outs := make([]outTarget, 0)
	c.graph.ForOutEdgesOf(v, func(e da.Index) {
		head := c.graph.GetTarget(e)
		if head == v {
			// self loop, nothing to preserve
			return
		}
		outs = append(outs, outTarget{edge: e, head: head, weight: c.graph.GetEdgeData(e).GetWeight()})
	})
	if len(outs) == 0 {
		return nil, removed
	}

	c.graph.ForInEdgesOf(v, func(ie da.Index) {
		u := c.graph.GetSource(ie)
		if u == v {
			return
		}
		inWeight := c.graph.GetEdgeData(ie).GetWeight()

		targets := make(map[da.Index]float64, len(outs))
		weightBound := 0.0
		for _, out := range outs {
			if out.head == u {
				continue
			}
			candidate := inWeight + out.weight
			if prev, ok := targets[out.head]; !ok || candidate < prev {
				targets[out.head] = candidate
			}
			if candidate > weightBound {
				weightBound = candidate
			}
		}
		if len(targets) == 0 {
			return
		}

		dist := c.runWitnessSearch(u, v, targets, weightBound)

		for _, out := range outs {
			if out.head == u {
				continue
			}
			candidate := inWeight + out.weight
			if d, settledTarget := dist[out.head]; settledTarget && d <= candidate {
				// witness found, the shortcut would be redundant
				continue
			}
			if candidate > targets[out.head] {
				// a cheaper parallel edge u->v already produced this candidate
				continue
			}
			shortcuts = append(shortcuts, shortcut{
				tail:       u,
				head:       out.head,
				weight:     candidate,
				firstPart:  ie,
				secondPart: out.edge,
			})
		}
	})

	return shortcuts, removed
}

// insertShortcut inserts u->w unless an edge with the same endpoints and a
// weight at most as small already exists; an existing more expensive
// shortcut is updated in place instead of duplicated. reports whether a new
// edge record was created.
func (c *GraphContractor) insertShortcut(sc shortcut) bool {
	existing, found := c.graph.FindSmallestEdge(sc.tail, sc.head, func(*da.CHEdge) bool { return true })
	if found {
		data := c.graph.GetEdgeData(existing)
		if data.GetWeight() <= sc.weight {
			return false
		}
		if data.IsShortcut() {
			data.SetWeight(sc.weight)
			data.SetUnpackInfo(sc.firstPart, sc.secondPart)
			return false
		}
	}
	c.graph.InsertEdge(da.NewCHShortcutEdge(sc.tail, sc.head, sc.weight, sc.firstPart, sc.secondPart))
	return true
}

// collectNeighbors gathers the distinct unmasked neighbors of v in either
// direction, captured before v's edges get masked out.
func (c *GraphContractor) collectNeighbors(v da.Index) []da.Index {
	seen := make(map[da.Index]struct{})
	neighbors := make([]da.Index, 0)

	add := func(u da.Index) {
		if u == v {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		neighbors = append(neighbors, u)
	}
	c.graph.ForOutEdgesOf(v, func(e da.Index) {
		add(c.graph.GetTarget(e))
	})
	c.graph.ForInEdgesOf(v, func(e da.Index) {
		add(c.graph.GetSource(e))
	})
	return neighbors
}

// updatePriorities re-evaluates the priority of the given nodes in
// parallel. evaluation only reads the graph, so the chunks share it
// without locks.
func (c *GraphContractor) updatePriorities(nodes []da.Index) {
	if len(nodes) == 0 {
		return
	}

	chunkSize := util.Max(1, (len(nodes)+c.numWorkers-1)/c.numWorkers)
	eg := errgroup.Group{}
	for begin := 0; begin < len(nodes); begin += chunkSize {
		end := util.Min(begin+chunkSize, len(nodes))
		chunk := nodes[begin:end]
		eg.Go(func() error {
			for _, v := range chunk {
				c.priorities[v] = c.evaluatePriority(v)
			}
			return nil
		})
	}
	eg.Wait()
}
