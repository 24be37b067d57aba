package pkg

const (
	INF_WEIGHT float64 = 1e15

	// level reported for nodes that survive contraction into the core
	// and never got a cached level from a previous run.
	CORE_NODE_LEVEL float64 = 1e15
)

// coefficients of the lazy node priority. edge difference dominates,
// deleted neighbors keep the contracted region growing evenly, depth keeps
// the hierarchy balanced.
const (
	EDGE_DIFFERENCE_FACTOR   = 190.0
	DELETED_NEIGHBORS_FACTOR = 120.0
	DEPTH_FACTOR             = 1.0
	NODE_WEIGHT_FACTOR       = 1.0
	CACHED_LEVEL_FACTOR      = 1.0

	// nodes whose priority is within this margin of the global minimum
	// form the contraction frontier of the current round.
	FRONTIER_PRIORITY_MARGIN = 1e-6

	// witness searches settle at most this many nodes. exhausting the
	// budget counts as "no witness found" and the shortcut gets inserted.
	WITNESS_SEARCH_MAX_SETTLED = 500
)

const (
	DEBUG = false
)
