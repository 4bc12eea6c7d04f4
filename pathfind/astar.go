package pathfind

import "github.com/avikorn/skygraph/core"

// AStar finds the minimum-weight path from origin to destination using the
// supplied heuristic for the priority key f = g + h(node, destination).
// A nil heuristic falls back to ZeroHeuristic, making the call exactly
// equivalent to Dijkstra.
//
// Optimality is guaranteed only for an admissible heuristic: ZeroHeuristic
// always, UnitHopHeuristic only when every edge weight is ≥ 1. The engine
// does not check admissibility.
//
// State machine, statistics and negative outcomes are identical to
// Dijkstra; only the heap ordering differs.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func AStar(g core.Graph, origin, destination string, h Heuristic, opts ...Option) PathResult {
	if h == nil {
		h = ZeroHeuristic
	}

	return run(g, origin, destination, h, opts)
}
