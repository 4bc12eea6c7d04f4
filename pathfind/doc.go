// Package pathfind implements the shortest-path engine: Dijkstra and A*
// over any core.Graph backend, with per-query Constraints and reproducible
// search statistics.
//
// Both algorithms share one state machine over nodes:
//
//	unvisited → frontier (in the min-heap with a tentative distance)
//	          → settled  (popped and finalized)
//
// terminating when the destination settles or the heap empties. A* differs
// from Dijkstra only in the priority key f = g + h(node, destination); with
// the zero heuristic the two are exactly equivalent.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each node settles at most once, each edge
//     relaxation may push one heap entry (lazy decrease-key), and every
//     heap operation costs O(log V).
//   - Space: O(V + E) for distance/predecessor maps and the heap.
//
// Statistics in PathResult are part of the contract: NodesVisited counts
// settled pops, EdgesRelaxed counts every edge examined (including edges a
// constraint rejects), and both are deterministic for a fixed graph and
// fixed insertion order.
//
// Expected negative outcomes are values, not errors: an absent origin or
// destination yields Found=false with zero statistics; an exhausted search
// yields Found=false with the work it performed.
//
// The engine runs synchronously on the calling goroutine, performs no I/O,
// and never mutates the graph. Searches against a CSR backend that was
// mutated since its last finalize trigger a rebuild on first read; see the
// csr package for the ordering requirement that implies.
package pathfind
