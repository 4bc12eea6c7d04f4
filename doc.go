// Package skygraph compares graph storage representations for airline
// route networks and finds cheapest routes over them.
//
// The module is built around one small contract — core.Graph — and a family
// of interchangeable storage backends that implement it with very different
// memory-layout and mutation-ordering trade-offs:
//
//	core/    — Edge value, Graph contract, adjacency-list family
//	           (AdjacencyGraph, SortedAdjacencyGraph, DynamicArrayGraph)
//	linked/  — arena-backed pointer-linked backends
//	           (DoublyGraph, CircularGraph, HalfEdgeGraph)
//	matrix/  — dense n×n weight/airline grid with fixed capacity
//	csr/     — two-phase compressed-sparse-row layout (stage → finalize)
//	trie/    — per-origin character tries with flat neighbor aggregates
//
// On top of the contract sits the path engine:
//
//	pathfind/ — Dijkstra and A* with per-query Constraints
//	            (stop budget, airline allow/block lists) and reproducible
//	            search statistics in PathResult
//
// Supporting surfaces:
//
//	ingest/      — CSV review ingestion, route aggregation, weight derivation
//	analysis/    — structural summaries (density, degrees, hubs, airlines)
//	experiment/  — backend/algorithm benchmark harness with CSV/Markdown reports
//	cmd/skygraph — interactive terminal menu
//
// Every backend satisfies the same observable contract; the point of the
// module is that search code written once against core.Graph runs
// identically on all of them, while their build cost, neighbor-iteration
// cost and memory shape differ in measurable ways.
package skygraph
