// Package core defines the Edge value, the Graph storage contract, and the
// adjacency-list family of backends.
//
// The Graph contract is deliberately tiny: AddNode, AddEdge, Neighbors,
// HasNode, NodeCount, EdgeCount, Nodes. Every backend in this module —
// here and in the linked, matrix, csr and trie packages — implements it
// with identical observable behavior:
//
//   - AddNode is idempotent.
//   - AddEdge auto-registers both endpoints and never rejects parallel
//     edges (multiple airlines on one route coexist).
//   - Neighbors returns the outgoing edges of a node, or an empty slice
//     for an unknown node, without exposing mutable internal state.
//   - EdgeCount equals the number of AddEdge calls; NodeCount equals the
//     number of distinct ids ever registered or referenced.
//
// What differs between backends is cost and memory shape, which is exactly
// what the experiment package measures. The three backends in this package
// are the array family:
//
//	AdjacencyGraph       — one growable slice per node; O(1) amortized insert,
//	                       O(d) copy on Neighbors; insertion order preserved.
//	SortedAdjacencyGraph — per-node slice kept ascending by weight
//	                       (ties by destination id); O(log d) search +
//	                       O(d) shift per insert.
//	DynamicArrayGraph    — per-node fixed-capacity array with explicit
//	                       geometric doubling (factor 2) on overflow.
//
// Backends are not safe for concurrent writers, nor for a writer concurrent
// with readers. The intended discipline is build-then-freeze: finish all
// mutation before issuing read-only traffic.
package core
