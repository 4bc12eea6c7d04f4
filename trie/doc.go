// Package trie provides the route-partitioned trie storage backend.
//
// RouteTrieGraph gives every origin node its own character trie over
// destination ids. The terminal trie node of a fully matched destination
// holds the edges ending there (several airlines may serve one route),
// while the trie root keeps a flat append-only aggregate of all outgoing
// edges so that Neighbors stays O(d) regardless of trie depth.
//
// The trie index is what the backend exists for: exact-destination point
// lookups (Weight, Airline) and prefix queries (DestinationsWithPrefix)
// cost O(k) in the key length instead of a linear scan over wide fan-out
// nodes.
package trie
