// Package csr provides the two-phase compressed-sparse-row storage backend.
//
// OffsetGraph lives in one of two states:
//
//	Staging   — edges accumulate in per-node growable lists, exactly like
//	            a plain adjacency list. finalized == false.
//	Finalized — one contiguous edge array plus per-node (offset, count)
//	            pairs, built in a single O(V+E) pass. Neighbor access is a
//	            zero-copy subslice of the shared array.
//
// Finalize is triggered explicitly via Finalize, or lazily by the first
// Neighbors (or point lookup) after a mutation. Any AddEdge after
// finalization drops the graph back to staging; the next read rebuilds
// the whole layout rather than patching the flat array in place —
// correctness over mutation-time efficiency.
//
// Because Neighbors can therefore rebuild, a read immediately following a
// mutation is not safe to run concurrently with other readers until the
// rebuild completes. Finish mutation (or call Finalize) before issuing
// concurrent read-only traffic.
//
// The slices returned by Neighbors alias the shared edge array and must be
// treated as read-only views.
package csr
