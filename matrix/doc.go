// Package matrix provides the dense-grid storage backend.
//
// MatrixGraph stores edge weights and airline labels in two n×n grids,
// pre-allocated at construction for a fixed maximum node count. Inserts
// are O(1) cell writes; Neighbors scans a full row in O(n) regardless of
// the node's degree, which is the trade-off this backend exists to
// demonstrate.
//
// A cell holds at most one edge: adding a second edge for the same
// (from, to) pair overwrites the cell while the global edge counter keeps
// counting adds, mirroring the dense layout's inability to represent
// parallel edges. Exceeding the pre-allocated capacity is a programming
// error and panics; the backend does not grow.
package matrix
