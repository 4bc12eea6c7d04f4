// Package linked provides the pointer-linked storage backends: per-node
// doubly linked lists, circular singly linked lists, and half-edge lists.
//
// All three satisfy the core.Graph contract with O(1) append via tail
// pointers and O(d) pointer walks on Neighbors. Instead of raw pointers,
// edge records live in a single append-only arena per graph and link to
// each other by index (next/prev int32 fields, -1 for none). The arena
// keeps the record layout explicit while avoiding the ownership cycles
// that mutable next/prev pointers would otherwise create.
//
//	DoublyGraph   — head/tail list per node, explicit next and prev links.
//	CircularGraph — tail-only circular list per node; a walk starts at
//	                tail.next (the head) and stops when it returns there.
//	HalfEdgeGraph — doubly linked half-edge records that wrap an Edge and
//	                remember their origin node.
//
// Like every backend in the module, these are build-then-freeze structures:
// no internal locking, no support for concurrent mutation.
package linked
