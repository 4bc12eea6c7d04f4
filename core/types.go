// Package core declares the Edge value and the Graph storage contract
// shared by every backend in the module.
package core

import "fmt"

// Edge is one directed route leg: it leads to Destination, is operated by
// Airline, and carries the five averaged review ratings (0 = missing,
// otherwise 1..5) plus the derived scalar Weight.
//
// An Edge is immutable once constructed; backends store and hand out
// copies by value. Two edges describe the same route leg when their
// (Destination, Airline) pair matches — weight and ratings do not
// participate in identity.
//
// Weight is computed upstream (see ingest.RouteAggregate) and is assumed
// non-negative; the path engine does not validate this.
type Edge struct {
	// Destination is the node id this edge leads to.
	Destination string

	// Airline is the operating carrier label.
	Airline string

	// Averaged review ratings, 0 when missing.
	OverallRating         int
	ValueForMoney         int
	InflightEntertainment int
	CabinStaff            int
	SeatComfort           int

	// Weight is the derived cost of traversing this edge.
	Weight float64
}

// String renders the edge in a compact diagnostic form.
func (e Edge) String() string {
	return fmt.Sprintf("Edge{to=%s, airline=%s, weight=%.3f, ratings=[%d,%d,%d,%d,%d]}",
		e.Destination, e.Airline, e.Weight,
		e.OverallRating, e.ValueForMoney, e.InflightEntertainment, e.CabinStaff, e.SeatComfort)
}

// Graph is the storage contract every backend implements.
//
// Implementations differ only in build cost, neighbor-iteration cost and
// memory shape; callers (the path engine above all) must never depend on a
// concrete backend type.
type Graph interface {
	// AddNode registers id if absent. Idempotent; re-adding is a no-op.
	AddNode(id string)

	// AddEdge registers from and e.Destination as nodes, then appends e to
	// from's outgoing collection. Parallel edges between the same pair are
	// always accepted: multiple airlines on one route must coexist.
	AddEdge(from string, e Edge)

	// Neighbors returns the outgoing edges of node, or an empty slice when
	// node is unknown. The result must not alias mutable internal state in
	// a way that lets the caller corrupt the backend; whether that is a
	// copy or a read-only view is the backend's choice.
	Neighbors(node string) []Edge

	// HasNode reports whether node has been registered.
	HasNode(node string) bool

	// NodeCount returns the number of distinct registered node ids.
	NodeCount() int

	// EdgeCount returns the total number of edges added.
	EdgeCount() int

	// Nodes returns all registered node ids. Order is unspecified unless a
	// backend documents otherwise.
	Nodes() []string
}
