package pathfind

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/avikorn/skygraph/core"
)

// UnboundedStops disables the stop budget.
const UnboundedStops = math.MaxInt

// PathResult is the immutable outcome of one search call.
//
// For Found == false, Path and Airlines are nil. NodesVisited and
// EdgesRelaxed are zero when the search never ran (absent origin or
// destination) and non-zero when the search exhausted the graph without
// reaching the destination — the two negative outcomes are distinguished
// only by that.
type PathResult struct {
	// Path is the ordered node sequence from origin to destination.
	Path []string

	// Airlines holds the carrier of each leg; len(Airlines) == len(Path)-1.
	Airlines []string

	// TotalWeight is the summed weight along Path.
	TotalWeight float64

	// NodesVisited counts nodes settled by the search.
	NodesVisited int

	// EdgesRelaxed counts every edge examined, including edges rejected
	// by constraints.
	EdgesRelaxed int

	// Elapsed is the wall-clock duration of the search call.
	Elapsed time.Duration

	// Found reports whether a path was established.
	Found bool
}

// Hops returns the number of legs in the path, zero when no path.
func (r PathResult) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// PathString renders the path as "SG → AE → IT", or "no route" when empty.
func (r PathResult) PathString() string {
	if len(r.Path) == 0 {
		return "no route"
	}

	return strings.Join(r.Path, " → ")
}

// Summary renders a multi-line report of the result for display surfaces.
func (r PathResult) Summary() string {
	if !r.Found {
		return fmt.Sprintf("no route found (nodes visited: %d, edges relaxed: %d, elapsed: %s)",
			r.NodesVisited, r.EdgesRelaxed, r.Elapsed)
	}

	return fmt.Sprintf(
		"route: %s\nairlines: [%s]\ntotal weight: %.3f\nhops: %d\nnodes visited: %d\nedges relaxed: %d\nelapsed: %s",
		r.PathString(), strings.Join(r.Airlines, ", "), r.TotalWeight,
		r.Hops(), r.NodesVisited, r.EdgesRelaxed, r.Elapsed)
}

// Constraints is a stateless per-query predicate limiting which edges a
// search may traverse. The zero value of each field means "no restriction";
// construct via DefaultConstraints or the With* options.
type Constraints struct {
	// MaxStops caps the hop count; an edge is rejected once the current
	// stop count reaches it. UnboundedStops disables the cap.
	MaxStops int

	// Allowlist, when non-empty, admits only the listed airlines.
	Allowlist map[string]struct{}

	// Blocklist always rejects the listed airlines.
	Blocklist map[string]struct{}
}

// DefaultConstraints returns the unconstrained predicate.
func DefaultConstraints() Constraints {
	return Constraints{MaxStops: UnboundedStops}
}

// Allows reports whether e may be traversed at the given current stop
// count: the stop budget is checked first, then the allowlist, then the
// blocklist. Pure function; safe to share across concurrent queries.
func (c Constraints) Allows(e core.Edge, currentStops int) bool {
	if currentStops >= c.MaxStops {
		return false
	}
	if len(c.Allowlist) > 0 {
		if _, ok := c.Allowlist[e.Airline]; !ok {
			return false
		}
	}
	if _, ok := c.Blocklist[e.Airline]; ok {
		return false
	}

	return true
}

// Heuristic estimates the remaining cost from node to goal for A*.
// It must never overestimate the true remaining cost (be admissible) for
// A* to guarantee optimality.
type Heuristic func(node, goal string) float64

// ZeroHeuristic estimates zero everywhere, reducing A* to Dijkstra exactly.
func ZeroHeuristic(node, goal string) float64 { return 0 }

// UnitHopHeuristic estimates one remaining hop everywhere except the goal.
// It is admissible — and A* with it optimal — only when every edge weight
// is ≥ 1; the engine does not enforce that precondition, the caller must.
func UnitHopHeuristic(node, goal string) float64 {
	if node == goal {
		return 0
	}

	return 1
}

// Option customizes a single search call.
type Option func(*options)

type options struct {
	constraints Constraints
}

func defaultOptions() options {
	return options{constraints: DefaultConstraints()}
}

// WithConstraints replaces the whole constraint set for this query.
func WithConstraints(c Constraints) Option {
	return func(o *options) { o.constraints = c }
}

// WithMaxStops caps the number of stops for this query.
func WithMaxStops(n int) Option {
	return func(o *options) { o.constraints.MaxStops = n }
}

// WithAllowedAirlines restricts the query to the listed airlines.
func WithAllowedAirlines(airlines ...string) Option {
	return func(o *options) {
		if o.constraints.Allowlist == nil {
			o.constraints.Allowlist = make(map[string]struct{}, len(airlines))
		}
		for _, a := range airlines {
			o.constraints.Allowlist[a] = struct{}{}
		}
	}
}

// WithBlockedAirlines excludes the listed airlines from the query.
func WithBlockedAirlines(airlines ...string) Option {
	return func(o *options) {
		if o.constraints.Blocklist == nil {
			o.constraints.Blocklist = make(map[string]struct{}, len(airlines))
		}
		for _, a := range airlines {
			o.constraints.Blocklist[a] = struct{}{}
		}
	}
}
