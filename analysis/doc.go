// Package analysis computes read-only structural summaries over any
// core.Graph backend: node/edge counts, density, degree statistics, hub
// ranking and per-airline route statistics.
//
// Everything here works through the Graph contract alone and never
// mutates the graph, so summaries can be taken of any backend at any
// point after construction.
package analysis
