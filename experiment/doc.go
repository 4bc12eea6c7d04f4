// Package experiment benchmarks the graph backends against each other:
// route-query timing with Dijkstra and A*, neighbor-iteration sweeps, and
// synthetic dataset generation for scaling runs.
//
// A Runner executes one experiment over a set of backends built from the
// same route data and collects per-backend measurements into a Report,
// which can be written as CSV (for plotting) or Markdown (for reading).
// Every run gets a UUID so output files from repeated runs never collide.
//
// Timing here is wall-clock comparison between backends under identical
// query loads, not an isolated micro-benchmark; use the bench_test.go
// files in the data-structure packages for that.
package experiment
