// Package ingest turns raw airline review CSV data into graph edges.
//
// The pipeline is: read rows (case-insensitive header discovery, malformed
// lines skipped with a warning) → aggregate per (origin, destination,
// airline) route → average the five review ratings, treating zeros as
// missing → derive the scalar edge weight → populate any core.Graph
// backend, or several backends concurrently.
//
// The weight formula converts each present rating r to a cost 6−r, takes
// the weighted sum with coefficients 0.40 overall, 0.20 value-for-money,
// 0.10 inflight entertainment, 0.10 cabin staff, 0.20 seat comfort, and
// renormalizes over the coefficients of the ratings actually present.
// A route with no ratings at all falls back to weight 3.0. All derived
// weights therefore lie in [1, 5].
//
// Everything downstream of this package only ever sees well-formed
// core.Edge values.
package ingest
