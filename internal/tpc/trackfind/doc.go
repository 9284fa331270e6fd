// Package trackfind groups the calibrated space points of one detector
// event into candidate particle tracks.
//
// Responsibilities: Hough-space peak extraction, distance-based
// connectivity filtering, and the greedy orchestration that partitions an
// event's points into clusters plus an unclustered remainder.
// Key types: Params, Cluster, Result.
//
// Dependency rule: trackfind may depend on points and hough, but never on
// simulate. The package is pure computation: no I/O, no logging, no state
// shared across calls, so independent events may be clustered concurrently.
package trackfind
