// Package pipeline orchestrates file discovery, per-file classification and
// moves, deferred duplicate-folder relocation, and batch summary reporting.
//
// A run is a single synchronous pass over a directory listing snapshotted
// (and sorted) up front, so moves performed by the run never feed back into
// the iteration. No per-file failure aborts the batch; every failure
// degrades to a counted outcome.
package pipeline
