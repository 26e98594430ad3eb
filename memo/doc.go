// Package memo implements single-slot memoization of matrix inversion.
//
// The memo package provides:
//
//   - Cell, the one-entry cache record pairing a matrix with its (optional)
//     computed inverse. Replacing the matrix always discards the inverse.
//   - Solver, an explicit context object owning the slot for its lifetime.
//     Solve returns the memoized inverse when the requested matrix is
//     structurally identical (exact element equality, never tolerance-based)
//     to the cached one, and recomputes otherwise.
//
// There is exactly one live (matrix, inverse) pair per Solver: no eviction
// policy, no multi-entry map, no locking. The Solver is a plain struct you
// construct and hand around, so tests and callers isolate their cache state
// instead of sharing hidden globals. Concurrent callers are not supported;
// callers must serialize access themselves.
//
// Cache hits are reported through a pluggable structured logger
// (github.com/apex/log), so observability is assertable in tests rather
// than scraped from process output.
package memo
