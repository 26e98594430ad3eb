// Package matrix provides dense float64 matrices and the small set of
// linear-algebra kernels the memoizing solver consumes.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major implementation of the Matrix
//     interface with safe At/Set accessors (errors, never panics).
//   - Constructors: NewDense (zero matrix), NewDenseFromRows (validated
//     ingestion) and Identity.
//   - Kernels: LU (Doolittle, no pivoting), Inverse (via triangular
//     solves), Mul, and exact structural Equal.
//
// All kernels use fixed loop orders and central validators, returning
// sentinel errors (errors.go) that callers match via errors.Is. Exact
// equality is deliberate: Equal is the cache-key comparison for the
// memo package, so no epsilon is ever applied there.
//
// See the examples in memo for usage patterns.
package matrix
