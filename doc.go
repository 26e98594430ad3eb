// Package matcache memoizes the result of one expensive linear-algebra
// operation - matrix inversion - keyed on exact structural identity of
// the input matrix.
//
// 🚀 What is matcache?
//
//	A small, deterministic library built from two packages:
//		• matrix/ - dense row-major storage, LU factorization and inversion,
//		  strict validators and sentinel errors
//		• memo/   - a single-slot cache cell plus a memoizing solver that
//		  reuses a computed inverse while the requested matrix stays
//		  structurally identical to the cached one
//
// ✨ Why choose matcache?
//
//   - Exact cache keys - element-for-element equality, never tolerance-based,
//     so a hit is always the inverse of precisely the matrix you passed
//   - Explicit state - the memo slot lives in a Solver you construct and own;
//     no hidden globals, so tests and callers isolate state freely
//   - Honest failures - singular or non-square inputs propagate as sentinel
//     errors and never leave a stale value behind
//   - Observable - cache hits are reported through a pluggable structured
//     logger, not a hard-coded print
//
// Quick sketch:
//
//	s := memo.NewSolver()
//	inv, err := s.Solve(m)  // computes
//	inv, err = s.Solve(m)   // cache hit, no recomputation
//
// Intentionally out of scope: multi-entry caches, eviction policies,
// concurrent callers, persistence. One matrix, one inverse, one slot.
//
//	go get github.com/katalvlaran/matcache
package matcache
