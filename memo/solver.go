// SPDX-License-Identifier: MIT

// Package memo - Solver, the memoizing facade over matrix.Inverse.
//
// Purpose:
//   - Decide, per call, whether the slot already holds the requested matrix
//     with a computed inverse (cache hit) or whether inversion must run.
//   - Keep the slot in an explicit, caller-owned object instead of hidden
//     package-level state.
//
// Concurrency:
//   - Single-threaded, synchronous. The slot is one shared mutable field
//     with no locking; concurrent callers would race. Callers that need
//     parallelism must serialize access or use one Solver per goroutine.

package memo

import (
	"fmt"

	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Diagnostic messages and field names (no magic strings at call sites).
const (
	msgCacheHit  = "cache hit: returning memoized inverse"
	msgCacheMiss = "cache miss: computing inverse"

	fldRows = "rows"
	fldCols = "cols"
)

// opSolve tags errors originating in Solve's own validation.
const opSolve = "Solve"

// InvertFunc is the signature of the inversion routine the Solver consumes.
// The routine is treated as an opaque, trusted dependency: its errors
// propagate to the caller unchanged. matrix.Inverse is the default.
type InvertFunc func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// Solver memoizes the inverse of the most recently requested matrix.
// The zero value is not usable; construct with NewSolver.
type Solver struct {
	cell   *Cell         // single slot; nil until the first Solve
	log    log.Interface // diagnostic sink; never nil after NewSolver
	invert InvertFunc    // inversion routine; never nil after NewSolver
}

// NewSolver constructs a Solver with an empty slot.
//
// Defaults:
//   - logger: log.Log (the apex/log standard logger).
//   - inversion routine: matrix.Inverse.
//
// Both are overridable via WithLogger / WithInvertFunc.
// Complexity: O(len(opts)).
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		log:    log.Log,
		invert: matrix.Inverse,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve returns the inverse of m, reusing the memoized result when m is
// structurally identical to the cached matrix.
//
// Implementation:
//   - Stage 1: reject nil input. If the slot is empty or keyed on a matrix
//     that is not exactly equal to m (matrix.Equal: same shape, every
//     element ==), replace the cell wholesale - the old inverse is gone.
//   - Stage 2: if the (now up-to-date) cell holds an inverse, log the cache
//     hit at Info level and return it without recomputation.
//   - Stage 3: otherwise invoke the inversion routine with the cell's matrix
//     and the pass-through options, store the result, and return it.
//
// Inputs:
//   - m: the matrix to invert. Retained by reference in the slot; mutating
//     it after the call bypasses invalidation, so treat submitted matrices
//     as immutable (or Clone before mutating).
//   - opts: forwarded verbatim to the inversion routine (e.g.
//     matrix.WithPivotTolerance). They are not part of the cache key.
//
// Errors:
//   - matrix.ErrNilMatrix (nil input; the slot is left untouched).
//   - Inversion failures (matrix.ErrSingular, matrix.ErrNonSquare, ...)
//     propagate unchanged. The cell is then keyed on m with the inverse
//     still absent, so a retry attempts inversion again instead of
//     reporting a stale hit.
//
// Determinism:
//   - The hit/miss decision depends only on exact equality with the cached
//     matrix; a single differing element or a different shape re-keys the
//     slot unconditionally.
//
// Complexity:
//   - Hit: O(r*c) for the equality scan. Miss: O(n³) inversion dominates.
func (s *Solver) Solve(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	// Reject nil input before touching the slot.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	// Re-key the slot on any structural change. The cell is replaced
	// wholesale, never patched field by field.
	if s.cell == nil || !matrix.Equal(s.cell.Matrix(), m) {
		s.cell = NewCell(m)
	}

	// Cache hit: inverse already present for exactly this matrix.
	if inv, ok := s.cell.Inverse(); ok {
		s.log.WithField(fldRows, m.Rows()).WithField(fldCols, m.Cols()).Info(msgCacheHit)

		return inv, nil
	}

	// Cache miss: run the inversion routine with the pass-through options.
	s.log.WithField(fldRows, m.Rows()).WithField(fldCols, m.Cols()).Debug(msgCacheMiss)
	inv, err := s.invert(s.cell.Matrix(), opts...)
	if err != nil {
		// Propagate unchanged; the cell stays keyed on m, inverse absent.
		return nil, err
	}

	// Store and return the fresh inverse.
	s.cell.SetInverse(inv)

	return inv, nil
}

// Reset drops the slot entirely; the next Solve recomputes regardless of
// input. Resetting an already-empty solver is a no-op.
// Complexity: O(1).
func (s *Solver) Reset() { s.cell = nil }
