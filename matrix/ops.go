// SPDX-License-Identifier: MIT

// Package matrix - multiplication and exact structural equality.
//
// Mul exists so callers (and our own tests) can verify A × A⁻¹ ≈ I without
// reaching for a second library. Equal is the cache-key comparison of the
// memo package and is therefore exact by contract: no epsilon, ever.

package matrix

import "fmt"

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: if both are *Dense, use i→k→j with row-major strides and
//     zero-skip; otherwise a fixed i→j→k interface fallback.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)

	// Fast path for two Dense matrices: row-major multiplication into res.data.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Equal reports exact structural equality: same shape and every element
// compared with ==. This is the memo cache-key comparison, so tolerance-based
// semantics are intentionally excluded; a one-ulp difference is a different
// matrix. Two nil matrices are equal; nil vs non-nil is not.
//
// Determinism:
//   - Fixed flat (fast path) or i→j (fallback) scan; short-circuits on the
//     first differing element.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func Equal(a, b Matrix) bool {
	// Nil handling: both nil equal, one nil unequal.
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Shape must match exactly.
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Fast path: both *Dense, compare flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := len(da.data)
			for idx := 0; idx < n; idx++ {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: generic interface scan. Shape is already validated, so At
	// only fails on a broken implementation; that still reports unequal.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}
