// SPDX-License-Identifier: MIT

// Package matrix - LU factorization and inversion kernels.
//
// Purpose:
//   - Declare the inversion routine consumed by the memo solver.
//   - Keep strict fail-fast validation and plain sentinel errors wrapped
//     with an operation tag at the facade.
//
// Notes:
//   - No pivoting, by intent: fixed traversal orders give bit-for-bit
//     reproducible results for identical inputs. Callers needing numeric
//     stability on ill-conditioned inputs should precondition upstream.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for substitution loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU      = "LU"
	opInverse = "Inverse"
	opMul     = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As still match. Call only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U and column i of L in fixed order,
//     guarding every pivot against the configured tolerance.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: numeric configuration; WithPivotTolerance widens the
//     singularity guard beyond the exact-zero default.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (|U[i,i]| <= tol during
//     factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L; no data-dependent order.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	// Allocate L and U.
	n := m.Rows()
	lRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	uRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	for i := 0; i < n; i++ {
		lRaw.data[i*n+i] = 1.0
	}

	var (
		i, j, k    int
		sum, pivot float64
		a          float64
	)

	// Fast path: operate directly on the flat slice when m is *Dense.
	if mRaw, ok := m.(*Dense); ok {
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			baseI = i * n
			// Compute U[i][j] for j >= i.
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseI+k] * uRaw.data[k*n+j]
				}
				uRaw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Pivot guard (deterministic singularity detection).
			pivot = uRaw.data[baseI+i]
			if absLE(pivot, o.pivotTol) {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i.
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseJ+k] * uRaw.data[k*n+i]
				}
				lRaw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return lRaw, uRaw, nil
	}

	// Fallback: generic interface version via At; L and U stay *Dense.
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lRaw.data[i*n+k] * uRaw.data[k*n+j]
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			uRaw.data[i*n+j] = a - sum
		}

		pivot = uRaw.data[i*n+i]
		if absLE(pivot, o.pivotTol) {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lRaw.data[j*n+k] * uRaw.data[k*n+i]
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			lRaw.data[j*n+i] = (a - sum) / pivot
		}
	}

	return lRaw, uRaw, nil
}

// Inverse computes A⁻¹ using Doolittle LU factorization without pivoting.
// This is the external inversion routine consumed by memo.Solver; the
// variadic options arrive verbatim from Solve.
//
// Implementation:
//   - Stage 1: validate (not nil, square); factorize via LU(m, opts...).
//   - Stage 2: for each canonical basis column e_col, forward solve
//     L*y = e_col (top-down), backward solve U*x = y (bottom-up, pivot
//     guarded), and write x into column col of the result.
//
// Inputs:
//   - m: non-nil square matrix (n×n). Never mutated.
//   - opts: forwarded to LU; WithPivotTolerance adjusts the singularity guard.
//
// Returns:
//   - Matrix: freshly allocated Dense(n×n) containing A⁻¹.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrNonSquare (rectangular input).
//   - ErrSingular  (sub-tolerance pivot in LU or back substitution).
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓) and no pivoting give
//     identical results for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	// LU decomposition (Doolittle).
	lMat, uMat, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch vectors.
	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)

	// LU always returns *Dense factors; assert once, solve on flat slices.
	ld := lMat.(*Dense)
	ud := uMat.(*Dense)
	var baseLi, baseUi int
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += ld.data[baseLi+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseUi = i * n
			for k = i + 1; k < n; k++ {
				sum += ud.data[baseUi+k] * x[k]
			}
			pivot = ud.data[baseUi+i]
			if absLE(pivot, o.pivotTol) {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of the inverse. The signed workspaces
		// (y[i] = -sum) can carry IEEE negative zero through the division;
		// store canonical +0 so zero entries compare and render as "0".
		for i = 0; i < n; i++ {
			if x[i] == 0 {
				x[i] = 0
			}
			invDense.data[i*n+col] = x[i]
		}
	}

	return invDense, nil
}

// absLE reports whether |v| <= tol. With tol = 0 this degenerates to the
// exact-zero pivot guard.
// Complexity: O(1).
func absLE(v, tol float64) bool {
	if v < 0 {
		v = -v
	}

	return v <= tol
}
