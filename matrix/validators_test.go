// Package matrix_test contains unit tests for the canonical validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers the nil guard both ways.
func TestValidateNotNil(t *testing.T) {
	err := matrix.ValidateNotNil(nil)            // nil interface value
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	m, err := matrix.NewDense(1, 1) // any live matrix
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m)) // non-nil passes
}

// TestValidateSameShape covers row, column, and matching-shape cases.
func TestValidateSameShape(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 3) // row count differs
	require.NoError(t, err)
	c, err := matrix.NewDense(2, 2) // column count differs
	require.NoError(t, err)
	d, err := matrix.NewDense(2, 3) // same shape as a
	require.NoError(t, err)

	err = matrix.ValidateSameShape(a, b)                 // rows mismatch
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	err = matrix.ValidateSameShape(a, c)                 // cols mismatch
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	require.NoError(t, matrix.ValidateSameShape(a, d)) // equal shapes pass
}

// TestValidateSquare covers the square guard both ways.
func TestValidateSquare(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	err = matrix.ValidateSquare(rect)            // rectangular input
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect ErrNonSquare

	require.NoError(t, matrix.ValidateSquare(sq)) // square passes
}

// TestValidateSquareNonNil covers the composite's fixed NotNil → Square order.
func TestValidateSquareNonNil(t *testing.T) {
	err := matrix.ValidateSquareNonNil(nil)      // nil fires first
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	rect, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	err = matrix.ValidateSquareNonNil(rect)      // then the shape check
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect ErrNonSquare
}

// TestValidateMulCompatible covers nil operands and inner-dimension checks.
func TestValidateMulCompatible(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 4) // inner dims agree: a.Cols == b.Rows
	require.NoError(t, err)
	c, err := matrix.NewDense(2, 4) // inner dims disagree
	require.NoError(t, err)

	err = matrix.ValidateMulCompatible(nil, b)   // nil left operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	err = matrix.ValidateMulCompatible(a, nil)   // nil right operand
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix

	err = matrix.ValidateMulCompatible(a, c)             // 3 vs 2 inner mismatch
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	require.NoError(t, matrix.ValidateMulCompatible(a, b)) // compatible pair passes
}
