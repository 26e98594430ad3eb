// Package memo_test contains unit tests for the single-slot cache Cell.
package memo_test

import (
	"testing"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
	"github.com/stretchr/testify/require"
)

// TestNewCellInverseAbsent verifies a fresh cell starts with no inverse.
func TestNewCellInverseAbsent(t *testing.T) {
	m, err := matrix.Identity(2) // any matrix will do as the key
	require.NoError(t, err)

	c := memo.NewCell(m) // fresh cell keyed on m

	require.Same(t, m, c.Matrix()) // the stored matrix is the exact object supplied

	inv, ok := c.Inverse() // read the inverse slot
	require.False(t, ok)   // absent on creation
	require.Nil(t, inv)    // and no value leaks out
}

// TestSetInverseMakesPresent verifies the absent→present transition.
func TestSetInverseMakesPresent(t *testing.T) {
	m, err := matrix.Identity(2)
	require.NoError(t, err)
	c := memo.NewCell(m)

	c.SetInverse(m) // identity is its own inverse; store it

	inv, ok := c.Inverse() // read back
	require.True(t, ok)    // present after SetInverse
	require.Same(t, m, inv) // returned unchanged, same object
}

// TestSetMatrixResetsInverse verifies the present→absent transition:
// replacing the matrix always discards the inverse.
func TestSetMatrixResetsInverse(t *testing.T) {
	m1, err := matrix.Identity(2)
	require.NoError(t, err)
	m2, err := matrix.Identity(3)
	require.NoError(t, err)

	c := memo.NewCell(m1)
	c.SetInverse(m1) // slot now holds a computed inverse

	c.SetMatrix(m2) // re-key the cell

	require.Same(t, m2, c.Matrix()) // new matrix stored

	_, ok := c.Inverse() // the old inverse must be gone
	require.False(t, ok) // present→absent on any SetMatrix
}

// TestSetMatrixRepeatStaysAbsent verifies the absent→absent no-op:
// re-keying an empty cell leaves the inverse absent.
func TestSetMatrixRepeatStaysAbsent(t *testing.T) {
	m, err := matrix.Identity(2)
	require.NoError(t, err)

	c := memo.NewCell(m)
	c.SetMatrix(m) // repeat invalidation with the same matrix

	_, ok := c.Inverse()
	require.False(t, ok) // still absent, no other transition exists
}
