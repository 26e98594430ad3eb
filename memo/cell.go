// SPDX-License-Identifier: MIT

// Package memo - Cell, the single-slot (matrix, inverse) record.
//
// Purpose:
//   - Hold the last matrix supplied and its inverse, "absent" until computed.
//   - Enforce the one invariant of the slot: replacing the matrix resets the
//     inverse before any further read.
//
// The inverse field has exactly three transitions: absent→present on
// SetInverse, present→absent on SetMatrix, absent→absent on a repeated
// SetMatrix. Nothing else mutates it.

package memo

import "github.com/katalvlaran/matcache/matrix"

// Cell is the single-slot memoization record. A nil inverse field encodes
// "absent"; Inverse exposes that as a (value, ok) pair so callers never
// compare against nil themselves.
//
// Cell performs no validation and returns no errors: it is a pure record
// with accessors, and the Solver owns all decision logic.
type Cell struct {
	matrix  matrix.Matrix // the matrix this slot is keyed on
	inverse matrix.Matrix // nil until SetInverse; reset by SetMatrix
}

// NewCell creates a cell keyed on m with the inverse absent.
// Complexity: O(1).
func NewCell(m matrix.Matrix) *Cell {
	return &Cell{matrix: m}
}

// Matrix returns the currently stored matrix. No side effects.
// Complexity: O(1).
func (c *Cell) Matrix() matrix.Matrix { return c.matrix }

// SetMatrix replaces the stored matrix with m and unconditionally resets the
// stored inverse to absent. Both fields are overwritten even when m equals
// the current matrix; deciding whether a replacement is needed is the
// Solver's job, not the Cell's.
// Complexity: O(1).
func (c *Cell) SetMatrix(m matrix.Matrix) {
	c.matrix = m
	c.inverse = nil
}

// Inverse returns the stored inverse and whether it is present.
// The value is returned unchanged; ok=false means absent.
// Complexity: O(1).
func (c *Cell) Inverse() (matrix.Matrix, bool) {
	return c.inverse, c.inverse != nil
}

// SetInverse stores inv as the cached inverse for the currently held matrix.
// The caller is responsible for only storing an inverse that actually
// corresponds to the matrix in this cell; Cell does not verify the pairing.
// Complexity: O(1).
func (c *Cell) SetInverse(inv matrix.Matrix) {
	c.inverse = inv
}
