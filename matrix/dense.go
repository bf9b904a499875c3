// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see kernels.go): operate on the flat cells slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable via WithNaNInfCheck(false).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtCellSep  = ", "
)

// denseErrorf attaches method context and coordinates to a sentinel error.
// The "Dense.<method>(row,col): <sentinel>" shape keeps diagnostics stable and
// grep-able while preserving the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - rows, cols hold the dimensions.
//   - cells is a flat buffer of length rows*cols in row-major order (offset = i*cols + j).
//   - checkNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	rows, cols  int       // dimensions (always > 0 for constructed values)
	cells       []float64 // contiguous row-major storage (len == rows*cols)
	checkNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements the public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a rows×cols zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve the numeric policy from opts; allocate the zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: numeric policy overrides (WithNaNInfCheck).
//
// Returns:
//   - *Dense: newly allocated zero matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := resolveOptions(opts...)

	return &Dense{
		rows:        rows,
		cols:        cols,
		cells:       make([]float64, rows*cols), // make() zero-fills deterministically
		checkNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a 2D row-major literal.
// Implementation:
//   - Stage 1: validate the literal is non-empty and rectangular.
//   - Stage 2: resolve the numeric policy; reject non-finite cells when enabled.
//   - Stage 3: copy values into a fresh flat buffer (input is not aliased).
//
// Behavior highlights:
//   - The result owns its storage; mutating the input slices afterwards has no effect.
//   - Row lengths must agree; ragged input is rejected.
//
// Inputs:
//   - data: non-empty slice of equally sized non-empty rows.
//   - opts: numeric policy overrides (WithNaNInfCheck).
//
// Returns:
//   - *Dense: independent matrix with the literal's values.
//
// Errors:
//   - ErrInvalidDimensions (empty literal or empty first row).
//   - ErrRaggedRows        (rows of unequal length).
//   - ErrNaNInf            (non-finite cell under the finite-only policy).
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Handy for fixtures: NewDenseFromRows([][]float64{{1, 2}, {3, 4}}).
func NewDenseFromRows(data [][]float64, opts ...Option) (*Dense, error) {
	rows := len(data)
	if rows == 0 || len(data[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(data[0])
	o := resolveOptions(opts...)

	m := &Dense{
		rows:        rows,
		cols:        cols,
		cells:       make([]float64, rows*cols),
		checkNaNInf: o.validateNaNInf,
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ { // fixed row order
		if len(data[i]) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrRaggedRows)
		}
		for j = 0; j < cols; j++ {
			v = data[i][j]
			if m.checkNaNInf && isNonFinite(v) {
				return nil, fmt.Errorf("NewDenseFromRows: (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.cells[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// index computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods (At/Set) wrap it with
// coordinates and the method name.
// Complexity: O(1).
func (m *Dense) index(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*cols + j.
	return row*m.cols + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.index(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.cells[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute the offset via index (bounds check).
//   - Stage 2: enforce the numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf under the finite-only policy.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The policy flag is carried by Clone (single source of truth).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.index(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.checkNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.cells[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the copy do not affect the original.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.cells))
	copy(cp, m.cells) // deep copy

	return &Dense{
		rows:        m.rows,
		cols:        m.cols,
		cells:       cp,
		checkNaNInf: m.checkNaNInf, // preserve guard policy
	}
}

// String renders a readable row-wise dump for diagnostics.
// Intended for logs and debugging, not for hot paths.
// Determinism: fixed traversal order.
// Complexity: Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ { // iterate rows deterministically
		b.WriteString(fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.cells[base+j]))
			if j+1 < m.cols {
				b.WriteString(fmtCellSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
