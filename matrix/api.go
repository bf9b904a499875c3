// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels/validators; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use AllClose for float comparisons; exact == is almost always wrong here.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the neutral element when verifying inverses.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	ident, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = ident.Set(i, i, 1.0) // in-range by construction; Set cannot fail here
	}

	return ident, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(r*c) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix, opts ...Option) (*Dense, error) {
	return NewDense(m.Rows(), m.Cols(), opts...)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via the central validator.
func IdentityLike(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows(), opts...)
}

// ---------- Comparison ----------

// AllClose reports whether a and b agree element-wise within the epsilon
// policy: |a[i,j] - b[i,j]| <= eps for every cell.
//
// Inputs:
//   - a, b: matrices of equal shape.
//   - opts: WithEpsilon override (DefaultEpsilon otherwise).
//
// Returns:
//   - bool: true when every cell is within eps.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with "AllClose:").
//
// Determinism:
//   - Fixed i→j scan; returns on the first exceedance.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := resolveOptions(opts...)

	// Fast path: both operands expose flat storage.
	if ad, aok := a.(*Dense); aok {
		if bd, bok := b.(*Dense); bok {
			var idx int
			for idx = range ad.cells {
				if math.Abs(ad.cells[idx]-bd.cells[idx]) > o.eps {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback: per-cell interface reads.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("%s: At(%d,%d): %w", opAllClose, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("%s: At(%d,%d): %w", opAllClose, i, j, err)
			}
			if math.Abs(av-bv) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}
