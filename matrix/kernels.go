// SPDX-License-Identifier: MIT

// Package matrix - dense linear-algebra kernels.
//
// Purpose:
//   - Implement the arithmetic and factorization core: Add, Sub, Mul, Scale,
//     Transpose, LU (Doolittle) and Inverse (LU + per-column solves).
//   - Keep a dual execution strategy per kernel: a flat fast-path when inputs
//     are *Dense, and a generic At/Set fallback for any Matrix implementation.
//   - Route every failure through the shared sentinels (errors.go) wrapped
//     with a stable operation tag, so callers can rely on errors.Is.
//
// Behavior highlights:
//   - Kernels never mutate their inputs; results are freshly allocated *Dense.
//   - Singularity is decided by the epsilon policy (options.go): a pivot with
//     |pivot| <= eps fails with ErrSingular. WithEpsilon(0) restores
//     exact-zero semantics.
//
// Determinism:
//   - Fixed loop orders everywhere (i→j, i→k→j for Mul); no map iteration,
//     no randomness. Identical inputs and options produce identical outputs.
//
// AI-Hints:
//   - Pass *Dense values to stay on the flat fast-paths; interface-only
//     implementations are supported but pay per-cell call overhead.
//   - LU performs no pivoting: permutation-singular inputs (zero pivot with
//     nonzero determinant) are reported as ErrSingular. Acceptable for the
//     well-conditioned inputs this package targets.

package matrix

import (
	"fmt"
	"math"
)

// ---------- operation tags ----------

// Stable operation names used in wrapped errors ("<op>: <cause>").
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opLU        = "LU"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
)

// matrixErrorf attaches the operation tag to an underlying error.
// Keeps kernel call sites uniform: matrixErrorf(opMul, err).
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// newZeros allocates a zero-filled result matrix for kernel outputs.
// Dimensions are pre-validated by the calling kernel.
func newZeros(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		rows:        rows,
		cols:        cols,
		cells:       make([]float64, rows*cols),
		checkNaNInf: validateNaNInf,
	}
}

// flatten exposes m's cells as a row-major slice for read-only use.
// Fast path: *Dense returns its live buffer (callers must not mutate it).
// Fallback: any Matrix is copied out through At with per-cell error context.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func flatten(m Matrix, op string) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.cells, nil // zero-copy; read-only by contract
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", op, i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub implements both Add (sign=+1) and Sub (sign=-1) over a shared body.
// Guards: NotNil(a), NotNil(b), SameShape(a,b). Result is a fresh *Dense.
func addSub(a, b Matrix, sign float64, op string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newZeros(rows, cols, DefaultValidateNaNInf)

	// Fast path: both operands expose flat storage.
	if ad, aok := a.(*Dense); aok {
		if bd, bok := b.(*Dense); bok {
			var idx int
			for idx = range res.cells { // single flat sweep
				res.cells[idx] = ad.cells[idx] + sign*bd.cells[idx]
			}

			return res, nil
		}
	}

	// Generic fallback: per-cell interface reads with error context.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", op, i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", op, i, j, err)
			}
			res.cells[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a+b as a new *Dense.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a-b as a new *Dense.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a·b as a new *Dense.
// Implementation:
//   - Stage 1: validate operands (NotNil; a.Cols == b.Rows).
//   - Stage 2: fast path on two *Dense values with i→k→j loop order and a
//     zero-skip on a[i,k] (sparse-ish inputs get cheaper).
//   - Stage 3: generic fallback through At for foreign implementations.
//
// Inputs:
//   - a: n×m, b: m×p.
//
// Returns:
//   - *Dense: n×p product.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with "Mul:").
//
// Determinism:
//   - Fixed i→k→j order; float accumulation order is therefore stable.
//
// Complexity:
//   - Time O(n*m*p), Space O(n*p).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, m, p := a.Rows(), a.Cols(), b.Cols()
	res := newZeros(n, p, DefaultValidateNaNInf)

	// Fast path: flat reads, i→k→j accumulation.
	if ad, aok := a.(*Dense); aok {
		if bd, bok := b.(*Dense); bok {
			var i, k, j int
			var aik float64
			for i = 0; i < n; i++ {
				for k = 0; k < m; k++ {
					aik = ad.cells[i*m+k]
					if aik == 0 { // skip zero contributions entirely
						continue
					}
					for j = 0; j < p; j++ {
						res.cells[i*p+j] += aik * bd.cells[k*p+j]
					}
				}
			}

			return res, nil
		}
	}

	// Generic fallback: same loop order, interface reads.
	var i, k, j int
	var aik, bkj float64
	var err error
	for i = 0; i < n; i++ {
		for k = 0; k < m; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", opMul, i, k, err)
			}
			if aik == 0 {
				continue
			}
			for j = 0; j < p; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, fmt.Errorf("%s: At(%d,%d): %w", opMul, k, j, err)
				}
				res.cells[i*p+j] += aik * bkj
			}
		}
	}

	return res, nil
}

// Scale returns k·m as a new *Dense.
// Errors: ErrNilMatrix (wrapped with "Scale:"). Complexity: O(r*c).
func Scale(m Matrix, k float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newZeros(rows, cols, DefaultValidateNaNInf)

	if d, ok := m.(*Dense); ok {
		var idx int
		for idx = range d.cells { // flat sweep
			res.cells[idx] = k * d.cells[idx]
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", opScale, i, j, err)
			}
			res.cells[i*cols+j] = k * v
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new *Dense.
// Errors: ErrNilMatrix (wrapped with "Transpose:"). Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newZeros(cols, rows, DefaultValidateNaNInf)

	if d, ok := m.(*Dense); ok {
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.cells[j*rows+i] = d.cells[i*cols+j]
			}
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", opTranspose, i, j, err)
			}
			res.cells[j*rows+i] = v
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization m = L·U without pivoting.
// Implementation:
//   - Stage 1: validate (NotNil → WellFormed → Square); snapshot m's cells.
//   - Stage 2: for each i, fill U's row i, then L's column i below the
//     unit diagonal, dividing by the pivot U[i][i].
//   - Stage 3: a pivot with |pivot| <= eps aborts with ErrSingular.
//
// Behavior highlights:
//   - L is unit lower triangular (ones on the diagonal), U upper triangular.
//   - Past the eps guard every U[i][i] is nonzero, so downstream solves can
//     divide without re-checking.
//   - No pivoting; see the package note on permutation-singular inputs.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithEpsilon / WithNaNInfCheck overrides.
//
// Returns:
//   - l, u: fresh *Dense factors.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular
//     (all wrapped with "LU:").
//
// Determinism:
//   - Fixed elimination order; identical inputs and eps give identical factors.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*Dense, *Dense, error) {
	if err := ValidateSquareWellFormed(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := resolveOptions(opts...)

	n := m.Rows()
	src, err := flatten(m, opLU)
	if err != nil {
		return nil, nil, err
	}

	l := newZeros(n, n, o.validateNaNInf)
	u := newZeros(n, n, o.validateNaNInf)

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// U's row i: u[i][j] = a[i][j] - Σ_{k<i} l[i][k]·u[k][j].
		for j = i; j < n; j++ {
			sum = src[i*n+j]
			for k = 0; k < i; k++ {
				sum -= l.cells[i*n+k] * u.cells[k*n+j]
			}
			u.cells[i*n+j] = sum
		}

		// Unit diagonal of L.
		l.cells[i*n+i] = 1

		// Pivot guard: eps-singularity check before the divisions below.
		pivot = u.cells[i*n+i]
		if math.Abs(pivot) <= o.eps {
			return nil, nil, fmt.Errorf("%s: pivot %d: %w", opLU, i, ErrSingular)
		}

		// L's column i: l[j][i] = (a[j][i] - Σ_{k<i} l[j][k]·u[k][i]) / pivot.
		for j = i + 1; j < n; j++ {
			sum = src[j*n+i]
			for k = 0; k < i; k++ {
				sum -= l.cells[j*n+k] * u.cells[k*n+i]
			}
			l.cells[j*n+i] = sum / pivot
		}
	}

	return l, u, nil
}

// Inverse computes m⁻¹ via LU factorization and per-column triangular solves.
// Implementation:
//   - Stage 1: validate (NotNil → WellFormed → Square).
//   - Stage 2: factor m = L·U (inherits the eps-singularity guard).
//   - Stage 3: for each basis column e_c, forward-solve L·y = e_c, then
//     back-solve U·x = y; x becomes column c of the inverse.
//
// Behavior highlights:
//   - The input is never mutated; scratch vectors are reused across columns.
//   - U's diagonal is nonzero past the LU guard, so the back-substitution
//     divides unconditionally.
//
// Inputs:
//   - m: square, non-singular (under eps) matrix.
//   - opts: WithEpsilon / WithNaNInfCheck overrides.
//
// Returns:
//   - *Dense: the n×n inverse.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular
//     (all wrapped with "Inverse:").
//
// Determinism:
//   - Column-by-column solves in fixed order.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Verify round-trips with AllClose(Mul(m, inv), identity): exact equality
//     is the wrong check for floats.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareWellFormed(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	l, u, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := resolveOptions(opts...)

	n := m.Rows()
	inv := newZeros(n, n, o.validateNaNInf)

	// Scratch vectors, reused for every basis column.
	y := make([]float64, n)
	x := make([]float64, n)

	var c, i, k int
	var sum float64
	for c = 0; c < n; c++ {
		// Forward substitution: L·y = e_c (L has a unit diagonal).
		for i = 0; i < n; i++ {
			sum = 0
			if i == c {
				sum = 1
			}
			for k = 0; k < i; k++ {
				sum -= l.cells[i*n+k] * y[k]
			}
			y[i] = sum
		}

		// Back substitution: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= u.cells[i*n+k] * x[k]
			}
			x[i] = sum / u.cells[i*n+i]
		}

		// Install column c of the inverse.
		for i = 0; i < n; i++ {
			inv.cells[i*n+c] = x[i]
		}
	}

	return inv, nil
}
