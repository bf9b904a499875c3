// SPDX-License-Identifier: MIT
//
// File: compute.go
// Role: Memoized inversion facade — the single public entry point of the package.
// Policy:
//   - No numerical code here; inversion is delegated to the matrix package.
//   - Diagnostics go through the injected log.Interface (silent by default).
//   - Failures never mutate the Cache: only a successful inversion is stored.

package memo

import (
	"fmt"

	"github.com/memotrix/memotrix/matrix"
)

// opComputeOrFetch tags wrapped errors from the facade.
const opComputeOrFetch = "ComputeOrFetch"

// Diagnostic messages emitted through the injected logger.
const (
	msgCacheHit  = "returning cached result"
	msgComputing = "computing inverse"
)

// memoErrorf attaches the operation tag to an underlying error.
func memoErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ComputeOrFetch returns the inverse of c's data matrix, computing it at most
// once per data value: a memoized inverse is returned as-is, otherwise the
// inverse is computed, stored via c.SetCachedInverse, and returned.
//
// Implementation:
//   - Stage 1: Reject a nil Cache (interface nil or typed-nil *Holder).
//   - Stage 2: Validate the data matrix (foreign Cache implementations may
//     hand out anything; *Holder data is valid by construction).
//   - Stage 3: On a memoized hit, log "returning cached result" and return it.
//   - Stage 4: On a miss, log "computing inverse" and delegate to
//     matrix.Inverse with the caller's numeric options.
//   - Stage 5: Store the fresh inverse in the Cache and return it.
//
// Behavior highlights:
//   - Failed inversions are never stored; the Cache stays exactly as it was.
//   - Numeric options only matter on a miss; a hit returns the stored value
//     without re-checking it against the current epsilon.
//   - Safe for concurrent use with *Holder: races at worst duplicate the
//     computation, and each stored result is a correct inverse of the data
//     it was computed from.
//
// Inputs:
//   - c: the Cache holding the data matrix (usually *Holder).
//   - opts: WithLogger / WithEpsilon / WithMatrixOptions.
//
// Returns:
//   - matrix.Matrix: the (possibly memoized) inverse.
//
// Errors:
//   - ErrNilCache, ErrNilMatrix, ErrBadMatrix for an absent or invalid holder.
//   - matrix.ErrNonSquare, matrix.ErrSingular propagated from the kernel.
//     All wrapped with "ComputeOrFetch:".
//
// Determinism:
//   - Inherited from matrix.Inverse; a memoized hit is trivially deterministic.
//
// Complexity:
//   - Time O(1) on a hit, O(n³) on a miss; Space O(n²) on a miss.
//
// AI-Hints:
//   - Inject a logger (WithLogger) to observe hit/miss behavior; the default
//     sink discards everything.
func ComputeOrFetch(c Cache, opts ...Option) (matrix.Matrix, error) {
	// Stage 1: nil guards. A typed-nil *Holder would panic on first method
	// call, so it is rejected here alongside the plain nil interface.
	if c == nil {
		return nil, memoErrorf(opComputeOrFetch, ErrNilCache)
	}
	if h, ok := c.(*Holder); ok && h == nil {
		return nil, memoErrorf(opComputeOrFetch, ErrNilCache)
	}
	o := resolveOptions(opts...)

	// Stage 2: validate the data matrix.
	data := c.Data()
	if err := validateData(data); err != nil {
		return nil, memoErrorf(opComputeOrFetch, err)
	}

	// Stage 3: memoized hit.
	if inv, ok := c.CachedInverse(); ok {
		o.logger.Info(msgCacheHit)

		return inv, nil
	}

	// Stage 4: miss — compute through the kernel with the caller's options.
	o.logger.WithField("rows", data.Rows()).Debug(msgComputing)
	inv, err := matrix.Inverse(data, o.matrixOpts...)
	if err != nil {
		// The Cache is left untouched: failures are never memoized.
		return nil, memoErrorf(opComputeOrFetch, err)
	}

	// Stage 5: memoize and return.
	c.SetCachedInverse(inv)

	return inv, nil
}
