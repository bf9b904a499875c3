// File: holder.go
// Role: Cache contract & the Holder implementation (data + memoized inverse).
//
// Invariants:
//   - A Holder never exposes a stale inverse: every successful data
//     replacement clears the cached inverse in the same critical section.
//   - The data matrix is always well-formed (constructor-grade validation at
//     construction and on replacement; failed replacement changes nothing).
//
// Concurrency:
//   - A single sync.RWMutex guards both fields; data and inverse are coupled
//     by the invalidation invariant, so they share one critical section.
//   - Racing computations may both invoke SetCachedInverse; last write wins,
//     and each stored value is a correct inverse of the current data as long
//     as data replacement is quiesced around the computation.
//
// AI-Hints (file):
//   - Holder methods never copy matrices; callers share references and must
//     not mutate a matrix after handing it over.

package memo

import (
	"fmt"
	"sync"

	"github.com/memotrix/memotrix/matrix"
)

// Cache is the minimal capability bundle ComputeOrFetch needs: read the data
// matrix, replace it, and read/write the memoized inverse. *Holder is the
// canonical implementation; tests substitute spies.
type Cache interface {
	// Data returns the current data matrix.
	Data() matrix.Matrix

	// SetData replaces the data matrix and clears any cached inverse.
	// Implementations must reject malformed input and leave state unchanged
	// on failure.
	SetData(m matrix.Matrix) error

	// CachedInverse returns the memoized inverse and true, or (nil, false)
	// when nothing is cached.
	CachedInverse() (matrix.Matrix, bool)

	// SetCachedInverse stores inv as the memoized inverse. Storing nil clears
	// the cached value.
	SetCachedInverse(inv matrix.Matrix)
}

// Holder owns a data matrix and at most one memoized inverse of it.
// The zero value is not usable; construct via NewHolder.
type Holder struct {
	mu      sync.RWMutex  // guards data and inverse
	data    matrix.Matrix // current data matrix; always well-formed
	inverse matrix.Matrix // memoized inverse of data; nil when not computed
}

// Compile-time conformance check.
var _ Cache = (*Holder)(nil)

// validateData classifies a prospective data matrix.
// nil → ErrNilMatrix; malformed per matrix.ValidateWellFormed → ErrBadMatrix.
// Complexity: O(1).
func validateData(m matrix.Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := matrix.ValidateWellFormed(m); err != nil {
		// Keep the shape detail in the message; callers match ErrBadMatrix.
		return fmt.Errorf("%w: %v", ErrBadMatrix, err)
	}

	return nil
}

// NewHolder creates a Holder owning initial as its data matrix.
//
// Implementation:
//   - Stage 1: Validate initial (constructor-grade; see validateData).
//   - Stage 2: Allocate the Holder with an empty inverse slot.
//
// Inputs:
//   - initial: non-nil, well-formed data matrix.
//
// Returns:
//   - *Holder: ready for ComputeOrFetch.
//
// Errors:
//   - ErrNilMatrix, ErrBadMatrix (wrapped with "NewHolder:").
//
// Complexity:
//   - Time O(1), Space O(1); the matrix is referenced, not copied.
func NewHolder(initial matrix.Matrix) (*Holder, error) {
	if err := validateData(initial); err != nil {
		return nil, fmt.Errorf("NewHolder: %w", err)
	}

	return &Holder{data: initial}, nil
}

// SetData replaces the data matrix and clears the cached inverse.
//
// Implementation:
//   - Stage 1: Validate m before taking the lock (failed calls touch nothing).
//   - Stage 2: Under the write lock, install m and clear the inverse slot in
//     one critical section.
//
// Inputs:
//   - m: non-nil, well-formed replacement matrix.
//
// Returns:
//   - error: nil on success.
//
// Errors:
//   - ErrNilMatrix, ErrBadMatrix (wrapped with "SetData:"); on failure the
//     previous data and any cached inverse remain intact.
//
// Concurrency:
//   - Thread-safe: acquires the write lock.
//
// Complexity:
//   - Time O(1), Space O(1).
func (h *Holder) SetData(m matrix.Matrix) error {
	// Validate before locking; rejected input must leave state untouched.
	if err := validateData(m); err != nil {
		return fmt.Errorf("SetData: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.data = m
	h.inverse = nil // replaced data invalidates the memoized inverse

	return nil
}

// Data returns the current data matrix.
// Thread-safe: acquires a read lock.
// Complexity: O(1).
func (h *Holder) Data() matrix.Matrix {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.data
}

// SetCachedInverse stores inv as the memoized inverse of the current data.
// Plain storage: no validation, no copying; storing nil clears the slot.
// Thread-safe: acquires the write lock.
// Complexity: O(1).
func (h *Holder) SetCachedInverse(inv matrix.Matrix) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inverse = inv
}

// CachedInverse returns the memoized inverse and whether one is present.
// Repeated calls are idempotent and never trigger computation.
// Thread-safe: acquires a read lock.
// Complexity: O(1).
func (h *Holder) CachedInverse() (matrix.Matrix, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.inverse, h.inverse != nil
}
