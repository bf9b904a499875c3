// Package memo sentinel errors.
//
// Every message is prefixed with "memo: " for consistency and easy grepping.
// Sentinels classify the failure kind; call sites wrap them with an operation
// tag, and callers match with errors.Is. Numeric failures (singular or
// non-square data) are not redefined here: matrix.ErrSingular and
// matrix.ErrNonSquare propagate through wrapped.

package memo

import "errors"

var (
	// ErrNilCache indicates a nil Cache was passed to ComputeOrFetch.
	ErrNilCache = errors.New("memo: nil cache")

	// ErrNilMatrix indicates a nil data matrix (construction, replacement, or
	// a foreign Cache implementation handing out nil).
	ErrNilMatrix = errors.New("memo: nil data matrix")

	// ErrBadMatrix indicates a data matrix that fails the constructor-grade
	// well-formedness check (non-positive dimensions).
	ErrBadMatrix = errors.New("memo: malformed data matrix")
)
