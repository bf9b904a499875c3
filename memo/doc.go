// Package memo provides memoized matrix inversion around a thread-safe
// holder: compute the inverse of a data matrix at most once, reuse it until
// the data changes, and never observe a stale result.
//
// The package revolves around two pieces:
//
//   - Holder — owns a data matrix plus at most one memoized inverse.
//     Replacing the data (SetData) clears the memoized inverse in the same
//     critical section, so a stale inverse is never observable. Construction
//     and replacement validate the matrix; failed calls change nothing.
//   - ComputeOrFetch — returns the memoized inverse when present (logging
//     "returning cached result"), otherwise computes it via matrix.Inverse,
//     stores it on the holder, and returns it. Failed computations are never
//     stored.
//
// Configuration is functional: WithLogger injects the diagnostic sink
// (github.com/apex/log; silent discard handler by default), WithEpsilon and
// WithMatrixOptions forward numeric policy to the matrix kernels.
//
// Errors:
//
//	ErrNilCache      - nil Cache passed to ComputeOrFetch.
//	ErrNilMatrix     - nil data matrix (construction, replacement, foreign Cache).
//	ErrBadMatrix     - malformed data matrix (non-positive dimensions).
//	matrix.ErrNonSquare, matrix.ErrSingular - propagated from the kernel, wrapped.
//
// Concurrency: Holder methods are individually thread-safe (one RWMutex
// guards data and inverse). ComputeOrFetch performs no cross-call locking:
// concurrent misses may duplicate the computation, with the last stored
// result winning. Callers needing single-flight semantics must serialize
// around the holder themselves.
package memo
