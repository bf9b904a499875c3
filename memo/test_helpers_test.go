// Package memo_test contains test helpers
//
// Purpose:
//   - Provide deterministic fixtures (small invertible matrices, spies,
//     in-memory loggers) for the holder and facade tests.
//   - Keep all data finite and well-formed unless a test probes validation.

package memo_test

import (
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/memotrix/memotrix/matrix"
	"github.com/memotrix/memotrix/memo"
)

// spyCache WRAPS a Cache and counts interactions.
// Single-goroutine tests only (counters are plain ints).
// The SetCachedInverse count equals the number of inversions actually
// performed by ComputeOrFetch: only successful computations store.
type spyCache struct {
	inner memo.Cache

	dataCalls             int
	setDataCalls          int
	cachedInverseCalls    int
	setCachedInverseCalls int
}

var _ memo.Cache = (*spyCache)(nil)

func (s *spyCache) Data() matrix.Matrix {
	s.dataCalls++

	return s.inner.Data()
}

func (s *spyCache) SetData(m matrix.Matrix) error {
	s.setDataCalls++

	return s.inner.SetData(m)
}

func (s *spyCache) CachedInverse() (matrix.Matrix, bool) {
	s.cachedInverseCalls++

	return s.inner.CachedInverse()
}

func (s *spyCache) SetCachedInverse(inv matrix.Matrix) {
	s.setCachedInverseCalls++
	s.inner.SetCachedInverse(inv)
}

// zeroShape is a hand-rolled Matrix reporting degenerate dimensions,
// used to probe constructor-grade validation.
type zeroShape struct{}

func (zeroShape) Rows() int                     { return 0 }
func (zeroShape) Cols() int                     { return 0 }
func (zeroShape) At(_, _ int) (float64, error)  { return 0, nil }
func (zeroShape) Set(_, _ int, _ float64) error { return nil }
func (zeroShape) Clone() matrix.Matrix          { return zeroShape{} }

// nilDataCache is a foreign Cache handing out a nil data matrix.
type nilDataCache struct{}

func (nilDataCache) Data() matrix.Matrix                  { return nil }
func (nilDataCache) SetData(matrix.Matrix) error          { return nil }
func (nilDataCache) CachedInverse() (matrix.Matrix, bool) { return nil, false }
func (nilDataCache) SetCachedInverse(matrix.Matrix)       {}

// hitWithBadData is a foreign Cache claiming a memoized hit while its data
// matrix is nil. Used to pin the validate-before-hit ordering.
type hitWithBadData struct{ inv matrix.Matrix }

func (c hitWithBadData) Data() matrix.Matrix                  { return nil }
func (c hitWithBadData) SetData(matrix.Matrix) error          { return nil }
func (c hitWithBadData) CachedInverse() (matrix.Matrix, bool) { return c.inv, true }
func (c hitWithBadData) SetCachedInverse(matrix.Matrix)       {}

// MustFromRows BUILDS a *Dense from a 2D literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustHolder CONSTRUCTS a Holder over the given literal or fails the test.
func MustHolder(t *testing.T, rows [][]float64) *memo.Holder {
	t.Helper()
	h, err := memo.NewHolder(MustFromRows(t, rows))
	if err != nil {
		t.Fatalf("NewHolder: %v", err)
	}

	return h
}

// newMemLogger RETURNS a debug-level logger backed by an in-memory handler,
// plus the handler for entry assertions.
func newMemLogger() (log.Interface, *memory.Handler) {
	h := memory.New()

	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

// messages EXTRACTS the entry messages captured by a memory handler.
func messages(h *memory.Handler) []string {
	out := make([]string, 0, len(h.Entries))
	for _, e := range h.Entries {
		out = append(out, e.Message)
	}

	return out
}

// countMessage COUNTS occurrences of msg among captured entries.
func countMessage(h *memory.Handler, msg string) int {
	n := 0
	for _, e := range h.Entries {
		if e.Message == msg {
			n++
		}
	}

	return n
}

// AssertErrorIs ASSERTS errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// InDelta RETURNS whether |a-b| <= delta (boolean, non-fatal).
func InDelta(t *testing.T, a, b float64, delta float64) bool {
	t.Helper()
	diff := a - b
	if diff < -delta || diff > delta {
		return false
	}

	return true
}

// MustAt READS the value at (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
