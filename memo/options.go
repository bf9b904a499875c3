// Package memo functional configuration.
//
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithLogger / WithEpsilon / WithMatrixOptions constructors,
//   - resolveOptions helper (internal) that applies setters over defaults.
//
// Defaults keep the package silent and deterministic: diagnostics go to a
// discard handler until a caller injects a logger, and numeric policy is
// whatever the matrix package documents as its defaults.

package memo

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/memotrix/memotrix/matrix"
)

// panicNilLogger is the stable message for the WithLogger programmer-error panic.
const panicNilLogger = "memo: WithLogger: logger must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	logger     log.Interface   // diagnostic sink; discard handler by default
	matrixOpts []matrix.Option // numeric policy forwarded to matrix kernels
}

// WithLogger injects the diagnostic sink used by ComputeOrFetch
// ("returning cached result" on hits, "computing inverse" on misses).
// Panics with a stable message when l is nil (programmer error).
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithEpsilon forwards the numeric tolerance to the matrix kernels: pivots
// with |pivot| <= eps fail inversion with matrix.ErrSingular.
// Validation (and the panic on nonsensical eps) is matrix.WithEpsilon's.
func WithEpsilon(eps float64) Option {
	mopt := matrix.WithEpsilon(eps) // validates eagerly

	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, mopt) }
}

// WithMatrixOptions forwards arbitrary matrix options (numeric policy) to the
// kernels invoked on a cache miss. Applied in order after any WithEpsilon.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

// defaultLogger returns the silent sink used until WithLogger overrides it.
func defaultLogger() log.Interface {
	return &log.Logger{Handler: discard.Default, Level: log.InfoLevel}
}

// resolveOptions applies user-provided setters on top of the defaults.
// Last-writer-wins for the logger; matrix options accumulate in order.
func resolveOptions(user ...Option) Options {
	o := Options{logger: defaultLogger()}
	for _, set := range user {
		set(&o)
	}

	return o
}
