// Package memotrix is a small toolkit for memoized dense linear algebra:
// compute a matrix inverse once, cache it next to the data, and never see
// a stale result after the data changes.
//
// 🚀 What is memotrix?
//
//	A thread-safe, deterministic library that brings together:
//		• Dense matrices: row-major float64 storage with safe, error-returning accessors
//		• Kernels: Add, Sub, Mul, Scale, Transpose with *Dense fast-paths
//		• Factorization: Doolittle LU and Inverse with configurable epsilon
//		• Memoization: Holder (data + cached inverse) and ComputeOrFetch
//		• Diagnostics: injectable logging via github.com/apex/log
//
// ✨ Why choose memotrix?
//
//   - Compute-once semantics – an inverse is computed at most once per data value
//   - Rock-solid guarantees – R/W locks, validated inputs, sentinel errors
//   - Deterministic – fixed loop orders, no randomness, reproducible results
//   - Configurable – functional options for tolerance and logging
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — dense storage, arithmetic kernels, LU/Inverse, validators
//	memo/   — Holder, ComputeOrFetch, logging & option plumbing
//
// Quick example:
//
//	data, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	holder, _ := memo.NewHolder(data)
//	inv, _ := memo.ComputeOrFetch(holder)  // computes
//	inv, _ = memo.ComputeOrFetch(holder)   // memoized hit
//
// Dive into the package docs of matrix and memo for the full API surface,
// error contracts and concurrency notes.
//
//	go get github.com/memotrix/memotrix
package memotrix
