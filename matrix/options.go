// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric kernels and the
// ingestion policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The variadic ...Option surface doubles as the pass-through channel of
//     the memo solver: whatever options a caller hands to Solve are forwarded
//     verbatim to Inverse here.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultPivotTolerance is the threshold below which a pivot magnitude is
	// treated as zero during LU/Inverse. The default keeps the exact-zero
	// guard: only a literal 0.0 pivot reports ErrSingular.
	DefaultPivotTolerance = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-field-only to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	pivotTol       float64 // >= 0; DefaultPivotTolerance
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the singularity threshold for LU/Inverse pivots:
// any pivot with |pivot| <= tol reports ErrSingular.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - tol = 0 restores the exact-zero guard (the default).
//
// Errors:
//   - Panics with a stable message when tol is negative or non-finite.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	// Assign validated tolerance.
	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation on ingestion
// and Set. This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only at creation; existing matrices keep their policy.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Internal helpers ----------

// gatherOptions resolves defaults, then applies setters in order.
// Later options win; application is idempotent.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		pivotTol:       DefaultPivotTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
