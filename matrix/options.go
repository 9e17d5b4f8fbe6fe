// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state; defaults are constants.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
//
// Notes:
//   - The default policy reproduces plain IEEE-754 behavior: a zero
//     determinant or a zero row sum yields ±Inf/NaN entries, and Dense
//     accepts such values. Both guards below are opt-in.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by tolerance-based comparisons.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles finite-only enforcement in Set/Apply.
	// Off by default: Inverse of a singular matrix and ToProbabilities on a
	// zero-sum row must be able to store ±Inf/NaN.
	DefaultValidateNaNInf = false

	// DefaultSingularTolerance disables the singularity guard in Inverse
	// (negative means "never check").
	DefaultSingularTolerance = -1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	singularTol    float64 // < 0 disables the guard; DefaultSingularTolerance
}

// WithEpsilon sets the tolerance used by tolerance-based comparisons.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes matrices built with these options reject NaN/±Inf
// in Set and Apply (ErrNaNInf). Kernel results computed from such a matrix
// inherit the policy and fail with ErrNaNInf instead of holding NaN/±Inf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default permissive numeric policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSingularTolerance enables the singularity guard in Inverse:
// when |det(A)| <= tol the call fails with ErrSingular instead of
// producing ±Inf/NaN entries. tol = 0 rejects only an exact zero.
//
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0 (panic otherwise).
//   - Stage 2: return a setter that stores tol.
//
// Notes:
//   - The cofactor inverse has no pivoting; a tolerance around 1e-12 is a
//     reasonable choice for well-scaled double-precision inputs.
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins for repeated setters.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-only enforcement is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// SingularTolerance returns the singularity threshold and whether the guard is on.
func (o Options) SingularTolerance() (float64, bool) {
	return o.singularTol, o.singularTol >= 0
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		singularTol:    DefaultSingularTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
