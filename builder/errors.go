// SPDX-License-Identifier: MIT
// Package: beamgrid/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; they never panic at runtime.
//     Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooSmall indicates that a dimension (rows, cols, n) is smaller than
// the allowed minimum for the requested constructor.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")
