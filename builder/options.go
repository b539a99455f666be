// SPDX-License-Identifier: MIT
// Package: beamgrid/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a constructor by mutating a config before the grid
// is generated.
type Option func(*config)

// WithRand provides an explicit RNG for Random. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the probability that a cell holds a deflector rather
// than '.'. Panics if p is outside [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithDensity(p outside [0,1])")
	}
	return func(c *config) {
		c.density = p
	}
}

// WithSymbols restricts the deflectors Random may draw from. Symbols are
// taken as given; anything Deflect does not know surfaces during a
// traversal. Panics on an empty set.
func WithSymbols(symbols ...byte) Option {
	if len(symbols) == 0 {
		panic("builder: WithSymbols()")
	}
	set := append([]byte(nil), symbols...)
	return func(c *config) {
		c.symbols = set
	}
}
