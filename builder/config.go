// SPDX-License-Identifier: MIT
// Package: beamgrid/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil       (Random refuses to run without one)
//   • density  = 0.2
//   • symbols  = / \ - |

package builder

import (
	"math/rand"

	"github.com/katalvlaran/beamgrid/grid"
)

// config aggregates all knobs used by constructors.
type config struct {
	rng     *rand.Rand
	density float64
	symbols []byte
}

const defaultDensity = 0.2

var defaultSymbols = []byte{grid.Slash, grid.Backslash, grid.Dash, grid.Pipe}

// newConfig applies options in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:     nil,
		density: defaultDensity,
		symbols: defaultSymbols,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
