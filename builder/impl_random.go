// SPDX-License-Identifier: MIT
// Package: beamgrid/builder
//
// impl_random.go - Random(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • Cells are drawn in row-major order: one Float64 for the density
//     test, then one Intn for the symbol when a deflector is placed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

const (
	methodRandom = "Random"
	minDim       = 1
)

// Random returns a rows×cols grid with deflectors scattered at the
// configured density.
func Random(rows, cols int, opts ...Option) (*grid.Grid, error) {
	if rows < minDim || cols < minDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodRandom, rows, cols, minDim, ErrTooSmall)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	lines := make([]string, rows)
	row := make([]byte, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			row[c] = grid.Empty
			if cfg.rng.Float64() < cfg.density {
				row[c] = cfg.symbols[cfg.rng.Intn(len(cfg.symbols))]
			}
		}
		lines[r] = string(row)
	}

	return grid.New(lines)
}
