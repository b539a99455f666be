// SPDX-License-Identifier: MIT
// Package: beamgrid/builder
//
// impl_loop.go - Loop(n) and Corridor(n, sym) constructors.

package builder

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

const (
	methodLoop     = "Loop"
	methodCorridor = "Corridor"
	minLoopSide    = 2
)

// Loop returns an n×n grid whose four corners are mirrors wired into a
// closed ring:
//
//	/..\
//	....
//	....
//	\../
//
// A beam at (0,0) heading North circles the perimeter forever unless
// repeated states are dropped; it energizes exactly 4n-4 cells.
// Loop(2) consists of mirrors only.
func Loop(n int) (*grid.Grid, error) {
	if n < minLoopSide {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLoop, n, minLoopSide, ErrTooSmall)
	}
	lines := make([]string, n)
	for r := 0; r < n; r++ {
		row := bytes.Repeat([]byte{grid.Empty}, n)
		switch r {
		case 0:
			row[0], row[n-1] = grid.Slash, grid.Backslash
		case n - 1:
			row[0], row[n-1] = grid.Backslash, grid.Slash
		}
		lines[r] = string(row)
	}

	return grid.New(lines)
}

// Corridor returns a 1×n grid filled with sym. The symbol is not checked.
func Corridor(n int, sym byte) (*grid.Grid, error) {
	if n < minDim {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCorridor, n, minDim, ErrTooSmall)
	}
	return grid.New([]string{string(bytes.Repeat([]byte{sym}, n))})
}
