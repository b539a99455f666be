// SPDX-License-Identifier: MIT
// Package: beamgrid/builder
//
// Package builder produces deterministic contraption grids for tests,
// examples and benchmarks.
//
// What:
//
//   - Random(rows, cols, opts...): cells drawn from a seeded RNG; each cell
//     is a deflector with probability WithDensity(p), else '.'.
//   - Loop(n):                      an n×n ring of mirrors that traps a beam
//     entering the top-left corner heading North.
//   - Corridor(n, sym):             a 1×n row of one symbol.
//
// Determinism:
//
//   - No hidden globals. Randomness only flows through WithSeed/WithRand,
//     so the same options always yield the same grid.
//
// Errors:
//
//   - ErrTooSmall:       a dimension is below its minimum.
//   - ErrNeedRandSource: Random was called without WithSeed/WithRand.
package builder
