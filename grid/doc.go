// Package grid holds the immutable character matrix a beam travels through.
//
// What:
//
//   - Grid wraps a rectangular rows×cols matrix of deflector symbols:
//     '.' (empty), '/' and '\' (mirrors), '-' and '|' (splitters).
//   - New checks the shape only; Validate checks the symbols.
//   - Parse / ParseReader turn puzzle text into a Grid, rejecting ragged,
//     empty, or foreign-symbol input before any simulation starts.
//   - Row-major Index / Coordinate helpers for dense per-cell scratch space.
//
// Why:
//
//   - A single validated, read-only Grid can be shared by any number of
//     concurrent traversals without locking.
//
// Complexity:
//
//   - New, Parse:     O(R×C) time and memory (deep copy).
//   - Validate:       O(R×C).
//   - At, InBounds:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell:    a symbol outside {. / \ - |}; returned as *CellError.
package grid
