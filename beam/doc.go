// Package beam simulates a beam of light moving through a grid.Grid of
// mirrors and splitters and counts the cells it energizes.
//
// What:
//
//   - Direction: North, East, South, West with unit row/col vectors.
//   - Deflect: the pure (incoming direction, cell symbol) → outgoing
//     direction(s) rule. Mirrors turn the beam 90°, splitters hit across
//     their axis emit two beams, everything else passes straight through.
//   - State: a (Position, Direction) pair, the unit of memoization.
//   - Advance: one step from a State to its 0, 1 or 2 in-grid successors.
//   - Traverse: explicit work-list walk that processes each distinct State
//     at most once, so mirror cycles cannot keep it running.
//   - CoverageFrom: the number of distinct cells energized from one entry.
//
// Why:
//
//   - The state space is bounded by 4×R×C, so the visited set guarantees
//     termination no matter how many physical loops the layout contains.
//   - The work-list keeps stack depth constant on large, cyclic layouts.
//
// Complexity:
//
//   - Deflect, Advance: O(1), allocation free.
//   - Traverse:         O(R×C) time, O(R×C) memory (visited bitmap,
//     coverage bitmap, stack).
//
// Options:
//
//   - WithContext(ctx):   abort early when ctx is done.
//   - WithOnVisit(fn):    hook called for every processed State.
//
// Errors:
//
//   - ErrGridNil:            grid pointer is nil.
//   - ErrEntryOutOfBounds:   entry position lies outside the grid.
//   - ErrInvalidDirection:   direction outside North..West.
//   - ErrInvalidCell:        unknown symbol; traversal returns *InvalidCellError.
//   - context.Canceled etc.: propagated from WithContext.
//   - any error returned by the OnVisit hook.
package beam
