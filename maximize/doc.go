// Package maximize finds the edge entry that energizes the most cells.
//
// What:
//
//   - BoundaryEntries: every state a beam can enter the grid with: each row
//     from the left edge heading East and from the right edge heading
//     West, each column from the top heading South and from the bottom
//     heading North. Exactly 2R+2C states.
//   - MaxCoverage: runs one beam.Traverse per entry on a bounded worker
//     pool and reduces the per-entry counts to their maximum.
//
// Concurrency:
//
//   - The grid is shared read-only; every traversal owns its scratch
//     space. Results land in per-entry slots and are reduced after all
//     workers finish, so no locks or atomics are involved.
//   - The first failing entry cancels the remaining ones.
//
// Options:
//
//   - WithWorkers(n):   at most n traversals in flight (default GOMAXPROCS).
//   - WithLogger(l):    zap logger for per-entry debug lines (default no-op).
package maximize
