package maximize

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/grid"
)

// Result is the best entry found by MaxCoverage.
type Result struct {
	// Max is the largest number of energized cells.
	Max int
	// Entry is the first entry, in BoundaryEntries order, reaching Max.
	Entry beam.State
	// Entries is the number of entries evaluated.
	Entries int
}

// BoundaryEntries lists every edge entry of g: for each row r,
// (r,0) heading East and (r,cols-1) heading West; then for each column c,
// (0,c) heading South and (rows-1,c) heading North.
//
// The result always holds 2·rows + 2·cols states. They are pairwise
// distinct even for a single row or column because entries sharing a
// cell differ in heading.
func BoundaryEntries(g *grid.Grid) []beam.State {
	rows, cols := g.Rows(), g.Cols()
	entries := make([]beam.State, 0, 2*rows+2*cols)
	for r := 0; r < rows; r++ {
		entries = append(entries,
			beam.At(r, 0, beam.East),
			beam.At(r, cols-1, beam.West),
		)
	}
	for c := 0; c < cols; c++ {
		entries = append(entries,
			beam.At(0, c, beam.South),
			beam.At(rows-1, c, beam.North),
		)
	}
	return entries
}

// MaxCoverage evaluates every boundary entry of g and returns the maximum
// coverage. Traversals run concurrently, at most WithWorkers at a time.
//
// A single-cell grid is answered from one traversal: every entry
// energizes the same cell.
//
// Returns beam.ErrGridNil for a nil grid, or the first traversal error
// (wrapped with its entry; errors.Is still matches beam.ErrInvalidCell),
// or the context error if ctx ends first.
func MaxCoverage(ctx context.Context, g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, beam.ErrGridNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newConfig(opts...)
	entries := BoundaryEntries(g)

	if g.Size() == 1 {
		n, err := beam.CoverageFrom(g, entries[0], beam.WithContext(ctx))
		if err != nil {
			return Result{}, fmt.Errorf("maximize: entry %v: %w", entries[0], err)
		}
		return Result{Max: n, Entry: entries[0], Entries: len(entries)}, nil
	}

	counts := make([]int, len(entries))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		i, e := i, e // per-iteration copies (go directive < 1.22)
		eg.Go(func() error {
			n, err := beam.CoverageFrom(g, e, beam.WithContext(gctx))
			if err != nil {
				return fmt.Errorf("maximize: entry %v: %w", e, err)
			}
			counts[i] = n
			cfg.logger.Debug("entry evaluated",
				zap.Stringer("entry", e),
				zap.Int("energized", n))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	// errgroup only cancels gctx on error; a canceled parent must still surface.
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	best := Result{Entries: len(entries), Max: -1}
	for i, n := range counts {
		if n > best.Max {
			best.Max, best.Entry = n, entries[i]
		}
	}
	cfg.logger.Debug("maximum found",
		zap.Stringer("entry", best.Entry),
		zap.Int("energized", best.Max),
		zap.Int("entries", best.Entries),
		zap.Int("workers", cfg.workers))

	return best, nil
}
