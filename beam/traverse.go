package beam

import (
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

// Coverage marks the cells energized during one traversal.
// Direction does not matter here, only position.
type Coverage struct {
	g     *grid.Grid
	cells []bool
	count int
}

func newCoverage(g *grid.Grid) *Coverage {
	return &Coverage{g: g, cells: make([]bool, g.Size())}
}

func (c *Coverage) mark(idx int) {
	if !c.cells[idx] {
		c.cells[idx] = true
		c.count++
	}
}

// Count returns the number of energized cells.
func (c *Coverage) Count() int { return c.count }

// Energized reports whether (row,col) was touched by any beam.
// Out-of-grid positions are never energized.
func (c *Coverage) Energized(row, col int) bool {
	if !c.g.InBounds(row, col) {
		return false
	}
	return c.cells[c.g.Index(row, col)]
}

// Result captures the outcome of one traversal.
type Result struct {
	// Entry is the state the traversal started from.
	Entry State
	// Coverage holds the energized cells.
	Coverage *Coverage
	// States counts the distinct (position, direction) states processed.
	States int
}

// Count returns the number of energized cells.
func (r *Result) Count() int { return r.Coverage.Count() }

// walker encapsulates mutable traversal state. Nothing in it is shared
// between traversals.
type walker struct {
	grid    *grid.Grid
	opts    Options
	visited []bool // indexed by cell*4 + direction
	stack   []State
	res     *Result
}

// Traverse walks the beam graph from entry, processing every reachable
// State exactly once, and reports which cells were energized.
//
// Algorithm (explicit LIFO work-list, equivalent to depth-first recursion):
//  1. Pop a state; skip it if already visited (this breaks every cycle).
//  2. Mark it visited and mark its cell energized.
//  3. Push the successors from Advance.
//  4. Repeat until the work-list is empty.
//
// Returns ErrGridNil, ErrInvalidDirection or ErrEntryOutOfBounds for an
// unusable entry, *InvalidCellError when the beam meets an unknown
// symbol, the context error on cancellation, or the OnVisit hook error.
// The grid is never written to.
//
// Complexity: O(R×C) time and memory.
func Traverse(g *grid.Grid, entry State, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !entry.Dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(entry.Dir))
	}
	if !entry.Pos.In(g) {
		return nil, fmt.Errorf("%w: entry %v in %dx%d grid", ErrEntryOutOfBounds, entry, g.Rows(), g.Cols())
	}

	w := &walker{
		grid:    g,
		opts:    o,
		visited: make([]bool, g.Size()*len(Directions)),
		stack:   make([]State, 0, 16),
		res: &Result{
			Entry:    entry,
			Coverage: newCoverage(g),
		},
	}
	w.stack = append(w.stack, entry)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop drains the work-list.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		top := len(w.stack) - 1
		s := w.stack[top]
		w.stack = w.stack[:top]

		cell := w.grid.Index(s.Pos.Row, s.Pos.Col)
		key := cell*len(Directions) + int(s.Dir)
		if w.visited[key] {
			continue
		}
		w.visited[key] = true
		w.res.States++
		w.res.Coverage.mark(cell)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(s); err != nil {
				return fmt.Errorf("beam: OnVisit hook for %v: %w", s, err)
			}
		}

		next, err := Advance(w.grid, s)
		if err != nil {
			return err
		}
		// Push in reverse so the first branch of a split is explored first.
		for i := next.Len() - 1; i >= 0; i-- {
			w.stack = append(w.stack, next.At(i))
		}
	}
	return nil
}

// CoverageFrom runs one traversal from entry and returns the number of
// energized cells. Scratch state is local to the call, so it is safe to
// invoke concurrently on the same grid.
func CoverageFrom(g *grid.Grid, entry State, opts ...Option) (int, error) {
	res, err := Traverse(g, entry, opts...)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}
