package beam

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

// Position is a (row, col) cell address. It may lie outside a grid;
// In must be checked before the cell is read.
type Position struct {
	Row, Col int
}

// Add returns the neighbouring position one step towards d.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Vector()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// In reports whether p addresses a cell of g.
func (p Position) In(g *grid.Grid) bool {
	return g.InBounds(p.Row, p.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// State is a beam occupying Pos, having arrived while heading Dir.
// States are comparable and serve directly as visited-set keys.
type State struct {
	Pos Position
	Dir Direction
}

// At is shorthand for State{Position{row, col}, d}.
func At(row, col int, d Direction) State {
	return State{Pos: Position{Row: row, Col: col}, Dir: d}
}

// DefaultEntry is the top-left cell heading East.
func DefaultEntry() State {
	return At(0, 0, East)
}

func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Pos, s.Dir)
}

// Successors holds the 0, 1 or 2 in-grid states that follow a State.
type Successors struct {
	states [2]State
	n      int
}

// Len returns the number of successors.
func (s Successors) Len() int { return s.n }

// At returns the i-th successor.
func (s Successors) At(i int) State { return s.states[i] }

// States copies the successors into a new slice.
func (s Successors) States() []State {
	return append([]State(nil), s.states[:s.n]...)
}

// Advance deflects s by the symbol under it and steps every outgoing
// heading one cell. Candidates that leave the grid are dropped: the beam
// has exited and never returns, which is not an error.
//
// Returns ErrGridNil, ErrEntryOutOfBounds if s itself is outside g,
// ErrInvalidDirection, or *InvalidCellError for an unknown symbol.
// Complexity: O(1), allocation free.
func Advance(g *grid.Grid, s State) (Successors, error) {
	var next Successors
	if g == nil {
		return next, ErrGridNil
	}
	if !s.Pos.In(g) {
		return next, fmt.Errorf("%w: %v", ErrEntryOutOfBounds, s)
	}
	cell := g.At(s.Pos.Row, s.Pos.Col)
	out, err := Deflect(s.Dir, cell)
	if err != nil {
		if errors.Is(err, ErrInvalidCell) {
			return next, &InvalidCellError{Pos: s.Pos, Dir: s.Dir, Cell: cell}
		}
		return next, err
	}
	for i := 0; i < out.Len(); i++ {
		d := out.At(i)
		p := s.Pos.Add(d)
		if !p.In(g) {
			continue
		}
		next.states[next.n] = State{Pos: p, Dir: d}
		next.n++
	}
	return next, nil
}
