package beam

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to Traverse or Advance.
	ErrGridNil = errors.New("beam: grid is nil")

	// ErrEntryOutOfBounds indicates a State whose position lies outside the grid.
	ErrEntryOutOfBounds = errors.New("beam: position out of bounds")

	// ErrInvalidDirection indicates a Direction outside North..West.
	ErrInvalidDirection = errors.New("beam: invalid direction")

	// ErrInvalidCell is the same sentinel grid.Validate reports, so callers
	// can branch on one value whether the symbol was caught at parse time
	// or during a traversal.
	ErrInvalidCell = grid.ErrInvalidCell
)

// InvalidCellError is returned when a beam reaches a cell whose symbol
// Deflect does not know. It matches ErrInvalidCell under errors.Is.
type InvalidCellError struct {
	Pos  Position
	Dir  Direction
	Cell byte
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("beam: invalid cell %q at %v (heading %v)", e.Cell, e.Pos, e.Dir)
}

// Is reports whether target is ErrInvalidCell.
func (e *InvalidCellError) Is(target error) bool {
	return target == ErrInvalidCell
}
