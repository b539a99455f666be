package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a symbol outside the deflector alphabet.
	ErrInvalidCell = errors.New("grid: invalid cell symbol")
)

// CellError reports the first foreign symbol found while building a Grid.
// It matches ErrInvalidCell under errors.Is.
type CellError struct {
	Row, Col int
	Char     rune
}

func (e *CellError) Error() string {
	return fmt.Sprintf("grid: invalid cell %q at row %d, col %d", e.Char, e.Row, e.Col)
}

// Is reports whether target is ErrInvalidCell.
func (e *CellError) Is(target error) bool {
	return target == ErrInvalidCell
}
