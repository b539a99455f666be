package grid

import (
	"bufio"
	"io"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular slice of rows.
// Only the shape is checked here; symbols are checked by Validate (Parse
// does both). The input is copied.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy into one row-major slab
	cells := make([]byte, 0, h*w)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{rows: h, cols: w, cells: cells}, nil
}

// Validate returns a *CellError for the first cell, in row-major order,
// whose symbol is outside the deflector alphabet.
// Complexity: O(R×C).
func (g *Grid) Validate() error {
	for i, c := range g.cells {
		if !Valid(c) {
			r, col := g.Coordinate(i)
			return &CellError{Row: r, Col: col, Char: rune(c)}
		}
	}
	return nil
}

// Parse builds a validated Grid from puzzle text: one row per line.
// Surrounding blank space is trimmed and CRLF endings are accepted.
// Returns ErrEmptyGrid, ErrNonRectangular, or a *CellError.
func Parse(text string) (*Grid, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	g, err := New(lines)
	if err != nil {
		return nil, err
	}
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseReader reads all of r and parses it like Parse.
func ParseReader(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return Parse(strings.Join(lines, "\n"))
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the symbol at (row,col). The caller checks InBounds first.
func (g *Grid) At(row, col int) byte {
	return g.cells[g.Index(row, col)]
}

// Index maps (row,col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// String renders the grid back to puzzle text without a trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return b.String()
}
