package beam_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/grid"
)

// sampleContraption is the classic 10×10 layout: 46 cells energized from
// the top-left heading East, 51 at best from any edge.
const sampleContraption = `
.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

// sampleEnergized is the energized map of sampleContraption from the default entry.
const sampleEnergized = `
######....
.#...#....
.#...#####
.#...##...
.#...##...
.#...##...
.#..####..
########..
.#######..
.#...#.#..
`

// mustParse parses text or fails the test.
func mustParse(t testing.TB, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

// render draws the coverage as '#' (energized) and '.' rows.
func render(g *grid.Grid, c *beam.Coverage) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			if c.Energized(r, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
