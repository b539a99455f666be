package beam

import "github.com/katalvlaran/beamgrid/grid"

// Outcome is the result of Deflect: one outgoing heading, or two for a split.
// It is a fixed-size value so the hot path never allocates.
type Outcome struct {
	dirs [2]Direction
	n    int
}

// Len returns 1 for a pass-through or reflection, 2 for a split.
func (o Outcome) Len() int { return o.n }

// At returns the i-th outgoing heading.
func (o Outcome) At(i int) Direction { return o.dirs[i] }

// Split reports whether the beam was split in two.
func (o Outcome) Split() bool { return o.n == 2 }

// Directions copies the outgoing headings into a new slice.
func (o Outcome) Directions() []Direction {
	return append([]Direction(nil), o.dirs[:o.n]...)
}

func single(d Direction) Outcome { return Outcome{dirs: [2]Direction{d}, n: 1} }

func split(a, b Direction) Outcome { return Outcome{dirs: [2]Direction{a, b}, n: 2} }

// Reflection tables indexed by incoming heading.
var (
	slashTurn = [4]Direction{
		North: East,
		East:  North,
		South: West,
		West:  South,
	}
	backslashTurn = [4]Direction{
		North: West,
		East:  South,
		South: East,
		West:  North,
	}
)

// Deflect maps an incoming heading and the symbol of the cell it occupies
// to the outgoing heading(s):
//
//	'.'  straight through
//	'/'  E↔N, W↔S
//	'\'  E↔S, W↔N
//	'-'  E/W pass, N/S split into {W, E}
//	'|'  N/S pass, E/W split into {N, S}
//
// Returns ErrInvalidCell for any other symbol and ErrInvalidDirection
// for a heading outside North..West.
func Deflect(in Direction, cell byte) (Outcome, error) {
	if !in.Valid() {
		return Outcome{}, ErrInvalidDirection
	}
	switch cell {
	case grid.Empty:
		return single(in), nil
	case grid.Slash:
		return single(slashTurn[in]), nil
	case grid.Backslash:
		return single(backslashTurn[in]), nil
	case grid.Dash:
		if in == East || in == West {
			return single(in), nil
		}
		return split(West, East), nil
	case grid.Pipe:
		if in == North || in == South {
			return single(in), nil
		}
		return split(North, South), nil
	}
	return Outcome{}, ErrInvalidCell
}
