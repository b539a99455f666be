package grid

// Deflector symbols.
const (
	Empty     byte = '.'
	Slash     byte = '/'
	Backslash byte = '\\'
	Dash      byte = '-'
	Pipe      byte = '|'
)

// Valid reports whether c belongs to the deflector alphabet.
func Valid(c byte) bool {
	switch c {
	case Empty, Slash, Backslash, Dash, Pipe:
		return true
	}
	return false
}

// Grid is an immutable rows×cols matrix of deflector symbols.
// cells is stored row-major; nothing mutates it after New returns.
type Grid struct {
	rows, cols int
	cells      []byte
}
